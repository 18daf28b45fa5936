package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
	"github.com/actuallystonmai/stylesense-service/internal/extract"
	"github.com/actuallystonmai/stylesense-service/internal/metrics"
	"github.com/actuallystonmai/stylesense-service/internal/prompt"
)

const FallbackRecommendation = "Unable to generate recommendations."

const upstreamRequestsTotal = "upstream_requests_total"

// Completer is the upstream chat-completion capability. model.Client
// implements it.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type Service struct {
	llm     Completer
	timeout time.Duration
	metrics *metrics.Registry
}

// NewService builds the gateway. A zero timeout leaves upstream calls
// bounded only by the caller's context; reg may be nil.
func NewService(llm Completer, timeout time.Duration, reg *metrics.Registry) *Service {
	return &Service{
		llm:     llm,
		timeout: timeout,
		metrics: reg,
	}
}

// GetRecommendation forwards a free-text question, optionally framed by an
// outfit description, and returns the generated advice.
func (s *Service) GetRecommendation(ctx context.Context, req domain.RecommendationRequest) (string, error) {
	if req.Empty() {
		s.count(ctx, "invalid_input")
		return "", domain.ErrInvalidInput
	}
	return s.complete(ctx, prompt.UserMessage(req))
}

func (s *Service) complete(ctx context.Context, userMessage string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.llm.Complete(ctx, prompt.System, userMessage)
	log := logrus.WithField("elapsed_ms", time.Since(start).Milliseconds())

	if err != nil {
		if ue, ok := domain.IsUpstreamError(err); ok {
			s.count(ctx, "upstream_error")
			log.WithField("status", ue.StatusCode).WithError(err).Warn("[service] upstream rejected request")
			return "", ue
		}
		if errors.Is(err, domain.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			s.count(ctx, "timeout")
			log.Warn("[service] upstream request timed out")
			return "", domain.ErrTimeout
		}
		s.count(ctx, "internal_error")
		log.WithError(err).Error("[service] upstream request failed")
		return "", fmt.Errorf("complete: %w", err)
	}

	s.count(ctx, "success")
	log.Debug("[service] upstream request served")
	if text == "" {
		return FallbackRecommendation, nil
	}
	return text, nil
}

func (s *Service) count(ctx context.Context, outcome string) {
	s.metrics.Inc(ctx, upstreamRequestsTotal, map[string]string{"outcome": outcome})
}

type EvaluateInput struct {
	Description string        `json:"description"`
	Occasion    string        `json:"occasion"`
	Gender      domain.Gender `json:"gender,omitempty"`
}

// Evaluate scores an outfit description and extracts the structured feedback.
func (s *Service) Evaluate(ctx context.Context, in EvaluateInput) (*domain.EvaluationResult, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.NewValidationError("Please describe your outfit")
	}
	occasion := in.Occasion
	if occasion == "" {
		occasion = domain.EvaluationOccasions[0]
	}

	text, err := s.complete(ctx, prompt.Evaluate(in.Gender.Audience(), occasion, in.Description))
	if err != nil {
		return nil, err
	}
	result := extract.Evaluation(text)
	return &result, nil
}

// AnalyzeWardrobe summarizes a set of wardrobe items.
func (s *Service) AnalyzeWardrobe(ctx context.Context, gender domain.Gender, items []domain.WardrobeItem) (*domain.WardrobeAnalysis, error) {
	if len(items) == 0 {
		return nil, domain.NewValidationError("Add items to your wardrobe first")
	}

	text, err := s.complete(ctx, prompt.WardrobeAnalysis(gender.Audience(), items))
	if err != nil {
		return nil, err
	}
	analysis := extract.WardrobeAnalysis(text)
	return &analysis, nil
}

type GenerateInput struct {
	Occasion       string        `json:"occasion"`
	CustomOccasion string        `json:"customOccasion,omitempty"`
	Style          string        `json:"style"`
	Color          string        `json:"color"`
	Gender         domain.Gender `json:"gender,omitempty"`
	Preferences    []string      `json:"preferences,omitempty"`
}

// GenerateOutfit builds one complete outfit. A custom occasion wins over the
// picked one.
func (s *Service) GenerateOutfit(ctx context.Context, in GenerateInput) (string, error) {
	occasion := strings.TrimSpace(in.CustomOccasion)
	if occasion == "" {
		occasion = strings.TrimSpace(in.Occasion)
	}
	if occasion == "" {
		return "", domain.NewValidationError("Please choose an occasion")
	}
	style := in.Style
	if style == "" {
		style = "Casual"
	}
	color := in.Color
	if color == "" {
		color = "Neutral"
	}

	return s.complete(ctx, prompt.GenerateOutfit(in.Gender.Audience(), prompt.OutfitSpec{
		Occasion:    occasion,
		Style:       style,
		Color:       color,
		Preferences: in.Preferences,
	}))
}

type IdeasInput struct {
	Occasion string `json:"occasion"`
	Season   string `json:"season,omitempty"`
	Style    string `json:"style,omitempty"`
}

func (s *Service) OutfitIdeas(ctx context.Context, in IdeasInput) (string, error) {
	if strings.TrimSpace(in.Occasion) == "" {
		return "", domain.NewValidationError("Please choose an occasion")
	}
	return s.complete(ctx, prompt.OutfitIdeas(in.Occasion, in.Season, in.Style))
}

func (s *Service) CulturalOutfit(ctx context.Context, regionID string, gender domain.Gender) (string, error) {
	region, ok := domain.FindRegion(regionID)
	if !ok {
		return "", domain.NewValidationError("Unknown region " + regionID)
	}
	return s.complete(ctx, prompt.Cultural(gender.Audience(), region))
}

// QuizResult resolves the dominant style of a finished quiz. Advice is left
// empty when the upstream call fails; the profile is still returned.
func (s *Service) QuizResult(ctx context.Context, answers []string) (*domain.QuizResult, error) {
	style, ok := domain.DominantStyle(answers)
	if !ok {
		return nil, domain.NewValidationError("Please answer the quiz questions")
	}

	result := &domain.QuizResult{
		Style:            style,
		StyleDescription: domain.StyleDescriptions[style],
	}

	advice, err := s.complete(ctx, prompt.QuizAdvice(style))
	if err != nil {
		logrus.WithField("style", style).WithError(err).Warn("[service] quiz advice unavailable")
		return result, nil
	}
	result.Advice = advice
	return result, nil
}
