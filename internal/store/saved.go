package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
	"github.com/actuallystonmai/stylesense-service/seeds"
)

type SavedOutfits struct {
	ns *Namespace
}

func (n *Namespace) SavedOutfits() *SavedOutfits {
	return &SavedOutfits{ns: n}
}

// List returns the demo outfits until the client saves or removes one.
func (s *SavedOutfits) List(ctx context.Context) ([]domain.SavedOutfit, error) {
	var outfits []domain.SavedOutfit
	found, err := s.ns.getJSON(ctx, keySaved, &outfits)
	if err != nil {
		return nil, fmt.Errorf("load saved outfits: %w", err)
	}
	if !found {
		return seeds.DemoOutfits(), nil
	}
	if outfits == nil {
		outfits = []domain.SavedOutfit{}
	}
	return outfits, nil
}

// Collection filters by occasion; empty or "All Outfits" returns everything.
func (s *SavedOutfits) Collection(ctx context.Context, collection string) ([]domain.SavedOutfit, error) {
	outfits, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if collection == "" || collection == domain.AllOutfits {
		return outfits, nil
	}
	out := make([]domain.SavedOutfit, 0, len(outfits))
	for _, o := range outfits {
		if o.Occasion == collection {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *SavedOutfits) Add(ctx context.Context, o domain.SavedOutfit) (domain.SavedOutfit, error) {
	o.Title = strings.TrimSpace(o.Title)
	o.Description = strings.TrimSpace(o.Description)
	if o.Title == "" || o.Description == "" {
		return domain.SavedOutfit{}, domain.NewValidationError("Outfit title and description are required")
	}

	outfits, err := s.List(ctx)
	if err != nil {
		return domain.SavedOutfit{}, err
	}
	o.ID = uuid.NewString()
	o.SavedAt = time.Now().UTC().Format(time.RFC3339)
	outfits = append(outfits, o)
	if err := s.ns.putJSON(ctx, keySaved, outfits); err != nil {
		return domain.SavedOutfit{}, fmt.Errorf("save outfits: %w", err)
	}
	return o, nil
}

func (s *SavedOutfits) Remove(ctx context.Context, id string) error {
	outfits, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.SavedOutfit, 0, len(outfits))
	for _, o := range outfits {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(outfits) {
		return domain.ErrNotFound
	}
	if err := s.ns.putJSON(ctx, keySaved, kept); err != nil {
		return fmt.Errorf("save outfits: %w", err)
	}
	return nil
}

func (n *Namespace) SaveQuizResult(ctx context.Context, r domain.QuizResult) error {
	return n.putJSON(ctx, keyQuiz, r)
}

// LastQuizResult returns nil when no quiz has been completed.
func (n *Namespace) LastQuizResult(ctx context.Context) (*domain.QuizResult, error) {
	var r domain.QuizResult
	found, err := n.getJSON(ctx, keyQuiz, &r)
	if err != nil || !found {
		return nil, err
	}
	return &r, nil
}
