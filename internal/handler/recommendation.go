package handler

import (
	"net/http"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
	"github.com/actuallystonmai/stylesense-service/internal/service"
)

// POST /api/ai
func (h *Handler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	var req domain.RecommendationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	text, err := h.service.GetRecommendation(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, RecommendationResponse{Recommendation: text})
}

// POST /api/evaluate
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var in service.EvaluateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	in.Gender = h.gender(r, in.Gender)

	result, err := h.service.Evaluate(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// POST /api/outfits/generate
func (h *Handler) GenerateOutfit(w http.ResponseWriter, r *http.Request) {
	var in service.GenerateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	sess := h.session(r)
	if !in.Gender.Valid() {
		in.Gender = sess.Gender()
	}
	if len(in.Preferences) == 0 && sess != nil && sess.User() != nil {
		in.Preferences = sess.User().Preferences
	}

	text, err := h.service.GenerateOutfit(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, RecommendationResponse{Recommendation: text})
}

// POST /api/outfits/ideas
func (h *Handler) OutfitIdeas(w http.ResponseWriter, r *http.Request) {
	var in service.IdeasInput
	if !decodeJSON(w, r, &in) {
		return
	}

	text, err := h.service.OutfitIdeas(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, RecommendationResponse{Recommendation: text})
}

// GET /api/cultural/regions
func (h *Handler) ListRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RegionsResponse{Regions: domain.Regions})
}

type culturalRequest struct {
	Region string        `json:"region"`
	Gender domain.Gender `json:"gender,omitempty"`
}

// POST /api/cultural
func (h *Handler) CulturalOutfit(w http.ResponseWriter, r *http.Request) {
	var req culturalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	text, err := h.service.CulturalOutfit(r.Context(), req.Region, h.gender(r, req.Gender))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, RecommendationResponse{Recommendation: text})
}
