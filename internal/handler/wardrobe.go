package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
)

// GET /api/wardrobe?category=
func (h *Handler) ListWardrobe(w http.ResponseWriter, r *http.Request) {
	ns, ok := h.namespace(w, r)
	if !ok {
		return
	}

	var (
		items []domain.WardrobeItem
		err   error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		items, err = ns.Wardrobe().ByCategory(r.Context(), category)
	} else {
		items, err = ns.Wardrobe().List(r.Context())
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, WardrobeResponse{Items: items})
}

// POST /api/wardrobe
func (h *Handler) AddWardrobeItem(w http.ResponseWriter, r *http.Request) {
	ns, ok := h.namespace(w, r)
	if !ok {
		return
	}
	var item domain.WardrobeItem
	if !decodeJSON(w, r, &item) {
		return
	}

	added, err := ns.Wardrobe().Add(r.Context(), item)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

// DELETE /api/wardrobe/{itemID}
func (h *Handler) RemoveWardrobeItem(w http.ResponseWriter, r *http.Request) {
	ns, ok := h.namespace(w, r)
	if !ok {
		return
	}
	if err := ns.Wardrobe().Remove(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/wardrobe/analysis
func (h *Handler) AnalyzeWardrobe(w http.ResponseWriter, r *http.Request) {
	ns, ok := h.namespace(w, r)
	if !ok {
		return
	}
	items, err := ns.Wardrobe().List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	analysis, err := h.service.AnalyzeWardrobe(r.Context(), h.session(r).Gender(), items)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}
