package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
)

// GET /api/saved?collection=
func (h *Handler) ListSaved(w http.ResponseWriter, r *http.Request) {
	ns, ok := h.namespace(w, r)
	if !ok {
		return
	}
	collection := r.URL.Query().Get("collection")
	if collection == "" {
		collection = domain.AllOutfits
	}

	outfits, err := ns.SavedOutfits().Collection(r.Context(), collection)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SavedOutfitsResponse{Collection: collection, Outfits: outfits})
}

// POST /api/saved
func (h *Handler) SaveOutfit(w http.ResponseWriter, r *http.Request) {
	ns, ok := h.namespace(w, r)
	if !ok {
		return
	}
	var outfit domain.SavedOutfit
	if !decodeJSON(w, r, &outfit) {
		return
	}

	added, err := ns.SavedOutfits().Add(r.Context(), outfit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

// DELETE /api/saved/{outfitID}
func (h *Handler) RemoveSaved(w http.ResponseWriter, r *http.Request) {
	ns, ok := h.namespace(w, r)
	if !ok {
		return
	}
	if err := ns.SavedOutfits().Remove(r.Context(), chi.URLParam(r, "outfitID")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/saved/analysis?gender=
func (h *Handler) StyleProfile(w http.ResponseWriter, r *http.Request) {
	g := h.gender(r, domain.Gender(r.URL.Query().Get("gender")))
	writeJSON(w, http.StatusOK, domain.StyleProfileFor(g))
}

// DELETE /api/storage
func (h *Handler) ResetStorage(w http.ResponseWriter, r *http.Request) {
	ns, ok := h.namespace(w, r)
	if !ok {
		return
	}
	if err := ns.Reset(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
