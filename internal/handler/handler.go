package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
	"github.com/actuallystonmai/stylesense-service/internal/service"
	"github.com/actuallystonmai/stylesense-service/internal/store"
)

const (
	ClientIDHeader = "X-Client-ID"
	maxBodyBytes   = 1 << 20
)

type Handler struct {
	service *service.Service
	store   *store.Store
}

func NewHandler(svc *service.Service, st *store.Store) *Handler {
	return &Handler{service: svc, store: st}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// writeServiceError maps domain errors to status codes. Internal detail is
// logged, never returned.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, ve.Msg)
		return
	}
	if ue, ok := domain.IsUpstreamError(err); ok {
		status := ue.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		writeError(w, status, "Failed to get style recommendations")
		return
	}

	switch {
	case errors.Is(err, domain.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "Request timed out")
	case errors.Is(err, domain.ErrEmailTaken):
		writeError(w, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		logrus.WithField("request_id", middleware.GetReqID(r.Context())).
			WithError(err).Error("[handler] internal error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// namespace resolves the caller's storage namespace from the client id header.
func (h *Handler) namespace(w http.ResponseWriter, r *http.Request) (*store.Namespace, bool) {
	id := r.Header.Get(ClientIDHeader)
	if !store.ValidClientID(id) {
		writeError(w, http.StatusBadRequest, "Missing or invalid "+ClientIDHeader+" header")
		return nil, false
	}
	return h.store.Client(id), true
}

// session loads the caller's session when a client id is present. It returns
// nil when there is no client id or the session cannot be read.
func (h *Handler) session(r *http.Request) *store.Session {
	id := r.Header.Get(ClientIDHeader)
	if !store.ValidClientID(id) {
		return nil
	}
	sess, err := store.LoadSession(r.Context(), h.store.Client(id))
	if err != nil {
		logrus.WithField("client_id", id).WithError(err).Warn("[handler] session unavailable")
		return nil
	}
	return sess
}

// gender prefers the explicit value and falls back to the signed-in user.
func (h *Handler) gender(r *http.Request, explicit domain.Gender) domain.Gender {
	if explicit.Valid() {
		return explicit
	}
	return h.session(r).Gender()
}
