package handler

import (
	"net/http"

	"github.com/actuallystonmai/stylesense-service/internal/store"
)

func (h *Handler) loadSession(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	ns, ok := h.namespace(w, r)
	if !ok {
		return nil, false
	}
	sess, err := store.LoadSession(r.Context(), ns)
	if err != nil {
		writeServiceError(w, r, err)
		return nil, false
	}
	return sess, true
}

// POST /api/auth/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	var in store.SignupInput
	if !decodeJSON(w, r, &in) {
		return
	}

	user, err := sess.Signup(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, UserResponse{User: user})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := sess.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, UserResponse{User: user})
}

// POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	if err := sess.Logout(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/auth/me returns {"user": null} when nobody is signed in.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, UserResponse{User: sess.User()})
}
