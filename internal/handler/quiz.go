package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
	"github.com/actuallystonmai/stylesense-service/internal/store"
)

// GET /api/quiz
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, QuizResponse{Questions: domain.QuizQuestions})
}

type quizAnswers struct {
	Answers []string `json:"answers"`
}

// POST /api/quiz/result
//
// The result is kept in the caller's namespace when a client id is sent.
// A failed save is logged; the result is still returned.
func (h *Handler) QuizResult(w http.ResponseWriter, r *http.Request) {
	var req quizAnswers
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.QuizResult(r.Context(), req.Answers)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if id := r.Header.Get(ClientIDHeader); store.ValidClientID(id) {
		if err := h.store.Client(id).SaveQuizResult(r.Context(), *result); err != nil {
			logrus.WithField("client_id", id).WithError(err).Warn("[handler] quiz result not saved")
		}
	}
	writeJSON(w, http.StatusOK, result)
}

// GET /api/quiz/result
func (h *Handler) LastQuizResult(w http.ResponseWriter, r *http.Request) {
	ns, ok := h.namespace(w, r)
	if !ok {
		return
	}
	result, err := ns.LastQuizResult(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "No quiz result yet")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
