package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ejama-backend/application/services"
	"ejama-backend/domain/entities"
	"ejama-backend/infrastructure/identity"
	"ejama-backend/pkg/common"
)

// QAHandler handles the expert question endpoints.
type QAHandler struct {
	service *services.QAService
	logger  *zap.Logger
}

// NewQAHandler creates a QAHandler.
func NewQAHandler(service *services.QAService, logger *zap.Logger) *QAHandler {
	return &QAHandler{service: service, logger: logger}
}

// List handles GET /qa/questions. Query params: status, category, search.
func (h *QAHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	status, ok := statusFilter(query.Get("status"))
	if !ok {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "status must be all, answered, or unanswered")
		return
	}

	questions, err := h.service.List(r.Context(), services.QuestionFilter{
		Status:   status,
		Category: query.Get("category"),
		Search:   query.Get("search"),
	})
	if err != nil {
		h.logger.Error("question list failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// statusFilter maps the listing filter vocabulary onto a question status.
// "all" or absence means no status filter; "unanswered" and "pending" are
// synonyms, as are the stored status values themselves.
func statusFilter(raw string) (entities.QuestionStatus, bool) {
	switch raw {
	case "", "all":
		return "", true
	case "unanswered", string(entities.QuestionPending):
		return entities.QuestionPending, true
	case string(entities.QuestionAnswered):
		return entities.QuestionAnswered, true
	default:
		return "", false
	}
}

// Mine handles GET /qa/my-questions.
func (h *QAHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	questions, err := h.service.ListMine(r.Context(), user.ID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// SubmitQuestionRequest is the body for POST /qa/submit.
type SubmitQuestionRequest struct {
	Question  string `json:"question" validate:"required"`
	Category  string `json:"category" validate:"max=120"`
	IsPrivate bool   `json:"isPrivate"`
}

// Submit handles POST /qa/submit.
func (h *QAHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req SubmitQuestionRequest
	if err := common.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	question, err := h.service.Submit(r.Context(), user.ID, req.Question, req.Category, req.IsPrivate)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{"question": question})
}

// AnswerRequest is the body for POST /qa/{questionID}/answer. Empty text
// clears the answer and returns the question to pending.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// Answer handles POST /qa/{questionID}/answer. Moderator only.
func (h *QAHandler) Answer(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req AnswerRequest
	if err := common.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	answeredBy := user.Name
	if answeredBy == "" {
		answeredBy = user.Email
	}

	question, err := h.service.SaveAnswer(r.Context(), chi.URLParam(r, "questionID"), answeredBy, req.Answer)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"question": question})
}

// StatusRequest is the body for POST /qa/{questionID}/status.
type StatusRequest struct {
	Answered bool `json:"answered"`
}

// Status handles POST /qa/{questionID}/status. Moderator only; flips the
// status without touching the stored answer text.
func (h *QAHandler) Status(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req StatusRequest
	if err := common.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	question, err := h.service.MarkAnswered(r.Context(), chi.URLParam(r, "questionID"), user.ID, req.Answered)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"question": question})
}
