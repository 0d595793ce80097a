package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"ejama-backend/infrastructure/external/questions"
	"ejama-backend/pkg/common"
)

// QuestionsHandler fronts the relational questions sink. This collection is
// separate from the expert Q&A flow: entries land in the external questions
// table for the review tooling.
type QuestionsHandler struct {
	sink   questions.Sink
	logger *zap.Logger
}

// NewQuestionsHandler creates a QuestionsHandler.
func NewQuestionsHandler(sink questions.Sink, logger *zap.Logger) *QuestionsHandler {
	return &QuestionsHandler{sink: sink, logger: logger}
}

// AnonymousQuestionRequest is the body for POST /anonymous-questions.
type AnonymousQuestionRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
	Category string `json:"category" validate:"max=120"`
}

// Submit handles POST /anonymous-questions.
func (h *QuestionsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req AnonymousQuestionRequest
	if err := common.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.sink.Insert(r.Context(), req.Question, req.Category); err != nil {
		h.logger.Error("question sink insert failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{"success": true})
}

// List handles GET /anonymous-questions.
func (h *QuestionsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.sink.List(r.Context())
	if err != nil {
		h.logger.Error("question sink list failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"questions": items})
}
