package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"ejama-backend/application/services"
	"ejama-backend/domain/entities"
	"ejama-backend/pkg/common"
)

// FeedbackHandler handles the public feedback endpoint.
type FeedbackHandler struct {
	service *services.FeedbackService
	logger  *zap.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(service *services.FeedbackService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{service: service, logger: logger}
}

// FeedbackRequest is the body for POST /feedback.
type FeedbackRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Topic   string `json:"topic" validate:"required,max=120"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Submit handles POST /feedback. Public: the contact form works without an
// account.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := common.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id, err := h.service.Submit(r.Context(), entities.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Topic:   req.Topic,
		Message: req.Message,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      id,
		"message": "Feedback submitted successfully",
	})
}
