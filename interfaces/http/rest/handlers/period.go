package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"ejama-backend/application/services"
	"ejama-backend/domain/entities"
	"ejama-backend/infrastructure/identity"
	"ejama-backend/pkg/common"
)

// PeriodHandler handles the cycle tracker endpoints.
type PeriodHandler struct {
	service *services.PeriodService
	logger  *zap.Logger
}

// NewPeriodHandler creates a PeriodHandler.
func NewPeriodHandler(service *services.PeriodService, logger *zap.Logger) *PeriodHandler {
	return &PeriodHandler{service: service, logger: logger}
}

// LogRequest is the body for POST /period/log. Dates are the client's
// calendar dates, stored as sent.
type LogRequest struct {
	StartDate string   `json:"startDate" validate:"required"`
	EndDate   string   `json:"endDate"`
	Flow      string   `json:"flow" validate:"omitempty,oneof=light medium heavy"`
	Symptoms  []string `json:"symptoms"`
	Notes     string   `json:"notes" validate:"max=2000"`
}

// Log handles POST /period/log.
func (h *PeriodHandler) Log(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req LogRequest
	if err := common.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	log := entities.PeriodLog{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Flow:      req.Flow,
		Symptoms:  req.Symptoms,
		Notes:     req.Notes,
	}
	if err := h.service.Log(r.Context(), user.ID, log); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// History handles GET /period/history.
func (h *PeriodHandler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	periods, err := h.service.History(r.Context(), user.ID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"periods": periods})
}
