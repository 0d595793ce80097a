// Package handlers contains the HTTP handlers. Each handler decodes and
// validates the request, pulls the user from the context, and delegates to
// its service; responses always use the shared envelope.
package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"ejama-backend/application/services"
	"ejama-backend/infrastructure/identity"
	"ejama-backend/pkg/common"
)

const maxBodyBytes = 1 << 20

var validate = validator.New()

// CommunityHandler handles the community endpoints.
type CommunityHandler struct {
	service *services.CommunityService
	logger  *zap.Logger
}

// NewCommunityHandler creates a CommunityHandler.
func NewCommunityHandler(service *services.CommunityService, logger *zap.Logger) *CommunityHandler {
	return &CommunityHandler{service: service, logger: logger}
}

// GetData handles GET /community/data.
func (h *CommunityHandler) GetData(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	data, err := h.service.LoadData(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("community load failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, data)
}

// CreateCommunityRequest is the body for POST /community/create.
type CreateCommunityRequest struct {
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description" validate:"max=500"`
	Icon        string `json:"icon" validate:"max=16"`
}

// Create handles POST /community/create.
func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req CreateCommunityRequest
	if err := common.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	category, err := h.service.Create(r.Context(), user.ID, req.Title, req.Description, req.Icon)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{"category": category})
}

// JoinRequest is the body for POST /community/join. Join toggles both ways:
// join=false leaves.
type JoinRequest struct {
	CategoryID string `json:"categoryId" validate:"required"`
	Join       bool   `json:"join"`
}

// Join handles POST /community/join.
func (h *CommunityHandler) Join(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req JoinRequest
	if err := common.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	joined, err := h.service.SetMembership(r.Context(), user.ID, req.CategoryID, req.Join)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"joinedCategories": joined})
}
