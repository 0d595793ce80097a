package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"ejama-backend/application/services"
	"ejama-backend/infrastructure/identity"
	"ejama-backend/pkg/common"
)

// AccountHandler handles signup and profile endpoints.
type AccountHandler struct {
	service *services.AccountService
	logger  *zap.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(service *services.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{service: service, logger: logger}
}

// SignupRequest is the body for POST /signup.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=120"`
}

// Signup handles POST /signup. Public: runs before any token exists.
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := common.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.service.Signup(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.logger.Warn("signup failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{"user": user})
}

// PictureRequest is the body for POST /profile/picture. The picture is a
// base64 data URL the client renders directly.
type PictureRequest struct {
	Picture string `json:"picture" validate:"required"`
}

// UploadPicture handles POST /profile/picture.
func (h *AccountHandler) UploadPicture(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	// Profile pictures are larger than other bodies; allow up to 5 MiB.
	var req PictureRequest
	if err := common.DecodeJSON(r, &req, 5<<20); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	url, err := h.service.SavePicture(r.Context(), user.ID, req.Picture)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"url": url})
}
