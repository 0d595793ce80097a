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

// LibraryHandler handles per-domain bookmarks and progress. The content
// domain comes from the URL, so education and health tips share one handler.
type LibraryHandler struct {
	service *services.LibraryService
	logger  *zap.Logger
}

// NewLibraryHandler creates a LibraryHandler.
func NewLibraryHandler(service *services.LibraryService, logger *zap.Logger) *LibraryHandler {
	return &LibraryHandler{service: service, logger: logger}
}

// UserData handles GET /library/{domain}/user-data.
func (h *LibraryHandler) UserData(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	domain := entities.ContentDomain(chi.URLParam(r, "domain"))
	data, err := h.service.LoadUserData(r.Context(), domain, user.ID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, data)
}

// BookmarkRequest is the body for POST /library/{domain}/bookmark.
type BookmarkRequest struct {
	ArticleID  string `json:"articleId" validate:"required"`
	Bookmarked bool   `json:"bookmarked"`
}

// Bookmark handles POST /library/{domain}/bookmark.
func (h *LibraryHandler) Bookmark(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req BookmarkRequest
	if err := common.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	domain := entities.ContentDomain(chi.URLParam(r, "domain"))
	if err := h.service.SetBookmark(r.Context(), domain, user.ID, req.ArticleID, req.Bookmarked); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ProgressRequest is the body for POST /library/{domain}/progress.
type ProgressRequest struct {
	ArticleID string  `json:"articleId" validate:"required"`
	Progress  float64 `json:"progress"`
}

// Progress handles POST /library/{domain}/progress.
func (h *LibraryHandler) Progress(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req ProgressRequest
	if err := common.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	domain := entities.ContentDomain(chi.URLParam(r, "domain"))
	if err := h.service.SaveProgress(r.Context(), domain, user.ID, req.ArticleID, req.Progress); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
