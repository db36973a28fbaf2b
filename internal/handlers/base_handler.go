package handlers

import (
	"stockpulse_backend/internal/appErrors"
	"stockpulse_backend/internal/logger"
	"stockpulse_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates the request body. On failure it writes a
// VALIDATION_ERROR response and returns false.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "failed to bind request body",
			"error", err.Error(),
			"path", c.Request.URL.Path,
		)
		appErrors.HandleError(c, appErrors.ValidationError("Invalid request body: "+err.Error()))
		return false
	}
	return true
}

// HandleServiceError maps a service error onto the HTTP response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	appErrors.HandleError(c, err)
}

// MustCurrentUser returns the authenticated identity or rejects the
// request. Routes using it must sit behind RequireAuth.
func (h *BaseHandler) MustCurrentUser(c *gin.Context) (*middleware.CurrentUser, bool) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		appErrors.HandleError(c, appErrors.ErrAuthRequired)
		return nil, false
	}
	return user, true
}
