package appErrors

import (
	"stockpulse_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire format for every error: a human-readable
// message plus the stable code clients match on.
type ErrorResponse struct {
	Error string    `json:"error"`
	Code  ErrorCode `json:"code"`
}

// HandleError writes an error response to the gin context. Unknown errors
// are wrapped as internal and, outside debug mode, masked with a generic
// message so store errors and stack details never leak to clients.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.Handle(c, err)
}

// GinErrorHandler maps errors onto HTTP responses.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) Handle(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", err,
			"path", c.Request.URL.Path,
			"code", string(appErr.Code),
		)
	}

	message := appErr.Message
	if appErr.HTTPCode >= 500 && !h.Debug {
		message = "Internal server error"
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Error: message,
		Code:  appErr.Code,
	})
}
