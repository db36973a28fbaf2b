package handlers

import (
	"net/http"

	"stockpulse_backend/internal/appErrors"
	"stockpulse_backend/internal/auth"
	"stockpulse_backend/internal/middleware"
	"stockpulse_backend/internal/repositories"
	"stockpulse_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userRepo repositories.UserRepository
	issuer   *auth.TokenIssuer
}

func NewUserHandler(base *BaseHandler, userRepo repositories.UserRepository, issuer *auth.TokenIssuer) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userRepo:    userRepo,
		issuer:      issuer,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.RequireAuth(h.issuer, h.userRepo))
	{
		users.GET("/me", h.GetMe)
	}
}

// GetMe returns the authenticated user's profile.
func (h *UserHandler) GetMe(c *gin.Context) {
	current, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	user, err := h.userRepo.FindByID(current.ID)
	if err != nil {
		h.HandleServiceError(c, appErrors.AuthInternalError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": services.BuildUserResponse(user)})
}
