package handlers

import (
	"net/http"

	"stockpulse_backend/internal/auth"
	"stockpulse_backend/internal/middleware"
	"stockpulse_backend/internal/repositories"
	"stockpulse_backend/internal/services"
	"stockpulse_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
	issuer           *auth.TokenIssuer
	userRepo         repositories.UserRepository
}

func NewPortfolioHandler(
	base *BaseHandler,
	portfolioService services.PortfolioService,
	issuer *auth.TokenIssuer,
	userRepo repositories.UserRepository,
) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
		issuer:           issuer,
		userRepo:         userRepo,
	}
}

func (h *PortfolioHandler) RegisterRoutes(rg *gin.RouterGroup) {
	portfolio := rg.Group("/portfolio")
	portfolio.Use(middleware.RequireAuth(h.issuer, h.userRepo))
	portfolio.Use(middleware.RequireVerified())
	{
		portfolio.GET("", h.Summary)
		portfolio.PUT("/holdings", h.UpsertHolding)
		portfolio.DELETE("/holdings/:id", h.DeleteHolding)
	}
}

func (h *PortfolioHandler) Summary(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	summary, err := h.portfolioService.Summary(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *PortfolioHandler) UpsertHolding(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpsertHoldingRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.portfolioService.UpsertHolding(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PortfolioHandler) DeleteHolding(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	if err := h.portfolioService.DeleteHolding(user.ID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Holding deleted"})
}
