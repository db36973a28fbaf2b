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

type AlertHandler struct {
	*BaseHandler
	alertService services.AlertService
	issuer       *auth.TokenIssuer
	userRepo     repositories.UserRepository
}

func NewAlertHandler(
	base *BaseHandler,
	alertService services.AlertService,
	issuer *auth.TokenIssuer,
	userRepo repositories.UserRepository,
) *AlertHandler {
	return &AlertHandler{
		BaseHandler:  base,
		alertService: alertService,
		issuer:       issuer,
		userRepo:     userRepo,
	}
}

// RegisterRoutes mounts the price-alert endpoints. Alerts are a premium
// feature.
func (h *AlertHandler) RegisterRoutes(rg *gin.RouterGroup) {
	alerts := rg.Group("/alerts")
	alerts.Use(middleware.RequireAuth(h.issuer, h.userRepo))
	alerts.Use(middleware.RequirePremium())
	{
		alerts.POST("", h.Create)
		alerts.GET("", h.List)
		alerts.PATCH("/:id", h.Update)
		alerts.DELETE("/:id", h.Delete)
	}
}

func (h *AlertHandler) Create(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateAlertRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.alertService.Create(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AlertHandler) List(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	resp, err := h.alertService.List(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": resp})
}

func (h *AlertHandler) Update(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateAlertRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.alertService.Update(user.ID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AlertHandler) Delete(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	if err := h.alertService.Delete(user.ID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert deleted"})
}
