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

type WatchlistHandler struct {
	*BaseHandler
	watchlistService services.WatchlistService
	issuer           *auth.TokenIssuer
	userRepo         repositories.UserRepository
}

func NewWatchlistHandler(
	base *BaseHandler,
	watchlistService services.WatchlistService,
	issuer *auth.TokenIssuer,
	userRepo repositories.UserRepository,
) *WatchlistHandler {
	return &WatchlistHandler{
		BaseHandler:      base,
		watchlistService: watchlistService,
		issuer:           issuer,
		userRepo:         userRepo,
	}
}

// RegisterRoutes mounts the watchlist endpoints. Watchlists require a
// verified account.
func (h *WatchlistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	lists := rg.Group("/watchlists")
	lists.Use(middleware.RequireAuth(h.issuer, h.userRepo))
	lists.Use(middleware.RequireVerified())
	{
		lists.POST("", h.Create)
		lists.GET("", h.List)
		lists.DELETE("/:id", h.Delete)
		lists.POST("/:id/symbols", h.AddSymbol)
		lists.DELETE("/:id/symbols/:symbol", h.RemoveSymbol)
	}
}

func (h *WatchlistHandler) Create(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateWatchlistRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.watchlistService.Create(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *WatchlistHandler) List(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	resp, err := h.watchlistService.List(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"watchlists": resp})
}

func (h *WatchlistHandler) Delete(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	if err := h.watchlistService.Delete(user.ID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Watchlist deleted"})
}

func (h *WatchlistHandler) AddSymbol(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	var req dto.AddSymbolRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.watchlistService.AddSymbol(user.ID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WatchlistHandler) RemoveSymbol(c *gin.Context) {
	user, ok := h.MustCurrentUser(c)
	if !ok {
		return
	}

	if err := h.watchlistService.RemoveSymbol(user.ID, c.Param("id"), c.Param("symbol")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Symbol removed"})
}
