package handlers

// AppHandlers holds every HTTP handler group.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	OAuthHandler     *OAuthHandler
	UserHandler      *UserHandler
	WatchlistHandler *WatchlistHandler
	PortfolioHandler *PortfolioHandler
	AlertHandler     *AlertHandler
}
