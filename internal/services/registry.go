package services

import "stockpulse_backend/internal/email"

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService      AuthService
	WatchlistService WatchlistService
	PortfolioService PortfolioService
	AlertService     AlertService
	EmailService     email.Provider
}
