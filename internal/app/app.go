package app

import (
	"fmt"

	"stockpulse_backend/internal/auth"
	"stockpulse_backend/internal/config"
	"stockpulse_backend/internal/email"
	"stockpulse_backend/internal/handlers"
	"stockpulse_backend/internal/logger"
	"stockpulse_backend/internal/middleware"
	"stockpulse_backend/internal/models"
	"stockpulse_backend/internal/oauth"
	"stockpulse_backend/internal/repositories"
	"stockpulse_backend/internal/routes"
	"stockpulse_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the server: config, logger, database, dependency wiring,
// router. Every dependency is constructed here and passed down
// explicitly; nothing initializes lazily behind a package global.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	defer sqlDB.Close()
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Watchlist{},
		&models.WatchlistItem{},
		&models.Holding{},
		&models.PriceAlert{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	emailProvider := buildEmailProvider(cfg)
	defer emailProvider.Close()

	ginRouter := SetupRouter(cfg, gormDB, emailProvider)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers and middleware into
// a gin engine. Tests call it directly with their own database and email
// provider.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, emailProvider email.Provider) *gin.Engine {
	issuer := auth.NewTokenIssuer(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.AccessTokenTTL(),
		cfg.RefreshTokenTTL(),
	)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	googleClient := oauth.NewGoogleClient(
		cfg.Google.ClientID,
		cfg.Google.ClientSecret,
		cfg.Google.RedirectURL,
	)

	userRepo := repositories.NewUserRepository(gormDB)
	watchlistRepo := repositories.NewWatchlistRepository(gormDB)
	portfolioRepo := repositories.NewPortfolioRepository(gormDB)
	alertRepo := repositories.NewAlertRepository(gormDB)

	serviceContainer := &services.ServiceContainer{
		AuthService: services.NewAuthService(userRepo, issuer, hasher, emailProvider, services.AuthConfig{
			ResetTokenTTL:  cfg.ResetTokenTTL(),
			VerifyTokenTTL: cfg.VerifyTokenTTL(),
			FrontendURL:    cfg.App.FrontendURL,
		}),
		WatchlistService: services.NewWatchlistService(watchlistRepo),
		PortfolioService: services.NewPortfolioService(portfolioRepo),
		AlertService:     services.NewAlertService(alertRepo),
		EmailService:     emailProvider,
	}

	base := handlers.NewBaseHandler()
	appHandlers := &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(base, serviceContainer.AuthService, issuer, userRepo),
		OAuthHandler:     handlers.NewOAuthHandler(base, serviceContainer.AuthService, googleClient, cfg.App.FrontendURL),
		UserHandler:      handlers.NewUserHandler(base, userRepo, issuer),
		WatchlistHandler: handlers.NewWatchlistHandler(base, serviceContainer.WatchlistService, issuer, userRepo),
		PortfolioHandler: handlers.NewPortfolioHandler(base, serviceContainer.PortfolioService, issuer, userRepo),
		AlertHandler:     handlers.NewAlertHandler(base, serviceContainer.AlertService, issuer, userRepo),
	}

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestID())
	ginRouter.Use(middleware.Logging())

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP not configured, outbound mail will only be logged")
		return &LoggingEmailProvider{}
	}
	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		VerifyTTL: fmt.Sprintf("%d hours", cfg.Auth.VerifyTokenTTLHours),
		ResetTTL:  fmt.Sprintf("%d minutes", cfg.Auth.ResetTokenTTLMins),
	}, email.NewTemplateManager())
}
