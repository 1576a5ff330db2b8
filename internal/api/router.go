package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/newsdesk/news-api/internal/api/handler"
	"github.com/newsdesk/news-api/internal/api/middleware"
	"github.com/newsdesk/news-api/internal/core/ports"
	"github.com/newsdesk/news-api/internal/core/service"
	mongodb "github.com/newsdesk/news-api/internal/infrastructure/db/mongo"
	redisdb "github.com/newsdesk/news-api/internal/infrastructure/db/redis"
	"github.com/newsdesk/news-api/internal/pkg/config"
	"github.com/newsdesk/news-api/internal/pkg/password"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("newsapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	newsRepo := mongodb.NewNewsRepository(db)
	availability := redisdb.NewAvailabilityCache(rdb)

	users := service.NewUserService(userRepo, hasherFor(cfg.Auth), availability, log)
	news := service.NewNewsService(newsRepo, log)
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authHandler := handler.NewAuthHandler(users, tokens, log)
	userHandler := handler.NewUserHandler(users, log)
	newsHandler := handler.NewNewsHandler(news, log)
	healthHandler := handler.NewHealthHandler(db, rdb)
	authRequired := middleware.Auth(tokens)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/validate-token", authHandler.ValidateToken)
	authGroup.GET("/profile", authHandler.GetProfile, authRequired)
	authGroup.PUT("/profile", authHandler.UpdateProfile, authRequired)
	authGroup.POST("/refresh", authHandler.Refresh, authRequired)

	// --- User routes ---
	userGroup := e.Group("/api/user")
	userGroup.GET("", userHandler.GetAll)
	userGroup.GET("/search", userHandler.Search)
	userGroup.GET("/username/:username", userHandler.GetByUsername)
	userGroup.GET("/role/:role", userHandler.GetByRole)
	userGroup.GET("/check-username/:username", userHandler.CheckUsername)
	userGroup.GET("/check-email/:email", userHandler.CheckEmail)
	userGroup.POST("/register", userHandler.Register)
	userGroup.POST("/login", userHandler.Login)
	userGroup.GET("/:id", userHandler.GetByID)
	userGroup.PUT("/:id", userHandler.Update)
	userGroup.DELETE("/:id", userHandler.Delete)

	// --- News routes (every one requires a valid token) ---
	newsGroup := e.Group("/api/news", authRequired)
	newsGroup.GET("", newsHandler.GetAll)
	newsGroup.GET("/published", newsHandler.GetPublished)
	newsGroup.GET("/search", newsHandler.Search)
	newsGroup.GET("/category/:category", newsHandler.GetByCategory)
	newsGroup.POST("", newsHandler.Create)
	newsGroup.GET("/:id", newsHandler.GetByID)
	newsGroup.PUT("/:id", newsHandler.Update)
	newsGroup.DELETE("/:id", newsHandler.Delete)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// hasherFor picks the password scheme configured for new credentials.
func hasherFor(cfg config.AuthConfig) ports.PasswordHasher {
	if cfg.PasswordScheme == password.SchemeBcrypt {
		return password.NewBcrypt()
	}
	return password.NewDigest(cfg.PasswordSalt)
}
