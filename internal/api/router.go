package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/household-store/admin-api/internal/api/handler"
	"github.com/household-store/admin-api/internal/api/middleware"
	"github.com/household-store/admin-api/internal/core/domain"
	"github.com/household-store/admin-api/internal/core/service"
	"github.com/household-store/admin-api/internal/infrastructure/config"
	mongodb "github.com/household-store/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/household-store/admin-api/internal/infrastructure/db/redis"
	"github.com/household-store/admin-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("household"))

	// --- Dependencies ---
	userRepo := redisdb.NewUserCache(rdb, mongodb.NewUserRepository(db), cfg.UserCacheTTL)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log)
	hasher := service.NewBcryptHasher()
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, hasher, log)

	authHandler := handler.NewAuthHandler(authService, log)
	userHandler := handler.NewUserHandler(userService)

	v1 := e.Group("/api/v1")

	// --- Auth routes (public) ---
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/validate", authHandler.Validate)
	auth.POST("/refresh", authHandler.Refresh)

	// --- Admin user management (access token + management role required) ---
	admin := v1.Group("/admin/users",
		middleware.Auth(tokens),
		middleware.RBAC(domain.RoleAdmin, domain.RoleManager),
	)
	admin.GET("", userHandler.List)
	admin.POST("", userHandler.Create)
	admin.GET("/roles", userHandler.Roles)
	admin.PUT("/:id/role", userHandler.ChangeRole)
	admin.PUT("/:id/status", userHandler.SetStatus)
	admin.DELETE("/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
