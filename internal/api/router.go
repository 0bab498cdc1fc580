package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alumnihub/job-referral-api/internal/api/handler"
	"github.com/alumnihub/job-referral-api/internal/api/middleware"
	"github.com/alumnihub/job-referral-api/internal/core/domain"
	"github.com/alumnihub/job-referral-api/internal/core/ports"
	"github.com/alumnihub/job-referral-api/internal/core/service"
	"github.com/alumnihub/job-referral-api/internal/infrastructure/config"
	mongodb "github.com/alumnihub/job-referral-api/internal/infrastructure/db/mongo"
	redisdb "github.com/alumnihub/job-referral-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every protected route declares its role allow-list explicitly; routes that
// accept any authenticated user say so with domain.AnyRole.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, classifier ports.Classifier) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobrefer"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	predictionRepo := mongodb.NewPredictionRepository(db)
	predictionCache := redisdb.NewPredictionCache(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, userRepo)
	authService := service.NewAuthService(userRepo, tokenService)
	postService := service.NewPostService(postRepo, log)
	predictionService := service.NewPredictionService(predictionRepo, classifier, predictionCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userRepo)
	postHandler := handler.NewPostHandler(postService)
	predictionHandler := handler.NewPredictionHandler(predictionService)

	authenticated := middleware.Auth(tokenService, log)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Alumni Job Refer App - AI Assisted API"})
	})
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	e.GET("/me", userHandler.Me, authenticated, middleware.RequireRoles(domain.AnyRole...))

	e.POST("/posts", postHandler.Create, authenticated, middleware.RequireRoles(domain.RoleAdmin, domain.RoleAlumni))
	e.GET("/posts", postHandler.List, authenticated, middleware.RequireRoles(domain.AnyRole...))
	e.DELETE("/posts/:id", postHandler.Delete, authenticated, middleware.RequireRoles(domain.RoleAdmin))

	e.POST("/predict", predictionHandler.Predict, authenticated, middleware.RequireRoles(domain.AnyRole...))
	e.GET("/predictions", predictionHandler.ListMine, authenticated, middleware.RequireRoles(domain.AnyRole...))

	admin := e.Group("/admin", authenticated, middleware.RequireRoles(domain.RoleAdmin))
	admin.GET("/users", userHandler.List)
	admin.DELETE("/users/:id", userHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
