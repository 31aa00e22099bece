package main

import (
	"context"
	"fmt"
	"log"
	"myTimberMarket/app/echo-server/router"
	"myTimberMarket/business/product"
	"myTimberMarket/business/recommendation"
	"myTimberMarket/internal/middleware"
	psqlRepo "myTimberMarket/internal/repository/postgres"
	redisRepo "myTimberMarket/internal/repository/redis"
	"myTimberMarket/internal/rest"
	"myTimberMarket/pkg/config"
	"myTimberMarket/pkg/database"
	redisClient "myTimberMarket/pkg/database/redis"
	"myTimberMarket/pkg/logger"
	"myTimberMarket/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment, cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()
	logger.Info("Starting MyTimberMarket", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.ClosePostgres(db)

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init validate
	validate := validator.New()

	// Init repo
	productRepo := psqlRepo.NewProductRepository(db)

	// Redis is optional; without it recommendations are computed on every request
	var (
		resultCache recommendation.ResultCache
		invalidator product.CacheInvalidator
	)
	if cfg.Redis.Enabled() {
		rdb, err := redisClient.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		defer redisClient.CloseRedisClient(rdb)

		cache := redisRepo.NewRecommendationCache(rdb)
		resultCache = cache
		invalidator = cache
		logger.Info("Redis connected successfully")
	}

	// Init service
	productService := product.NewProductService(productRepo, invalidator)
	recommendationService := recommendation.NewService(productRepo, resultCache, recommendation.Config{
		DefaultK: cfg.Recommendation.DefaultK,
		MaxK:     cfg.Recommendation.MaxK,
		CacheTTL: cfg.Recommendation.CacheTTL,
	})

	// Init handler
	productHandler := rest.NewProductHandler(productService, validate)
	recommendationHandler := rest.NewRecommendationHandler(recommendationService, validate)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.BodyLimit(cfg.Server.BodyLimit))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.HeaderRequestID},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	router.SetupOpsRoutes(e)
	api := e.Group("/api/v1")
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupRecommendationRoutes(api, recommendationHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
