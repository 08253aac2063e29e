package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sneakersdealer/ds-admin-backend/config"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/controller"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/repository"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/service"
	"github.com/sneakersdealer/ds-admin-backend/internal/db"
	"github.com/sneakersdealer/ds-admin-backend/internal/middleware"
	"github.com/sneakersdealer/ds-admin-backend/internal/router"
	"github.com/sneakersdealer/ds-admin-backend/internal/scheduler"
	"github.com/sneakersdealer/ds-admin-backend/internal/storage"
	"github.com/sneakersdealer/ds-admin-backend/pkg/logger"
	"github.com/sneakersdealer/ds-admin-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting DS-Admin Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis backs the logout blacklist; the server runs without it.
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, token revocation disabled", map[string]interface{}{
				"error": err.Error(),
			})
		}
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close redis connection", err)
			}
		}()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	storeRepo := repository.NewStoreRepository(db.GetDB())
	billboardRepo := repository.NewBillboardRepository(db.GetDB())
	brandRepo := repository.NewBrandRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	promocodeRepo := repository.NewPromocodeRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	storeService := service.NewStoreService(storeRepo)
	billboardService := service.NewBillboardService(billboardRepo, storeService)
	brandService := service.NewBrandService(brandRepo, storeService)
	productService := service.NewProductService(productRepo, storeService)
	promocodeService := service.NewPromocodeService(promocodeRepo, storeService)

	// Initialize storage
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService, cfg.JWT.Secret)
	storeController := controller.NewStoreController(storeService)
	billboardController := controller.NewBillboardController(billboardService)
	brandController := controller.NewBrandController(brandService)
	productController := controller.NewProductController(productService)
	promocodeController := controller.NewPromocodeController(promocodeService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Promocode expiry runs daily
	promocodeScheduler := scheduler.NewPromocodeScheduler(promocodeService)
	if err := promocodeScheduler.Start(); err != nil {
		logger.Fatal("Failed to start promocode scheduler", err)
	}
	defer promocodeScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		storeController,
		billboardController,
		brandController,
		productController,
		promocodeController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
