package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/amconceito/storefront/internal/application/catalog"
	identityapp "github.com/amconceito/storefront/internal/application/identity"
	shippingapp "github.com/amconceito/storefront/internal/application/shipping"
	"github.com/amconceito/storefront/internal/infrastructure/auth"
	"github.com/amconceito/storefront/internal/infrastructure/config"
	"github.com/amconceito/storefront/internal/infrastructure/geo"
	"github.com/amconceito/storefront/internal/infrastructure/logger"
	"github.com/amconceito/storefront/internal/infrastructure/persistence"
	"github.com/amconceito/storefront/internal/infrastructure/storage"
	"github.com/amconceito/storefront/internal/interfaces/http/handler"
	"github.com/amconceito/storefront/internal/interfaces/http/middleware"
	"github.com/amconceito/storefront/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Object storage: the real S3 client needs credentials; without them
	// the in-memory stub keeps local development working.
	var store catalogapp.ObjectStorage
	if cfg.Storage.AccessKey != "" {
		s3store, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3store.EnsureBucket(ctx); err != nil {
			cancel()
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		cancel()
		store = s3store
		log.Info("Object storage ready", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		store = storage.NewStubObjectStorage()
		log.Warn("No storage credentials configured, product images are held in memory")
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	classificationRepo := persistence.NewGormClassificationRepository(db.DB)
	adminRepo := persistence.NewGormAdminRepository(db.DB)

	// Application services
	productService := catalogapp.NewProductService(productRepo, classificationRepo, store)
	stockService := catalogapp.NewStockService(productRepo)
	imageService := catalogapp.NewImageService(productRepo, store)
	classificationService := catalogapp.NewClassificationService(classificationRepo, productRepo)

	geocoder := geo.NewCEPGeocoder(&cfg.Geocoder, log)
	shippingService := shippingapp.NewService(geocoder, cfg.Shipping.PickupCEP)

	sessions := auth.NewSessionManager(&cfg.Session)
	authService := identityapp.NewAuthService(adminRepo, sessions, log)

	// Bootstrap the admin credential on first start
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			cancel()
			log.Fatal("Failed to bootstrap admin account", zap.Error(err))
		}
		cancel()
	}

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	router.Setup(engine, router.Handlers{
		Storefront:     handler.NewStorefrontHandler(productService),
		Shipping:       handler.NewShippingHandler(shippingService),
		Auth:           handler.NewAuthHandler(authService, &cfg.Session),
		System:         handler.NewSystemHandler(db),
		Product:        handler.NewAdminProductHandler(productService, imageService, classificationService, log),
		Stock:          handler.NewAdminStockHandler(stockService),
		Classification: handler.NewAdminClassificationHandler(classificationService),
	}, middleware.AdminGuard(sessions, cfg.Session.CookieName))

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
