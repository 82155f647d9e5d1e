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

	catalogapp "github.com/pim/backend/internal/application/catalog"
	ratingapp "github.com/pim/backend/internal/application/rating"
	syncapp "github.com/pim/backend/internal/application/sync"
	"github.com/pim/backend/internal/infrastructure/config"
	"github.com/pim/backend/internal/infrastructure/event"
	"github.com/pim/backend/internal/infrastructure/logger"
	"github.com/pim/backend/internal/infrastructure/persistence"
	"github.com/pim/backend/internal/infrastructure/scheduler"
	"github.com/pim/backend/internal/infrastructure/woocommerce"
	"github.com/pim/backend/internal/interfaces/http/handler"
	"github.com/pim/backend/internal/interfaces/http/middleware"
	"github.com/pim/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting PIM Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	attributeRepo := persistence.NewGormAttributeRepository(db.DB)
	valueRepo := persistence.NewGormProductAttributeValueRepository(db.DB)
	imageRepo := persistence.NewGormProductImageRepository(db.DB)
	seoRepo := persistence.NewGormProductSEORepository(db.DB)
	criterionRepo := persistence.NewGormCriterionRepository(db.DB)
	detailRepo := persistence.NewGormDetailRepository(db.DB)
	jobRepo := persistence.NewGormSyncJobRepository(db.DB)

	// Initialize event bus with a logging handler for the audit trail
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewLoggingEventHandler(log))

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize application services. The rating service doubles as the
	// rescorer for catalog writes.
	ratingService := ratingapp.NewRatingService(
		productRepo,
		categoryRepo,
		valueRepo,
		imageRepo,
		seoRepo,
		criterionRepo,
		detailRepo,
	)
	productService := catalogapp.NewProductService(
		productRepo,
		categoryRepo,
		attributeRepo,
		valueRepo,
		imageRepo,
		seoRepo,
		eventBus,
		ratingService,
	)
	categoryService := catalogapp.NewCategoryService(categoryRepo, eventBus)
	attributeService := catalogapp.NewAttributeService(attributeRepo)

	// Initialize the WooCommerce client
	wcConfig := woocommerce.NewConfig(
		cfg.WooCommerce.BaseURL,
		cfg.WooCommerce.ConsumerKey,
		cfg.WooCommerce.ConsumerSecret,
	)
	wcConfig.TimeoutSeconds = int(cfg.WooCommerce.Timeout.Seconds())
	wcConfig.PageSize = cfg.WooCommerce.PageSize
	wcConfig.RateLimitRPS = cfg.WooCommerce.RateLimitRPS
	wcConfig.RateLimitBurst = cfg.WooCommerce.RateLimitBurst

	wcClient, err := woocommerce.NewClient(wcConfig)
	if err != nil {
		log.Fatal("Failed to create WooCommerce client", zap.Error(err))
	}

	txScope := persistence.NewGormTransactionScope(db.DB)
	syncService := syncapp.NewSyncService(
		wcClient,
		txScope,
		jobRepo,
		productRepo,
		categoryRepo,
		attributeRepo,
		valueRepo,
		imageRepo,
		seoRepo,
		log,
		cfg.WooCommerce.PageSize,
	)

	// Initialize the periodic full sync scheduler (if enabled)
	if cfg.Scheduler.Enabled {
		syncScheduler := scheduler.NewSyncScheduler(scheduler.SyncSchedulerConfig{
			Enabled:          cfg.Scheduler.Enabled,
			FullSyncSchedule: cfg.Scheduler.FullSyncSchedule,
		}, syncService, log)
		if err := syncScheduler.Start(context.Background()); err != nil {
			log.Fatal("Failed to start sync scheduler", zap.Error(err))
		}
		defer func() {
			if err := syncScheduler.Stop(context.Background()); err != nil {
				log.Error("Error stopping sync scheduler", zap.Error(err))
			}
		}()
		log.Info("Sync scheduler started",
			zap.String("schedule", cfg.Scheduler.FullSyncSchedule),
		)
	}

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	attributeHandler := handler.NewAttributeHandler(attributeService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	syncHandler := handler.NewSyncHandler(syncService)
	dashboardHandler := handler.NewDashboardHandler(productService, syncService)
	systemHandler := handler.NewSystemHandler(db.Ping)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
		defer rateLimiter.Stop()
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Float64("rps", cfg.HTTP.RateLimitRPS),
			zap.Int("burst", cfg.HTTP.RateLimitBurst),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(productHandler).
		Register(categoryHandler).
		Register(attributeHandler).
		Register(ratingHandler).
		Register(syncHandler).
		Register(dashboardHandler).
		Register(systemHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
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

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
