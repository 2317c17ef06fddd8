package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	advisoryapp "github.com/advisory/backend/internal/application/advisory"
	"github.com/advisory/backend/internal/domain/shared"
	"github.com/advisory/backend/internal/infrastructure/cache"
	"github.com/advisory/backend/internal/infrastructure/config"
	"github.com/advisory/backend/internal/infrastructure/logger"
	"github.com/advisory/backend/internal/infrastructure/persistence"
	"github.com/advisory/backend/internal/interfaces/http/handler"
	"github.com/advisory/backend/internal/interfaces/http/middleware"
	"github.com/advisory/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
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

	log.Info("Starting advisory backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	)

	// Connect to the database
	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	// Repositories
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	ownerRepo := persistence.NewGormProductOwnerRepository(db.DB)
	groupRepo := persistence.NewGormClientGroupRepository(db.DB)
	junctionRepo := persistence.NewGormAssociationRepository(db.DB)

	// Application services
	addressService := advisoryapp.NewAddressService(addressRepo, ownerRepo)
	ownerService := advisoryapp.NewProductOwnerService(ownerRepo, addressRepo, junctionRepo)
	groupService := advisoryapp.NewClientGroupService(groupRepo, junctionRepo)
	associationService := advisoryapp.NewAssociationService(junctionRepo, groupRepo, ownerRepo)

	// Idempotency store, Redis when available, in-memory otherwise
	var idempotencyStore shared.IdempotencyStore
	if cfg.Idempotency.Enabled {
		if cfg.Redis.Enabled {
			store, err := cache.NewRedisIdempotencyStore(cache.RedisConfig{
				Host:     cfg.Redis.Host,
				Port:     cfg.Redis.Port,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err != nil {
				log.Fatal("Failed to connect to Redis", zap.Error(err))
			}
			idempotencyStore = store
		} else {
			idempotencyStore = cache.NewInMemoryIdempotencyStore()
		}
		defer func() {
			_ = idempotencyStore.Close()
		}()
	}

	// Gin engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

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

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}
	if idempotencyStore != nil {
		engine.Use(middleware.Idempotency(idempotencyStore, cfg.Idempotency.TTL, log))
	}

	// Routes
	r := router.NewRouter(engine)
	r.Register(handler.NewAddressHandler(addressService)).
		Register(handler.NewProductOwnerHandler(ownerService)).
		Register(handler.NewClientGroupHandler(groupService)).
		Register(handler.NewAssociationHandler(associationService))
	r.Setup()

	engine.GET("/health/db", healthHandler(db))

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

// healthHandler reports database reachability
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
