package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexschwind/ratemycourses/database"
	"github.com/alexschwind/ratemycourses/internal/config"
	"github.com/alexschwind/ratemycourses/internal/handler"
	"github.com/alexschwind/ratemycourses/internal/middleware"
	"github.com/alexschwind/ratemycourses/internal/repository"
	"github.com/alexschwind/ratemycourses/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// Redis is optional, without it course pages just show no view counts
	var pageViews *repository.PageViewRedisRepo
	if cfg.RedisURL != "" {
		pageViews, err = repository.NewPageViewRedisRepo(cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			logger.Warn("redis unavailable, page view counters disabled", "error", err)
			pageViews = nil
		} else {
			logger.Info("Connected to Redis")
		}
	}

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	flagRepo := repository.NewFlagRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)

	// Create services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	courseService := service.NewCourseService(courseRepo, ratingRepo, profileRepo, pageViews)
	ratingService := service.NewRatingService(ratingRepo, courseRepo)
	profileService := service.NewProfileService(profileRepo)
	moderationService := service.NewModerationService(ratingRepo, flagRepo)

	// Create handlers
	authHandler := handler.NewAuthHandler(authService, cfg.AccessTokenTTL)
	courseHandler := handler.NewCourseHandler(courseService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	profileHandler := handler.NewProfileHandler(profileService)
	moderationHandler := handler.NewModerationHandler(moderationService)

	limited := middleware.RateLimit(middleware.NewIPRateLimiter(cfg.AuthRatePerMinute))

	// Setup Gin
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.TrackVisitors(visitorRepo, logger))

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth endpoints; register and login are rate limited
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", limited, authHandler.Register)
		auth.POST("/login", limited, authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/revoke", authHandler.RevokeToken)
	}

	// Everything else requires a valid access token
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(authService))

	courseHandler.RegisterRoutes(api.Group("/courses"))
	ratingHandler.RegisterRoutes(api)
	profileHandler.RegisterRoutes(api.Group("/me"))
	moderationHandler.RegisterRoutes(api, limited)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}
