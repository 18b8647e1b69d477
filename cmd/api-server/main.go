package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"gamerate/database"
	"gamerate/internal/cache"
	"gamerate/internal/config"
	"gamerate/internal/httpapi/handler"
	"gamerate/internal/httpapi/middleware"
	"gamerate/internal/httpapi/repository"
	"gamerate/internal/httpapi/service"
)

func main() {
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

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	views := cache.NewViewCache(cache.Options{
		TTL:        cfg.CacheTTL,
		MaxEntries: cfg.CacheMaxEntries,
	})

	// Repositories
	gameRepo := repository.NewGameRepo(db)
	assocRepo := repository.NewAssociationRepo(db)
	interactionRepo := repository.NewInteractionRepository(db)
	platformRepo := repository.NewPlatformRepo(db)
	developerRepo := repository.NewDeveloperRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	gameService := service.NewGameService(gameRepo, assocRepo, interactionRepo, views)
	interactionService := service.NewInteractionService(interactionRepo, gameRepo)
	platformService := service.NewPlatformService(platformRepo, views)
	developerService := service.NewDeveloperService(developerRepo, views)
	genreService := service.NewGenreService(genreRepo, views)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)

	// Handlers
	gameHandler := handler.NewGameHandler(gameService)
	interactionHandler := handler.NewInteractionHandler(interactionService)
	platformHandler := handler.NewPlatformHandler(platformService)
	developerHandler := handler.NewDeveloperHandler(developerService)
	genreHandler := handler.NewGenreHandler(genreService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.AuthMiddleware(authService)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")
	authHandler.RegisterRoutes(api)
	gameHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	interactionHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	platformHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	developerHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	genreHandler.RegisterRoutes(api, requireAuth, requireAdmin)
	userHandler.RegisterRoutes(api, requireAuth, requireAdmin)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("server starting", "port", cfg.HTTPPort, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

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
