package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starforge-server/internal/galaxy"
	"starforge-server/internal/middleware"
	"starforge-server/internal/server"
	"starforge-server/internal/shared/config"
	"starforge-server/internal/shared/database"
	"starforge-server/internal/shared/logger"
	sharedredis "starforge-server/internal/shared/redis"
	"starforge-server/internal/system"
	"starforge-server/internal/tables"
	"starforge-server/internal/universe"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	logger.Init()

	cfg := config.GlobalConfig
	log := slog.With("component", "main")

	db, err := database.Connect()
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	cache, err := sharedredis.Connect()
	if err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	tablesStore, err := tables.NewStore(cfg.Universe.TablesPath, slog.Default())
	if err != nil {
		log.Error("Failed to load generation tables", "error", err)
		os.Exit(1)
	}

	universeRepo := universe.NewRepository(db.DB, slog.Default())
	universeService := universe.NewService(universeRepo, slog.Default())
	galaxyService := galaxy.NewService(slog.Default())
	systemRepo := system.NewRepository(db.DB, slog.Default())
	systemService := system.NewService(systemRepo, cache, tablesStore, universeService, slog.Default())

	routes := server.NewRoutes(db, universeService, galaxyService, systemService, tablesStore, slog.Default())
	mux := routes.Setup()

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
		Enabled:           cfg.RateLimit.Enabled,
	})
	corsMiddleware := middleware.NewCORS()

	handler := corsMiddleware.Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("Starforge server starting", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
	}
}
