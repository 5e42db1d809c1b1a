package main

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"cosmos-server/internal/auth"
	"cosmos-server/internal/middleware"
	"cosmos-server/internal/server"
	serverHandlers "cosmos-server/internal/server/handlers"
	"cosmos-server/internal/shared/config"
	"cosmos-server/internal/shared/database"
	"cosmos-server/internal/shared/logger"
	redisconn "cosmos-server/internal/shared/redis"
	"cosmos-server/internal/universe"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Init()

	if err := run(config.GlobalConfig); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log := slog.With("component", "main")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		records   universe.Records
		dbPinger  serverHandlers.Pinger
		shared    redis.Cmdable
		rdbPinger serverHandlers.Pinger
	)

	if cfg.Database.Enabled {
		db, err := database.Connect(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.RunMigrations(ctx); err != nil {
			return err
		}
		records = universe.NewRepository(db.DB, slog.With("component", "universe_repository"))
		dbPinger = db
	} else {
		log.Warn("Database disabled, universe registry is kept in memory")
		records = universe.NewMemoryRepository()
	}

	rdb, err := redisconn.Connect(cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		shared = rdb.Client
		rdbPinger = rdb
	}

	tokens, err := auth.NewTokens(cfg.Auth)
	if err != nil {
		return err
	}

	service := universe.NewService(records, shared, universe.ServiceConfig{
		DefaultSizeMin: cfg.Universe.SizeMin,
		DefaultSizeMax: cfg.Universe.SizeMax,
		CacheTTL:       cfg.Universe.GalaxyCacheTTL,
	}, slog.With("component", "universe_service"))

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer limiter.Stop()

	costs := server.Costs{Galaxy: cfg.RateLimit.GalaxyCost, RegionCell: cfg.RateLimit.RegionCellCost}
	routes := server.NewRoutes(service, tokens, limiter, costs, dbPinger, rdbPinger)
	handler := middleware.NewCORS(cfg.Frontend).Middleware(routes.Setup())

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Cosmos server starting",
			"port", cfg.Server.Port,
			"url", cfg.Server.URL,
			"environment", cfg.Server.Environment,
			"database", cfg.Database.Enabled,
			"redis", cfg.Redis.Enabled,
		)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("Server stopped")
	return nil
}
