package app

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

	"github.com/andrecahu/desafio-pitang-api/internal/config"
	"github.com/andrecahu/desafio-pitang-api/internal/database"
	"github.com/andrecahu/desafio-pitang-api/internal/handler"
	"github.com/andrecahu/desafio-pitang-api/internal/metrics"
	"github.com/andrecahu/desafio-pitang-api/internal/middleware"
	"github.com/andrecahu/desafio-pitang-api/internal/repository"
	"github.com/andrecahu/desafio-pitang-api/internal/router"
	"github.com/andrecahu/desafio-pitang-api/internal/service"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	userRepo := repository.NewUserRepository(db.Pool)
	carRepo := repository.NewCarRepository(db.Pool)
	slog.Info("database ready")

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	carService := service.NewCarService(carRepo)
	userService := service.NewUserService(userRepo, carService, tokenService)

	authenticator := middleware.NewAuthenticator(tokenService, userRepo, router.PublicRoutes)
	collector := metrics.NewCollector()

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	carHandler := handler.NewCarHandler(carService)

	health := func(w http.ResponseWriter, r *http.Request) {
		if err := db.Health(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}

	appRouter := router.New(cfg, authenticator, collector, authHandler, userHandler, carHandler, health)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.db.Close()
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.db.Close()
	slog.Info("server stopped")
	return nil
}
