package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medicall/medicall/internal/api"
	"github.com/medicall/medicall/internal/app"
	"github.com/medicall/medicall/internal/config"
	"github.com/medicall/medicall/internal/lifecycle"
	"github.com/medicall/medicall/internal/repository"
	"github.com/medicall/medicall/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Репозитории
	shiftRepo := repository.NewShiftRepository(pool)
	appRepo := repository.NewApplicationRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	notifRepo := repository.NewNotificationRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	// Движок статусов
	engine := lifecycle.NewEngine(lifecycle.Config{
		UrgentThreshold:   time.Duration(cfg.UrgentThresholdHours) * time.Hour,
		WarningThreshold:  time.Duration(cfg.WarningThresholdHours) * time.Hour,
		CriticalThreshold: time.Duration(cfg.CriticalThresholdHours) * time.Hour,
	}, logger)

	// Сервисы
	shiftService := service.NewShiftService(shiftRepo, userRepo, engine, logger)
	applicationService := service.NewApplicationService(appRepo, shiftRepo, userRepo, notifRepo, engine, logger)
	notificationService := service.NewNotificationService(notifRepo, shiftRepo, engine, logger)
	dashboardService := service.NewDashboardService(shiftRepo, appRepo, engine, logger)
	reviewService := service.NewReviewService(reviewRepo, shiftRepo, logger)
	userService := service.NewUserService(userRepo, logger)

	// Фоновые задачи
	scheduler := app.NewScheduler(shiftService, notificationService, dashboardService, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := api.New(shiftService, applicationService, notificationService, reviewService, dashboardService, userService, logger)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Starting MediCall API",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("environment", cfg.Environment))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}
