package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ShiftSweeper переводит просроченные смены в expired
type ShiftSweeper interface {
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}

// ReminderSender шлёт напоминания о скором начале смен
type ReminderSender interface {
	SendStartReminders(ctx context.Context, now time.Time) (int, error)
}

// DashboardRefresher пересобирает снимок данных для дашбордов
type DashboardRefresher interface {
	Refresh(ctx context.Context, now time.Time) error
}

// Scheduler управляет фоновыми задачами.
// Две задачи независимы: обновление данных дашборда не обязано совпадать
// по фазе с пересчётом статусов. Обе идемпотентны, поэтому близкие
// срабатывания таймеров безопасны без блокировок.
type Scheduler struct {
	sweeper   ShiftSweeper
	reminders ReminderSender
	dashboard DashboardRefresher
	logger    *zap.Logger
	stopChan  chan struct{}

	sweepInterval   time.Duration // пересчёт статусов и напоминания
	refreshInterval time.Duration // обновление снимка дашборда
}

// NewScheduler создаёт новый планировщик
func NewScheduler(sweeper ShiftSweeper, reminders ReminderSender, dashboard DashboardRefresher, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		sweeper:         sweeper,
		reminders:       reminders,
		dashboard:       dashboard,
		logger:          logger,
		stopChan:        make(chan struct{}),
		sweepInterval:   time.Minute,
		refreshInterval: 30 * time.Second,
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler",
		zap.Duration("sweep_interval", s.sweepInterval),
		zap.Duration("refresh_interval", s.refreshInterval))

	go s.runStatusSweep(ctx)
	go s.runDashboardRefresh(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runStatusSweep периодически пересчитывает статусы смен по текущему времени
func (s *Scheduler) runStatusSweep(ctx context.Context) {
	// Первый запуск сразу при старте
	s.sweep(ctx)

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopChan:
			s.logger.Info("Status sweep task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Status sweep task cancelled")
			return
		}
	}
}

// runDashboardRefresh периодически обновляет снимок данных дашборда
func (s *Scheduler) runDashboardRefresh(ctx context.Context) {
	s.refresh(ctx)

	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refresh(ctx)
		case <-s.stopChan:
			s.logger.Info("Dashboard refresh task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Dashboard refresh task cancelled")
			return
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	now := time.Now()

	expired, err := s.sweeper.ExpireOverdue(ctx, now)
	if err != nil {
		s.logger.Error("Failed to expire overdue shifts", zap.Error(err))
	} else if expired > 0 {
		s.logger.Info("Expired overdue shifts", zap.Int("count", expired))
	}

	sent, err := s.reminders.SendStartReminders(ctx, now)
	if err != nil {
		s.logger.Error("Failed to send start reminders", zap.Error(err))
	} else if sent > 0 {
		s.logger.Info("Sent start reminders", zap.Int("count", sent))
	}
}

func (s *Scheduler) refresh(ctx context.Context) {
	if err := s.dashboard.Refresh(ctx, time.Now()); err != nil {
		s.logger.Error("Failed to refresh dashboard snapshot", zap.Error(err))
	}
}
