package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/medicall/medicall/internal/lifecycle"
	"github.com/medicall/medicall/internal/model"
	"github.com/medicall/medicall/internal/repository"
	"go.uber.org/zap"
)

// DashboardSnapshot агрегированное состояние маркетплейса на момент RefreshedAt.
// Счётчики active/urgent/expired считаются по производному статусу,
// а не по сохранённому: смена с прошедшим концом попадает в expired,
// даже если фоновая задача ещё не обновила её в БД.
type DashboardSnapshot struct {
	ActiveShifts        int64     `json:"active_shifts"`
	UrgentShifts        int64     `json:"urgent_shifts"`
	FilledShifts        int64     `json:"filled_shifts"`
	CancelledShifts     int64     `json:"cancelled_shifts"`
	ExpiredShifts       int64     `json:"expired_shifts"`
	PendingApplications int64     `json:"pending_applications"`
	RefreshedAt         time.Time `json:"refreshed_at"`
}

type DashboardService struct {
	shiftRepo *repository.ShiftRepository
	appRepo   *repository.ApplicationRepository
	engine    *lifecycle.Engine
	logger    *zap.Logger

	mu       sync.RWMutex
	snapshot DashboardSnapshot
}

func NewDashboardService(
	shiftRepo *repository.ShiftRepository,
	appRepo *repository.ApplicationRepository,
	engine *lifecycle.Engine,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		shiftRepo: shiftRepo,
		appRepo:   appRepo,
		engine:    engine,
		logger:    logger,
	}
}

// Refresh пересобирает снимок. Вызывается фоновой задачей раз в 30 секунд
// и идемпотентен: повторный вызов с тем же состоянием БД даёт тот же снимок.
func (s *DashboardService) Refresh(ctx context.Context, now time.Time) error {
	counts, err := s.shiftRepo.CountByStatus(ctx)
	if err != nil {
		return fmt.Errorf("refresh dashboard: %w", err)
	}

	pending, err := s.appRepo.CountPending(ctx)
	if err != nil {
		return fmt.Errorf("refresh dashboard: %w", err)
	}

	active, err := s.shiftRepo.GetNominallyActive(ctx)
	if err != nil {
		return fmt.Errorf("refresh dashboard: %w", err)
	}

	snapshot := DashboardSnapshot{
		FilledShifts:        counts[model.ShiftStatusFilled],
		CancelledShifts:     counts[model.ShiftStatusCancelled],
		ExpiredShifts:       counts[model.ShiftStatusExpired],
		PendingApplications: pending,
		RefreshedAt:         now,
	}

	for _, shift := range active {
		if s.engine.EffectiveStatus(shift, now) != model.ShiftStatusActive {
			snapshot.ExpiredShifts++
			continue
		}
		snapshot.ActiveShifts++
		if s.engine.LifecycleStage(shift, now) == lifecycle.StageUrgent {
			snapshot.UrgentShifts++
		}
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	return nil
}

// Snapshot возвращает последний собранный снимок
func (s *DashboardService) Snapshot() DashboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
