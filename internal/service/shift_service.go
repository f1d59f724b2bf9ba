package service

import (
	"context"
	"fmt"
	"time"

	"github.com/medicall/medicall/internal/lifecycle"
	"github.com/medicall/medicall/internal/model"
	"github.com/medicall/medicall/internal/repository"
	"go.uber.org/zap"
)

type ShiftService struct {
	shiftRepo *repository.ShiftRepository
	userRepo  *repository.UserRepository
	engine    *lifecycle.Engine
	logger    *zap.Logger
}

func NewShiftService(
	shiftRepo *repository.ShiftRepository,
	userRepo *repository.UserRepository,
	engine *lifecycle.Engine,
	logger *zap.Logger,
) *ShiftService {
	return &ShiftService{
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
		engine:    engine,
		logger:    logger,
	}
}

// CreateShift публикует новую смену больницы
func (s *ShiftService) CreateShift(ctx context.Context, shift *model.Shift) error {
	if shift.Department == "" || shift.Role == "" {
		return fmt.Errorf("%w: department and role are required", ErrInvalid)
	}

	start, err := lifecycle.CombineDateTime(shift.Date, shift.StartTime)
	if err != nil {
		return fmt.Errorf("%w: bad date or start_time", ErrInvalid)
	}
	end, err := lifecycle.CombineDateTime(shift.Date, shift.EndTime)
	if err != nil {
		return fmt.Errorf("%w: bad date or end_time", ErrInvalid)
	}
	// Ночные смены через полночь не поддерживаются: конец в тот же день
	if !end.After(start) {
		return fmt.Errorf("%w: end_time must be after start_time", ErrInvalid)
	}
	if shift.PayPerHour < 0 {
		return fmt.Errorf("%w: pay_per_hour must be non-negative", ErrInvalid)
	}

	if shift.DurationHours == 0 {
		shift.DurationHours = end.Sub(start).Hours()
	}
	if shift.Urgency == "" {
		shift.Urgency = model.ShiftUrgencyMedium
	}
	if shift.MaxApplicants == 0 {
		shift.MaxApplicants = 10
	}
	shift.Status = model.ShiftStatusActive

	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return err
	}

	s.logger.Info("Shift posted",
		zap.Int64("shift_id", shift.ID),
		zap.Int64("hospital_id", shift.HospitalID),
		zap.String("role", shift.Role),
		zap.String("date", shift.Date),
	)

	return nil
}

// GetShift получает смену с производным состоянием
func (s *ShiftService) GetShift(ctx context.Context, id int64, now time.Time) (*ShiftView, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shift: %w", err)
	}
	if shift == nil {
		return nil, ErrNotFound
	}

	if hospital, err := s.userRepo.GetByID(ctx, shift.HospitalID); err == nil {
		shift.Hospital = hospital
	}

	return BuildShiftView(s.engine, shift, now), nil
}

// OpenShifts получает все открытые для откликов смены
func (s *ShiftService) OpenShifts(ctx context.Context, now time.Time) ([]*ShiftView, error) {
	shifts, err := s.shiftRepo.GetNominallyActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("open shifts: %w", err)
	}

	return FilterOpen(s.engine, shifts, now), nil
}

// WorkerFeed получает доступные работнику смены. Сохранённый статус в БД
// может отставать от реальности, поэтому результат дополнительно
// фильтруется через движок статусов.
func (s *ShiftService) WorkerFeed(ctx context.Context, workerID int64, now time.Time) ([]*ShiftView, error) {
	shifts, err := s.shiftRepo.GetOpenForWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("worker feed: %w", err)
	}

	return FilterOpen(s.engine, shifts, now), nil
}

// HospitalShifts получает все смены больницы с производным состоянием
func (s *ShiftService) HospitalShifts(ctx context.Context, hospitalID int64, now time.Time) ([]*ShiftView, error) {
	shifts, err := s.shiftRepo.GetByHospitalID(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("hospital shifts: %w", err)
	}

	return BuildShiftViews(s.engine, shifts, now), nil
}

// UpdateStatus меняет сохранённый статус смены по запросу больницы.
// Разрешены только переходы в filled и cancelled; терминальные смены
// больше не меняются.
func (s *ShiftService) UpdateStatus(ctx context.Context, hospitalID, shiftID int64, status model.ShiftStatus) error {
	if status != model.ShiftStatusFilled && status != model.ShiftStatusCancelled {
		return fmt.Errorf("%w: status must be filled or cancelled", ErrInvalid)
	}

	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return fmt.Errorf("get shift: %w", err)
	}
	if shift == nil {
		return ErrNotFound
	}
	if shift.HospitalID != hospitalID {
		return ErrForbidden
	}
	if shift.IsTerminal() {
		return fmt.Errorf("%w: shift is already %s", ErrInvalid, shift.Status)
	}

	if err := s.shiftRepo.UpdateStatus(ctx, shiftID, status); err != nil {
		return err
	}

	s.logger.Info("Shift status updated",
		zap.Int64("shift_id", shiftID),
		zap.String("status", string(status)),
	)

	return nil
}

// Timeline строит таймлайн жизненного цикла смены
func (s *ShiftService) Timeline(ctx context.Context, shiftID int64, now time.Time) ([]lifecycle.TimelineStage, lifecycle.Countdown, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, lifecycle.Countdown{}, fmt.Errorf("get shift: %w", err)
	}
	if shift == nil {
		return nil, lifecycle.Countdown{}, ErrNotFound
	}

	view := BuildShiftView(s.engine, shift, now)
	return s.engine.Timeline(shift, now), view.Countdown, nil
}

// ExpireOverdue переводит в expired смены, чей конец уже прошёл.
// Вызывается фоновой задачей; между реальным истечением и обновлением БД
// есть окно до минуты, активные списки это окно закрывают фильтрацией
// через движок.
func (s *ShiftService) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	shifts, err := s.shiftRepo.GetNominallyActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("expire overdue: %w", err)
	}

	var overdue []int64
	for _, shift := range shifts {
		if s.engine.EffectiveStatus(shift, now) == model.ShiftStatusExpired {
			overdue = append(overdue, shift.ID)
		}
	}

	if len(overdue) == 0 {
		return 0, nil
	}

	affected, err := s.shiftRepo.MarkExpired(ctx, overdue)
	if err != nil {
		return 0, err
	}

	return int(affected), nil
}
