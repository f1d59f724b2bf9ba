package service

import (
	"context"
	"fmt"
	"time"

	"github.com/medicall/medicall/internal/format"
	"github.com/medicall/medicall/internal/lifecycle"
	"github.com/medicall/medicall/internal/model"
	"github.com/medicall/medicall/internal/repository"
	"go.uber.org/zap"
)

type ApplicationService struct {
	appRepo   *repository.ApplicationRepository
	shiftRepo *repository.ShiftRepository
	userRepo  *repository.UserRepository
	notifRepo *repository.NotificationRepository
	engine    *lifecycle.Engine
	logger    *zap.Logger
}

func NewApplicationService(
	appRepo *repository.ApplicationRepository,
	shiftRepo *repository.ShiftRepository,
	userRepo *repository.UserRepository,
	notifRepo *repository.NotificationRepository,
	engine *lifecycle.Engine,
	logger *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		appRepo:   appRepo,
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		engine:    engine,
		logger:    logger,
	}
}

// Apply создаёт отклик работника на смену.
// Доступность смены проверяется через движок статусов: на смену с прошедшим
// концом откликнуться нельзя, даже если в БД она ещё active.
func (s *ApplicationService) Apply(ctx context.Context, workerID, shiftID int64, coverLetter string, proposedRate *float64) (*model.Application, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("get shift: %w", err)
	}
	if shift == nil {
		return nil, ErrNotFound
	}

	if s.engine.EffectiveStatus(shift, time.Now()) != model.ShiftStatusActive {
		return nil, fmt.Errorf("%w: shift is not open for applications", ErrInvalid)
	}

	if shift.ApplicantCount >= shift.MaxApplicants {
		return nil, fmt.Errorf("%w: shift already has the maximum number of applicants", ErrInvalid)
	}

	exists, err := s.appRepo.ExistsForShiftAndWorker(ctx, shiftID, workerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: you have already applied to this shift", ErrInvalid)
	}

	app := &model.Application{
		ShiftID:      shiftID,
		WorkerID:     workerID,
		Status:       model.ApplicationStatusPending,
		CoverLetter:  coverLetter,
		ProposedRate: proposedRate,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info("Application submitted",
		zap.Int64("application_id", app.ID),
		zap.Int64("shift_id", shiftID),
		zap.Int64("worker_id", workerID),
	)

	s.notifyHospital(ctx, shift, app)

	return app, nil
}

// Approve одобряет отклик. Первое одобрение переводит смену в filled -
// терминальный статус, который движок статусов больше не переопределяет.
func (s *ApplicationService) Approve(ctx context.Context, hospitalID, applicationID int64) error {
	app, shift, err := s.getForHospital(ctx, hospitalID, applicationID)
	if err != nil {
		return err
	}
	if app.Status != model.ApplicationStatusPending {
		return fmt.Errorf("%w: application is already %s", ErrInvalid, app.Status)
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, model.ApplicationStatusApproved); err != nil {
		return err
	}
	if err := s.shiftRepo.UpdateStatus(ctx, shift.ID, model.ShiftStatusFilled); err != nil {
		return err
	}

	s.logger.Info("Application approved",
		zap.Int64("application_id", applicationID),
		zap.Int64("shift_id", shift.ID),
		zap.Int64("worker_id", app.WorkerID),
	)

	s.notifyWorker(ctx, shift, app, model.NotificationApplicationApproved,
		"Application Approved",
		fmt.Sprintf("Your application for the %s shift on %s was approved.",
			shift.Role, format.FormatShiftWindow(shift.Date, shift.StartTime, shift.EndTime)))

	return nil
}

// Reject отклоняет отклик, статус смены не меняется
func (s *ApplicationService) Reject(ctx context.Context, hospitalID, applicationID int64) error {
	app, shift, err := s.getForHospital(ctx, hospitalID, applicationID)
	if err != nil {
		return err
	}
	if app.Status != model.ApplicationStatusPending {
		return fmt.Errorf("%w: application is already %s", ErrInvalid, app.Status)
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, model.ApplicationStatusRejected); err != nil {
		return err
	}

	s.logger.Info("Application rejected",
		zap.Int64("application_id", applicationID),
		zap.Int64("shift_id", shift.ID),
	)

	s.notifyWorker(ctx, shift, app, model.NotificationApplicationRejected,
		"Application Rejected",
		fmt.Sprintf("Your application for the %s shift on %s was rejected.",
			shift.Role, format.FormatShiftWindow(shift.Date, shift.StartTime, shift.EndTime)))

	return nil
}

// Withdraw отзывает собственный отклик работника
func (s *ApplicationService) Withdraw(ctx context.Context, workerID, applicationID int64) error {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return ErrNotFound
	}
	if app.WorkerID != workerID {
		return ErrForbidden
	}
	if app.Status != model.ApplicationStatusPending {
		return fmt.Errorf("%w: only pending applications can be withdrawn", ErrInvalid)
	}

	return s.appRepo.UpdateStatus(ctx, applicationID, model.ApplicationStatusWithdrawn)
}

// WorkerApplications получает отклики работника со сменами
func (s *ApplicationService) WorkerApplications(ctx context.Context, workerID int64) ([]*model.Application, error) {
	apps, err := s.appRepo.GetByWorkerID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	for _, app := range apps {
		shift, err := s.shiftRepo.GetByID(ctx, app.ShiftID)
		if err != nil {
			return nil, err
		}
		app.Shift = shift
	}

	return apps, nil
}

// HospitalApplications получает отклики на все смены больницы
func (s *ApplicationService) HospitalApplications(ctx context.Context, hospitalID int64) ([]*model.Application, error) {
	apps, err := s.appRepo.GetByHospitalID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	s.attachWorkers(ctx, apps)
	return apps, nil
}

// ShiftApplications получает отклики на смену, только для её больницы
func (s *ApplicationService) ShiftApplications(ctx context.Context, hospitalID, shiftID int64) ([]*model.Application, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, ErrNotFound
	}
	if shift.HospitalID != hospitalID {
		return nil, ErrForbidden
	}

	apps, err := s.appRepo.GetByShiftID(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	s.attachWorkers(ctx, apps)
	return apps, nil
}

func (s *ApplicationService) getForHospital(ctx context.Context, hospitalID, applicationID int64) (*model.Application, *model.Shift, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}
	if app == nil {
		return nil, nil, ErrNotFound
	}

	shift, err := s.shiftRepo.GetByID(ctx, app.ShiftID)
	if err != nil {
		return nil, nil, err
	}
	if shift == nil {
		return nil, nil, ErrNotFound
	}
	if shift.HospitalID != hospitalID {
		return nil, nil, ErrForbidden
	}

	return app, shift, nil
}

func (s *ApplicationService) attachWorkers(ctx context.Context, apps []*model.Application) {
	for _, app := range apps {
		worker, err := s.userRepo.GetByID(ctx, app.WorkerID)
		if err != nil {
			s.logger.Warn("Failed to load worker for application",
				zap.Int64("application_id", app.ID), zap.Error(err))
			continue
		}
		app.Worker = worker
	}
}

// Уведомления шлём best-effort: ошибка не валит основную операцию
func (s *ApplicationService) notifyHospital(ctx context.Context, shift *model.Shift, app *model.Application) {
	workerName := "A worker"
	if worker, err := s.userRepo.GetByID(ctx, app.WorkerID); err == nil && worker != nil {
		workerName = worker.Name
	}

	total := shift.ApplicantCount + 1
	n := &model.Notification{
		RecipientID: shift.HospitalID,
		Type:        model.NotificationApplicationReceived,
		Title:       "Application Received",
		Message: fmt.Sprintf("%s applied to your %s shift on %s. %d %s so far.",
			workerName, shift.Role, format.FormatDate(shift.Date), total, format.PluralizeApplicants(total)),
		ShiftID:       &shift.ID,
		ApplicationID: &app.ID,
	}

	if err := s.notifRepo.Create(ctx, n); err != nil {
		s.logger.Warn("Failed to create hospital notification",
			zap.Int64("shift_id", shift.ID), zap.Error(err))
	}
}

func (s *ApplicationService) notifyWorker(ctx context.Context, shift *model.Shift, app *model.Application, notifType model.NotificationType, title, message string) {
	n := &model.Notification{
		RecipientID:   app.WorkerID,
		Type:          notifType,
		Title:         title,
		Message:       message,
		ShiftID:       &shift.ID,
		ApplicationID: &app.ID,
	}

	if err := s.notifRepo.Create(ctx, n); err != nil {
		s.logger.Warn("Failed to create worker notification",
			zap.Int64("application_id", app.ID), zap.Error(err))
	}
}
