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

type NotificationService struct {
	notifRepo *repository.NotificationRepository
	shiftRepo *repository.ShiftRepository
	engine    *lifecycle.Engine
	logger    *zap.Logger
}

func NewNotificationService(
	notifRepo *repository.NotificationRepository,
	shiftRepo *repository.ShiftRepository,
	engine *lifecycle.Engine,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		notifRepo: notifRepo,
		shiftRepo: shiftRepo,
		engine:    engine,
		logger:    logger,
	}
}

// List получает уведомления получателя
func (s *NotificationService) List(ctx context.Context, recipientID int64) ([]*model.Notification, error) {
	return s.notifRepo.GetByRecipientID(ctx, recipientID)
}

// MarkRead помечает уведомление прочитанным
func (s *NotificationService) MarkRead(ctx context.Context, recipientID, notificationID int64) error {
	updated, err := s.notifRepo.MarkRead(ctx, notificationID, recipientID)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// SendStartReminders шлёт больницам напоминания о незаполненных сменах,
// начало которых приближается. Порог и срочность считает движок статусов
// от времени начала, а не конца. На смену шлётся одно напоминание.
func (s *NotificationService) SendStartReminders(ctx context.Context, now time.Time) (int, error) {
	shifts, err := s.shiftRepo.GetNominallyActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("send start reminders: %w", err)
	}

	sent := 0
	for _, shift := range shifts {
		alert := s.engine.ExpiryCheck(shift, now)
		if !alert.Visible {
			continue
		}

		already, err := s.notifRepo.HasReminderForShift(ctx, shift.ID, shift.HospitalID)
		if err != nil {
			return sent, err
		}
		if already {
			continue
		}

		n := &model.Notification{
			RecipientID: shift.HospitalID,
			Type:        model.NotificationShiftReminder,
			Title:       reminderTitle(alert.Urgent),
			Message:     reminderMessage(shift, alert),
			ShiftID:     &shift.ID,
		}

		if err := s.notifRepo.Create(ctx, n); err != nil {
			return sent, err
		}

		s.logger.Info("Start reminder sent",
			zap.Int64("shift_id", shift.ID),
			zap.Bool("urgent", alert.Urgent),
			zap.String("remaining", alert.Countdown.Display),
		)
		sent++
	}

	return sent, nil
}

func reminderTitle(urgent bool) string {
	if urgent {
		return "Urgent: Shift Expiring Soon!"
	}
	return "Shift Expiring Soon"
}

// reminderMessage собирает текст напоминания с оплатой за смену
func reminderMessage(shift *model.Shift, alert lifecycle.ExpiryAlert) string {
	return fmt.Sprintf("%s (%s) starts in %s and is still unfilled. Pay: %s (%s total).",
		shift.Role, shift.Department, alert.Countdown.Display,
		format.FormatPayRate(shift.PayPerHour), format.FormatTotalPay(shift.TotalPay()))
}
