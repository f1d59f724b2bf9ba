package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medicall/medicall/internal/model"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Create создаёт новое уведомление
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	query := `
		INSERT INTO notifications (recipient_id, notification_type, title, message,
			shift_id, application_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		n.RecipientID,
		n.Type,
		n.Title,
		n.Message,
		n.ShiftID,
		n.ApplicationID,
	).Scan(&n.ID, &n.CreatedAt)

	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return nil
}

// GetByRecipientID получает все уведомления получателя
func (r *NotificationRepository) GetByRecipientID(ctx context.Context, recipientID int64) ([]*model.Notification, error) {
	query := `
		SELECT id, recipient_id, notification_type, title, message, is_read,
			shift_id, application_id, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("get notifications by recipient: %w", err)
	}
	defer rows.Close()

	var notifications []*model.Notification
	for rows.Next() {
		var n model.Notification
		err := rows.Scan(
			&n.ID,
			&n.RecipientID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.IsRead,
			&n.ShiftID,
			&n.ApplicationID,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, &n)
	}

	return notifications, rows.Err()
}

// MarkRead помечает уведомление прочитанным, только для его получателя
func (r *NotificationRepository) MarkRead(ctx context.Context, id, recipientID int64) (bool, error) {
	query := `UPDATE notifications SET is_read = true WHERE id = $1 AND recipient_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, recipientID)
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// HasReminderForShift проверяет отправляли ли уже напоминание по смене.
// Дедупликация: напоминание о скором начале шлётся один раз на смену
func (r *NotificationRepository) HasReminderForShift(ctx context.Context, shiftID, recipientID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM notifications
			WHERE shift_id = $1 AND recipient_id = $2 AND notification_type = $3
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, shiftID, recipientID, model.NotificationShiftReminder).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check reminder exists: %w", err)
	}

	return exists, nil
}
