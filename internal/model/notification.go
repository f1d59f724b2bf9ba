package model

import "time"

type NotificationType string

const (
	NotificationShiftPosted         NotificationType = "shift_posted"
	NotificationApplicationReceived NotificationType = "application_received"
	NotificationApplicationApproved NotificationType = "application_approved"
	NotificationApplicationRejected NotificationType = "application_rejected"
	NotificationShiftReminder       NotificationType = "shift_reminder"
	NotificationSystem              NotificationType = "system"
)

type Notification struct {
	ID            int64            `json:"id"`
	RecipientID   int64            `json:"recipient_id"`
	Type          NotificationType `json:"notification_type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	IsRead        bool             `json:"is_read"`
	ShiftID       *int64           `json:"shift_id"`       // указатель - может быть nil
	ApplicationID *int64           `json:"application_id"` // указатель - может быть nil
	CreatedAt     time.Time        `json:"created_at"`
}
