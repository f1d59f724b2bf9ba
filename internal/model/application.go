package model

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"   // Ожидает решения больницы
	ApplicationStatusApproved  ApplicationStatus = "approved"  // Одобрена
	ApplicationStatusRejected  ApplicationStatus = "rejected"  // Отклонена
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn" // Отозвана работником
)

type Application struct {
	ID           int64             `json:"id"`
	ShiftID      int64             `json:"shift_id"`
	WorkerID     int64             `json:"worker_id"`
	Status       ApplicationStatus `json:"status"`
	CoverLetter  string            `json:"cover_letter"`
	ProposedRate *float64          `json:"proposed_rate"` // указатель - может быть nil
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	// Дополнительные поля для удобства (не из БД)
	Shift  *Shift `json:"shift,omitempty"`
	Worker *User  `json:"worker,omitempty"`
}
