package model

import "time"

type ShiftStatus string

const (
	ShiftStatusActive    ShiftStatus = "active"
	ShiftStatusFilled    ShiftStatus = "filled"
	ShiftStatusCancelled ShiftStatus = "cancelled"
	ShiftStatusExpired   ShiftStatus = "expired"
)

type ShiftUrgency string

const (
	ShiftUrgencyLow      ShiftUrgency = "low"
	ShiftUrgencyMedium   ShiftUrgency = "medium"
	ShiftUrgencyHigh     ShiftUrgency = "high"
	ShiftUrgencyCritical ShiftUrgency = "critical"
)

type Shift struct {
	ID             int64        `json:"id"`
	HospitalID     int64        `json:"hospital_id"`
	Department     string       `json:"department"`
	Role           string       `json:"role"`
	Date           string       `json:"date"`       // YYYY-MM-DD
	StartTime      string       `json:"start_time"` // HH:MM
	EndTime        string       `json:"end_time"`   // HH:MM, same calendar day as start_time
	DurationHours  float64      `json:"duration_hours"`
	PayPerHour     float64      `json:"pay_per_hour"`
	Urgency        ShiftUrgency `json:"urgency"`
	Status         ShiftStatus  `json:"status"`
	Requirements   string       `json:"requirements"`
	Location       string       `json:"location"`
	Description    string       `json:"description"`
	MaxApplicants  int          `json:"max_applicants"`
	ApplicantCount int          `json:"applicant_count"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	// Заполняется сервисом при необходимости, не из БД
	Hospital *User `json:"hospital,omitempty"`
}

// TotalPay возвращает полную оплату за смену
func (s *Shift) TotalPay() float64 {
	return s.PayPerHour * s.DurationHours
}

// IsTerminal проверяет находится ли смена в терминальном статусе
func (s *Shift) IsTerminal() bool {
	return s.Status == ShiftStatusFilled || s.Status == ShiftStatusCancelled
}
