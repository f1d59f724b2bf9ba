package lifecycle

import (
	"time"

	"github.com/medicall/medicall/internal/model"
)

// ExpiryAlert решение о показе напоминания о скором начале смены
type ExpiryAlert struct {
	Visible   bool      `json:"visible"`
	Urgent    bool      `json:"urgent"`
	Countdown Countdown `json:"countdown"`
}

// ExpiryCheck проверяет нужно ли напоминание о приближающемся начале смены.
// Считается от начала смены, а не от конца: это отдельный порог, не связанный
// со стадией urgent. Напоминание видно пока 0 < остаток < WarningThreshold,
// и помечается срочным при остатке меньше CriticalThreshold.
func (e *Engine) ExpiryCheck(s *model.Shift, now time.Time) ExpiryAlert {
	start, err := e.ShiftStart(s)
	if err != nil {
		// Некорректные дата/время: напоминание просто не показываем,
		// диагностику уже пишет EffectiveStatus
		return ExpiryAlert{}
	}

	diff := start.Sub(now)
	if diff <= 0 || diff >= e.cfg.WarningThreshold {
		return ExpiryAlert{}
	}

	return ExpiryAlert{
		Visible:   true,
		Urgent:    diff < e.cfg.CriticalThreshold,
		Countdown: RemainingTime(start, now),
	}
}
