package lifecycle

import (
	"fmt"
	"time"

	"github.com/medicall/medicall/internal/model"
	"go.uber.org/zap"
)

// Config пороги для расчёта стадий и напоминаний.
// Порог urgent считается от конца смены, пороги warning/critical - от начала.
// Это два независимых параметра, объединять их нельзя.
type Config struct {
	UrgentThreshold   time.Duration // до конца смены: стадия urgent
	WarningThreshold  time.Duration // до начала смены: показывать напоминание
	CriticalThreshold time.Duration // до начала смены: напоминание становится срочным
}

// DefaultConfig возвращает стандартные пороги
func DefaultConfig() Config {
	return Config{
		UrgentThreshold:   24 * time.Hour,
		WarningThreshold:  24 * time.Hour,
		CriticalThreshold: 6 * time.Hour,
	}
}

// Engine вычисляет производное состояние смены из её полей и текущего времени.
// Все методы - чистые функции от (shift, now): без скрытого состояния,
// повторный вызов с теми же аргументами даёт тот же результат.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

// NewEngine создаёт новый движок статусов
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if cfg.UrgentThreshold <= 0 {
		cfg.UrgentThreshold = 24 * time.Hour
	}
	if cfg.WarningThreshold <= 0 {
		cfg.WarningThreshold = 24 * time.Hour
	}
	if cfg.CriticalThreshold <= 0 {
		cfg.CriticalThreshold = 6 * time.Hour
	}
	return &Engine{cfg: cfg, logger: logger}
}

// CombineDateTime собирает дату YYYY-MM-DD и время HH:MM в момент локального времени
func CombineDateTime(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02T15:04", date+"T"+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("combine date-time %q %q: %w", date, clock, err)
	}
	return t, nil
}

// ShiftStart возвращает момент начала смены
func (e *Engine) ShiftStart(s *model.Shift) (time.Time, error) {
	return CombineDateTime(s.Date, s.StartTime)
}

// ShiftEnd возвращает момент конца смены
func (e *Engine) ShiftEnd(s *model.Shift) (time.Time, error) {
	return CombineDateTime(s.Date, s.EndTime)
}

// EffectiveStatus вычисляет отображаемый статус смены.
// Терминальные статусы filled и cancelled возвращаются как есть.
// Для остальных смена считается expired, как только now достиг конца смены,
// даже если в БД статус ещё active.
// Все выборки "активных смен" обязаны идти через эту функцию,
// а не читать сохранённый статус напрямую.
func (e *Engine) EffectiveStatus(s *model.Shift, now time.Time) model.ShiftStatus {
	if s.IsTerminal() {
		return s.Status
	}

	end, err := e.ShiftEnd(s)
	if err != nil {
		// Некорректные дата/время: никогда не паникуем, исключаем смену
		// из активных списков как истёкшую
		e.logger.Warn("Shift has malformed date-time, treating as expired",
			zap.Int64("shift_id", s.ID),
			zap.String("date", s.Date),
			zap.String("end_time", s.EndTime),
			zap.Error(err),
		)
		return model.ShiftStatusExpired
	}

	if !now.Before(end) {
		return model.ShiftStatusExpired
	}

	return model.ShiftStatusActive
}
