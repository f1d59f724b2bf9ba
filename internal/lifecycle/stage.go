package lifecycle

import (
	"time"

	"github.com/medicall/medicall/internal/model"
)

// Stage стадия жизненного цикла смены для таймлайна
type Stage string

const (
	StageCreated      Stage = "created" // базовая стадия, всегда пройдена
	StageActive       Stage = "active"
	StageApplications Stage = "applications"
	StageUrgent       Stage = "urgent"
	StageFilled       Stage = "filled"
	StageCancelled    Stage = "cancelled"
	StageExpired      Stage = "expired"
)

// LifecycleStage классифицирует смену по стадиям, первое совпадение побеждает:
// cancelled -> filled -> expired -> urgent (до конца меньше порога) ->
// applications (есть отклики) -> active.
// Терминальные статусы из БД всегда важнее выводов из времени; близкое
// истечение важнее наличия откликов.
// StageCreated этой функцией не возвращается: каждая смена была создана,
// это константная первая стадия для отрисовки.
func (e *Engine) LifecycleStage(s *model.Shift, now time.Time) Stage {
	switch s.Status {
	case model.ShiftStatusCancelled:
		return StageCancelled
	case model.ShiftStatusFilled:
		return StageFilled
	}

	if e.EffectiveStatus(s, now) == model.ShiftStatusExpired {
		return StageExpired
	}

	// EffectiveStatus вернул active, значит дата/время парсятся
	end, _ := e.ShiftEnd(s)
	if end.Sub(now) < e.cfg.UrgentThreshold {
		return StageUrgent
	}

	if s.ApplicantCount > 0 {
		return StageApplications
	}

	return StageActive
}
