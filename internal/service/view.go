package service

import (
	"time"

	"github.com/medicall/medicall/internal/lifecycle"
	"github.com/medicall/medicall/internal/model"
)

// ShiftView смена вместе с производным состоянием для отображения.
// Effective status - единственный источник правды о том, активна ли смена:
// списки никогда не читают сохранённый статус напрямую.
type ShiftView struct {
	*model.Shift
	EffectiveStatus model.ShiftStatus   `json:"effective_status"`
	Stage           lifecycle.Stage     `json:"stage"`
	Countdown       lifecycle.Countdown `json:"countdown"`
	TotalPay        float64             `json:"total_pay"`
}

// BuildShiftView собирает отображаемое состояние смены на момент now
func BuildShiftView(engine *lifecycle.Engine, shift *model.Shift, now time.Time) *ShiftView {
	view := &ShiftView{
		Shift:           shift,
		EffectiveStatus: engine.EffectiveStatus(shift, now),
		Stage:           engine.LifecycleStage(shift, now),
		TotalPay:        shift.TotalPay(),
	}

	if end, err := engine.ShiftEnd(shift); err == nil {
		view.Countdown = lifecycle.RemainingTime(end, now)
	} else {
		view.Countdown = lifecycle.Countdown{Expired: true, Display: lifecycle.ExpiredDisplay}
	}

	return view
}

// BuildShiftViews собирает отображаемое состояние для набора смен
func BuildShiftViews(engine *lifecycle.Engine, shifts []*model.Shift, now time.Time) []*ShiftView {
	views := make([]*ShiftView, 0, len(shifts))
	for _, shift := range shifts {
		views = append(views, BuildShiftView(engine, shift, now))
	}
	return views
}

// FilterOpen оставляет только реально активные смены. Смена, чей конец уже
// прошёл, выпадает из активных списков ещё до того, как фоновая задача
// обновит её статус в БД.
func FilterOpen(engine *lifecycle.Engine, shifts []*model.Shift, now time.Time) []*ShiftView {
	views := make([]*ShiftView, 0, len(shifts))
	for _, shift := range shifts {
		if engine.EffectiveStatus(shift, now) != model.ShiftStatusActive {
			continue
		}
		views = append(views, BuildShiftView(engine, shift, now))
	}
	return views
}
