package lifecycle

import (
	"testing"
	"time"

	"github.com/medicall/medicall/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testShift(status model.ShiftStatus) *model.Shift {
	return &model.Shift{
		ID:        1,
		Date:      "2024-06-01",
		StartTime: "09:00",
		EndTime:   "17:00",
		Status:    status,
	}
}

func at(hour, min int) time.Time {
	return time.Date(2024, 6, 1, hour, min, 0, 0, time.Local)
}

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig(), zap.NewNop())
}

func TestCombineDateTime(t *testing.T) {
	instant, err := CombineDateTime("2024-06-01", "17:00")
	require.NoError(t, err)
	assert.Equal(t, at(17, 0), instant)

	_, err = CombineDateTime("not-a-date", "17:00")
	assert.Error(t, err)

	_, err = CombineDateTime("2024-06-01", "25:99")
	assert.Error(t, err)
}

func TestEffectiveStatusBeforeEnd(t *testing.T) {
	engine := newTestEngine()
	shift := testShift(model.ShiftStatusActive)

	assert.Equal(t, model.ShiftStatusActive, engine.EffectiveStatus(shift, at(16, 0)))
}

func TestEffectiveStatusAfterEnd(t *testing.T) {
	engine := newTestEngine()
	shift := testShift(model.ShiftStatusActive)

	assert.Equal(t, model.ShiftStatusExpired, engine.EffectiveStatus(shift, at(18, 0)))
}

func TestEffectiveStatusAtExactEnd(t *testing.T) {
	engine := newTestEngine()
	shift := testShift(model.ShiftStatusActive)

	// now == конец смены уже считается истечением
	assert.Equal(t, model.ShiftStatusExpired, engine.EffectiveStatus(shift, at(17, 0)))
}

func TestEffectiveStatusTerminalDominates(t *testing.T) {
	engine := newTestEngine()

	// Терминальный статус возвращается при любом now
	moments := []time.Time{
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local),
		at(12, 0),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
	}

	for _, now := range moments {
		assert.Equal(t, model.ShiftStatusFilled,
			engine.EffectiveStatus(testShift(model.ShiftStatusFilled), now))
		assert.Equal(t, model.ShiftStatusCancelled,
			engine.EffectiveStatus(testShift(model.ShiftStatusCancelled), now))
	}
}

func TestEffectiveStatusMalformedDate(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name    string
		date    string
		endTime string
	}{
		{"bad date", "not-a-date", "17:00"},
		{"bad time", "2024-06-01", "banana"},
		{"empty fields", "", ""},
		{"impossible time", "2024-06-01", "99:99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shift := testShift(model.ShiftStatusActive)
			shift.Date = tt.date
			shift.EndTime = tt.endTime

			// Никакой паники: некорректная смена исключается как истёкшая
			assert.NotPanics(t, func() {
				status := engine.EffectiveStatus(shift, at(12, 0))
				assert.Equal(t, model.ShiftStatusExpired, status)
			})
		})
	}
}

func TestEffectiveStatusIdempotent(t *testing.T) {
	engine := newTestEngine()
	shift := testShift(model.ShiftStatusActive)
	now := at(16, 30)

	first := engine.EffectiveStatus(shift, now)
	second := engine.EffectiveStatus(shift, now)
	assert.Equal(t, first, second)
}
