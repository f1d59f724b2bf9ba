package lifecycle

import (
	"testing"
	"time"

	"github.com/medicall/medicall/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Напоминания считаются от начала смены (09:00), независимо от порога urgent
func TestExpiryCheck(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name    string
		now     time.Time
		visible bool
		urgent  bool
	}{
		{"start in 5 hours", at(4, 0), true, true},
		{"start in 7 hours", at(2, 0), true, false},
		{"start in 23 hours", time.Date(2024, 5, 31, 10, 0, 0, 0, time.Local), true, false},
		{"start in exactly 24 hours", time.Date(2024, 5, 31, 9, 0, 0, 0, time.Local), false, false},
		{"start in 30 hours", time.Date(2024, 5, 31, 3, 0, 0, 0, time.Local), false, false},
		{"start in exactly 6 hours", at(3, 0), true, false},
		{"start just under 6 hours", at(3, 1), true, true},
		{"start already passed", at(10, 0), false, false},
		{"at exact start", at(9, 0), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shift := testShift(model.ShiftStatusActive)
			alert := engine.ExpiryCheck(shift, tt.now)

			assert.Equal(t, tt.visible, alert.Visible)
			assert.Equal(t, tt.urgent, alert.Urgent)
			if tt.visible {
				assert.False(t, alert.Countdown.Expired)
				assert.NotEmpty(t, alert.Countdown.Display)
			}
		})
	}
}

func TestExpiryCheckCountdownUsesStart(t *testing.T) {
	engine := newTestEngine()
	shift := testShift(model.ShiftStatusActive)

	// За 5 часов до начала (09:00), конец в 17:00 не участвует
	alert := engine.ExpiryCheck(shift, at(4, 0))
	assert.Equal(t, "5h 0m", alert.Countdown.Display)
}

func TestExpiryCheckMalformed(t *testing.T) {
	engine := newTestEngine()
	shift := testShift(model.ShiftStatusActive)
	shift.StartTime = "garbage"

	assert.NotPanics(t, func() {
		alert := engine.ExpiryCheck(shift, at(4, 0))
		assert.False(t, alert.Visible)
	})
}

func TestExpiryCheckCustomThresholds(t *testing.T) {
	engine := NewEngine(Config{
		UrgentThreshold:   24 * time.Hour,
		WarningThreshold:  48 * time.Hour,
		CriticalThreshold: 12 * time.Hour,
	}, zap.NewNop())

	shift := testShift(model.ShiftStatusActive)

	// 30 часов до начала: видно при пороге 48ч
	alert := engine.ExpiryCheck(shift, time.Date(2024, 5, 31, 3, 0, 0, 0, time.Local))
	assert.True(t, alert.Visible)
	assert.False(t, alert.Urgent)

	// 10 часов до начала: срочно при пороге 12ч
	alert = engine.ExpiryCheck(shift, time.Date(2024, 5, 31, 23, 0, 0, 0, time.Local))
	assert.True(t, alert.Visible)
	assert.True(t, alert.Urgent)
}
