package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemainingTimeFormats(t *testing.T) {
	target := time.Date(2024, 6, 1, 17, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		now     time.Time
		expired bool
		display string
	}{
		{"one hour left", target.Add(-1 * time.Hour), false, "1h 0m"},
		{"minutes only", target.Add(-45 * time.Minute), false, "45m"},
		{"hours and minutes", target.Add(-3*time.Hour - 25*time.Minute), false, "3h 25m"},
		{"days and hours", target.Add(-50 * time.Hour), false, "2d 2h"},
		{"exactly one day", target.Add(-24 * time.Hour), false, "1d 0h"},
		{"just under an hour", target.Add(-59*time.Minute - 59*time.Second), false, "59m"},
		{"at target", target, true, "Expired"},
		{"past target", target.Add(30 * time.Minute), true, "Expired"},
		{"far past target", target.Add(100 * time.Hour), true, "Expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := RemainingTime(target, tt.now)
			assert.Equal(t, tt.expired, cd.Expired)
			assert.Equal(t, tt.display, cd.Display)
		})
	}
}

// Секунды отбрасываются вниз: 1m59s остатка это всё ещё "1m"
func TestRemainingTimeFloorsSeconds(t *testing.T) {
	target := time.Date(2024, 6, 1, 17, 0, 0, 0, time.Local)

	cd := RemainingTime(target, target.Add(-1*time.Minute-59*time.Second))
	assert.False(t, cd.Expired)
	assert.Equal(t, "1m", cd.Display)
}

// Остаток не растёт по мере приближения now к цели
func TestRemainingTimeMonotonic(t *testing.T) {
	target := time.Date(2024, 6, 3, 12, 0, 0, 0, time.Local)
	now := target.Add(-72 * time.Hour)

	prev := target.Sub(now)
	for now.Before(target.Add(time.Hour)) {
		cd := RemainingTime(target, now)
		remaining := target.Sub(now)
		assert.LessOrEqual(t, remaining, prev)
		if remaining <= 0 {
			assert.True(t, cd.Expired)
			assert.Equal(t, "Expired", cd.Display)
		} else {
			assert.False(t, cd.Expired)
			assert.NotEmpty(t, cd.Display)
		}
		prev = remaining
		now = now.Add(17 * time.Minute)
	}
}

func TestRemainingTimeIdempotent(t *testing.T) {
	target := time.Date(2024, 6, 1, 17, 0, 0, 0, time.Local)
	now := target.Add(-5 * time.Hour)

	assert.Equal(t, RemainingTime(target, now), RemainingTime(target, now))
}
