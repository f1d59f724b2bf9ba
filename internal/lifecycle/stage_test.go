package lifecycle

import (
	"testing"
	"time"

	"github.com/medicall/medicall/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestLifecycleStagePrecedence(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name       string
		status     model.ShiftStatus
		applicants int
		now        time.Time
		want       Stage
	}{
		// cancelled побеждает всё: и отклики, и час до конца
		{"cancelled beats urgent and applications", model.ShiftStatusCancelled, 5, at(16, 0), StageCancelled},
		{"filled beats urgent", model.ShiftStatusFilled, 2, at(16, 0), StageFilled},
		{"expired beats applications", model.ShiftStatusActive, 3, at(18, 0), StageExpired},
		// до конца 1 час: urgent важнее откликов
		{"urgent beats applications", model.ShiftStatusActive, 3, at(16, 0), StageUrgent},
		// до конца 30 часов, есть отклики
		{"applications when not urgent", model.ShiftStatusActive, 3,
			time.Date(2024, 5, 31, 11, 0, 0, 0, time.Local), StageApplications},
		// до конца 30 часов, откликов нет
		{"plain active", model.ShiftStatusActive, 0,
			time.Date(2024, 5, 31, 11, 0, 0, 0, time.Local), StageActive},
		// до конца 10 часов, откликов нет
		{"urgent within threshold", model.ShiftStatusActive, 0, at(7, 0), StageUrgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shift := testShift(tt.status)
			shift.ApplicantCount = tt.applicants

			assert.Equal(t, tt.want, engine.LifecycleStage(shift, tt.now))
		})
	}
}

func TestLifecycleStageMalformed(t *testing.T) {
	engine := newTestEngine()
	shift := testShift(model.ShiftStatusActive)
	shift.Date = "not-a-date"
	shift.ApplicantCount = 4

	assert.Equal(t, StageExpired, engine.LifecycleStage(shift, at(12, 0)))
}

func TestLifecycleStageIdempotent(t *testing.T) {
	engine := newTestEngine()
	shift := testShift(model.ShiftStatusActive)
	shift.ApplicantCount = 1
	now := at(10, 0)

	assert.Equal(t, engine.LifecycleStage(shift, now), engine.LifecycleStage(shift, now))
}

func TestTimeline(t *testing.T) {
	engine := newTestEngine()

	t.Run("active shift without applicants", func(t *testing.T) {
		shift := testShift(model.ShiftStatusActive)
		// до конца 30 часов
		stages := engine.Timeline(shift, time.Date(2024, 5, 31, 11, 0, 0, 0, time.Local))

		assert.Len(t, stages, 5)
		assert.Equal(t, StageCreated, stages[0].ID)
		assert.True(t, stages[0].Completed)
		assert.True(t, stages[1].Current) // active
		assert.False(t, stages[2].Completed)
		assert.False(t, stages[3].Completed)
		assert.False(t, stages[4].Completed)
	})

	t.Run("filled shift", func(t *testing.T) {
		shift := testShift(model.ShiftStatusFilled)
		shift.ApplicantCount = 2
		stages := engine.Timeline(shift, at(12, 0))

		assert.True(t, stages[2].Completed) // applications
		assert.True(t, stages[3].Completed) // urgent пройдена на пути к filled
		assert.True(t, stages[4].Current)
		assert.True(t, stages[4].Completed)
	})

	t.Run("urgent shift", func(t *testing.T) {
		shift := testShift(model.ShiftStatusActive)
		stages := engine.Timeline(shift, at(16, 0))

		assert.True(t, stages[3].Current)
		assert.True(t, stages[3].Completed)
		assert.False(t, stages[4].Completed)
	})
}
