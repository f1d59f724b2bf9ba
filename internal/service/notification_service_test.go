package service

import (
	"testing"

	"github.com/medicall/medicall/internal/lifecycle"
	"github.com/medicall/medicall/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestReminderTitle(t *testing.T) {
	assert.Equal(t, "Shift Expiring Soon", reminderTitle(false))
	assert.Equal(t, "Urgent: Shift Expiring Soon!", reminderTitle(true))
}

func TestReminderMessage(t *testing.T) {
	shift := &model.Shift{
		Role:          "ICU Nurse",
		Department:    "ICU",
		PayPerHour:    55,
		DurationHours: 8,
	}
	alert := lifecycle.ExpiryAlert{
		Visible:   true,
		Countdown: lifecycle.Countdown{Display: "5h 30m"},
	}

	assert.Equal(t,
		"ICU Nurse (ICU) starts in 5h 30m and is still unfilled. Pay: $55.00/hr ($440.00 total).",
		reminderMessage(shift, alert))
}
