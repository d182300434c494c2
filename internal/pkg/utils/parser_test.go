package utils

import (
	"slotfinder/internal/app/models"
	"slotfinder/internal/pkg/constvars"
	"slotfinder/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSlotInput(t *testing.T) {
	t.Run("Dash-Separated Time Range", func(t *testing.T) {
		slot, err := ParseSlotInput("2026-02-15 10:00-11:30")

		assert.NoError(t, err)
		assert.Equal(t, "2026-02-15", slot.Date)
		assert.Equal(t, models.NewClockTime(10, 0), slot.Start)
		assert.Equal(t, models.NewClockTime(11, 30), slot.End)
	})

	t.Run("Space-Separated Time Range", func(t *testing.T) {
		slot, err := ParseSlotInput("2026-02-15 10:00 11:30")

		assert.NoError(t, err)
		assert.Equal(t, models.NewClockTime(10, 0), slot.Start)
		assert.Equal(t, models.NewClockTime(11, 30), slot.End)
	})

	t.Run("Surrounding Whitespace Is Ignored", func(t *testing.T) {
		slot, err := ParseSlotInput("  2026-02-15   10:00-11:30  ")

		assert.NoError(t, err)
		assert.Equal(t, "2026-02-15", slot.Date)
	})

	t.Run("Missing Time Range", func(t *testing.T) {
		slot, err := ParseSlotInput("2026-02-15")

		assert.Nil(t, slot)
		assertClientMessage(t, err, constvars.ErrClientInvalidSlotFormat)
	})

	t.Run("Malformed Date", func(t *testing.T) {
		slot, err := ParseSlotInput("15.02.2026 10:00-11:30")

		assert.Nil(t, slot)
		assertClientMessage(t, err, constvars.ErrClientInvalidSlotFormat)
	})

	t.Run("Malformed Time", func(t *testing.T) {
		slot, err := ParseSlotInput("2026-02-15 25:00-26:00")

		assert.Nil(t, slot)
		assertClientMessage(t, err, constvars.ErrClientInvalidSlotFormat)
	})

	t.Run("Start Not Before End", func(t *testing.T) {
		slot, err := ParseSlotInput("2026-02-15 11:30-10:00")

		assert.Nil(t, slot)
		assertClientMessage(t, err, constvars.ErrClientSlotStartNotBeforeEnd)
	})

	t.Run("Zero-Length Slot", func(t *testing.T) {
		slot, err := ParseSlotInput("2026-02-15 10:00-10:00")

		assert.Nil(t, slot)
		assertClientMessage(t, err, constvars.ErrClientSlotStartNotBeforeEnd)
	})
}

func TestParseDateInput(t *testing.T) {
	t.Run("Valid Date", func(t *testing.T) {
		date, err := ParseDateInput("2026-02-15")

		assert.NoError(t, err)
		assert.Equal(t, "2026-02-15", date)
	})

	t.Run("Impossible Calendar Date", func(t *testing.T) {
		date, err := ParseDateInput("2026-02-30")

		assert.Empty(t, date)
		assertClientMessage(t, err, constvars.ErrClientInvalidDateFormat)
	})

	t.Run("Wrong Layout", func(t *testing.T) {
		date, err := ParseDateInput("15/02/2026")

		assert.Empty(t, date)
		assertClientMessage(t, err, constvars.ErrClientInvalidDateFormat)
	})
}

func TestParseDurationInput(t *testing.T) {
	t.Run("Hours And Minutes", func(t *testing.T) {
		duration, err := ParseDurationInput("01:30")

		assert.NoError(t, err)
		assert.Equal(t, 90*time.Minute, duration)
	})

	t.Run("Minutes Only", func(t *testing.T) {
		duration, err := ParseDurationInput("00:45")

		assert.NoError(t, err)
		assert.Equal(t, 45*time.Minute, duration)
	})

	t.Run("Duration Above A Day Is Allowed", func(t *testing.T) {
		duration, err := ParseDurationInput("25:00")

		assert.NoError(t, err)
		assert.Equal(t, 25*time.Hour, duration)
	})

	t.Run("Zero Duration", func(t *testing.T) {
		_, err := ParseDurationInput("00:00")

		assertClientMessage(t, err, constvars.ErrClientDurationNotPositive)
	})

	t.Run("Missing Colon", func(t *testing.T) {
		_, err := ParseDurationInput("90")

		assertClientMessage(t, err, constvars.ErrClientInvalidDurationFormat)
	})

	t.Run("Non-Numeric Parts", func(t *testing.T) {
		_, err := ParseDurationInput("aa:bb")

		assertClientMessage(t, err, constvars.ErrClientInvalidDurationFormat)
	})

	t.Run("Minutes Out Of Range", func(t *testing.T) {
		_, err := ParseDurationInput("01:75")

		assertClientMessage(t, err, constvars.ErrClientInvalidDurationFormat)
	})
}

func assertClientMessage(t *testing.T, err error, clientMessage string) {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok, "expected a *exceptions.CustomError, got %T", err)
	assert.Equal(t, clientMessage, customErr.ClientMessage)
}
