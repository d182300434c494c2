package utils

import (
	"errors"
	"fmt"
	"slotfinder/internal/app/models"
	"slotfinder/internal/pkg/exceptions"
	"strconv"
	"strings"
	"time"
)

// ParseSlotInput parses a user-provided slot in the form
// "YYYY-MM-DD HH:MM-HH:MM". The time range may also be given as two
// space-separated HH:MM values.
func ParseSlotInput(raw string) (*models.Slot, error) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) < 2 {
		return nil, exceptions.ErrInvalidSlotInput(errors.New("expected a date and a time range"))
	}

	date, err := ParseDate(fields[0])
	if err != nil {
		return nil, exceptions.ErrInvalidSlotInput(err)
	}

	timeTokens := fields[1:]
	if len(timeTokens) == 1 {
		timeTokens = strings.Split(timeTokens[0], "-")
	}
	if len(timeTokens) < 2 {
		return nil, exceptions.ErrInvalidSlotInput(errors.New("expected a start and an end time"))
	}

	start, err := ParseClock(timeTokens[0])
	if err != nil {
		return nil, exceptions.ErrInvalidSlotInput(err)
	}
	end, err := ParseClock(timeTokens[len(timeTokens)-1])
	if err != nil {
		return nil, exceptions.ErrInvalidSlotInput(err)
	}

	if start >= end {
		return nil, exceptions.ErrSlotStartNotBeforeEnd()
	}

	return &models.Slot{Date: date, Start: start, End: end}, nil
}

// ParseDateInput parses a user-provided YYYY-MM-DD date.
func ParseDateInput(raw string) (string, error) {
	date, err := ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return "", exceptions.ErrInvalidDateInput(err)
	}
	return date, nil
}

// ParseDurationInput parses a user-provided HH:MM duration. The duration must
// be strictly positive.
func ParseDurationInput(raw string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return 0, exceptions.ErrInvalidDurationInput(fmt.Errorf("expected HH:MM, got %q", raw))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, exceptions.ErrInvalidDurationInput(err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, exceptions.ErrInvalidDurationInput(err)
	}
	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, exceptions.ErrInvalidDurationInput(fmt.Errorf("values out of range in %q", raw))
	}

	duration := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if duration <= 0 {
		return 0, exceptions.ErrDurationNotPositive()
	}
	return duration, nil
}
