package utils

import (
	"slotfinder/internal/app/models"
	"slotfinder/internal/pkg/constvars"
	"time"
)

// ParseClock converts an HH:MM string into a ClockTime.
func ParseClock(value string) (models.ClockTime, error) {
	parsed, err := time.Parse(constvars.ClockLayout, value)
	if err != nil {
		return 0, err
	}
	return models.NewClockTime(parsed.Hour(), parsed.Minute()), nil
}

// ParseDate validates a YYYY-MM-DD string and returns its canonical form.
func ParseDate(value string) (string, error) {
	parsed, err := time.Parse(constvars.DateLayout, value)
	if err != nil {
		return "", err
	}
	return parsed.Format(constvars.DateLayout), nil
}
