package exceptions

import (
	"errors"
	"slotfinder/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type validatedFeedDay struct {
	Date  string `validate:"required,datetime=2006-01-02"`
	Start string `validate:"required,datetime=15:04"`
}

func TestFormatAllValidationErrors(t *testing.T) {
	validate := validator.New()

	t.Run("Lists Every Failing Field", func(t *testing.T) {
		err := validate.Struct(validatedFeedDay{Date: "15.02.2026"})

		formatted := FormatAllValidationErrors(err)

		assert.Contains(t, formatted, "date must match the format 2006-01-02")
		assert.Contains(t, formatted, "start is required")
	})

	t.Run("Nil Error Falls Back To Generic Message", func(t *testing.T) {
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatAllValidationErrors(nil))
	})
}

func TestErrScheduleFeedValidation(t *testing.T) {
	validate := validator.New()

	t.Run("Validator Errors Are Formatted Into The Dev Message", func(t *testing.T) {
		err := validate.Struct(validatedFeedDay{Date: "15.02.2026", Start: "09:00"})

		customErr := ErrScheduleFeedValidation(err)

		assert.Equal(t, constvars.ErrClientInvalidScheduleFeed, customErr.ClientMessage)
		assert.True(t, strings.HasPrefix(customErr.DevMessage, constvars.ErrDevScheduleFeedValidationFail))
		assert.Contains(t, customErr.DevMessage, "date must match the format 2006-01-02")
	})

	t.Run("Other Errors Pass Through Unformatted", func(t *testing.T) {
		customErr := ErrScheduleFeedValidation(errors.New("cannot parse \"25:00\""))

		assert.Contains(t, customErr.DevMessage, "cannot parse \"25:00\"")
	})
}
