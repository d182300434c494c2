package utils

import (
	"bytes"
	"errors"
	"fmt"
	"slotfinder/internal/pkg/constvars"
	"slotfinder/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildErrorOutput(t *testing.T) {
	t.Run("Prints The Client Message Of A Custom Error", func(t *testing.T) {
		var out bytes.Buffer

		BuildErrorOutput(zap.NewNop(), &out, exceptions.ErrNoScheduleFound())

		assert.Equal(t, "ERROR: "+constvars.ErrClientNoScheduleFound+"\n", out.String())
	})

	t.Run("Wrapped Custom Errors Are Unwrapped", func(t *testing.T) {
		var out bytes.Buffer
		wrapped := fmt.Errorf("query failed: %w", exceptions.ErrDurationNotPositive())

		BuildErrorOutput(zap.NewNop(), &out, wrapped)

		assert.Equal(t, "ERROR: "+constvars.ErrClientDurationNotPositive+"\n", out.String())
	})

	t.Run("Unknown Errors Fall Back To A Generic Message", func(t *testing.T) {
		var out bytes.Buffer

		BuildErrorOutput(zap.NewNop(), &out, errors.New("boom"))

		assert.Equal(t, "ERROR: "+constvars.ErrClientSomethingWrongWithApplication+"\n", out.String())
	})
}
