package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "debug console", level: "debug", format: "console"},
		{name: "info json", level: "info", format: "json"},
		{name: "warn console", level: "warn", format: "console"},
		{name: "error json", level: "error", format: "json"},
		{name: "bad level", level: "verbose", format: "console", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetupLogger(tt.level, tt.format)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserError(t *testing.T) {
	t.Run("wraps an underlying error", func(t *testing.T) {
		inner := errors.New("disk full")
		err := NewUserError("could not write export", inner)

		assert.Contains(t, err.Error(), "could not write export")
		assert.ErrorIs(t, err, inner)
	})

	t.Run("message only", func(t *testing.T) {
		err := NewUserError("invalid risk filter", nil)

		assert.Equal(t, "invalid risk filter", err.Error())
		assert.NoError(t, errors.Unwrap(err))
	})
}
