package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeyya18/leakcalc/internal/leakage"
)

func TestSkipOnInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantSkip bool
	}{
		{"invalid input", fmt.Errorf("%w: pressure is empty", leakage.ErrInvalidInput), true},
		{"recovered panic", fmt.Errorf("%w: boom", leakage.ErrCalculationFailed), true},
		{"other error", errors.New("disk full"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			saved := logger
			logger = zerolog.New(&buf)
			t.Cleanup(func() { logger = saved })

			err := skipOnInvalid(context.Background(), tt.err)
			if !tt.wantSkip {
				require.ErrorIs(t, err, tt.err)
				assert.Empty(t, buf.String())
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), `"level":"warn"`)
			assert.Contains(t, buf.String(), "calculation skipped")
		})
	}
}
