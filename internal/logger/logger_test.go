package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		development bool
		want        zapcore.Level
	}{
		{"production info", "info", false, zapcore.InfoLevel},
		{"development debug", "debug", true, zapcore.DebugLevel},
		{"warn", "warn", false, zapcore.WarnLevel},
		{"invalid defaults to info", "loud", false, zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLogger(tt.level, tt.development)
			require.NoError(t, err)
			require.NotNil(t, l)
			assert.True(t, l.Desugar().Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Desugar().Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.False(t, l.Desugar().Core().Enabled(zapcore.ErrorLevel))
	l.WithFields("depth", 25).WithError(errors.New("boom")).Info("discarded")
}
