package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		level          string
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{name: "Valid log level info", level: "info", expectedLogLvl: zapcore.InfoLevel},
		{name: "Valid log level warn", level: "warn", expectedLogLvl: zapcore.WarnLevel},
		{name: "Valid log level error", level: "error", expectedLogLvl: zapcore.ErrorLevel},
		{name: "Valid log level debug", level: "debug", expectedLogLvl: zapcore.DebugLevel},
		{name: "Invalid log level", level: "invalid", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.level)

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expectedLogLvl, zap.L().Level())
		})
	}
}
