package logger_test

import (
	"testing"

	"smartlogi/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		level    string
		expected zapcore.Level
	}{
		{level: "", expected: zapcore.InfoLevel},
		{level: "debug", expected: zapcore.DebugLevel},
		{level: "warn", expected: zapcore.WarnLevel},
		{level: "error", expected: zapcore.ErrorLevel},
	}

	for _, tc := range testCases {
		t.Run("level_"+tc.level, func(t *testing.T) {
			log, err := logger.New(tc.level)
			require.NoError(t, err)

			assert.True(t, log.Core().Enabled(tc.expected))
			assert.False(t, log.Core().Enabled(tc.expected-1))
		})
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := logger.New("loud")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}
