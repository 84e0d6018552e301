package logging_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/tenantops/dugrow/pkg/logging"
)

func TestSetupLoggerVerbosityLevels(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{verbosity: 0, want: zerolog.InfoLevel},
		{verbosity: 1, want: zerolog.DebugLevel},
		{verbosity: 2, want: zerolog.TraceLevel},
		{verbosity: 5, want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel())
	}
}

func TestGetLogger(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	logging.SetupLogger(0)

	logger := logging.GetLogger("monitor")
	// Component loggers must be usable without further setup.
	logger.Info().Msg("hello")
}
