package logger_test

import (
	"bytes"
	"errors"
	"reziro/config"
	"reziro/shared/logger"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	})

	return &buf
}

func TestInitLogger(t *testing.T) {
	captureLogs(t)

	logger.InitLogger()

	assert.Equal(t, time.RFC3339Nano, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	buf := captureLogs(t)

	logger.ErrorWithStack(errors.New("failed to save: partners"))

	assert.Contains(t, buf.String(), `"error":"failed to save: partners"`)
	assert.Contains(t, buf.String(), `"stack":`)
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		env           string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{logLevel: "disabled", expectedLevel: zerolog.Disabled},
		{logLevel: "invalid_level", expectedLevel: zerolog.TraceLevel},
		{logLevel: "", expectedLevel: zerolog.TraceLevel},
		{env: "production", logLevel: "", expectedLevel: zerolog.InfoLevel},
		{env: "production", logLevel: "warn", expectedLevel: zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.logLevel, func(t *testing.T) {
			captureLogs(t)

			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestForTable(t *testing.T) {
	buf := captureLogs(t)

	scoped := logger.ForTable("u-1", "partners")
	scoped.Warn().Msg("stripped unknown columns")

	assert.Contains(t, buf.String(), `"userId":"u-1"`)
	assert.Contains(t, buf.String(), `"table":"partners"`)

	buf.Reset()

	account := logger.ForAccount("u-2")
	account.Info().Msg("state loaded")

	assert.Contains(t, buf.String(), `"userId":"u-2"`)
}
