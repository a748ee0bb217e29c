package logger

import (
	"os"
	"reziro/config"
	"reziro/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

const (
	fieldUserID = "userId"
	fieldTable  = "table"
	fieldApp    = "app"
)

// InitLogger installs a human-readable console logger at trace level. It runs
// before config is loaded; SetLogLevel narrows it afterwards.
func InitLogger() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
}

// ErrorWithStack logs err with the stack of the caller attached.
func ErrorWithStack(err error) {
	log.Error().Stack().Err(errors.WithStack(err)).Msg("unexpected error")
}

// SetLogLevel applies SERVER_LOG_LEVEL. An unset or unknown level falls back
// to info in production and trace elsewhere. Production writes JSON lines.
func SetLogLevel(cfg *config.Config) {
	production := cfg.Server.Env == constant.ServerEnvProduction

	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == constant.Empty {
		level = zerolog.TraceLevel
		if production {
			level = zerolog.InfoLevel
		}
	}

	if production {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str(fieldApp, cfg.App.Name).Logger()
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("level", level.String()).Msg("log level set")
}

// ForAccount scopes log lines to one hotel account.
func ForAccount(userID string) zerolog.Logger {
	return log.With().Str(fieldUserID, userID).Logger()
}

// ForTable scopes log lines to one account and remote table.
func ForTable(userID, table string) zerolog.Logger {
	return log.With().Str(fieldUserID, userID).Str(fieldTable, table).Logger()
}
