package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Zachkp/folio/internal/config"
)

// NewLogger creates a configured zerolog.Logger instance
func NewLogger(cfg *config.Config) zerolog.Logger {
	return newLogger(os.Stdout, cfg.Debug)
}

func newLogger(out io.Writer, debug bool) zerolog.Logger {
	logWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(logWriter).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()
}

// FxLogger sends fx's own lifecycle events through the application logger
// when DEBUG is on, and drops them otherwise.
func FxLogger(cfg *config.Config, logger zerolog.Logger) fxevent.Logger {
	if !cfg.Debug {
		return fxevent.NopLogger
	}
	return &fxevent.ConsoleLogger{W: logger}
}

func Module() fx.Option {
	return fx.Module(
		"log",
		fx.Provide(NewLogger),
	)
}
