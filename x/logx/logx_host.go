//go:build !(rp2040 || rp2350)

package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05.000"}).
		With().Timestamp().Logger()
}

// SetOutput redirects log lines to w.
func SetOutput(w io.Writer) { logger = newLogger(w) }

// SetLevel filters out lines below lvl.
func SetLevel(lvl Level) {
	switch lvl {
	case LevelDebug:
		logger = logger.Level(zerolog.DebugLevel)
	case LevelWarn:
		logger = logger.Level(zerolog.WarnLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}
}

func Debug(component, msg string, kv ...any) { emit(logger.Debug(), component, msg, kv) }
func Info(component, msg string, kv ...any)  { emit(logger.Info(), component, msg, kv) }
func Warn(component, msg string, kv ...any)  { emit(logger.Warn(), component, msg, kv) }

func emit(ev *zerolog.Event, component, msg string, kv []any) {
	if ev == nil {
		return
	}
	ev = ev.Str("component", component)
	if len(kv) > 0 {
		ev = ev.Fields(kv)
	}
	ev.Msg(msg)
}
