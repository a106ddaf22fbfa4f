package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewTo creates a configured zerolog.Logger writing to w. The CLI passes
// stderr, leaving stdout to the terminal surface.
// level: debug, info, warn, error. pretty: human-readable console output.
//
// Writes are serialized: the poll and journal goroutines log concurrently.
func NewTo(w io.Writer, level string, pretty bool) zerolog.Logger {
	w = zerolog.SyncWriter(w)
	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Caller().
		Logger()
}

// Component returns a child logger tagged with the component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
