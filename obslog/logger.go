// Package obslog is a thin structured-logging wrapper over zerolog, used by
// mcmc and the command-line tools for progress reporting.
package obslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatJSON emits one JSON object per line (the zerolog default).
	FormatJSON Format = "json"
	// FormatText emits a human-readable console format.
	FormatText Format = "text"
)

// Config configures a Logger.
type Config struct {
	Level  zerolog.Level
	Format Format
	Output io.Writer
}

// Logger wraps a configured zerolog.Logger.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger from cfg, defaulting Output to stderr when cfg.Output
// is nil.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	var out io.Writer = cfg.Output
	if cfg.Format == FormatText {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339, NoColor: false}
	}

	return &Logger{z: zerolog.New(out).With().Timestamp().Logger().Level(cfg.Level)}
}

// Info logs a structured info-level event.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.event(l.z.Info(), fields).Msg(msg)
}

// Warn logs a structured warn-level event.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.event(l.z.Warn(), fields).Msg(msg)
}

// Error logs a structured error-level event.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.event(l.z.Error(), fields).Msg(msg)
}

func (l *Logger) event(e *zerolog.Event, fields map[string]interface{}) *zerolog.Event {
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	return e
}

// Nop returns a Logger that discards everything, for tests and library
// callers that have not opted into logging.
func Nop() *Logger {
	return &Logger{z: zerolog.Nop()}
}
