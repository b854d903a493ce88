package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// New builds the process logger. level is one of debug, info, warn, error;
// format is text, json or logfmt.
func New(w io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	var f log.Formatter
	switch strings.ToLower(format) {
	case "", "text":
		f = log.TextFormatter
	case "json":
		f = log.JSONFormatter
	case "logfmt":
		f = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("log format %q: want text, json or logfmt", format)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       f,
		ReportTimestamp: true,
		Prefix:          "fastakit",
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// Warnf logs a warning unless quiet is set.
func Warnf(l *log.Logger, quiet bool, format string, a ...any) {
	if quiet || l == nil {
		return
	}
	l.Warnf(format, a...)
}
