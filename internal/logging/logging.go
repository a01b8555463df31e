// Package logging builds the leveled stderr logger shared by commands.
package logging

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Debug output is enabled when debug is
// true; otherwise only warnings and errors are shown so normal command
// output stays clean.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "statetheme",
		Level:           level,
		ReportTimestamp: debug,
	})
}

// Discard returns a logger that drops everything. Commands fall back to it
// when no logger was attached to their context.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

type ctxKey struct{}

// WithContext attaches l to ctx.
func WithContext(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger attached by WithContext, or a discarding
// logger when there is none.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Discard()
	}
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok && l != nil {
		return l
	}
	return Discard()
}
