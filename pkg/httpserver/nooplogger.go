package httpserver

import (
	"context"
	"log/slog"
)

// discardHandler is the slog.Handler used when no logger option is given.
// It reports every level as disabled so record formatting never runs.
type discardHandler struct{}

func (d discardHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (d discardHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (d discardHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return d }
func (d discardHandler) WithGroup(_ string) slog.Handler               { return d }

// newNoopLogger returns a logger that drops everything written to it.
func newNoopLogger() *slog.Logger {
	return slog.New(discardHandler{})
}
