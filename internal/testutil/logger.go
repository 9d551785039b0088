// Package testutil contains helpers shared by the package tests.
package testutil

import (
	"bytes"
	"log/slog"
	"testing"
)

// NewTestLogger returns a debug-level slog.Logger routed through tb.Log,
// so log lines attach to the test that produced them instead of stderr.
func NewTestLogger(tb testing.TB) *slog.Logger {
	handler := slog.NewTextHandler(logWriter{tb}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler)
}

type logWriter struct {
	tb testing.TB
}

func (w logWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	w.tb.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}
