package ui

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestLoggerDefaultsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	// The nop handler reports disabled for every level.
	if l.Enabled(t.Context(), slog.LevelError) {
		t.Fatal("default logger should be disabled")
	}
}

func TestSetLoggerRoundtrip(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))
	SetLogger(custom)
	if Logger() != custom {
		t.Fatal("Logger() did not return the configured logger")
	}

	Logger().Info("hello")
	if buf.Len() == 0 {
		t.Fatal("configured logger produced no output")
	}

	// nil restores the silent default.
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Fatal("SetLogger(nil) should restore the silent logger")
	}
}
