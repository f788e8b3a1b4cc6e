package specimen

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLogger_SilentByDefault(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Error("configured logger produced no output")
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Info("dropped")
	if buf.Len() != 0 {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
