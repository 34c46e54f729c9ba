package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithRun(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo).WithRun(6, 7).Info("search started")

	out := buf.String()
	for _, want := range []string{"search started", "size=6", "target=7"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %q", out, want)
		}
	}
}

func TestOpen(t *testing.T) {
	l, err := Open("", "info")
	if err != nil {
		t.Fatalf("open noop: %v", err)
	}
	l.Error("dropped")
	if err := l.Close(); err != nil {
		t.Errorf("close noop: %v", err)
	}

	path := filepath.Join(t.TempDir(), "bsviz.log")
	l, err = Open(path, "debug")
	if err != nil {
		t.Fatalf("open file: %v", err)
	}
	l.Debug("hello", "k", 1)
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Errorf("log file missing record: %q", data)
	}
}
