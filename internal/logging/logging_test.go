package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_HasComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelDebug, "text", &buf)

	New("derive").Info("hello")

	output := buf.String()
	if !strings.Contains(output, "component=derive") {
		t.Errorf("expected component=derive in output, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("expected 'hello' in output, got: %s", output)
	}
}

func TestInit_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelInfo, "json", &buf)

	slog.Info("loaded", "records", 56)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "loaded" {
		t.Errorf("msg = %v, want loaded", entry["msg"])
	}
}

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelWarn, "text", &buf)

	slog.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info message logged at warn level: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
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
