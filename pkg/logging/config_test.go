package logging

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"disabled", zerolog.Disabled},
		{"off", zerolog.Disabled},
		{"INFO", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimeFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"kitchen", time.Kitchen},
		{"rfc3339", time.RFC3339},
		{"unix", ""},
		{"stamp", time.Stamp},
		{"15:04:05", "15:04:05"},
		{"nonsense", time.Kitchen},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseTimeFormat(tt.input); got != tt.want {
				t.Errorf("parseTimeFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFields(t *testing.T) {
	fields := parseFields("tool=romcheck,run=nightly")
	if len(fields) != 2 {
		t.Fatalf("Expected 2 fields, got %d", len(fields))
	}
	if fields["tool"] != "romcheck" {
		t.Errorf("Expected tool=romcheck, got %v", fields["tool"])
	}
	if fields["run"] != "nightly" {
		t.Errorf("Expected run=nightly, got %v", fields["run"])
	}

	if got := parseFields(""); len(got) != 0 {
		t.Errorf("Expected empty map for empty input, got %v", got)
	}

	// Malformed pairs are skipped
	if got := parseFields("novalue"); len(got) != 0 {
		t.Errorf("Expected malformed pair to be skipped, got %v", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("Expected default level info, got %s", cfg.Level)
	}
	if cfg.Format != "auto" {
		t.Errorf("Expected default format auto, got %s", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("Expected default output stderr, got %s", cfg.Output)
	}
}
