package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/vmunix/kconfmerge/internal/config"
	"github.com/vmunix/kconfmerge/internal/importer"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger_Level(t *testing.T) {
	log := newLogger("error", false)
	ctx := context.Background()

	if log.Enabled(ctx, slog.LevelDebug) {
		t.Error("debug should be disabled at error level")
	}
	if !log.Enabled(ctx, slog.LevelError) {
		t.Error("error should be enabled at error level")
	}
}

func TestResolveOverwrite(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		cfg     string
		want    importer.OverwritePolicy
		wantErr bool
	}{
		{"default", "", "", importer.OverwriteAlways, false},
		{"from config", "", "never", importer.OverwriteNever, false},
		{"flag overrides config", "always", "never", importer.OverwriteAlways, false},
		{"invalid flag", "sometimes", "", "", true},
		{"invalid config", "", "sometimes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := overwrite
			overwrite = tt.flag
			defer func() { overwrite = orig }()

			cfg := &config.Config{Output: config.OutputConfig{Overwrite: tt.cfg}}
			got, err := resolveOverwrite(cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
