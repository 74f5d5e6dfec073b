package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Threshold != 127 || c.CanvasWidth != 600 || c.CanvasHeight != 600 || c.ResultWidth != 280 || c.ResultHeight != 200 {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestValidate_Clamps(t *testing.T) {
	c := &Config{Threshold: 400, CanvasWidth: 10, CanvasHeight: -1, ResultWidth: 0, ResultHeight: 49, LogLevel: "LOUD"}
	_ = c.Validate()
	if c.Threshold != 255 || c.CanvasWidth != 600 || c.CanvasHeight != 600 || c.ResultWidth != 280 || c.ResultHeight != 200 || c.LogLevel != "info" {
		t.Fatalf("unexpected validated config %+v", c)
	}
	c.Threshold = -3
	c.LogLevel = "DEBUG"
	_ = c.Validate()
	if c.Threshold != 0 || c.LogLevel != "debug" {
		t.Fatalf("unexpected validated config %+v", c)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Threshold != 127 {
		t.Fatalf("expected default threshold, got %d", cfg.Threshold)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	c := DefaultConfig()
	c.Threshold = 42
	c.LiveRethreshold = true
	c.LastDir = "/tmp/images"
	if err := c.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Threshold != 42 || !got.LiveRethreshold || got.LastDir != "/tmp/images" || got.CanvasWidth != 600 {
		t.Fatalf("unexpected loaded config %+v", got)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if cfg == nil || cfg.Threshold != 127 {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ROIBIN_THRESHOLD", "33")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Threshold != 33 {
		t.Fatalf("expected env override, got %d", cfg.Threshold)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		" info ":  slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want %v", in, got, want)
		}
	}
}
