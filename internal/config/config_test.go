package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigEmptyPathIsZeroValue(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("LoadConfig(\"\") = %+v, want zero value", cfg)
	}
}

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "bits: 20\nseed: 42\nlog_level: debug\nlog_file: /tmp/chordsim.log\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{Bits: 20, Seed: 42, LogLevel: "debug", LogFile: "/tmp/chordsim.log"}
	if cfg != want {
		t.Errorf("LoadConfig = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/chordsim-config.yaml"); err == nil {
		t.Error("expected an error loading a nonexistent config path")
	}
}

func TestValidateConfigRejectsBadBits(t *testing.T) {
	cfg := Config{Bits: 32}
	if err := cfg.ValidateConfig(); err == nil {
		t.Error("expected error for bits == 32")
	}
	cfg = Config{Bits: -1}
	if err := cfg.ValidateConfig(); err == nil {
		t.Error("expected error for negative bits")
	}
}

func TestValidateConfigRejectsBadLogLevel(t *testing.T) {
	cfg := Config{LogLevel: "verbose"}
	if err := cfg.ValidateConfig(); err == nil {
		t.Error("expected error for unrecognized log level")
	}
}

func TestValidateConfigAcceptsZeroValue(t *testing.T) {
	if err := (Config{}).ValidateConfig(); err != nil {
		t.Errorf("zero-value Config should validate, got %v", err)
	}
}
