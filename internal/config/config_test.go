package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewWithoutSettingsFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, cfg.Dir)
	}
	if cfg.File != "" || cfg.Quiet {
		t.Errorf("expected zero settings, got %+v", cfg)
	}
}

func TestNewMergesSettingsFile(t *testing.T) {
	dir := t.TempDir()
	settings := "file: /tmp/custom-tasks.txt\nquiet: true\nlog_level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(settings), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := New(dir)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if cfg.File != "/tmp/custom-tasks.txt" {
		t.Errorf("expected file override, got %q", cfg.File)
	}
	if !cfg.Quiet {
		t.Error("expected quiet to be true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log_level debug, got %q", cfg.LogLevel)
	}
}

func TestNewInvalidSettingsFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(":\n  not yaml: ["), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := New(dir); err == nil {
		t.Fatal("expected error for invalid settings file")
	}
}

func TestDataPathOverride(t *testing.T) {
	cfg := &Config{File: "/tmp/elsewhere.txt"}
	if got := cfg.DataPath(); got != "/tmp/elsewhere.txt" {
		t.Errorf("expected override path, got %q", got)
	}
}

func TestDataPathDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := &Config{}
	want := filepath.Join("/tmp/xdg-data", AppName, DataFile)
	if got := cfg.DataPath(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTokenPaths(t *testing.T) {
	cfg := &Config{Dir: "/tmp/cfg"}
	if got := cfg.TokenPath(); got != filepath.Join("/tmp/cfg", TokenFile) {
		t.Errorf("unexpected token path %q", got)
	}
	if got := cfg.OAuthClientPath(); got != filepath.Join("/tmp/cfg", OAuthClientFile) {
		t.Errorf("unexpected oauth client path %q", got)
	}
}
