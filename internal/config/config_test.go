package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("id_prefix: ACME\nserver:\n  listen_addr: \":9090\"\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.IDPrefix != "ACME" {
		t.Fatalf("expected id_prefix ACME, got %q", cfg.IDPrefix)
	}
	if cfg.Server.ListenAddr != ":9090" {
		t.Fatalf("expected listen_addr :9090, got %q", cfg.Server.ListenAddr)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging.level debug, got %q", cfg.Logging.Level)
	}
	if cfg.OCR.Engine != "tesseract" {
		t.Fatalf("expected default ocr.engine tesseract, got %q", cfg.OCR.Engine)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
