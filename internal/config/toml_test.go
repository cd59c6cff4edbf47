package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[practice]\nlang = \"en\"\nwords = 50\ncaps = 0.25\nwrap-width = 72\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Practice.Lang == nil || *cfg.Practice.Lang != "en" {
		t.Fatalf("expected lang en, got %v", cfg.Practice.Lang)
	}
	if cfg.Practice.Words == nil || *cfg.Practice.Words != 50 {
		t.Fatalf("expected words 50, got %v", cfg.Practice.Words)
	}
	if cfg.Practice.CapsPct == nil || *cfg.Practice.CapsPct != 0.25 {
		t.Fatalf("expected caps 0.25, got %v", cfg.Practice.CapsPct)
	}
	if cfg.Practice.WrapWidth == nil || *cfg.Practice.WrapWidth != 72 {
		t.Fatalf("expected wrap-width 72, got %v", cfg.Practice.WrapWidth)
	}
	if cfg.Practice.PunctPct != nil {
		t.Fatalf("expected unset punct to stay nil, got %v", *cfg.Practice.PunctPct)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing config must not be an error, got %v", err)
	}
	if cfg.Practice.Lang != nil {
		t.Fatalf("expected empty config for missing file")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice\nlang ="), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error for malformed config")
	}
}
