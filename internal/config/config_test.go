package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HABITUAL_DB", "")
	t.Setenv("HABITUAL_MODEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.DBPath == "" {
		t.Error("db path default not applied")
	}
	if cfg.Model != "" {
		t.Errorf("model should default empty (resolved downstream), got %q", cfg.Model)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("HABITUAL_DB", "")
	t.Setenv("HABITUAL_MODEL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "db_path: /tmp/h.db\nmodel: claude-3-5-haiku-20241022\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DBPath != "/tmp/h.db" {
		t.Errorf("db_path = %q", cfg.DBPath)
	}
	if cfg.Model != "claude-3-5-haiku-20241022" {
		t.Errorf("model = %q", cfg.Model)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: /tmp/file.db\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HABITUAL_DB", "/tmp/env.db")
	t.Setenv("HABITUAL_MODEL", "claude-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DBPath != "/tmp/env.db" {
		t.Errorf("env override lost: %q", cfg.DBPath)
	}
	if cfg.Model != "claude-test" {
		t.Errorf("model env override lost: %q", cfg.Model)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: [oops\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
