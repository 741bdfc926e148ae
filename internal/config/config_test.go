package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 0 {
		t.Errorf("expected zero timeout, got %v", cfg.Timeout)
	}
}

func TestLoadReadsValues(t *testing.T) {
	path := writeConfig(t, `
base_url: https://boards.example.com/api
timeout: 15s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != "https://boards.example.com/api" {
		t.Errorf("unexpected base URL %q", cfg.BaseURL)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("unexpected timeout %v", cfg.Timeout)
	}
}

func TestLoadSubstitutesEnvVars(t *testing.T) {
	t.Setenv("TEAMBOARD_TEST_HOST", "boards.internal")
	path := writeConfig(t, "base_url: http://${TEAMBOARD_TEST_HOST}/api\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != "http://boards.internal/api" {
		t.Errorf("expected env substitution, got %q", cfg.BaseURL)
	}
}

func TestLoadKeepsUnsetEnvVarLiteral(t *testing.T) {
	path := writeConfig(t, "base_url: http://${TEAMBOARD_TEST_UNSET_VAR}/api\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !strings.Contains(cfg.BaseURL, "${TEAMBOARD_TEST_UNSET_VAR}") {
		t.Errorf("expected the unset placeholder kept as-is, got %q", cfg.BaseURL)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty base url", `base_url: ""`},
		{"bad scheme", "base_url: ftp://example.com\n"},
		{"negative timeout", "timeout: -5s\n"},
		{"not yaml", "{{{{\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDefaultPathHonorsOverride(t *testing.T) {
	t.Setenv("TEAMBOARD_CONFIG", "/tmp/override.yaml")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath failed: %v", err)
	}
	if path != "/tmp/override.yaml" {
		t.Errorf("expected the override path, got %q", path)
	}
}
