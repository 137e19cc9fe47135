package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(envBackendURL, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BackendURL != defaultBackendURL {
		t.Fatalf("BackendURL = %q, want %q", cfg.BackendURL, defaultBackendURL)
	}
	if cfg.PollInterval != defaultPollSeconds*time.Second {
		t.Fatalf("PollInterval = %v, want %v", cfg.PollInterval, defaultPollSeconds*time.Second)
	}
	if cfg.QueryTimeout != defaultQueryTimeoutSeconds*time.Second {
		t.Fatalf("QueryTimeout = %v, want %v", cfg.QueryTimeout, defaultQueryTimeoutSeconds*time.Second)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(envBackendURL, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
backend_url = "  https://movies.example.com  "
poll_seconds = 10
query_timeout_seconds = 120
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BackendURL != "https://movies.example.com" {
		t.Fatalf("BackendURL = %q, want trimmed URL", cfg.BackendURL)
	}
	if cfg.PollInterval != 10*time.Second {
		t.Fatalf("PollInterval = %v, want 10s", cfg.PollInterval)
	}
	if cfg.QueryTimeout != 120*time.Second {
		t.Fatalf("QueryTimeout = %v, want 120s", cfg.QueryTimeout)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(envBackendURL, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
backend_url = "   "
poll_seconds = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BackendURL != defaultBackendURL {
		t.Fatalf("BackendURL = %q, want %q", cfg.BackendURL, defaultBackendURL)
	}
	if cfg.PollInterval != defaultPollSeconds*time.Second {
		t.Fatalf("PollInterval = %v, want default", cfg.PollInterval)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(envBackendURL, "http://10.0.0.5:9999")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`backend_url = "http://file.example.com"`+"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BackendURL != "http://10.0.0.5:9999" {
		t.Fatalf("BackendURL = %q, want env override", cfg.BackendURL)
	}
}

func TestLoad_InvalidTOMLReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
}
