package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings reel needs to reach its backend.
type Config struct {
	BackendURL   string
	PollInterval time.Duration
	QueryTimeout time.Duration
}

const (
	defaultConfigPath          = "~/.config/reel/config.toml"
	defaultBackendURL          = "http://127.0.0.1:8000"
	defaultPollSeconds         = 5
	defaultQueryTimeoutSeconds = 600

	// envBackendURL overrides the config file; it can live in the process
	// environment or a .env file in the working directory.
	envBackendURL = "REEL_BACKEND_URL"
)

// Load locates and parses the reel config, falling back to defaults when
// missing. The REEL_BACKEND_URL environment variable wins over the file.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BackendURL:   defaultBackendURL,
		PollInterval: defaultPollSeconds * time.Second,
		QueryTimeout: defaultQueryTimeoutSeconds * time.Second,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BackendURL          string `toml:"backend_url"`
		PollSeconds         int    `toml:"poll_seconds"`
		QueryTimeoutSeconds int    `toml:"query_timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(raw.BackendURL); url != "" {
		cfg.BackendURL = url
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}
	if raw.QueryTimeoutSeconds > 0 {
		cfg.QueryTimeout = time.Duration(raw.QueryTimeoutSeconds) * time.Second
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if url := strings.TrimSpace(os.Getenv(envBackendURL)); url != "" {
		cfg.BackendURL = url
	}
	return cfg
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
