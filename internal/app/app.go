package app

import (
	"context"
	"fmt"
	"time"

	"reel/internal/backend"
	"reel/internal/config"
	"reel/internal/prefs"
	"reel/internal/state"
	"reel/internal/ui"
)

// Options configure the reel application.
type Options struct {
	ConfigPath string
	BackendURL string // overrides the configured backend_url
	PrefsPath  string // empty uses default ~/.config/reel/prefs.toml
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the reel TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.BackendURL != "" {
		cfg.BackendURL = opts.BackendURL
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := backend.NewClient(cfg.BackendURL)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}
	client.QueryTimeout = cfg.QueryTimeout

	images, err := backend.NewImageResolver(client)
	if err != nil {
		return fmt.Errorf("init image resolver: %w", err)
	}

	store := &state.Store{}

	interval := cfg.PollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start polling before the UI so connectivity shows up immediately.
	StartPoller(ctx, store, client, interval)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Images:    images,
		Store:     store,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
