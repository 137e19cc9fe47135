package app

import (
	"context"
	"log"
	"time"

	"reel/internal/backend"
	"reel/internal/state"
)

const defaultPollInterval = 5 * time.Second

// Poller checks backend readiness until the first success, then loads the
// catalog once and stops. It never re-arms: a backend that goes away after
// the initial handshake is only surfaced through query failures.
type Poller struct {
	settled chan struct{}
}

// Settled is closed after the poller has observed a ready backend and
// finished its one-time catalog fetch.
func (p *Poller) Settled() <-chan struct{} {
	return p.settled
}

// StartPoller launches the polling goroutine. It returns immediately; the
// goroutine exits when the backend settles or ctx is cancelled.
func StartPoller(ctx context.Context, store *state.Store, client *backend.Client, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	p := &Poller{settled: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if checkOnce(ctx, store, client) {
				close(p.settled)
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return p
}

// checkOnce runs a single status probe. On the first ready report it loads
// the catalog before flipping connectivity to online, so an online store
// always reflects an attempted catalog fetch.
func checkOnce(ctx context.Context, store *state.Store, client *backend.Client) bool {
	status, err := client.CheckStatus(ctx)
	if err != nil || !status.Ready() {
		if err != nil {
			log.Printf("status poll failed: %v", err)
		}
		store.SetConnectivity(state.ConnectivityOffline)
		return false
	}

	movies, err := client.FetchMovies(ctx)
	if err != nil {
		log.Printf("catalog fetch failed: %v", err)
		movies = nil
	}
	store.SetCatalog(movies)
	store.SetConnectivity(state.ConnectivityOnline)
	return true
}
