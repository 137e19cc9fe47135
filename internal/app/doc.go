// Package app provides the orchestration layer for the reel application.
//
// Run loads configuration and preferences, builds the backend client and the
// shared state store, starts the readiness poller, and hands everything to
// the UI. Business logic lives in the domain packages (backend, match, state,
// ui); this package only connects them.
//
// # Polling behavior
//
// The poller is a two-state machine. While polling it probes /status at a
// fixed cadence (default 5s), recording offline connectivity on every
// not-ready or failed probe. The first ready report settles it: the catalog
// is fetched exactly once, connectivity flips to online, and the goroutine
// exits. There is no return to polling after settling; a backend that later
// disappears shows up only as query failures.
//
// Startup failures worth aborting for are limited to unusable configuration.
// An unreachable backend is not fatal: the UI starts anyway and displays the
// offline state while polling continues.
package app
