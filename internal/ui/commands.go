package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"reel/internal/backend"
	"reel/internal/state"
)

const refreshEvery = 500 * time.Millisecond

// User-facing query failure messages. The gateway-timeout case gets its own
// wording because waiting out a busy model is actionable; everything else is
// not.
const (
	timeoutMessage = "The request timed out. The model may be busy; try again later."
	genericMessage = "Something went wrong while answering. Please try again."
)

type snapshotMsg struct {
	snap state.Snapshot
	tick bool // true when produced by the refresh ticker; reschedules itself
}

type queryDoneMsg struct {
	gen uint64
}

type artworkMsg struct {
	title string
	url   string
}

// snapshotNow reads the store once, outside the ticker cadence.
func (m Model) snapshotNow() tea.Cmd {
	store := m.opts.Store
	return func() tea.Msg {
		return snapshotMsg{snap: store.Snapshot()}
	}
}

// refreshTick drives the periodic store read that keeps the UI in sync with
// the background poller.
func (m Model) refreshTick() tea.Cmd {
	store := m.opts.Store
	return tea.Tick(refreshEvery, func(time.Time) tea.Msg {
		return snapshotMsg{snap: store.Snapshot(), tick: true}
	})
}

// submitQuery runs the long backend call off the event loop. The store is
// updated here so the outcome lands even if the UI is mid-redraw; the message
// only nudges an immediate refresh.
func (m Model) submitQuery(gen uint64, query string, selected *backend.Movie) tea.Cmd {
	client := m.opts.Client
	store := m.opts.Store
	ctx := m.opts.Context
	return func() tea.Msg {
		req := backend.QueryRequest{Query: query}
		if selected != nil {
			req.SelectedMovie = selected.Title
		}
		resp, err := client.SubmitQuery(ctx, req)
		switch {
		case err == nil:
			store.CompleteQuery(gen, resp.Answer)
		case backend.IsGatewayTimeout(err):
			log.Printf("query timed out: %v", err)
			store.FailQuery(gen, timeoutMessage)
		default:
			log.Printf("query failed: %v", err)
			store.FailQuery(gen, genericMessage)
		}
		return queryDoneMsg{gen: gen}
	}
}

// resolveArtwork probes a movie's artwork URL in the background.
func (m Model) resolveArtwork(movie backend.Movie) tea.Cmd {
	images := m.opts.Images
	ctx := m.opts.Context
	if images == nil {
		return nil
	}
	return func() tea.Msg {
		return artworkMsg{
			title: movie.Title,
			url:   images.Resolve(ctx, movie.ImageURL),
		}
	}
}
