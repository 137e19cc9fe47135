package state

import (
	"sync"
	"time"

	"reel/internal/backend"
)

// Connectivity is the backend status as observed by polling.
type Connectivity int

const (
	ConnectivityUnknown Connectivity = iota
	ConnectivityOnline
	ConnectivityOffline
)

func (c Connectivity) String() string {
	switch c {
	case ConnectivityOnline:
		return "online"
	case ConnectivityOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Snapshot represents the session state visible to the UI at one instant.
type Snapshot struct {
	Catalog      []backend.Movie
	Connectivity Connectivity
	Selected     *backend.Movie
	Turns        []backend.ConversationTurn
	Loading      bool
	ErrMessage   string
	LastUpdated  time.Time
}

// Store owns the session state and serializes mutations from the poller and
// the query flow. Reads get copies; callers never share slices with the store.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
	gen  uint64
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snap
	snap.Catalog = cloneMovies(s.snap.Catalog)
	snap.Turns = cloneTurns(s.snap.Turns)
	if s.snap.Selected != nil {
		selected := *s.snap.Selected
		snap.Selected = &selected
	}
	return snap
}

// SetConnectivity records the backend status observed by the poller.
func (s *Store) SetConnectivity(c Connectivity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Connectivity = c
	s.snap.LastUpdated = time.Now()
}

// SetCatalog replaces the movie catalog wholesale.
func (s *Store) SetCatalog(movies []backend.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Catalog = cloneMovies(movies)
	s.snap.LastUpdated = time.Now()
}

// SelectMovie records an explicit selection from the catalog list. It starts
// a fresh query context: prior turns and any error are discarded.
func (s *Store) SelectMovie(movie backend.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	selected := movie
	s.snap.Selected = &selected
	s.snap.Turns = nil
	s.snap.ErrMessage = ""
	s.snap.LastUpdated = time.Now()
}

// SetSelected records a selection inferred by the matcher during query
// submission. Unlike SelectMovie it keeps the transcript.
func (s *Store) SetSelected(movie backend.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	selected := movie
	s.snap.Selected = &selected
	s.snap.LastUpdated = time.Now()
}

// BeginQuery marks a submission in flight: loading set, error cleared, the
// user's turn appended. It returns a generation number; a later BeginQuery
// invalidates earlier generations so a stale response cannot clobber state.
func (s *Store) BeginQuery(query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.snap.Loading = true
	s.snap.ErrMessage = ""
	s.snap.Turns = append(s.snap.Turns, backend.ConversationTurn{
		Role:    backend.RoleUser,
		Content: query,
	})
	s.snap.LastUpdated = time.Now()
	return s.gen
}

// CompleteQuery records a successful answer for the given generation. Stale
// generations are discarded and the call reports false.
func (s *Store) CompleteQuery(gen uint64, answer string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.snap.Loading = false
	s.snap.Turns = append(s.snap.Turns, backend.ConversationTurn{
		Role:    backend.RoleAssistant,
		Content: answer,
	})
	s.snap.LastUpdated = time.Now()
	return true
}

// FailQuery records a failed submission: the user-facing message is stored
// and also appended as an assistant turn so the transcript always has
// something to show after a failed attempt.
func (s *Store) FailQuery(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.snap.Loading = false
	s.snap.ErrMessage = message
	s.snap.Turns = append(s.snap.Turns, backend.ConversationTurn{
		Role:    backend.RoleAssistant,
		Content: message,
	})
	s.snap.LastUpdated = time.Now()
	return true
}

func cloneMovies(movies []backend.Movie) []backend.Movie {
	if len(movies) == 0 {
		return nil
	}
	dup := make([]backend.Movie, len(movies))
	copy(dup, movies)
	return dup
}

func cloneTurns(turns []backend.ConversationTurn) []backend.ConversationTurn {
	if len(turns) == 0 {
		return nil
	}
	dup := make([]backend.ConversationTurn, len(turns))
	copy(dup, turns)
	return dup
}
