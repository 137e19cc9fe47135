// Package match implements the free-text to movie lookup used when the user
// asks a question without picking a movie first.
package match

import (
	"strings"

	"reel/internal/backend"
)

// Match returns the first catalog movie whose title shares a word with the
// query, case-insensitively. A movie matches when any whitespace-separated
// word of its title appears as a substring of the query. First catalog-order
// hit wins; there is no scoring, so short title words like "the" can match
// loosely and callers must tolerate imprecise picks.
func Match(query string, catalog []backend.Movie) (backend.Movie, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return backend.Movie{}, false
	}
	for _, movie := range catalog {
		for _, word := range strings.Fields(strings.ToLower(movie.Title)) {
			// Zero-length words would match every query.
			if word == "" {
				continue
			}
			if strings.Contains(q, word) {
				return movie, true
			}
		}
	}
	return backend.Movie{}, false
}
