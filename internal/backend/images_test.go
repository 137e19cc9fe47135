package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newTestResolver(t *testing.T, baseURL string) *ImageResolver {
	t.Helper()
	c, err := NewClient(baseURL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	r, err := NewImageResolver(c)
	if err != nil {
		t.Fatalf("NewImageResolver returned error: %v", err)
	}
	return r
}

func TestImageResolver_KeepsReachableURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/images/matrix.jpg" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	r := newTestResolver(t, server.URL)
	got := r.Resolve(context.Background(), "/images/matrix.jpg")
	if got != server.URL+"/images/matrix.jpg" {
		t.Fatalf("Resolve = %q, want original URL", got)
	}
}

func TestImageResolver_FallsBackOnMissingImage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	r := newTestResolver(t, server.URL)
	got := r.Resolve(context.Background(), "/images/missing.jpg")
	if got != r.FallbackURL() {
		t.Fatalf("Resolve = %q, want fallback %q", got, r.FallbackURL())
	}
}

func TestImageResolver_FallbackIsIdempotent(t *testing.T) {
	t.Parallel()

	var probes atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes.Add(1)
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	r := newTestResolver(t, server.URL)
	fallback := r.FallbackURL()

	// Resolving the fallback itself must not probe again, even when the
	// default artwork is unreachable too.
	if got := r.Resolve(context.Background(), fallback); got != fallback {
		t.Fatalf("Resolve(fallback) = %q, want %q", got, fallback)
	}
	if n := probes.Load(); n != 0 {
		t.Fatalf("probes = %d, want 0 for fallback URL", n)
	}
}

func TestImageResolver_CachesProbeResults(t *testing.T) {
	t.Parallel()

	var probes atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	r := newTestResolver(t, server.URL)
	for i := 0; i < 3; i++ {
		r.Resolve(context.Background(), "/images/matrix.jpg")
	}
	if n := probes.Load(); n != 1 {
		t.Fatalf("probes = %d, want 1 after repeated resolves", n)
	}
}

func TestImageResolver_EmptyURLUsesFallback(t *testing.T) {
	r := newTestResolver(t, "127.0.0.1:1")
	if got := r.Resolve(context.Background(), "  "); got != r.FallbackURL() {
		t.Fatalf("Resolve(blank) = %q, want fallback", got)
	}
}
