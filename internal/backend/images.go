package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultImagePath  = "/images/default.jpg"
	imageProbeTimeout = 5 * time.Second
	imageCacheSize    = 128
)

// ImageResolver maps a movie's artwork URL to one that is known to exist,
// substituting the backend's default artwork when the original is missing.
// The substitution happens at most once per URL: a resolved fallback is never
// probed again, and results are cached so repeated catalog renders stay cheap.
type ImageResolver struct {
	base  *url.URL
	http  *http.Client
	cache *lru.Cache[string, string]
}

// NewImageResolver builds a resolver sharing the client's backend origin.
func NewImageResolver(c *Client) (*ImageResolver, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	cache, err := lru.New[string, string](imageCacheSize)
	if err != nil {
		return nil, fmt.Errorf("init image cache: %w", err)
	}
	return &ImageResolver{
		base:  c.baseURL,
		http:  &http.Client{Timeout: imageProbeTimeout},
		cache: cache,
	}, nil
}

// FallbackURL returns the default artwork URL under the backend origin.
func (r *ImageResolver) FallbackURL() string {
	return r.base.ResolveReference(&url.URL{Path: defaultImagePath}).String()
}

// Resolve returns a URL that is expected to serve an image. Relative URLs are
// resolved against the backend origin first, then probed with a HEAD request.
func (r *ImageResolver) Resolve(ctx context.Context, imageURL string) string {
	if r == nil {
		return imageURL
	}
	fallback := r.FallbackURL()

	trimmed := strings.TrimSpace(imageURL)
	if trimmed == "" || trimmed == fallback {
		return fallback
	}

	rel, err := url.Parse(trimmed)
	if err != nil {
		return fallback
	}
	resolved := r.base.ResolveReference(rel).String()
	if resolved == fallback {
		return fallback
	}

	if cached, ok := r.cache.Get(resolved); ok {
		return cached
	}

	result := resolved
	if !r.probe(ctx, resolved) {
		result = fallback
	}
	r.cache.Add(resolved, result)
	return result
}

func (r *ImageResolver) probe(ctx context.Context, target string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode < 400
}
