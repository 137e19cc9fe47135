package ui

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"no limit", "hello", 0, "hello"},
		{"fits", "hello", 10, "hello"},
		{"trimmed", "  hello  ", 10, "hello"},
		{"ellipsis", "hello world", 8, "hello..."},
		{"tiny limit", "hello", 2, "he"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestRelativeClock(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	if got := relativeClock(time.Time{}, now); got != "" {
		t.Fatalf("relativeClock(zero) = %q, want empty", got)
	}
	if got := relativeClock(now.Add(-10*time.Second), now); got != "11:59:50 (now)" {
		t.Fatalf("relativeClock = %q, want seconds form", got)
	}
	if got := relativeClock(now.Add(-5*time.Minute), now); got != "11:55:00 (5m ago)" {
		t.Fatalf("relativeClock = %q, want minutes form", got)
	}
	if got := relativeClock(now.Add(-2*time.Hour), now); got != "10:00:00 (2h ago)" {
		t.Fatalf("relativeClock = %q, want hours form", got)
	}
}
