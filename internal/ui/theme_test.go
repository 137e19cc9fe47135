package ui

import "testing"

func TestGetTheme_FallsBackToDefault(t *testing.T) {
	if got := GetTheme("NoSuchTheme").Name; got != "Marquee" {
		t.Fatalf("GetTheme unknown = %q, want Marquee", got)
	}
	if got := GetTheme("Nitrate").Name; got != "Nitrate" {
		t.Fatalf("GetTheme = %q, want Nitrate", got)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	first := themeOrder[0]
	seen := map[string]bool{}
	current := first
	for range themeOrder {
		seen[current] = true
		current = NextTheme(current)
	}
	if current != first {
		t.Fatalf("NextTheme cycle ended at %q, want %q", current, first)
	}
	for _, name := range themeOrder {
		if !seen[name] {
			t.Fatalf("NextTheme cycle skipped %q", name)
		}
	}
	if got := NextTheme("NoSuchTheme"); got != first {
		t.Fatalf("NextTheme unknown = %q, want %q", got, first)
	}
}
