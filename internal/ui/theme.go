package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Faint   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	Logo   lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	Pane      lipgloss.Style
	PaneFocus lipgloss.Style

	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Padding(0, 1)

	return Styles{
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Faint:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Logo: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)).Bold(true),
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Pane:      pane,
		PaneFocus: pane.BorderForeground(lipgloss.Color(t.BorderFocus)),

		UserLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		AssistantLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Marquee": marqueeTheme(),
	"Nitrate": nitrateTheme(),
}

var themeOrder = []string{"Marquee", "Nitrate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return marqueeTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

func marqueeTheme() Theme {
	return Theme{
		Name:        "Marquee",
		Background:  "#282A36",
		Surface:     "#343746",
		Border:      "#44475A",
		BorderFocus: "#BD93F9",
		Text:        "#F8F8F2",
		Muted:       "#6272A4",
		Faint:       "#44475A",
		Accent:      "#BD93F9",
		Success:     "#50FA7B",
		Warning:     "#F1FA8C",
		Danger:      "#FF5555",
	}
}

func nitrateTheme() Theme {
	return Theme{
		Name:        "Nitrate",
		Background:  "#1E293B",
		Surface:     "#334155",
		Border:      "#475569",
		BorderFocus: "#38BDF8",
		Text:        "#E2E8F0",
		Muted:       "#94A3B8",
		Faint:       "#475569",
		Accent:      "#38BDF8",
		Success:     "#4ADE80",
		Warning:     "#FACC15",
		Danger:      "#F87171",
	}
}
