package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reel/internal/backend"
	"reel/internal/match"
	"reel/internal/prefs"
	"reel/internal/state"
)

type focusArea int

const (
	focusCatalog focusArea = iota
	focusInput
	focusTranscript
)

// movieItem adapts a backend.Movie to the bubbles list.
type movieItem struct {
	movie backend.Movie
}

func (i movieItem) Title() string       { return i.movie.Title }
func (i movieItem) Description() string { return truncate(i.movie.Description, 60) }
func (i movieItem) FilterValue() string { return i.movie.Title }

func movieItems(movies []backend.Movie) []list.Item {
	items := make([]list.Item, len(movies))
	for idx, m := range movies {
		items[idx] = movieItem{movie: m}
	}
	return items
}

// Model is the Bubble Tea model for the whole application.
type Model struct {
	opts   Options
	keys   keyMap
	help   help.Model
	theme  Theme
	styles Styles

	list       list.Model
	input      textinput.Model
	spin       spinner.Model
	transcript viewport.Model

	snap    state.Snapshot
	artwork map[string]string // movie title -> resolved artwork URL
	focus   focusArea

	width, height int
	ready         bool
	showHelp      bool
}

func newModel(opts Options) Model {
	theme := GetTheme(opts.ThemeName)
	styles := theme.Styles()

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color(theme.Accent)).
		BorderLeftForeground(lipgloss.Color(theme.Accent))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color(theme.Muted)).
		BorderLeftForeground(lipgloss.Color(theme.Accent))

	movieList := list.New(nil, delegate, 0, 0)
	movieList.Title = "Catalog"
	movieList.SetShowHelp(false)
	movieList.SetShowStatusBar(false)
	movieList.DisableQuitKeybindings()

	input := textinput.New()
	input.Placeholder = "Ask about a movie script..."
	input.Prompt = "> "
	input.PromptStyle = styles.Accent
	input.Cursor.Style = styles.Accent

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.Accent

	return Model{
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		theme:   theme,
		styles:  styles,
		list:    movieList,
		input:   input,
		spin:    spin,
		artwork: make(map[string]string),
		focus:   focusCatalog,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.snapshotNow(), m.refreshTick(), m.spin.Tick, textinput.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.applyLayout()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case snapshotMsg:
		return m.applySnapshot(msg)

	case queryDoneMsg:
		return m, m.snapshotNow()

	case artworkMsg:
		m.artwork[msg.title] = msg.url
		return m, nil

	case spinner.TickMsg:
		if !m.snap.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	// Everything else (cursor blink and friends) belongs to the input.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// While the catalog filter is being typed, the list owns the keyboard.
	if m.focus == focusCatalog && m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()
	case key.Matches(msg, m.keys.Tab):
		m.setFocus((m.focus + 1) % 3)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.setFocus((m.focus + 2) % 3)
		return m, nil
	}

	switch m.focus {
	case focusInput:
		return m.handleInputKey(msg)
	case focusTranscript:
		return m.handleTranscriptKey(msg)
	default:
		return m.handleCatalogKey(msg)
	}
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Ask):
		m.setFocus(focusInput)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Select):
		return m.selectMovie()
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.setFocus(focusCatalog)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleTranscriptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.setFocus(focusCatalog)
		return m, nil
	case key.Matches(msg, m.keys.Ask):
		m.setFocus(focusInput)
		return m, textinput.Blink
	}
	var cmd tea.Cmd
	m.transcript, cmd = m.transcript.Update(msg)
	return m, cmd
}

// selectMovie records an explicit catalog selection, which starts a fresh
// query context.
func (m Model) selectMovie() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(movieItem)
	if !ok {
		return m, nil
	}
	m.opts.Store.SelectMovie(item.movie)
	m.setFocus(focusInput)
	return m, tea.Batch(m.resolveArtwork(item.movie), m.snapshotNow(), textinput.Blink)
}

// submit dispatches the typed question. An existing selection is used as the
// movie hint; otherwise the matcher picks one from the catalog.
func (m Model) submit() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		return m, nil
	}

	snap := m.opts.Store.Snapshot()
	selected := snap.Selected
	var cmds []tea.Cmd
	if selected == nil {
		if movie, ok := match.Match(query, snap.Catalog); ok {
			m.opts.Store.SetSelected(movie)
			picked := movie
			selected = &picked
			cmds = append(cmds, m.resolveArtwork(movie))
		}
	}

	gen := m.opts.Store.BeginQuery(query)
	m.input.Reset()
	cmds = append(cmds, m.submitQuery(gen, query, selected), m.snapshotNow(), m.spin.Tick)
	return m, tea.Batch(cmds...)
}

func (m Model) applySnapshot(msg snapshotMsg) (tea.Model, tea.Cmd) {
	turnsGrew := len(msg.snap.Turns) > len(m.snap.Turns)
	catalogChanged := !moviesEqual(m.snap.Catalog, msg.snap.Catalog)
	m.snap = msg.snap

	var cmds []tea.Cmd
	if catalogChanged {
		cmds = append(cmds, m.list.SetItems(movieItems(msg.snap.Catalog)))
	}
	m.transcript.SetContent(m.renderTranscript())
	if turnsGrew {
		m.transcript.GotoBottom()
	}
	if msg.tick {
		cmds = append(cmds, m.refreshTick())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	name := NextTheme(m.theme.Name)
	m.theme = GetTheme(name)
	m.styles = m.theme.Styles()
	m.spin.Style = m.styles.Accent
	m.input.PromptStyle = m.styles.Accent
	m.input.Cursor.Style = m.styles.Accent

	path := m.opts.PrefsPath
	return m, func() tea.Msg {
		_ = prefs.Save(path, prefs.Prefs{Theme: name})
		return nil
	}
}

func moviesEqual(a, b []backend.Movie) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
