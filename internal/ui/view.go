package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"reel/internal/backend"
	"reel/internal/state"
)

const (
	headerHeight = 1
	inputHeight  = 1
	noticeHeight = 1
	footerHeight = 1
	minListWidth = 30
)

// applyLayout distributes the terminal space across the panes.
func (m *Model) applyLayout() {
	bodyHeight := m.height - headerHeight - inputHeight - noticeHeight - footerHeight
	if bodyHeight < 6 {
		bodyHeight = 6
	}

	listWidth := m.width * 2 / 5
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	rightWidth := m.width - listWidth
	if rightWidth < minListWidth {
		rightWidth = minListWidth
	}

	// Panes carry a one-cell border plus horizontal padding.
	m.list.SetSize(listWidth-4, bodyHeight-2)

	detailHeight := bodyHeight / 3
	if detailHeight < 6 {
		detailHeight = 6
	}
	transcriptHeight := bodyHeight - detailHeight
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}

	if m.transcript.Width == 0 {
		m.transcript = viewport.New(rightWidth-4, transcriptHeight-2)
	} else {
		m.transcript.Width = rightWidth - 4
		m.transcript.Height = transcriptHeight - 2
	}
	m.transcript.SetContent(m.renderTranscript())

	m.input.Width = m.width - 6
	m.help.Width = m.width
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	bodyHeight := m.height - headerHeight - inputHeight - noticeHeight - footerHeight
	if bodyHeight < 6 {
		bodyHeight = 6
	}
	listWidth := m.width * 2 / 5
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	rightWidth := m.width - listWidth
	detailHeight := bodyHeight / 3
	if detailHeight < 6 {
		detailHeight = 6
	}
	transcriptHeight := bodyHeight - detailHeight

	catalogPane := m.pane(m.focus == focusCatalog).
		Width(listWidth - 2).
		Height(bodyHeight - 2).
		Render(m.list.View())

	detailPane := m.pane(false).
		Width(rightWidth - 2).
		Height(detailHeight - 2).
		Render(m.renderDetail(rightWidth - 4))

	transcriptPane := m.pane(m.focus == focusTranscript).
		Width(rightWidth - 2).
		Height(transcriptHeight - 2).
		Render(m.transcript.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		catalogPane,
		lipgloss.JoinVertical(lipgloss.Left, detailPane, transcriptPane),
	)

	sections := []string{
		m.renderHeader(),
		body,
		m.renderInput(),
		m.renderNotice(),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n")
}

func (m Model) pane(focused bool) lipgloss.Style {
	if focused {
		return m.styles.PaneFocus
	}
	return m.styles.Pane
}

// renderHeader renders the top bar: logo, connectivity badge, catalog count,
// and the time of the last state change.
func (m Model) renderHeader() string {
	parts := []string{m.styles.Logo.Render("reel")}

	switch m.snap.Connectivity {
	case state.ConnectivityOnline:
		parts = append(parts, m.styles.Success.Render("● ONLINE"))
	case state.ConnectivityOffline:
		parts = append(parts, m.styles.Danger.Render("● OFFLINE"),
			m.styles.Warning.Render("Retrying..."))
	default:
		parts = append(parts, m.styles.Warning.Render("Connecting to backend..."))
	}

	parts = append(parts,
		m.styles.Muted.Render("Movies:")+" "+
			m.styles.Text.Render(fmt.Sprintf("%d", len(m.snap.Catalog))))

	if clock := relativeClock(m.snap.LastUpdated, time.Now()); clock != "" {
		parts = append(parts, m.styles.Muted.Render(clock))
	}

	return m.styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderDetail renders the selected movie panel.
func (m Model) renderDetail(width int) string {
	if m.snap.Selected == nil {
		return m.styles.Muted.Render("No movie selected.") + "\n" +
			m.styles.Faint.Render("Pick one from the catalog, or just ask; a title word in the question selects it.")
	}

	movie := *m.snap.Selected
	lines := []string{m.styles.Accent.Bold(true).Render(movie.Title)}

	if desc := strings.TrimSpace(movie.Description); desc != "" {
		lines = append(lines, m.styles.Text.Width(width).Render(desc))
	}
	if art := m.artworkFor(movie); art != "" {
		lines = append(lines, m.styles.Faint.Render("art ")+m.styles.Muted.Render(truncate(art, width-5)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) artworkFor(movie backend.Movie) string {
	if url, ok := m.artwork[movie.Title]; ok {
		return url
	}
	return movie.ImageURL
}

// renderTranscript renders the question/answer turns for the viewport.
func (m Model) renderTranscript() string {
	if len(m.snap.Turns) == 0 && !m.snap.Loading {
		return m.styles.Faint.Render("Answers will appear here.")
	}

	width := m.transcript.Width
	var blocks []string
	for _, turn := range m.snap.Turns {
		label := m.styles.AssistantLabel.Render("reel")
		if turn.Role == backend.RoleUser {
			label = m.styles.UserLabel.Render("you")
		}
		content := m.styles.Text.Width(width).Render(turn.Content)
		blocks = append(blocks, label+"\n"+content)
	}
	if m.snap.Loading {
		blocks = append(blocks, m.spin.View()+m.styles.Muted.Render(" thinking..."))
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) renderInput() string {
	return " " + m.input.View()
}

// renderNotice shows the query error when there is one, otherwise a hint.
func (m Model) renderNotice() string {
	if m.snap.ErrMessage != "" {
		return " " + m.styles.Danger.Render(m.snap.ErrMessage)
	}
	if m.snap.Loading {
		return " " + m.styles.Muted.Render("Waiting for an answer; long questions can take a while.")
	}
	return " "
}

func (m Model) renderFooter() string {
	if m.showHelp {
		return m.styles.Footer.Width(m.width).Render(m.help.FullHelpView(m.keys.FullHelp()))
	}
	return m.styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}
