package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/titlebar/internal/config"
	"github.com/Gaurav-Gosain/titlebar/internal/theme"
	"github.com/Gaurav-Gosain/titlebar/internal/titlebar"
	"github.com/charmbracelet/x/ansi"
)

const logPanelLines = 8

// View returns the rendered view.
func (m *Model) View() tea.View {
	var view tea.View

	view.SetContent(m.Render())

	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true
	view.WindowTitle = m.Config.Appearance.Title

	return view
}

// Render draws the bar, its bottom border and the body.
func (m *Model) Render() string {
	width := m.Width
	if width <= 0 {
		width = 80
	}
	p := m.Palette

	lines := []string{m.renderBar(width, p), m.renderBorder(width, p)}
	lines = append(lines, m.renderBody(width, p)...)
	return strings.Join(lines, "\n")
}

func (m *Model) renderBar(width int, p theme.Palette) string {
	titleWidth := ButtonsStart(width)

	title := ansi.Truncate(m.Config.Appearance.Title, max(titleWidth-2, 0), "…")
	pad := max(titleWidth-2-ansi.StringWidth(title), 0)
	text := ansi.Truncate("  "+title+strings.Repeat(" ", pad), titleWidth, "")

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Title).
		Background(p.Bar).
		Render(text))

	for _, c := range titlebar.Controls {
		b.WriteString(m.renderButton(c, p))
	}
	return ansi.Truncate(b.String(), width, "")
}

func (m *Model) renderButton(c titlebar.Control, p theme.Palette) string {
	st := m.Presenter.Style(c, m.Snapshot.Hover, m.Snapshot.State)

	fg, bg := p.Fg, p.Bar
	switch st.Highlight {
	case titlebar.HighlightNeutral:
		bg = p.NeutralHover
	case titlebar.HighlightDestructive:
		fg, bg = p.DestructiveFg, p.DestructiveHover
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Render(center(st.Glyph, config.ButtonWidth))
}

func (m *Model) renderBorder(width int, p theme.Palette) string {
	line := "─"
	if m.Config.Appearance.ASCIIOnly {
		line = "-"
	}
	return lipgloss.NewStyle().Foreground(p.BarBorder).Render(strings.Repeat(line, width))
}

func (m *Model) renderBody(width int, p theme.Palette) []string {
	dim := lipgloss.NewStyle().Foreground(p.Dim)
	accent := lipgloss.NewStyle().Foreground(p.Accent)

	status := fmt.Sprintf("%s %s   %s %s",
		dim.Render("window:"), accent.Render(m.Snapshot.State.String()),
		dim.Render("hover:"), accent.Render(m.Snapshot.Hover.String()))
	if m.LastCommand != titlebar.CommandNone {
		status += fmt.Sprintf("   %s %s", dim.Render("last:"), accent.Render(m.LastCommand.String()))
	}
	if !m.Snapshot.Mounted {
		status += "   " + lipgloss.NewStyle().Foreground(p.Warn).Render("detached")
	}

	lines := []string{"", " " + status}

	if m.Config.Appearance.ShowLabels && m.Snapshot.Hover != titlebar.ControlNone {
		st := m.Presenter.Style(m.Snapshot.Hover, m.Snapshot.Hover, m.Snapshot.State)
		lines = append(lines, " "+lipgloss.NewStyle().Foreground(p.Fg).Render(st.Label))
	}

	if m.ShowHelp {
		lines = append(lines, "", m.renderHelp(p))
	} else {
		hint := "press " + m.KeybindRegistry.GetKeysForDisplay(config.ActionToggleHelp) + " for help"
		lines = append(lines, "", " "+dim.Render(hint))
	}

	if m.ShowLogs {
		lines = append(lines, "")
		lines = append(lines, m.renderLogs(width, p)...)
	}
	return lines
}

func (m *Model) renderLogs(width int, p theme.Palette) []string {
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(" LOGS")

	end := len(m.LogMessages) - m.LogScrollOffset
	end = max(min(end, len(m.LogMessages)), 0)
	start := max(end-logPanelLines, 0)

	lines := []string{title}
	for _, msg := range m.LogMessages[start:end] {
		levelStyle := lipgloss.NewStyle().Foreground(p.Dim)
		switch msg.Level {
		case "WARN":
			levelStyle = levelStyle.Foreground(p.Warn)
		case "ERROR":
			levelStyle = levelStyle.Foreground(p.DestructiveHover)
		}
		line := fmt.Sprintf(" %s %s %s",
			msg.Time.Format("15:04:05"),
			levelStyle.Render(fmt.Sprintf("%-5s", msg.Level)),
			msg.Message)
		lines = append(lines, ansi.Truncate(line, width, "…"))
	}
	return lines
}

// ScrollLogs moves the log viewer by delta lines, positive going back in time.
func (m *Model) ScrollLogs(delta int) {
	maxOffset := max(len(m.LogMessages)-logPanelLines, 0)
	m.LogScrollOffset = max(min(m.LogScrollOffset+delta, maxOffset), 0)
}

func center(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
