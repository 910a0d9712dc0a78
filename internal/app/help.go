package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/Gaurav-Gosain/titlebar/internal/config"
	"github.com/Gaurav-Gosain/titlebar/internal/theme"
)

// renderHelp draws one key/action table per keybinding section.
func (m *Model) renderHelp(p theme.Palette) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	keyStyle := lipgloss.NewStyle().Foreground(p.Fg).Padding(0, 1)
	descStyle := lipgloss.NewStyle().Foreground(p.Dim).Padding(0, 1)

	var blocks []string
	for _, section := range config.GetKeybindings(m.KeybindRegistry) {
		rows := make([][]string, 0, len(section.Bindings))
		for _, kb := range section.Bindings {
			rows = append(rows, []string{kb.Key, kb.Description})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(p.BarBorder)).
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if col == 0 {
					return keyStyle
				}
				return descStyle
			})

		blocks = append(blocks, " "+header.Render(section.Title)+"\n"+t.Render())
	}
	return strings.Join(blocks, "\n")
}
