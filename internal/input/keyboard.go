// Package input implements keyboard and mouse handling for the titlebar.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/titlebar/internal/app"
)

// HandleInput is the main entry point for all input handling.
func HandleInput(msg tea.Msg, m *app.Model) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, m)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, m)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, m)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, m)
	}
	return m, nil
}

// HandleKeyPress resolves the key through the keybind registry.
func HandleKeyPress(msg tea.KeyPressMsg, m *app.Model) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		m.ShowHelp = false
		m.ShowLogs = false
		return m, nil
	case "up", "k":
		if m.ShowLogs {
			m.ScrollLogs(1)
			return m, nil
		}
	case "down", "j":
		if m.ShowLogs {
			m.ScrollLogs(-1)
			return m, nil
		}
	}

	action := m.KeybindRegistry.GetAction(key)
	if action == "" {
		return m, nil
	}
	return GetDispatcher().Dispatch(action, msg, m)
}
