package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/titlebar/internal/app"
	"github.com/Gaurav-Gosain/titlebar/internal/config"
	"github.com/Gaurav-Gosain/titlebar/internal/titlebar"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(msg tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

func (d *ActionDispatcher) registerHandlers() {
	// Titlebar buttons
	d.Register(config.ActionMinimize, handleMinimize)
	d.Register(config.ActionToggleMaximize, handleToggleMaximize)
	d.Register(config.ActionClose, handleClose)

	// Window manager, outside the titlebar
	d.Register(config.ActionExternalToggle, handleExternalToggle)
	d.Register(config.ActionExternalMaximize, handleExternalMaximize)
	d.Register(config.ActionExternalRestore, handleExternalRestore)

	// System
	d.Register(config.ActionToggleLogs, handleToggleLogs)
	d.Register(config.ActionToggleHelp, handleToggleHelp)
	d.Register(config.ActionQuit, handleQuit)
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, m)
	}
	return m, nil
}

var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

func handleMinimize(_ tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd) {
	m.Activate(titlebar.ControlMinimize)
	return m, nil
}

func handleToggleMaximize(_ tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd) {
	m.Activate(titlebar.ControlMaximize)
	return m, nil
}

func handleClose(_ tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd) {
	// The owner reports the close back; WindowClosedMsg quits.
	m.Activate(titlebar.ControlClose)
	return m, nil
}

func handleExternalToggle(_ tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd) {
	m.ExternalToggle()
	return m, nil
}

func handleExternalMaximize(_ tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd) {
	m.ExternalMaximize()
	return m, nil
}

func handleExternalRestore(_ tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd) {
	m.ExternalRestore()
	return m, nil
}

func handleToggleLogs(_ tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd) {
	m.ShowLogs = !m.ShowLogs
	if m.ShowLogs {
		m.LogInfo("Log viewer opened")
		m.LogScrollOffset = 0
	}
	return m, nil
}

func handleToggleHelp(_ tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd) {
	m.ShowHelp = !m.ShowHelp
	return m, nil
}

func handleQuit(_ tea.KeyPressMsg, m *app.Model) (*app.Model, tea.Cmd) {
	// Close help if showing
	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}
	m.Unmount()
	return m, tea.Quit
}
