package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/titlebar/internal/titlebar"
)

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, m *Model) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init mounts the titlebar and starts listening for owner signals.
func (m *Model) Init() tea.Cmd {
	m.Mount()

	cmds := []tea.Cmd{WaitForSignal(m.ctx, m.Controller)}
	if m.configUpdates != nil {
		cmds = append(cmds, ListenForConfigChanges(m.configUpdates))
	}
	if m.closed != nil {
		cmds = append(cmds, WaitForWindowClose(m.closed))
	}
	return tea.Batch(cmds...)
}

// Update handles all incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SignalMsg:
		m.applySignal(msg.Signal)
		if !m.Snapshot.Mounted {
			return m, nil
		}
		return m, WaitForSignal(m.ctx, m.Controller)

	case SignalsClosedMsg:
		m.applySignal(titlebar.Unmounted{})
		return m, nil

	case ConfigUpdateMsg:
		if msg.Err != nil {
			m.LogError("Config reload failed: %v", msg.Err)
		} else if msg.Config != nil {
			m.ApplyConfig(msg.Config)
			m.LogInfo("Config reloaded")
		}
		return m, ListenForConfigChanges(m.configUpdates)

	case WindowClosedMsg:
		m.LogInfo("Window closed by owner")
		m.Unmount()
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.BlurMsg:
		// Focus left the terminal, so nothing is hovered.
		m.SetHover(titlebar.ControlNone)
		return m, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if inputHandler != nil {
			return inputHandler(msg, m)
		}
		return m, nil
	}

	return m, nil
}
