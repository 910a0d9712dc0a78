package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/titlebar/internal/config"
	"github.com/Gaurav-Gosain/titlebar/internal/titlebar"
)

// SignalMsg carries one signal from the controller queue into Update.
type SignalMsg struct {
	Signal titlebar.Signal
}

// SignalsClosedMsg means the controller queue is gone (unmounted).
type SignalsClosedMsg struct{}

// ConfigUpdate is a hot-reloaded configuration or the error reloading it.
type ConfigUpdate struct {
	Config *config.UserConfig
	Err    error
}

// ConfigUpdateMsg delivers a ConfigUpdate into Update.
type ConfigUpdateMsg ConfigUpdate

// WindowClosedMsg signals that the owner closed the window.
type WindowClosedMsg struct{}

// WaitForSignal creates a command that blocks on the next controller signal.
// Only one is outstanding at a time, so signals are applied in queue order.
func WaitForSignal(ctx context.Context, c *titlebar.Controller) tea.Cmd {
	return func() tea.Msg {
		sig, ok := c.Next(ctx)
		if !ok {
			return SignalsClosedMsg{}
		}
		return SignalMsg{Signal: sig}
	}
}

// ListenForConfigChanges creates a command that waits for the next reload.
func ListenForConfigChanges(ch <-chan ConfigUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigUpdateMsg(update)
	}
}

// WaitForWindowClose creates a command that fires when closed is closed.
func WaitForWindowClose(closed <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-closed
		return WindowClosedMsg{}
	}
}
