package input

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/titlebar/internal/app"
	"github.com/Gaurav-Gosain/titlebar/internal/titlebar"
)

// now is replaced in tests.
var now = time.Now

// doubleClickSlop is how many columns the pointer may drift between the two
// clicks of a double-click.
const doubleClickSlop = 2

// handleMouseMotion moves the hover target to whatever button is under the
// pointer.
func handleMouseMotion(msg tea.MouseMotionMsg, m *app.Model) (*app.Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.SetHover(app.ControlAt(mouse.X, mouse.Y, m.Width))
	return m, nil
}

// handleMouseClick presses a button, or treats a double-click on the
// draggable region the way a window manager does.
func handleMouseClick(msg tea.MouseClickMsg, m *app.Model) (*app.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}

	if c := app.ControlAt(mouse.X, mouse.Y, m.Width); c != titlebar.ControlNone {
		m.SetHover(c)
		m.Activate(c)
		m.LastClickTime = time.Time{}
		return m, nil
	}

	if !app.InDragRegion(mouse.X, mouse.Y, m.Width) {
		return m, nil
	}

	t := now()
	if isDoubleClick(m.LastClickTime, t, m.Config.Window.DoubleClickInterval.Duration) &&
		abs(mouse.X-m.LastClickX) <= doubleClickSlop {
		m.LastClickTime = time.Time{}
		m.ExternalToggle()
		return m, nil
	}
	m.LastClickTime = t
	m.LastClickX = mouse.X
	return m, nil
}

func handleMouseWheel(msg tea.MouseWheelMsg, m *app.Model) (*app.Model, tea.Cmd) {
	if !m.ShowLogs {
		return m, nil
	}
	switch msg.Mouse().Button {
	case tea.MouseWheelUp:
		m.ScrollLogs(1)
	case tea.MouseWheelDown:
		m.ScrollLogs(-1)
	}
	return m, nil
}

// isDoubleClick reports whether a click at t completes a double-click started
// at last.
func isDoubleClick(last, t time.Time, interval time.Duration) bool {
	if last.IsZero() || interval <= 0 {
		return false
	}
	d := t.Sub(last)
	return d >= 0 && d <= interval
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
