// Package titlebar keeps a custom titlebar's maximize/restore affordance in
// step with the window owner.
//
// All state lives in a Snapshot that only Reduce may change. Inputs arrive as
// Signals: the one-shot state query, the owner's maximized/unmaximized
// events, pointer hover changes, and unmount. A Controller turns the owner's
// asynchronous callbacks into an ordered queue of Signals for a single
// consumer, and a Dispatcher turns button activation into owner commands.
package titlebar

// WindowState is the titlebar's view of the window.
type WindowState int

const (
	// StateUnknown holds from mount until the state query resolves, and
	// forever if it never does.
	StateUnknown WindowState = iota
	StateRestored
	StateMaximized
)

func (s WindowState) String() string {
	switch s {
	case StateRestored:
		return "restored"
	case StateMaximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// Control identifies one of the titlebar buttons. ControlNone doubles as the
// empty hover target.
type Control int

const (
	ControlNone Control = iota
	ControlMinimize
	ControlMaximize
	ControlClose
)

// Controls lists the buttons in display order, left to right.
var Controls = []Control{ControlMinimize, ControlMaximize, ControlClose}

func (c Control) String() string {
	switch c {
	case ControlMinimize:
		return "minimize"
	case ControlMaximize:
		return "maximize"
	case ControlClose:
		return "close"
	default:
		return "none"
	}
}

// Valid reports whether c is ControlNone or one of the three buttons.
func (c Control) Valid() bool {
	return c >= ControlNone && c <= ControlClose
}

func stateFor(maximized bool) WindowState {
	if maximized {
		return StateMaximized
	}
	return StateRestored
}
