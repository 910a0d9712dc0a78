package titlebar

import (
	"context"
	"io"

	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/titlebar/internal/window"
)

// Command is an instruction sent to the window owner.
type Command int

const (
	CommandNone Command = iota
	CommandMinimize
	CommandMaximize
	CommandRestore
	CommandClose
)

func (c Command) String() string {
	switch c {
	case CommandMinimize:
		return "minimize"
	case CommandMaximize:
		return "maximize"
	case CommandRestore:
		return "restore"
	case CommandClose:
		return "close"
	default:
		return "none"
	}
}

// Dispatcher sends button activations to the owner. It never touches a
// Snapshot: whatever the owner does comes back as an event.
type Dispatcher struct {
	owner  window.Owner
	logger *log.Logger
}

// NewDispatcher creates a dispatcher for owner. A nil logger discards.
func NewDispatcher(owner window.Owner, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{owner: owner, logger: logger}
}

// Minimize asks the owner to minimize the window.
func (d *Dispatcher) Minimize(ctx context.Context) Command {
	return d.send(ctx, CommandMinimize)
}

// ToggleMaximize asks for a restore when state is maximized and for a
// maximize otherwise, including when the state is still unknown.
func (d *Dispatcher) ToggleMaximize(ctx context.Context, state WindowState) Command {
	if state == StateMaximized {
		return d.send(ctx, CommandRestore)
	}
	return d.send(ctx, CommandMaximize)
}

// Close asks the owner to close the window.
func (d *Dispatcher) Close(ctx context.Context) Command {
	return d.send(ctx, CommandClose)
}

// Activate performs the action bound to control c and returns the command
// that was sent, or CommandNone.
func (d *Dispatcher) Activate(ctx context.Context, c Control, state WindowState) Command {
	switch c {
	case ControlMinimize:
		return d.Minimize(ctx)
	case ControlMaximize:
		return d.ToggleMaximize(ctx, state)
	case ControlClose:
		return d.Close(ctx)
	}
	return CommandNone
}

func (d *Dispatcher) send(ctx context.Context, cmd Command) Command {
	var err error
	switch cmd {
	case CommandMinimize:
		err = d.owner.Minimize(ctx)
	case CommandMaximize:
		err = d.owner.Maximize(ctx)
	case CommandRestore:
		err = d.owner.Unmaximize(ctx)
	case CommandClose:
		err = d.owner.Close(ctx)
	}

	// Failures belong to the owner; the caller only learns what was asked.
	if err != nil {
		d.logger.Warn("window command failed", "command", cmd, "err", err)
	} else {
		d.logger.Debug("window command sent", "command", cmd)
	}
	return cmd
}
