// Package window defines the capability a titlebar needs from whoever owns
// the real window, and ships a simulated owner for local runs and tests.
package window

import (
	"context"
	"errors"
)

var (
	// ErrClosed is returned by every owner operation once the window is closed.
	ErrClosed = errors.New("window closed")
	// ErrQueryFailed is returned by IsMaximized when the owner cannot report state.
	ErrQueryFailed = errors.New("window state query failed")
)

// Owner is the privileged side of the window. The titlebar only ever asks it
// to do things and listens for what actually happened.
//
// Commands are fire-and-forget: they must return promptly and the returned
// error is informational only. The resulting state change, if any, is
// reported later through the OnMaximized/OnUnmaximized handlers.
type Owner interface {
	// IsMaximized reports the current maximized state.
	IsMaximized(ctx context.Context) (bool, error)

	Minimize(ctx context.Context) error
	Maximize(ctx context.Context) error
	Unmaximize(ctx context.Context) error
	Close(ctx context.Context) error

	// OnMaximized registers handler for transitions into the maximized
	// state. The returned function detaches it and is safe to call twice.
	OnMaximized(handler func()) (unsubscribe func())
	// OnUnmaximized registers handler for transitions into the restored state.
	OnUnmaximized(handler func()) (unsubscribe func())
}

// External drives state changes that originate outside the titlebar:
// double-clicking the draggable region, OS shortcuts, window-manager actions.
type External interface {
	ExternalToggle() error
	ExternalMaximize() error
	ExternalRestore() error
}
