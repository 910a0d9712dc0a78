// Package app provides the titlebar's Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/titlebar/internal/config"
	"github.com/Gaurav-Gosain/titlebar/internal/theme"
	"github.com/Gaurav-Gosain/titlebar/internal/titlebar"
	"github.com/Gaurav-Gosain/titlebar/internal/window"
	"github.com/google/uuid"
)

// Model is the titlebar application state. Everything here is touched only
// from the Bubble Tea update loop, except Cleanup.
type Model struct {
	ID     string
	Width  int
	Height int

	// Snapshot is the reconciled titlebar state; only applySignal writes it.
	Snapshot    titlebar.Snapshot
	Controller  *titlebar.Controller
	Dispatcher  *titlebar.Dispatcher
	Presenter   titlebar.Presenter
	Palette     theme.Palette
	External    window.External // nil when nothing can act outside the titlebar
	LastCommand titlebar.Command

	Config          *config.UserConfig
	KeybindRegistry *config.KeybindRegistry

	ShowHelp        bool
	ShowLogs        bool
	LogMessages     []LogMessage
	LogScrollOffset int

	LastClickTime time.Time // Last click in the draggable region
	LastClickX    int       // Column of that click

	Logger *log.Logger

	configUpdates <-chan ConfigUpdate
	closed        <-chan struct{}
	ctx           context.Context
	cancel        context.CancelFunc
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// Options configures New.
type Options struct {
	Owner         window.Owner
	External      window.External
	Config        *config.UserConfig
	Logger        *log.Logger
	ConfigUpdates <-chan ConfigUpdate // optional hot-reload feed
	Closed        <-chan struct{}     // closed by the owner when the window goes away
	Width         int
	Height        int
}

// New creates an unmounted model. Init mounts it.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	id := uuid.NewString()
	logger = logger.With("titlebar", id[:8])

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		ID:     id,
		Width:  opts.Width,
		Height: opts.Height,
		Controller: titlebar.NewController(opts.Owner,
			titlebar.WithLogger(logger),
			titlebar.WithQueryTimeout(cfg.Window.QueryTimeout.Duration),
		),
		Dispatcher:    titlebar.NewDispatcher(opts.Owner, logger),
		External:      opts.External,
		Logger:        logger,
		configUpdates: opts.ConfigUpdates,
		closed:        opts.Closed,
		ctx:           ctx,
		cancel:        cancel,
	}
	m.ApplyConfig(cfg)
	return m
}

// ApplyConfig switches appearance, labels and keybindings to cfg.
func (m *Model) ApplyConfig(cfg *config.UserConfig) {
	m.Config = cfg
	m.KeybindRegistry = config.NewKeybindRegistry(cfg)
	m.Presenter = PresenterFor(cfg)
	palette, err := theme.Lookup(cfg.Appearance.Theme)
	if err != nil {
		m.LogWarn("%v", err)
	}
	m.Palette = palette
}

// PresenterFor builds the button presenter described by cfg.
func PresenterFor(cfg *config.UserConfig) titlebar.Presenter {
	p := titlebar.DefaultPresenter
	if cfg == nil {
		return p
	}
	if cfg.Appearance.ASCIIOnly {
		p.Glyphs = titlebar.ASCIIGlyphs
	}
	labels := cfg.Labels
	if labels.Minimize != "" {
		p.Labels.Minimize = labels.Minimize
	}
	if labels.Maximize != "" {
		p.Labels.Maximize = labels.Maximize
	}
	if labels.Restore != "" {
		p.Labels.Restore = labels.Restore
	}
	if labels.Close != "" {
		p.Labels.Close = labels.Close
	}
	return p
}

// Mount subscribes to the owner and fires the state query.
func (m *Model) Mount() {
	m.Snapshot = titlebar.Initial()
	m.Controller.Mount(m.ctx)
	m.LogInfo("Mounted, querying window state")
}

// Unmount detaches from the owner. Later deliveries are ignored.
func (m *Model) Unmount() {
	m.Controller.Unmount()
	m.applySignal(titlebar.Unmounted{})
}

// Cleanup releases the owner subscriptions. It is safe to call from any
// goroutine, and more than once.
func (m *Model) Cleanup() {
	m.Controller.Unmount()
	m.cancel()
}

func (m *Model) applySignal(sig titlebar.Signal) {
	prev := m.Snapshot
	m.Snapshot = titlebar.Reduce(prev, sig)

	switch sig := sig.(type) {
	case titlebar.QueryResolved:
		if m.Snapshot.State != prev.State {
			m.LogInfo("Initial state: %s", m.Snapshot.State)
		} else {
			m.LogInfo("Ignored stale state query answer (maximized=%v)", sig.Maximized)
		}
	case titlebar.QueryFailed:
		m.LogWarn("State query failed: %v", sig.Err)
	case titlebar.MaximizedEvent, titlebar.UnmaximizedEvent:
		m.LogInfo("Window event: %s -> %s", prev.State, m.Snapshot.State)
	case titlebar.Unmounted:
		if prev.Mounted {
			m.LogInfo("Unmounted")
		}
	}
}

// SetHover moves the hover target to c, ControlNone clearing it.
func (m *Model) SetHover(c titlebar.Control) {
	if c == m.Snapshot.Hover {
		return
	}
	if c == titlebar.ControlNone {
		m.applySignal(titlebar.HoverLeft{})
		return
	}
	m.applySignal(titlebar.HoverEntered{Control: c})
}

// Activate presses button c.
func (m *Model) Activate(c titlebar.Control) {
	if !m.Snapshot.Mounted {
		return
	}
	cmd := m.Dispatcher.Activate(m.ctx, c, m.Snapshot.State)
	if cmd == titlebar.CommandNone {
		return
	}
	m.LastCommand = cmd
	m.LogInfo("Sent %s", cmd)
}

// ExternalToggle simulates a double-click on the draggable region.
func (m *Model) ExternalToggle() {
	m.external("double-click", func(e window.External) error { return e.ExternalToggle() })
}

// ExternalMaximize simulates the OS maximize shortcut.
func (m *Model) ExternalMaximize() {
	m.external("maximize shortcut", func(e window.External) error { return e.ExternalMaximize() })
}

// ExternalRestore simulates the OS restore shortcut.
func (m *Model) ExternalRestore() {
	m.external("restore shortcut", func(e window.External) error { return e.ExternalRestore() })
}

func (m *Model) external(what string, fn func(window.External) error) {
	if m.External == nil {
		m.LogWarn("No window manager attached for %s", what)
		return
	}
	if err := fn(m.External); err != nil {
		m.LogWarn("Window manager rejected %s: %v", what, err)
		return
	}
	m.LogInfo("Window manager: %s", what)
}

// Log adds a new log message to the log buffer and the logger.
func (m *Model) Log(level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	m.LogMessages = append(m.LogMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: message,
	})
	if len(m.LogMessages) > config.MaxLogMessages {
		m.LogMessages = m.LogMessages[len(m.LogMessages)-config.MaxLogMessages:]
	}

	switch level {
	case "ERROR":
		m.Logger.Error(message)
	case "WARN":
		m.Logger.Warn(message)
	default:
		m.Logger.Info(message)
	}
}

// LogInfo logs an informational message.
func (m *Model) LogInfo(format string, args ...any) {
	m.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (m *Model) LogWarn(format string, args ...any) {
	m.Log("WARN", format, args...)
}

// LogError logs an error message.
func (m *Model) LogError(format string, args ...any) {
	m.Log("ERROR", format, args...)
}
