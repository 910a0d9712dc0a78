package window

import (
	"context"
	"io"
	"sync"
	"time"

	"charm.land/log/v2"
	"github.com/google/uuid"
)

// SimOptions configures a simulated window owner.
type SimOptions struct {
	StartMaximized bool
	QueryDelay     time.Duration // Latency of IsMaximized
	EventDelay     time.Duration // Latency between a transition and its event
	FailQuery      bool          // IsMaximized always fails after QueryDelay
	OnClose        func()        // Called once, from the delivery goroutine
	Logger         *log.Logger
}

// SimState is a point-in-time copy of the simulated window record.
type SimState struct {
	Maximized bool
	Minimized bool
	Closed    bool
}

type simEventKind int

const (
	simMaximized simEventKind = iota
	simUnmaximized
	simClosed
)

// Sim is an in-process window owner that behaves like a window manager:
// transitions are applied immediately to its own record and announced to
// listeners asynchronously, in order, from a single delivery goroutine.
type Sim struct {
	opts   SimOptions
	logger *log.Logger

	mu             sync.Mutex
	state          SimState
	maxListeners   map[string]func()
	unmaxListeners map[string]func()
	pending        []simEventKind

	wake     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewSim creates a simulated owner and starts its delivery goroutine.
// Call Shutdown to stop it.
func NewSim(opts SimOptions) *Sim {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Sim{
		opts:           opts,
		logger:         logger.With("component", "sim"),
		state:          SimState{Maximized: opts.StartMaximized},
		maxListeners:   make(map[string]func()),
		unmaxListeners: make(map[string]func()),
		wake:           make(chan struct{}, 1),
		done:           make(chan struct{}),
	}
	go s.deliver()
	return s
}

// IsMaximized implements Owner.
func (s *Sim) IsMaximized(ctx context.Context) (bool, error) {
	if s.opts.QueryDelay > 0 {
		timer := time.NewTimer(s.opts.QueryDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return false, ctx.Err()
		case <-s.done:
			return false, ErrClosed
		}
	}
	if s.opts.FailQuery {
		return false, ErrQueryFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Closed {
		return false, ErrClosed
	}
	return s.state.Maximized, nil
}

// Minimize implements Owner. Minimizing emits no maximize/unmaximize event.
func (s *Sim) Minimize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Closed {
		return ErrClosed
	}
	s.state.Minimized = true
	s.logger.Debug("minimized")
	return nil
}

// Maximize implements Owner.
func (s *Sim) Maximize(ctx context.Context) error {
	return s.transition(true, "titlebar")
}

// Unmaximize implements Owner.
func (s *Sim) Unmaximize(ctx context.Context) error {
	return s.transition(false, "titlebar")
}

// Close implements Owner. The close handler runs after every event already
// queued has been delivered.
func (s *Sim) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Closed {
		return ErrClosed
	}
	s.state.Closed = true
	s.enqueueLocked(simClosed)
	s.logger.Debug("close requested")
	return nil
}

// ExternalToggle flips the maximized state as a double-click on the
// draggable region would.
func (s *Sim) ExternalToggle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitionLocked(!s.state.Maximized, "drag-region")
}

// ExternalMaximize maximizes the window as an OS shortcut would.
func (s *Sim) ExternalMaximize() error {
	return s.transition(true, "shortcut")
}

// ExternalRestore restores the window as an OS shortcut would.
func (s *Sim) ExternalRestore() error {
	return s.transition(false, "shortcut")
}

// OnMaximized implements Owner.
func (s *Sim) OnMaximized(handler func()) func() {
	return s.subscribe(s.maxListeners, handler)
}

// OnUnmaximized implements Owner.
func (s *Sim) OnUnmaximized(handler func()) func() {
	return s.subscribe(s.unmaxListeners, handler)
}

// ListenerCount returns the number of attached event handlers.
func (s *Sim) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.maxListeners) + len(s.unmaxListeners)
}

// State returns a copy of the simulated window record.
func (s *Sim) State() SimState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Shutdown stops event delivery. Pending events are dropped.
func (s *Sim) Shutdown() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *Sim) subscribe(listeners map[string]func(), handler func()) func() {
	id := uuid.NewString()

	s.mu.Lock()
	listeners[id] = handler
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(listeners, id)
		s.mu.Unlock()
	}
}

func (s *Sim) transition(maximized bool, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitionLocked(maximized, source)
}

// transitionLocked applies a transition. s.mu must be held.
func (s *Sim) transitionLocked(maximized bool, source string) error {
	if s.state.Closed {
		return ErrClosed
	}
	s.state.Minimized = false
	if s.state.Maximized == maximized {
		return nil
	}
	s.state.Maximized = maximized

	if maximized {
		s.enqueueLocked(simMaximized)
	} else {
		s.enqueueLocked(simUnmaximized)
	}
	s.logger.Debug("transition", "maximized", maximized, "source", source)
	return nil
}

func (s *Sim) enqueueLocked(kind simEventKind) {
	s.pending = append(s.pending, kind)
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Sim) deliver() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		for {
			s.mu.Lock()
			if len(s.pending) == 0 {
				s.mu.Unlock()
				break
			}
			kind := s.pending[0]
			s.pending = s.pending[1:]
			s.mu.Unlock()

			if s.opts.EventDelay > 0 {
				select {
				case <-time.After(s.opts.EventDelay):
				case <-s.done:
					return
				}
			}
			s.emit(kind)
		}
	}
}

func (s *Sim) emit(kind simEventKind) {
	if kind == simClosed {
		if s.opts.OnClose != nil {
			s.opts.OnClose()
		}
		return
	}

	s.mu.Lock()
	source := s.unmaxListeners
	if kind == simMaximized {
		source = s.maxListeners
	}
	handlers := make([]func(), 0, len(source))
	for _, h := range source {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h()
	}
}
