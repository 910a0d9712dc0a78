package titlebar

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/titlebar/internal/window"
)

// Controller owns the mount lifecycle: it fires the state query, holds the
// event subscriptions, and funnels everything the owner reports into one
// ordered queue.
type Controller struct {
	owner        window.Owner
	logger       *log.Logger
	queryTimeout time.Duration

	mu          sync.Mutex
	mounted     bool
	queue       *signalQueue
	cancel      context.CancelFunc
	unsubscribe []func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithQueryTimeout bounds the initial state query. Zero waits forever.
func WithQueryTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.queryTimeout = d
	}
}

// NewController creates an unmounted controller for owner.
func NewController(owner window.Owner, opts ...Option) *Controller {
	c := &Controller{
		owner:  owner,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mount subscribes to owner events and starts the state query. Mounting a
// mounted controller does nothing. After Unmount, Mount starts over with a
// fresh queue and fresh subscriptions.
func (c *Controller) Mount(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mounted {
		return
	}

	q := newSignalQueue()
	ctx, cancel := context.WithCancel(ctx)

	c.mounted = true
	c.queue = q
	c.cancel = cancel
	c.unsubscribe = []func(){
		c.owner.OnMaximized(func() { q.push(MaximizedEvent{}) }),
		c.owner.OnUnmaximized(func() { q.push(UnmaximizedEvent{}) }),
	}

	go c.query(ctx, q)
}

func (c *Controller) query(ctx context.Context, q *signalQueue) {
	if c.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.queryTimeout)
		defer cancel()
	}

	maximized, err := c.owner.IsMaximized(ctx)
	if errors.Is(err, context.Canceled) {
		c.logger.Debug("window state query abandoned")
		return
	}
	if err != nil {
		c.logger.Warn("window state query failed", "err", err)
		q.push(QueryFailed{Err: err})
		return
	}
	c.logger.Debug("window state query resolved", "maximized", maximized)
	q.push(QueryResolved{Maximized: maximized})
}

// Next blocks until the next signal. It returns false once the controller is
// unmounted or ctx is done.
func (c *Controller) Next(ctx context.Context) (Signal, bool) {
	c.mu.Lock()
	q := c.queue
	c.mu.Unlock()
	if q == nil {
		return nil, false
	}
	return q.pop(ctx)
}

// Unmount detaches both event handlers and abandons the query before
// returning. Anything the owner delivers afterwards is dropped.
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mounted {
		return
	}

	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil
	c.cancel()
	c.queue.close()
	c.mounted = false
}

// Mounted reports whether the controller is currently mounted.
func (c *Controller) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}
