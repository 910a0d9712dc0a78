package titlebar

import (
	"context"
	"sync"
)

// signalQueue is an unbounded FIFO with a single consumer. Producers never
// block, so owner callbacks can push from any goroutine, including one that
// is itself waiting on the consumer.
type signalQueue struct {
	mu     sync.Mutex
	items  []Signal
	closed bool
	ready  chan struct{}
}

func newSignalQueue() *signalQueue {
	return &signalQueue{ready: make(chan struct{}, 1)}
}

// push appends sig. It reports false once the queue is closed.
func (q *signalQueue) push(sig Signal) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, sig)
	q.mu.Unlock()

	q.notify()
	return true
}

// pop blocks until a signal is available, the queue is closed, or ctx is
// done. Signals still queued at close are dropped.
func (q *signalQueue) pop(ctx context.Context) (Signal, bool) {
	for {
		q.mu.Lock()
		if q.closed {
			q.mu.Unlock()
			return nil, false
		}
		if len(q.items) > 0 {
			sig := q.items[0]
			q.items[0] = nil
			q.items = q.items[1:]
			q.mu.Unlock()
			return sig, true
		}
		q.mu.Unlock()

		select {
		case <-q.ready:
		case <-ctx.Done():
			return nil, false
		}
	}
}

func (q *signalQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.items = nil
	q.mu.Unlock()

	q.notify()
}

func (q *signalQueue) notify() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
