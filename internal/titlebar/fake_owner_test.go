package titlebar

import (
	"context"
	"sync"
)

type queryAnswer struct {
	maximized bool
	err       error
}

// fakeOwner lets a test decide exactly when the query resolves and when
// events fire.
type fakeOwner struct {
	mu       sync.Mutex
	commands []Command
	max      map[int]func()
	unmax    map[int]func()
	nextID   int
	answers  chan queryAnswer
	queries  int
	cmdError error
}

func newFakeOwner() *fakeOwner {
	return &fakeOwner{
		max:     make(map[int]func()),
		unmax:   make(map[int]func()),
		answers: make(chan queryAnswer, 1),
	}
}

func (f *fakeOwner) IsMaximized(ctx context.Context) (bool, error) {
	f.mu.Lock()
	f.queries++
	f.mu.Unlock()

	select {
	case a := <-f.answers:
		return a.maximized, a.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (f *fakeOwner) record(cmd Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, cmd)
	return f.cmdError
}

func (f *fakeOwner) Minimize(context.Context) error   { return f.record(CommandMinimize) }
func (f *fakeOwner) Maximize(context.Context) error   { return f.record(CommandMaximize) }
func (f *fakeOwner) Unmaximize(context.Context) error { return f.record(CommandRestore) }
func (f *fakeOwner) Close(context.Context) error      { return f.record(CommandClose) }

func (f *fakeOwner) OnMaximized(h func()) func()   { return f.subscribe(f.max, h) }
func (f *fakeOwner) OnUnmaximized(h func()) func() { return f.subscribe(f.unmax, h) }

func (f *fakeOwner) subscribe(m map[int]func(), h func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	m[id] = h
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(m, id)
	}
}

func (f *fakeOwner) fire(maximized bool) {
	f.mu.Lock()
	src := f.unmax
	if maximized {
		src = f.max
	}
	var hs []func()
	for _, h := range src {
		hs = append(hs, h)
	}
	f.mu.Unlock()

	for _, h := range hs {
		h()
	}
}

func (f *fakeOwner) resolve(maximized bool, err error) {
	f.answers <- queryAnswer{maximized: maximized, err: err}
}

func (f *fakeOwner) listeners() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.max) + len(f.unmax)
}

func (f *fakeOwner) sent() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Command(nil), f.commands...)
}
