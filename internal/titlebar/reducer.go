package titlebar

// Signal is an input to Reduce.
type Signal interface {
	signal()
}

// QueryResolved carries the answer to the one-shot state query.
type QueryResolved struct {
	Maximized bool
}

// QueryFailed reports that the state query errored or timed out.
type QueryFailed struct {
	Err error
}

// MaximizedEvent is the owner reporting a transition into maximized.
type MaximizedEvent struct{}

// UnmaximizedEvent is the owner reporting a transition into restored.
type UnmaximizedEvent struct{}

// HoverEntered reports the pointer entering a button.
type HoverEntered struct {
	Control Control
}

// HoverLeft reports the pointer leaving whatever button it was over.
type HoverLeft struct{}

// Unmounted marks the titlebar as torn down.
type Unmounted struct{}

func (QueryResolved) signal()    {}
func (QueryFailed) signal()      {}
func (MaximizedEvent) signal()   {}
func (UnmaximizedEvent) signal() {}
func (HoverEntered) signal()     {}
func (HoverLeft) signal()        {}
func (Unmounted) signal()        {}

// Snapshot is the complete titlebar state.
type Snapshot struct {
	State   WindowState
	Hover   Control
	Mounted bool

	// eventSeen is set once an owner event has been applied; from then on
	// the initial query answer is stale.
	eventSeen bool
}

// Initial returns the state of a freshly mounted titlebar.
func Initial() Snapshot {
	return Snapshot{Mounted: true}
}

// Reduce applies sig to s and returns the result. It is pure.
//
// Owner events always win over the initial query: a query answer that
// arrives after any event is discarded. Once unmounted, nothing changes.
func Reduce(s Snapshot, sig Signal) Snapshot {
	if !s.Mounted {
		return s
	}

	switch sig := sig.(type) {
	case QueryResolved:
		if s.eventSeen || s.State != StateUnknown {
			return s
		}
		s.State = stateFor(sig.Maximized)

	case QueryFailed:
		// Unknown persists; rendering falls back to the restored look.

	case MaximizedEvent:
		s.State = StateMaximized
		s.eventSeen = true

	case UnmaximizedEvent:
		s.State = StateRestored
		s.eventSeen = true

	case HoverEntered:
		if sig.Control.Valid() {
			s.Hover = sig.Control
		}

	case HoverLeft:
		s.Hover = ControlNone

	case Unmounted:
		s.Mounted = false
		s.Hover = ControlNone
	}

	return s
}

// ReduceAll folds sigs over s in order.
func ReduceAll(s Snapshot, sigs ...Signal) Snapshot {
	for _, sig := range sigs {
		s = Reduce(s, sig)
	}
	return s
}
