package player

// DefaultThreshold is the visibility fraction that counts as "in view".
const DefaultThreshold = 0.8

// Tracker watches a surface's visibility ratio against the viewport and
// fires edge events when the ratio crosses the threshold. Enter fires
// exactly once per upward crossing and Leave exactly once per downward
// crossing; sustained visibility never re-fires.
type Tracker struct {
	threshold float64
	attached  bool
	visible   bool
	onEnter   func()
	onLeave   func()
}

// NewTracker creates a tracker with the given threshold and edge
// callbacks. A non-positive threshold falls back to DefaultThreshold.
func NewTracker(threshold float64, onEnter, onLeave func()) *Tracker {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Tracker{threshold: threshold, onEnter: onEnter, onLeave: onLeave}
}

// Attach starts observing the given surface. A nil surface is a no-op:
// the tracker silently waits and attachment is retried when a surface
// appears.
func (t *Tracker) Attach(surface Surface) {
	if surface == nil {
		return
	}
	t.attached = true
}

// Detach deterministically stops all future callbacks. Observations
// after Detach are dropped.
func (t *Tracker) Detach() {
	t.attached = false
	t.visible = false
}

// Attached reports whether a surface is currently being observed.
func (t *Tracker) Attached() bool { return t.attached }

// Intersecting reports whether the surface is at or above the threshold.
func (t *Tracker) Intersecting() bool { return t.attached && t.visible }

// Observe feeds the current visibility fraction. Crossing the threshold
// from below fires onEnter; crossing back below fires onLeave.
func (t *Tracker) Observe(ratio float64) {
	if !t.attached {
		return
	}
	in := ratio >= t.threshold
	if in == t.visible {
		return
	}
	t.visible = in
	if in {
		if t.onEnter != nil {
			t.onEnter()
		}
		return
	}
	if t.onLeave != nil {
		t.onLeave()
	}
}
