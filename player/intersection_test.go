package player

import "testing"

func TestTracker_EdgeTriggersOncePerCrossing(t *testing.T) {
	var enters, leaves int
	tr := NewTracker(0.8, func() { enters++ }, func() { leaves++ })
	tr.Attach(newFakeSurface())

	tr.Observe(0.0)
	tr.Observe(0.5)
	if enters != 0 {
		t.Fatalf("below threshold must not enter")
	}
	tr.Observe(0.8)
	tr.Observe(0.9)
	tr.Observe(1.0)
	if enters != 1 {
		t.Fatalf("sustained visibility fired enter %d times, want 1", enters)
	}
	tr.Observe(0.7)
	tr.Observe(0.1)
	if leaves != 1 {
		t.Fatalf("sustained absence fired leave %d times, want 1", leaves)
	}
	tr.Observe(0.95)
	if enters != 2 {
		t.Fatalf("re-entry must fire enter again, got %d", enters)
	}
}

func TestTracker_DetachStopsCallbacks(t *testing.T) {
	var enters int
	tr := NewTracker(0.8, func() { enters++ }, nil)
	tr.Attach(newFakeSurface())
	tr.Observe(1.0)
	tr.Detach()
	tr.Observe(0.0)
	tr.Observe(1.0)
	if enters != 1 {
		t.Fatalf("observations after detach must be dropped, got %d enters", enters)
	}
	if tr.Intersecting() {
		t.Fatalf("detached tracker must not report intersecting")
	}
}

func TestTracker_NilSurfaceAwaitsAttachment(t *testing.T) {
	var enters int
	tr := NewTracker(0.8, func() { enters++ }, nil)
	tr.Attach(nil)
	tr.Observe(1.0)
	if enters != 0 || tr.Attached() {
		t.Fatalf("nil surface attach must be a silent no-op")
	}
	tr.Attach(newFakeSurface())
	tr.Observe(1.0)
	if enters != 1 {
		t.Fatalf("retried attachment must start observing")
	}
}

func TestTracker_InvalidThresholdFallsBack(t *testing.T) {
	tr := NewTracker(0, nil, nil)
	tr.Attach(newFakeSurface())
	tr.Observe(0.79)
	if tr.Intersecting() {
		t.Fatalf("default threshold is 0.8; 0.79 must not intersect")
	}
	tr.Observe(0.8)
	if !tr.Intersecting() {
		t.Fatalf("0.8 must intersect at the default threshold")
	}
}
