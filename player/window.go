// Package player holds the viewport-driven playback engine: window
// classification, the per-item playback state machine, visibility
// tracking, and the byte-prefetch pool. It is UI-agnostic; the TUI
// layer adapts it to a terminal viewport.
package player

// Classification is the per-item lifecycle decision derived from the
// item's distance to the focus index.
type Classification int

const (
	// Dormant items render a placeholder and hold zero media resources.
	Dormant Classification = iota
	// Preload items fetch bytes ahead of display without mounting playback.
	Preload
	// Active items are mounted and eligible to play.
	Active
)

func (c Classification) String() string {
	switch c {
	case Active:
		return "active"
	case Preload:
		return "preload"
	default:
		return "dormant"
	}
}

// Window maps index distance from focus to a Classification.
// RenderRadius must not exceed PreloadRadius; zero RenderRadius is
// legal and keeps only the exact focus item Active.
type Window struct {
	RenderRadius  int
	PreloadRadius int
}

// Classify returns the lifecycle decision for the item at index given
// the current focus index. Distance is absolute, so negative indices
// (which never occur in practice) still classify sanely.
func (w Window) Classify(index, focus int) Classification {
	d := index - focus
	if d < 0 {
		d = -d
	}
	switch {
	case d <= w.RenderRadius:
		return Active
	case d <= w.PreloadRadius:
		return Preload
	default:
		return Dormant
	}
}

// WantsBytes reports whether the item's bytes should be resident at
// all: true for both Active (loaded via its mount) and Preload items.
func (w Window) WantsBytes(index, focus int) bool {
	return w.Classify(index, focus) != Dormant
}

// StandalonePreload reports whether the item needs the detached
// preloader. Active items load through their own mounted surface and
// are excluded here.
func (w Window) StandalonePreload(index, focus int) bool {
	return w.Classify(index, focus) == Preload
}

// RenderKey is the comparable memoization key for a rendered item.
// Two renders are equal only if item identity, item index, and focus
// index all match; unrelated state changes must not invalidate it.
type RenderKey struct {
	ID    string
	Index int
	Focus int
}
