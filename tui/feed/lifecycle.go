package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelfeed/reelfeed/domain"
	"github.com/reelfeed/reelfeed/infra/media"
	"github.com/reelfeed/reelfeed/player"
)

// itemRuntime bundles the live playback pieces for one rendered item.
// Items outside the render window have no runtime.
type itemRuntime struct {
	item    domain.VideoItem
	surface *media.Surface
	machine *player.Machine
	tracker *player.Tracker

	// pending collects play requests emitted by tracker callbacks and
	// machine calls made during applyWindow; the caller drains them
	// into commands after the sweep.
	pending []player.PlayRequest
}

func (r *itemRuntime) take(req player.PlayRequest, ok bool) {
	if ok {
		r.pending = append(r.pending, req)
	}
}

// itemHeight is the row span of one item in the virtual list. Every
// item occupies exactly one viewport.
func (m *Model) itemHeight() int {
	if m.height <= 0 {
		return 1
	}
	return m.height
}

// visibilityRatio returns the fraction of item i's span that overlaps
// the viewport.
func (m *Model) visibilityRatio(i int) float64 {
	h := m.itemHeight()
	top := i * h
	bottom := top + h
	vTop := m.scrollOffset
	vBottom := vTop + h

	overlapTop := top
	if vTop > overlapTop {
		overlapTop = vTop
	}
	overlapBottom := bottom
	if vBottom < overlapBottom {
		overlapBottom = vBottom
	}
	if overlapBottom <= overlapTop {
		return 0
	}
	return float64(overlapBottom-overlapTop) / float64(h)
}

// applyWindow classifies every item against the current focus, mounts
// and unmounts runtimes accordingly, feeds visibility into each live
// tracker, and maintains the standalone prefetch set. It returns the
// commands produced by any state transitions.
func (m *Model) applyWindow() tea.Cmd {
	var cmds []tea.Cmd

	for i := range m.items {
		item := m.items[i]
		class := m.window.Classify(i, m.focus)

		switch class {
		case player.Active:
			rt, mounted := m.ensureRuntime(item)
			if mounted {
				cmds = append(cmds, m.loadCmd(rt))
			}
			rt.tracker.Observe(m.visibilityRatio(i))
			cmds = append(cmds, m.drain(rt)...)
			// An Active item holds its bytes through its own surface;
			// drop any standalone prefetch handle for the same URL.
			m.pool.Ensure(item.MediaURL, false)

		case player.Preload:
			m.teardownRuntime(item.ID)
			if !m.pool.Preloaded(item.MediaURL) && !m.pool.InFlight(item.MediaURL) {
				m.pool.Ensure(item.MediaURL, true)
				if m.pool.InFlight(item.MediaURL) {
					cmds = append(cmds, preloadCmd(item.MediaURL, m.bufferDelay))
				}
			}

		case player.Dormant:
			m.teardownRuntime(item.ID)
			m.pool.Ensure(item.MediaURL, false)
		}
	}

	return tea.Batch(cmds...)
}

// ensureRuntime mounts a runtime for an item entering the render
// window. Reports whether a fresh mount happened.
func (m *Model) ensureRuntime(item domain.VideoItem) (*itemRuntime, bool) {
	if rt, ok := m.runtimes[item.ID]; ok {
		rt.item = item
		return rt, false
	}

	surface := media.NewSurface(item.MediaURL, m.policy, m.bufferDelay)
	surface.SetMuted(m.muted)
	machine := player.NewMachine(surface)
	machine.Bind(item.ID)

	rt := &itemRuntime{
		item:    item,
		surface: surface,
		machine: machine,
	}
	rt.tracker = player.NewTracker(m.threshold,
		func() { rt.take(rt.machine.HandleEnter()) },
		func() { rt.machine.HandleLeave() },
	)
	rt.tracker.Attach(surface)

	m.runtimes[item.ID] = rt
	return rt, true
}

// teardownRuntime unmounts an item leaving the render window: the
// tracker detaches, playback stops, and the media source is released.
func (m *Model) teardownRuntime(id string) {
	rt, ok := m.runtimes[id]
	if !ok {
		return
	}
	rt.tracker.Detach()
	rt.machine.HandleLeave()
	rt.surface.ClearSource()
	delete(m.runtimes, id)
}

// drain converts a runtime's queued play requests into commands.
func (m *Model) drain(rt *itemRuntime) []tea.Cmd {
	if len(rt.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(rt.pending))
	for _, req := range rt.pending {
		cmds = append(cmds, playCmd(rt.surface, req))
	}
	rt.pending = rt.pending[:0]
	return cmds
}
