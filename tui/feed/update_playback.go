package feed

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handlePlaybackMsg routes surface signals to the owning machine.
// Signals for unmounted items or stale generations are dropped here
// or inside the machine; either way they change nothing.
func (m Model) handlePlaybackMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MediaReadyMsg:
		rt, ok := m.runtimes[msg.ItemID]
		if !ok || rt.machine.Gen() != msg.Gen {
			return m, nil
		}
		rt.take(rt.machine.HandleReady())
		return m, tea.Batch(m.drain(rt)...)

	case MediaStallMsg:
		rt, ok := m.runtimes[msg.ItemID]
		if !ok || rt.machine.Gen() != msg.Gen {
			return m, nil
		}
		rt.machine.HandleWaiting()
		return m, nil

	case MediaErrorMsg:
		rt, ok := m.runtimes[msg.ItemID]
		if !ok || rt.machine.Gen() != msg.Gen {
			return m, nil
		}
		rt.machine.HandleError(msg.Message)
		return m, nil

	case MediaEndedMsg:
		rt, ok := m.runtimes[msg.ItemID]
		if !ok || rt.machine.Gen() != msg.Gen {
			return m, nil
		}
		if rt.surface.Paused() {
			// The loop timer fired after a pause; do not restart.
			return m, nil
		}
		rt.take(rt.machine.HandleEnded())
		return m, tea.Batch(m.drain(rt)...)

	case PlayResultMsg:
		rt, ok := m.runtimes[msg.ItemID]
		if !ok {
			return m, nil
		}
		gen := rt.machine.Gen()
		rt.machine.ResolvePlay(msg.Gen, msg.Err)
		if msg.Err == nil && msg.Gen == gen {
			// Playback started; schedule the synthetic end of media.
			return m, endedCmd(msg.ItemID, gen, m.loopLength)
		}
		return m, nil

	case PreloadDoneMsg:
		m.pool.MarkLoaded(msg.URL)
		return m, nil
	}

	return m, nil
}
