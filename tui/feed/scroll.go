package feed

import (
	tea "github.com/charmbracelet/bubbletea"
)

// scrollBy moves the virtual scroll offset and queues at most one
// frame callback to recompute focus from it.
func (m Model) scrollBy(rows int) (Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	h := m.itemHeight()
	max := (len(m.items) - 1) * h

	m.scrollOffset += rows
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
	if m.scrollOffset > max {
		m.scrollOffset = max
	}

	if m.frameQueued {
		return m, nil
	}
	m.frameQueued = true
	return m, frameCmd()
}

// focusThreshold is the minimum offset movement that triggers a focus
// recomputation. Sub-threshold jitter is ignored.
func (m *Model) focusThreshold() int {
	t := m.itemHeight() / 12
	if t < 1 {
		t = 1
	}
	return t
}

// handleFrame runs once per queued frame: it derives the focus index
// from the scroll offset, and on a focus change re-applies the
// playback window and considers pagination.
func (m Model) handleFrame() (Model, tea.Cmd) {
	m.frameQueued = false

	delta := m.scrollOffset - m.lastOffset
	if delta < 0 {
		delta = -delta
	}
	if delta < m.focusThreshold() {
		return m, nil
	}
	m.lastOffset = m.scrollOffset

	h := m.itemHeight()
	focus := (m.scrollOffset + h/2) / h
	if focus < 0 {
		focus = 0
	}
	if n := len(m.items); n > 0 && focus >= n {
		focus = n - 1
	}
	if focus == m.focus {
		return m, nil
	}
	m.focus = focus

	var cmds []tea.Cmd
	if cmd := m.applyWindow(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	var fetch tea.Cmd
	m, fetch = m.maybeScheduleFetch()
	if fetch != nil {
		cmds = append(cmds, fetch)
	}
	return m, tea.Batch(cmds...)
}

// maybeScheduleFetch starts the next page fetch when the focus has
// advanced into the lookahead tail. At most one fetch is in flight.
func (m Model) maybeScheduleFetch() (Model, tea.Cmd) {
	if m.fetching || !m.hasMore || len(m.items) == 0 {
		return m, nil
	}
	if m.focus < len(m.items)-m.lookahead {
		return m, nil
	}
	m.fetching = true
	m.err = nil
	m.reqSeq++
	return m, m.fetchPageCmd(m.nextPage, m.reqSeq, fetchDefer)
}
