package feed

import (
	tea "github.com/charmbracelet/bubbletea"
)

// applyLikeToggle flips the focused item's like state and its counter
// in one step. The two never change independently.
func (m Model) applyLikeToggle() (Model, tea.Cmd) {
	if m.focus < 0 || m.focus >= len(m.items) {
		return m, nil
	}
	item := &m.items[m.focus]
	if item.Liked {
		item.Liked = false
		item.Stats.Likes--
	} else {
		item.Liked = true
		item.Stats.Likes++
	}
	m.syncRuntimeItem(item.ID)
	return m, nil
}

// applyLikeBoost is the double-tap analog: it only ever likes. A
// second boost on an already-liked item changes nothing.
func (m Model) applyLikeBoost() (Model, tea.Cmd) {
	if m.focus < 0 || m.focus >= len(m.items) {
		return m, nil
	}
	item := &m.items[m.focus]
	if item.Liked {
		return m, nil
	}
	item.Liked = true
	item.Stats.Likes++
	m.syncRuntimeItem(item.ID)
	return m, nil
}

// syncRuntimeItem copies the canonical item back into its runtime so
// the rendered card reflects the mutation.
func (m *Model) syncRuntimeItem(id string) {
	rt, ok := m.runtimes[id]
	if !ok {
		return
	}
	for i := range m.items {
		if m.items[i].ID == id {
			rt.item = m.items[i]
			return
		}
	}
}
