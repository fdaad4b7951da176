package feed

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m.scrollBy(m.itemHeight())

	case key.Matches(msg, m.keys.Prev):
		return m.scrollBy(-m.itemHeight())

	case key.Matches(msg, m.keys.HalfNext):
		return m.scrollBy(m.itemHeight()/2 + 1)

	case key.Matches(msg, m.keys.HalfPrev):
		return m.scrollBy(-(m.itemHeight()/2 + 1))

	case key.Matches(msg, m.keys.Toggle):
		return m.handleToggle()

	case key.Matches(msg, m.keys.Like):
		return m.applyLikeToggle()

	case key.Matches(msg, m.keys.BoostLike):
		return m.applyLikeBoost()

	case key.Matches(msg, m.keys.Comment):
		item, ok := m.Current()
		if !ok {
			return m, nil
		}
		id := item.ID
		return m, func() tea.Msg { return OpenCommentsMsg{VideoID: id} }

	case key.Matches(msg, m.keys.Share):
		return m.handleShare()

	case key.Matches(msg, m.keys.Follow):
		return m.handleFollow()

	case key.Matches(msg, m.keys.Mute):
		return m.handleMute()

	case key.Matches(msg, m.keys.Restart):
		return m.handleRestart()

	case key.Matches(msg, m.keys.Help):
		m.showAllHints = !m.showAllHints
		return m, nil
	}

	return m, nil
}

// handleToggle flips playback for the focused item based on what the
// surface is doing right now, not on the last rendered state.
func (m Model) handleToggle() (Model, tea.Cmd) {
	item, ok := m.Current()
	if !ok {
		return m, nil
	}
	rt, ok := m.runtimes[item.ID]
	if !ok {
		return m, nil
	}
	rt.take(rt.machine.Toggle())
	return m, tea.Batch(m.drain(rt)...)
}

func (m Model) handleShare() (Model, tea.Cmd) {
	item, ok := m.Current()
	if !ok {
		return m, nil
	}
	m.items[m.focus].Stats.Shares++
	m.notice = "shared"
	return m, shareCmd(m.share, item)
}

func (m Model) handleFollow() (Model, tea.Cmd) {
	item, ok := m.Current()
	if !ok {
		return m, nil
	}
	m.followed[item.Author.ID] = !m.followed[item.Author.ID]
	return m, nil
}

// handleMute flips the session preference, pushes it to every live
// surface, and persists it.
func (m Model) handleMute() (Model, tea.Cmd) {
	m.muted = !m.muted
	for _, rt := range m.runtimes {
		rt.surface.SetMuted(m.muted)
	}
	last := ""
	if item, ok := m.Current(); ok {
		last = item.ID
	}
	return m, saveStateCmd(m.store, m.muted, last)
}

func (m Model) handleRestart() (Model, tea.Cmd) {
	item, ok := m.Current()
	if !ok {
		return m, nil
	}
	rt, ok := m.runtimes[item.ID]
	if !ok {
		return m, nil
	}
	rt.take(rt.machine.HandleEnded())
	return m, tea.Batch(m.drain(rt)...)
}
