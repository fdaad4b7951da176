package feed

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelfeed/reelfeed/domain"
)

// handleFeedLoadingMsg applies page fetch outcomes. Results from
// superseded requests are dropped by sequence number.
func (m Model) handleFeedLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PageLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.fetching = false
		m.loading = false
		m.err = nil

		if msg.NoMore {
			m.hasMore = false
			return m, nil
		}
		if len(msg.Items) == 0 {
			m.hasMore = false
			return m, nil
		}

		m.items = appendNew(m.items, msg.Items)
		m.nextPage = msg.Page + 1

		var cmds []tea.Cmd
		if cmd := m.applyWindow(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		// The lookahead check may already have been crossed while the
		// fetch was in flight.
		var fetch tea.Cmd
		m, fetch = m.maybeScheduleFetch()
		if fetch != nil {
			cmds = append(cmds, fetch)
		}
		return m, tea.Batch(cmds...)

	case PageErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.fetching = false
		m.loading = false
		m.err = msg.Err
		// Existing items stay usable; the next focus advance past the
		// lookahead boundary retries.
		return m, nil
	}

	return m, nil
}

// appendNew appends incoming items, skipping ids already present.
// The list is append-only; existing indices never shift.
func appendNew(have, incoming []domain.VideoItem) []domain.VideoItem {
	seen := make(map[string]struct{}, len(have))
	for _, it := range have {
		seen[it.ID] = struct{}{}
	}
	for _, it := range incoming {
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		have = append(have, it)
	}
	return have
}
