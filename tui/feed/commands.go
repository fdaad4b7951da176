package feed

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelfeed/reelfeed/app"
	"github.com/reelfeed/reelfeed/domain"
	"github.com/reelfeed/reelfeed/infra/media"
	"github.com/reelfeed/reelfeed/infra/state"
	"github.com/reelfeed/reelfeed/player"
)

// frameInterval approximates one display frame. Scroll-derived focus
// recomputation is coalesced to this cadence.
const frameInterval = 16 * time.Millisecond

// fetchDefer is the idle window granted before a scheduled page fetch
// actually runs, so it never competes with scroll handling.
const fetchDefer = 100 * time.Millisecond

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

// fetchPageCmd sleeps out the idle-deferral window and then fetches
// one page. A terminal no-more-pages result arrives as a PageLoadedMsg
// so the controller retires pagination instead of surfacing an error.
func (m Model) fetchPageCmd(page, seq int, delay time.Duration) tea.Cmd {
	svc := m.feed
	return func() tea.Msg {
		if delay > 0 {
			time.Sleep(delay)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		items, err := svc.FetchPage(ctx, page)
		if err != nil {
			if errors.Is(err, domain.ErrNoMorePages) {
				return PageLoadedMsg{Page: page, ReqSeq: seq, NoMore: true}
			}
			return PageErrorMsg{Err: err, Page: page, ReqSeq: seq}
		}
		return PageLoadedMsg{Items: items, Page: page, ReqSeq: seq}
	}
}

// loadCmd schedules the readiness signals for a freshly mounted
// surface: can-play after the buffering delay, then can-play-through
// shortly after. The generation pins both to the current binding.
func (m Model) loadCmd(rt *itemRuntime) tea.Cmd {
	id := rt.item.ID
	gen := rt.machine.Gen()
	delay := rt.surface.BeginLoad()
	return tea.Batch(
		tea.Tick(delay, func(time.Time) tea.Msg {
			return MediaReadyMsg{ItemID: id, Gen: gen}
		}),
		tea.Tick(delay*2, func(time.Time) tea.Msg {
			return MediaReadyMsg{ItemID: id, Gen: gen, Through: true}
		}),
	)
}

// playCmd executes one play request against a surface and reports the
// outcome tagged with the request's generation.
func playCmd(surface *media.Surface, req player.PlayRequest) tea.Cmd {
	return func() tea.Msg {
		err := surface.Play()
		return PlayResultMsg{ItemID: req.ItemID, Gen: req.Gen, Err: err}
	}
}

// endedCmd schedules the synthetic end-of-media signal for a playing
// item.
func endedCmd(id string, gen int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return MediaEndedMsg{ItemID: id, Gen: gen}
	})
}

// preloadCmd reports first data arrival for a prefetched URL.
func preloadCmd(url string, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return PreloadDoneMsg{URL: url}
	})
}

// shareCmd hands the focused item to the system share opener.
func shareCmd(svc app.ShareService, item domain.VideoItem) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = svc.Share(ctx, app.SharePayload{
			Title: item.Author.Username,
			Text:  item.Description,
			URL:   item.MediaURL,
		})
		return nil
	}
}

// saveStateCmd persists the session UI preferences.
func saveStateCmd(store *state.Store, muted bool, lastItemID string) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		err := store.SaveUIState(state.UIState{Muted: muted, LastItemID: lastItemID})
		return StateSavedMsg{Err: err}
	}
}
