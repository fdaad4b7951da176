package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelfeed/reelfeed/app"
	"github.com/reelfeed/reelfeed/domain"
	"github.com/reelfeed/reelfeed/infra/media"
	"github.com/reelfeed/reelfeed/player"
)

// stubFeed serves deterministic pages without latency.
type stubFeed struct {
	pageSize   int
	totalPages int
	calls      int
	failPage   int // page index that fails once, -1 for never
	failed     bool
}

func (s *stubFeed) FetchPage(_ context.Context, page int) ([]domain.VideoItem, error) {
	s.calls++
	if page == s.failPage && !s.failed {
		s.failed = true
		return nil, domain.ErrFeedUnavailable
	}
	if page >= s.totalPages {
		return nil, domain.ErrNoMorePages
	}
	items := make([]domain.VideoItem, s.pageSize)
	for i := range items {
		n := page*s.pageSize + i
		items[i] = domain.VideoItem{
			ID:       fmt.Sprintf("vid-%03d", n),
			MediaURL: fmt.Sprintf("https://cdn.example.com/v/%03d.mp4", n),
			Author:   domain.Author{ID: fmt.Sprintf("u-%d", n%3), Username: fmt.Sprintf("user%d", n%3)},
			Stats:    domain.Stats{Likes: 100 + n},
		}
	}
	return items, nil
}

func (s *stubFeed) CommentsFor(context.Context, string) ([]domain.Comment, error) {
	return nil, nil
}

type stubShare struct{ payloads []app.SharePayload }

func (s *stubShare) Share(_ context.Context, p app.SharePayload) error {
	s.payloads = append(s.payloads, p)
	return nil
}

func testParams() Params {
	return Params{
		RenderRadius:  1,
		PreloadRadius: 2,
		Threshold:     0.8,
		Lookahead:     3,
		Autoplay:      media.AutoplayMutedOnly,
		Muted:         true,
	}
}

func newLoadedModel(t *testing.T, svc *stubFeed) Model {
	t.Helper()
	m := New(svc, nil, nil, testParams())

	page, err := svc.FetchPage(context.Background(), 0)
	if err != nil {
		t.Fatalf("seed page: %v", err)
	}
	svc.calls-- // seed fetch does not count against the model

	m, _ = m.Update(PageLoadedMsg{Items: page, Page: 0, ReqSeq: m.reqSeq})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

// scrollTo drives the model through the scroll path to the given index.
func scrollTo(t *testing.T, m Model, index int) Model {
	t.Helper()
	for m.Focus() != index {
		step := m.itemHeight()
		if index < m.Focus() {
			step = -step
		}
		m, _ = m.scrollBy(step)
		m, _ = m.handleFrame()
	}
	return m
}

func TestInitialPageLoads(t *testing.T) {
	svc := &stubFeed{pageSize: 5, totalPages: 3, failPage: -1}
	m := newLoadedModel(t, svc)

	if len(m.Items()) != 5 {
		t.Fatalf("want 5 items, got %d", len(m.Items()))
	}
	if m.loading {
		t.Fatal("loading flag should clear after the first page")
	}
	if m.Focus() != 0 {
		t.Fatalf("focus = %d, want 0", m.Focus())
	}
}

func TestWindowMountsAroundFocus(t *testing.T) {
	svc := &stubFeed{pageSize: 8, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)

	// Render radius 1 at focus 0 mounts items 0 and 1.
	for i, want := range []bool{true, true, false, false} {
		_, ok := m.runtimes[m.items[i].ID]
		if ok != want {
			t.Errorf("item %d mounted = %v, want %v", i, ok, want)
		}
	}
	// Item 2 sits in the preload band.
	if !m.pool.InFlight(m.items[2].MediaURL) {
		t.Error("item 2 should have a preload handle")
	}
	if m.pool.InFlight(m.items[3].MediaURL) {
		t.Error("item 3 is dormant and should not be prefetching")
	}
}

func TestScrollAdvancesFocusAndSlidesWindow(t *testing.T) {
	svc := &stubFeed{pageSize: 8, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)

	firstID := m.items[0].ID
	m = scrollTo(t, m, 3)

	if m.Focus() != 3 {
		t.Fatalf("focus = %d, want 3", m.Focus())
	}
	if _, ok := m.runtimes[firstID]; ok {
		t.Error("item 0 left the render window and should be unmounted")
	}
	for _, i := range []int{2, 3, 4} {
		if _, ok := m.runtimes[m.items[i].ID]; !ok {
			t.Errorf("item %d should be mounted", i)
		}
	}
}

func TestSubThresholdScrollKeepsFocus(t *testing.T) {
	svc := &stubFeed{pageSize: 5, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)

	m, _ = m.scrollBy(1)
	m, _ = m.handleFrame()
	if m.Focus() != 0 {
		t.Fatalf("1-row jitter moved focus to %d", m.Focus())
	}
}

func TestHalfScrollRoundsToNearest(t *testing.T) {
	svc := &stubFeed{pageSize: 5, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)

	// A bit past half a viewport rounds to the next item.
	m, _ = m.scrollBy(m.itemHeight()/2 + 1)
	m, _ = m.handleFrame()
	if m.Focus() != 1 {
		t.Fatalf("focus = %d after half-scroll past midpoint, want 1", m.Focus())
	}

	// Back under the midpoint rounds to the previous one.
	m, _ = m.scrollBy(-2)
	m, _ = m.handleFrame()
	if m.Focus() != 0 {
		t.Fatalf("focus = %d after scrolling back under midpoint, want 0", m.Focus())
	}
}

func TestPaginationTriggersAtLookahead(t *testing.T) {
	svc := &stubFeed{pageSize: 5, totalPages: 3, failPage: -1}
	m := newLoadedModel(t, svc)

	// Focus 1 is still outside the lookahead tail of a 5-item list.
	m = scrollTo(t, m, 1)
	if m.fetching {
		t.Fatal("fetch scheduled before focus reached the lookahead tail")
	}

	m = scrollTo(t, m, 2)
	if !m.fetching {
		t.Fatal("focus 2 of 5 with lookahead 3 should schedule a fetch")
	}
	seq := m.reqSeq

	// Further scrolling must not start a second fetch.
	m = scrollTo(t, m, 3)
	if m.reqSeq != seq {
		t.Fatal("second fetch scheduled while one was in flight")
	}

	page, _ := svc.FetchPage(context.Background(), 1)
	m, _ = m.Update(PageLoadedMsg{Items: page, Page: 1, ReqSeq: seq})
	if len(m.Items()) != 10 {
		t.Fatalf("want 10 items after page 1, got %d", len(m.Items()))
	}
	if m.nextPage != 2 {
		t.Fatalf("nextPage = %d, want 2", m.nextPage)
	}
	if m.fetching {
		t.Fatal("fetching should clear; focus 3 of 10 is outside the tail")
	}
}

func TestStalePageResultDropped(t *testing.T) {
	svc := &stubFeed{pageSize: 5, totalPages: 3, failPage: -1}
	m := newLoadedModel(t, svc)

	page, _ := svc.FetchPage(context.Background(), 1)
	m, _ = m.Update(PageLoadedMsg{Items: page, Page: 1, ReqSeq: m.reqSeq + 7})
	if len(m.Items()) != 5 {
		t.Fatalf("stale page applied: %d items", len(m.Items()))
	}
}

func TestDuplicateItemsSkippedOnAppend(t *testing.T) {
	svc := &stubFeed{pageSize: 5, totalPages: 3, failPage: -1}
	m := newLoadedModel(t, svc)

	m = scrollTo(t, m, 2)
	seq := m.reqSeq

	page, _ := svc.FetchPage(context.Background(), 1)
	dup := append([]domain.VideoItem{m.items[0]}, page...)
	m, _ = m.Update(PageLoadedMsg{Items: dup, Page: 1, ReqSeq: seq})

	if len(m.Items()) != 10 {
		t.Fatalf("want 10 items with duplicate skipped, got %d", len(m.Items()))
	}
	if m.items[5].ID == m.items[0].ID {
		t.Fatal("duplicate id survived the append")
	}
}

func TestNoMorePagesRetiresPagination(t *testing.T) {
	svc := &stubFeed{pageSize: 3, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)

	m = scrollTo(t, m, 2)
	seq := m.reqSeq
	m, _ = m.Update(PageLoadedMsg{Page: 1, ReqSeq: seq, NoMore: true})

	if m.hasMore {
		t.Fatal("hasMore should clear on a terminal result")
	}
	before := m.reqSeq
	m, _ = m.handleFrame()
	if m.reqSeq != before {
		t.Fatal("pagination retried after the terminal result")
	}
}

func TestPageErrorKeepsFeedUsableAndRetries(t *testing.T) {
	svc := &stubFeed{pageSize: 5, totalPages: 3, failPage: -1}
	m := newLoadedModel(t, svc)

	m = scrollTo(t, m, 2)
	seq := m.reqSeq
	m, _ = m.Update(PageErrorMsg{Err: domain.ErrFeedUnavailable, Page: 1, ReqSeq: seq})

	if !errors.Is(m.err, domain.ErrFeedUnavailable) {
		t.Fatalf("err = %v, want ErrFeedUnavailable", m.err)
	}
	if len(m.Items()) != 5 {
		t.Fatal("loaded items must survive a pagination failure")
	}

	// The next focus advance past the boundary retries.
	m = scrollTo(t, m, 3)
	if m.reqSeq == seq {
		t.Fatal("no retry scheduled after a transient failure")
	}
	if m.err != nil {
		t.Fatal("retry should clear the banner error")
	}
}

func TestLikeToggleMovesStateAndCountTogether(t *testing.T) {
	svc := &stubFeed{pageSize: 3, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)
	base := m.items[0].Stats.Likes

	m, _ = m.applyLikeToggle()
	if !m.items[0].Liked || m.items[0].Stats.Likes != base+1 {
		t.Fatalf("after like: liked=%v likes=%d", m.items[0].Liked, m.items[0].Stats.Likes)
	}
	m, _ = m.applyLikeToggle()
	if m.items[0].Liked || m.items[0].Stats.Likes != base {
		t.Fatalf("after unlike: liked=%v likes=%d", m.items[0].Liked, m.items[0].Stats.Likes)
	}
}

func TestBoostLikeNeverUnlikes(t *testing.T) {
	svc := &stubFeed{pageSize: 3, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)
	base := m.items[0].Stats.Likes

	m, _ = m.applyLikeBoost()
	m, _ = m.applyLikeBoost()
	if !m.items[0].Liked {
		t.Fatal("boost must leave the item liked")
	}
	if m.items[0].Stats.Likes != base+1 {
		t.Fatalf("likes = %d, want %d", m.items[0].Stats.Likes, base+1)
	}
}

func TestMutePropagatesToMountedSurfaces(t *testing.T) {
	svc := &stubFeed{pageSize: 5, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)

	m, _ = m.handleMute()
	if m.Muted() {
		t.Fatal("mute toggle from muted default should unmute")
	}
	for id, rt := range m.runtimes {
		if rt.surface.Muted() {
			t.Errorf("surface %s still muted after unmute", id)
		}
	}
}

func TestMediaSignalsForStaleGenerationDropped(t *testing.T) {
	svc := &stubFeed{pageSize: 5, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)

	id := m.items[0].ID
	rt := m.runtimes[id]
	stale := rt.machine.Gen() - 1

	m, _ = m.Update(MediaErrorMsg{ItemID: id, Gen: stale, Message: "decode failed"})
	if rt.machine.State() == player.StateError {
		t.Fatal("stale media error reached the machine")
	}

	m, _ = m.Update(MediaErrorMsg{ItemID: "vid-nope", Gen: 0, Message: "decode failed"})
	_ = m
}

func TestPlayResultSchedulesLoop(t *testing.T) {
	svc := &stubFeed{pageSize: 5, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)

	id := m.items[0].ID
	rt := m.runtimes[id]
	gen := rt.machine.Gen()

	m, cmd := m.Update(PlayResultMsg{ItemID: id, Gen: gen, Err: nil})
	if rt.machine.State() != player.StatePlaying {
		t.Fatalf("state = %v, want playing", rt.machine.State())
	}
	if cmd == nil {
		t.Fatal("successful play should schedule the end-of-media timer")
	}
}

func TestAutoplayBlockedLandsInPaused(t *testing.T) {
	svc := &stubFeed{pageSize: 5, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)

	id := m.items[0].ID
	rt := m.runtimes[id]
	gen := rt.machine.Gen()

	m, cmd := m.Update(PlayResultMsg{ItemID: id, Gen: gen, Err: domain.ErrAutoplayBlocked})
	if rt.machine.State() != player.StatePaused {
		t.Fatalf("state = %v, want paused after a blocked autoplay", rt.machine.State())
	}
	if cmd != nil {
		t.Fatal("blocked play must not schedule the loop timer")
	}
}

func TestEndedAfterPauseDoesNotRestart(t *testing.T) {
	svc := &stubFeed{pageSize: 5, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)

	id := m.items[0].ID
	rt := m.runtimes[id]
	gen := rt.machine.Gen()

	if err := rt.surface.Play(); err != nil {
		t.Fatalf("play: %v", err)
	}
	m, _ = m.Update(PlayResultMsg{ItemID: id, Gen: gen, Err: nil})
	m, _ = m.handleToggle() // pauses the advancing surface

	m, cmd := m.Update(MediaEndedMsg{ItemID: id, Gen: gen})
	if cmd != nil {
		t.Fatal("loop timer after a user pause should not issue a play")
	}
	if !rt.surface.Paused() {
		t.Fatal("surface resumed on a stale loop timer")
	}
}

func TestShareBumpsCounterAndCallsService(t *testing.T) {
	svc := &stubFeed{pageSize: 3, totalPages: 1, failPage: -1}
	sharer := &stubShare{}
	m := New(svc, sharer, nil, testParams())

	page, _ := svc.FetchPage(context.Background(), 0)
	m, _ = m.Update(PageLoadedMsg{Items: page, Page: 0, ReqSeq: m.reqSeq})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	before := m.items[0].Stats.Shares
	m, cmd := m.handleShare()
	if m.items[0].Stats.Shares != before+1 {
		t.Fatal("share counter not bumped")
	}
	if cmd == nil {
		t.Fatal("no share command issued")
	}
	cmd()
	if len(sharer.payloads) != 1 {
		t.Fatalf("share service called %d times, want 1", len(sharer.payloads))
	}
	if sharer.payloads[0].URL != m.items[0].MediaURL {
		t.Fatalf("shared URL = %q", sharer.payloads[0].URL)
	}
}

func TestFollowTogglesPerAuthor(t *testing.T) {
	svc := &stubFeed{pageSize: 3, totalPages: 1, failPage: -1}
	m := newLoadedModel(t, svc)

	authorID := m.items[0].Author.ID
	m, _ = m.handleFollow()
	if !m.followed[authorID] {
		t.Fatal("follow did not register")
	}
	m, _ = m.handleFollow()
	if m.followed[authorID] {
		t.Fatal("second follow should unfollow")
	}
}
