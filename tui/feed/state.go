package feed

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reelfeed/reelfeed/app"
	"github.com/reelfeed/reelfeed/domain"
	"github.com/reelfeed/reelfeed/infra/media"
	"github.com/reelfeed/reelfeed/infra/state"
	"github.com/reelfeed/reelfeed/player"
	"github.com/reelfeed/reelfeed/tui/common"
)

// --- Messages ---

// PageLoadedMsg is sent when a page fetch completes successfully, or
// when the source reports there is nothing further (NoMore).
type PageLoadedMsg struct {
	Items  []domain.VideoItem
	Page   int
	ReqSeq int
	NoMore bool
}

// PageErrorMsg is sent when a page fetch fails transiently.
type PageErrorMsg struct {
	Err    error
	Page   int
	ReqSeq int
}

// FrameMsg rate-limits scroll-derived recomputation to one per frame.
type FrameMsg struct{}

// MediaReadyMsg is the surface's readiness signal. Through marks the
// can-play-fully level; both levels drive the machine identically.
type MediaReadyMsg struct {
	ItemID  string
	Gen     int
	Through bool
}

// MediaStallMsg is the surface's needs-more-data signal.
type MediaStallMsg struct {
	ItemID string
	Gen    int
}

// MediaErrorMsg is the surface's load/decode failure signal.
type MediaErrorMsg struct {
	ItemID  string
	Gen     int
	Message string
}

// MediaEndedMsg is the surface's end-of-media signal; playback loops.
type MediaEndedMsg struct {
	ItemID string
	Gen    int
}

// PlayResultMsg carries the outcome of an issued play command.
type PlayResultMsg struct {
	ItemID string
	Gen    int
	Err    error
}

// PreloadDoneMsg marks first data arrival for a prefetched URL.
type PreloadDoneMsg struct {
	URL string
}

// OpenCommentsMsg asks the root model to open the drawer for a video.
type OpenCommentsMsg struct {
	VideoID string
}

// StateSavedMsg reports the outcome of a UI-state persist.
type StateSavedMsg struct {
	Err error
}

// --- Model ---

// Params carries the configuration the feed controller needs.
type Params struct {
	RenderRadius  int
	PreloadRadius int
	Threshold     float64
	Lookahead     int
	Autoplay      media.AutoplayPolicy
	BufferDelay   time.Duration
	LoopLength    time.Duration
	Muted         bool
}

type modelServices struct {
	feed  app.FeedService
	share app.ShareService
	store *state.Store
}

type feedState struct {
	items    []domain.VideoItem
	nextPage int
	loading  bool // initial skeleton, before page 0 arrives
	fetching bool // a page fetch is scheduled or in flight
	hasMore  bool
	err      error
	reqSeq   int
	notice   string
}

type viewportState struct {
	width        int
	height       int
	scrollOffset int // rows from the top of the virtual list
	lastOffset   int // offset at the last focus recomputation
	focus        int
	frameQueued  bool
}

type playbackState struct {
	window      player.Window
	threshold   float64
	policy      media.AutoplayPolicy
	bufferDelay time.Duration
	loopLength  time.Duration
	muted       bool
	runtimes    map[string]*itemRuntime
	pool        *player.Pool
	loader      *media.PreloadLoader
}

type interactionState struct {
	followed map[string]bool // author id → followed this session
}

type uiState struct {
	keys         common.KeyMap
	spinner      spinner.Model
	showAllHints bool
}

// Model is the feed controller: it owns the item list, derives the
// focus index from scroll position, applies the playback window, and
// routes gestures.
type Model struct {
	modelServices
	feedState
	viewportState
	playbackState
	interactionState
	uiState

	lookahead int
}

// New creates the feed controller with injected dependencies.
func New(feedSvc app.FeedService, shareSvc app.ShareService, store *state.Store, p Params) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF2D78"))

	if p.Threshold <= 0 || p.Threshold > 1 {
		p.Threshold = player.DefaultThreshold
	}
	if p.Lookahead <= 0 {
		p.Lookahead = 3
	}
	if p.BufferDelay <= 0 {
		p.BufferDelay = 400 * time.Millisecond
	}
	if p.LoopLength <= 0 {
		p.LoopLength = 30 * time.Second
	}

	loader := media.NewPreloadLoader(p.Autoplay)
	return Model{
		modelServices: modelServices{
			feed:  feedSvc,
			share: shareSvc,
			store: store,
		},
		feedState: feedState{
			loading:  true,
			fetching: true,
			hasMore:  true,
			reqSeq:   1,
		},
		playbackState: playbackState{
			window:      player.Window{RenderRadius: p.RenderRadius, PreloadRadius: p.PreloadRadius},
			threshold:   p.Threshold,
			policy:      p.Autoplay,
			bufferDelay: p.BufferDelay,
			loopLength:  p.LoopLength,
			muted:       p.Muted,
			runtimes:    make(map[string]*itemRuntime),
			loader:      loader,
			pool:        player.NewPool(loader),
		},
		interactionState: interactionState{
			followed: make(map[string]bool),
		},
		uiState: uiState{
			keys:    common.DefaultKeyMap(),
			spinner: s,
		},
		lookahead: p.Lookahead,
	}
}

// Init starts the initial page fetch. New marks the fetch as already
// in flight so a resize arriving first cannot double-schedule it.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchPageCmd(0, m.reqSeq, 0),
		m.spinner.Tick,
	)
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollOffset = m.focus * m.itemHeight()
		m.lastOffset = m.scrollOffset
		return m, m.applyWindow()

	case FrameMsg:
		return m.handleFrame()

	case PageLoadedMsg, PageErrorMsg:
		return m.handleFeedLoadingMsg(msg)

	case MediaReadyMsg, MediaStallMsg, MediaErrorMsg, MediaEndedMsg, PlayResultMsg, PreloadDoneMsg:
		return m.handlePlaybackMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case StateSavedMsg:
		// Persistence is best effort; a failure is not worth a banner.
		return m, nil
	}

	return m, nil
}

// Items exposes the ordered list for the root model and tests.
func (m Model) Items() []domain.VideoItem { return m.items }

// Focus returns the current focus index.
func (m Model) Focus() int { return m.focus }

// Current returns the focused item, if any.
func (m Model) Current() (domain.VideoItem, bool) {
	if m.focus < 0 || m.focus >= len(m.items) {
		return domain.VideoItem{}, false
	}
	return m.items[m.focus], true
}

// Muted reports the session mute preference.
func (m Model) Muted() bool { return m.muted }
