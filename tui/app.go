package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelfeed/reelfeed/app"
	"github.com/reelfeed/reelfeed/infra/state"
	"github.com/reelfeed/reelfeed/tui/common"
	"github.com/reelfeed/reelfeed/tui/comments"
	"github.com/reelfeed/reelfeed/tui/feed"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Feed     app.FeedService
	Comments app.CommentService
	Share    app.ShareService
	Store    *state.Store
	Params   feed.Params
}

type activeView int

const (
	feedView activeView = iota
	commentsView
)

// App is the root Bubble Tea model. It routes between the feed and the
// comment drawer.
type App struct {
	deps   Deps
	active activeView
	feed   feed.Model
	drawer comments.Model
	keys   common.KeyMap
	width  int
	height int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		active: feedView,
		feed:   feed.New(deps.Feed, deps.Share, deps.Store, deps.Params),
		keys:   common.DefaultKeyMap(),
	}
}

func (a App) Init() tea.Cmd {
	return a.feed.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		if a.active == commentsView {
			a.drawer.SetSize(msg.Width, msg.Height)
		}
		return a, cmd

	case tea.KeyMsg:
		if a.active == feedView && key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

	case feed.OpenCommentsMsg:
		a.active = commentsView
		a.drawer = comments.New(a.deps.Comments, msg.VideoID)
		a.drawer.SetSize(a.width, a.height)
		return a, a.drawer.Init()

	case comments.ClosedMsg:
		a.active = feedView
		return a, nil

	case spinner.TickMsg:
		// Both views animate off the same tick stream.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		cmds = append(cmds, cmd)
		if a.active == commentsView {
			a.drawer, cmd = a.drawer.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)
	}

	// Playback and pagination messages always reach the feed so media
	// keeps advancing behind the drawer.
	switch msg.(type) {
	case feed.PageLoadedMsg, feed.PageErrorMsg, feed.FrameMsg,
		feed.MediaReadyMsg, feed.MediaStallMsg, feed.MediaErrorMsg,
		feed.MediaEndedMsg, feed.PlayResultMsg, feed.PreloadDoneMsg,
		feed.StateSavedMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd
	}

	switch a.active {
	case feedView:
		updated, cmd := a.feed.Update(msg)
		a.feed = updated
		return a, cmd
	case commentsView:
		updated, cmd := a.drawer.Update(msg)
		a.drawer = updated
		return a, cmd
	}

	return a, nil
}

// View renders the active sub-model.
func (a App) View() string {
	if a.active == commentsView {
		return a.drawer.View()
	}
	return a.feed.View()
}
