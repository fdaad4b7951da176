// Package comments implements the comment drawer: a list of comments
// for one video plus an inline composer. The feed only hands it a
// video id and listens for the close message.
package comments

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/reelfeed/reelfeed/app"
	"github.com/reelfeed/reelfeed/domain"
	"github.com/reelfeed/reelfeed/tui/common"
)

// LoadedMsg is sent when the drawer's comment fetch completes.
type LoadedMsg struct {
	VideoID  string
	Comments []domain.Comment
	Err      error
}

// ClosedMsg is sent when the viewer dismisses the drawer.
type ClosedMsg struct{}

// Model holds the drawer state for exactly one video id.
type Model struct {
	svc     app.CommentService
	videoID string

	comments []domain.Comment
	cursor   int
	loading  bool
	err      error

	input   textinput.Model
	typing  bool
	spinner spinner.Model
	keys    common.KeyMap
	width   int
	height  int
}

// New creates a drawer for the given video.
func New(svc app.CommentService, videoID string) Model {
	ti := textinput.New()
	ti.Placeholder = "Add a comment..."
	ti.CharLimit = 150

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF2D78"))

	return Model{
		svc:     svc,
		videoID: videoID,
		loading: true,
		input:   ti,
		spinner: s,
		keys:    common.DefaultKeyMap(),
	}
}

// VideoID returns the id the drawer is open for.
func (m Model) VideoID() string { return m.videoID }

// Init starts the comment fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchComments(), m.spinner.Tick)
}

func (m Model) fetchComments() tea.Cmd {
	svc := m.svc
	id := m.videoID
	return func() tea.Msg {
		cs, err := svc.CommentsFor(context.Background(), id)
		return LoadedMsg{VideoID: id, Comments: cs, Err: err}
	}
}

// SetSize updates the drawer dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the drawer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoadedMsg:
		if msg.VideoID != m.videoID {
			return m, nil
		}
		m.loading = false
		m.err = msg.Err
		m.comments = msg.Comments
		return m, nil

	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg)
		}
		switch {
		case msg.String() == "esc", key.Matches(msg, m.keys.Comment):
			return m, func() tea.Msg { return ClosedMsg{} }
		case key.Matches(msg, m.keys.Prev):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Next):
			if m.cursor < len(m.comments)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Like):
			m.toggleLike(m.cursor)
		case msg.String() == "i", msg.String() == "enter":
			m.typing = true
			m.input.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m Model) updateTyping(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.typing = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		m.typing = false
		m.input.Blur()
		m.input.Reset()
		if text == "" {
			return m, nil
		}
		m.comments = append([]domain.Comment{{
			ID:        "local-" + uuid.NewString(),
			Author:    domain.Author{ID: "you", Username: "you"},
			Content:   text,
			CreatedAt: time.Now(),
		}}, m.comments...)
		m.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// toggleLike flips liked and adjusts the count together; the two are
// never allowed to drift apart.
func (m *Model) toggleLike(i int) {
	if i < 0 || i >= len(m.comments) {
		return
	}
	c := m.comments[i]
	if c.Liked {
		c.Liked = false
		c.Likes--
	} else {
		c.Liked = true
		c.Likes++
	}
	m.comments[i] = c
}

// Comments exposes the current list for the root model and tests.
func (m Model) Comments() []domain.Comment { return m.comments }
