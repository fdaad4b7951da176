package comments

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/reelfeed/reelfeed/tui/common"
)

// View renders the drawer as a bordered panel.
func (m Model) View() string {
	width := m.width
	if width < 30 {
		width = 30
	}
	inner := width - 4

	var b strings.Builder
	b.WriteString(common.DrawerTitleStyle.Render(fmt.Sprintf("Comments (%d)", len(m.comments))))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf(" %s Loading comments...\n", m.spinner.View()))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render(" Could not load comments."))
		b.WriteString("\n")
	case len(m.comments) == 0:
		b.WriteString(" No comments yet. Say something nice.\n")
	default:
		now := time.Now()
		for i, c := range m.comments {
			pointer := "  "
			if i == m.cursor && !m.typing {
				pointer = "> "
			}
			likeIcon := "♡"
			likeStyle := common.MetadataStyle
			if c.Liked {
				likeIcon = "♥"
				likeStyle = common.LikeActiveStyle
			}
			header := pointer + common.CommentAuthorStyle.Render("@"+c.Author.Username) +
				"  " + common.TimestampStyle.Render(common.RelativeTime(c.CreatedAt, now))
			meta := fmt.Sprintf("    %s %s", likeStyle.Render(likeIcon), common.FormatCount(c.Likes))
			b.WriteString(header + "\n")
			b.WriteString("    " + ansi.Truncate(c.Content, inner-4, "…") + "\n")
			b.WriteString(common.MetadataStyle.Render(meta) + "\n\n")
		}
	}

	if m.typing {
		b.WriteString("\n" + m.input.View() + "\n")
	} else {
		b.WriteString("\n" + common.StatusBarStyle.Render("enter comment · l like · esc close"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF2D78")).
		Width(width).
		Padding(0, 1).
		Render(b.String())
}
