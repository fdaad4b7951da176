package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/reelfeed/reelfeed/domain"
	"github.com/reelfeed/reelfeed/player"
	"github.com/reelfeed/reelfeed/tui/common"
)

// View renders the feed: a header, the focused video card, blurred
// neighbor lines above and below, and a status bar.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	if m.loading {
		return m.viewSkeleton()
	}
	if len(m.items) == 0 {
		if m.err != nil {
			return common.ErrorStyle.Render("feed unavailable: " + m.err.Error())
		}
		return common.MetadataStyle.Render("nothing to watch")
	}

	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("reelfeed"))
	b.WriteString(common.TaglineStyle.Render(fmt.Sprintf("%d/%d", m.focus+1, len(m.items))))
	b.WriteString("\n\n")

	if m.focus > 0 {
		b.WriteString(m.viewNeighbor(m.focus - 1))
		b.WriteString("\n")
	}

	b.WriteString(m.viewCard(m.items[m.focus]))
	b.WriteString("\n")

	if m.focus+1 < len(m.items) {
		b.WriteString(m.viewNeighbor(m.focus + 1))
		b.WriteString("\n")
	}

	b.WriteString(m.viewStatus())
	return b.String()
}

func (m Model) viewSkeleton() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("reelfeed"))
	b.WriteString("\n\n")
	card := fmt.Sprintf("%s loading your feed...", m.spinner.View())
	b.WriteString(common.PlaceholderStyle.Width(m.cardWidth()).Render(card))
	return b.String()
}

func (m Model) cardWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	if w > 72 {
		w = 72
	}
	return w
}

// viewNeighbor renders the single-line edge of an adjacent card.
func (m Model) viewNeighbor(i int) string {
	item := m.items[i]
	line := ansi.Truncate("@"+item.Author.Username+"  "+item.Description, m.cardWidth()-2, "…")
	return common.PlaceholderStyle.Width(m.cardWidth()).Render(line)
}

func (m Model) viewCard(item domain.VideoItem) string {
	w := m.cardWidth()
	inner := w - 2

	author := common.AuthorStyle.Render("@" + item.Author.Username)
	if item.Author.Verified {
		author += " " + common.VerifiedStyle.Render("✔")
	}
	if m.followed[item.Author.ID] {
		author += common.FollowedStyle.Render("following")
	}

	var lines []string
	lines = append(lines, author)
	lines = append(lines, common.DescriptionStyle.Render(ansi.Truncate(item.Description, inner, "…")))
	if item.Music != nil {
		lines = append(lines, common.MusicStyle.Render(ansi.Truncate("♫ "+item.Music.Name+" · "+item.Music.Artist, inner, "…")))
	}
	lines = append(lines, "")
	lines = append(lines, m.viewOverlay(item.ID))
	lines = append(lines, "")
	lines = append(lines, m.viewCounters(item))

	return common.CardStyle.Width(w).Render(strings.Join(lines, "\n"))
}

// viewOverlay shows what the focused surface is doing right now.
func (m Model) viewOverlay(id string) string {
	rt, ok := m.runtimes[id]
	if !ok {
		return common.MetadataStyle.Render("· · ·")
	}
	switch rt.machine.State() {
	case player.StateBuffering:
		return common.OverlayStyle.Render(m.spinner.View() + " buffering")
	case player.StatePlaying:
		icon := "▶ playing"
		if rt.surface.Muted() {
			icon += "  🔇"
		}
		return common.OverlayStyle.Render(icon)
	case player.StatePaused:
		return common.OverlayStyle.Render("⏸ paused")
	case player.StateError:
		return common.ErrorStyle.Render("✗ " + rt.machine.Err())
	default:
		return common.MetadataStyle.Render("· · ·")
	}
}

func (m Model) viewCounters(item domain.VideoItem) string {
	likeStyle := common.MetadataStyle
	heart := "♡"
	if item.Liked {
		likeStyle = common.LikeActiveStyle
		heart = "♥"
	}
	parts := []string{
		likeStyle.Render(fmt.Sprintf("%s %s", heart, common.FormatCount(item.Stats.Likes))),
		common.MetadataStyle.Render(fmt.Sprintf("💬 %s", common.FormatCount(item.Stats.Comments))),
		common.MetadataStyle.Render(fmt.Sprintf("↗ %s", common.FormatCount(item.Stats.Shares))),
	}
	return strings.Join(parts, "   ")
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return common.ErrorStyle.Render("couldn't load more: " + m.err.Error())
	}
	var hints []string
	if m.showAllHints {
		hints = []string{
			"j/k scroll", "space play/pause", "l like", "L double-tap",
			"c comments", "s share", "f follow", "m mute", "r restart", "q quit",
		}
	} else {
		hints = []string{"j/k scroll", "space play/pause", "? help"}
		if m.fetching {
			hints = append(hints, m.spinner.View()+" loading more")
		} else if !m.hasMore && m.focus == len(m.items)-1 {
			hints = append(hints, "end of feed")
		}
	}
	if m.notice != "" {
		hints = append(hints, m.notice)
	}
	return common.StatusBarStyle.Render(strings.Join(hints, " · "))
}
