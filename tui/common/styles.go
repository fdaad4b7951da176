package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF2D78")).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true).
			MarginLeft(1)

	// AuthorStyle styles the video author name.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// VerifiedStyle styles the verified-author badge.
	VerifiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BD5CA")).
			Bold(true)

	// FollowedStyle styles the "following" badge next to an author.
	FollowedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			MarginLeft(1)

	// DescriptionStyle styles video descriptions.
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#CAD3F5"))

	// MusicStyle styles the music line under a description.
	MusicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#939AB7")).
			Italic(true)

	// MetadataStyle styles engagement counters.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// LikeActiveStyle styles the like counter once liked.
	LikeActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// CardStyle frames the focused video card.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF2D78")).
			Padding(0, 1)

	// PlaceholderStyle frames dormant placeholder cards.
	PlaceholderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#45475A")).
				Foreground(lipgloss.Color("#45475A")).
				Padding(0, 1)

	// OverlayStyle styles playback state overlays (buffering, paused).
	OverlayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5")).
			Bold(true)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// DrawerTitleStyle styles the comment drawer header.
	DrawerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#CAD3F5")).
				Padding(0, 1)

	// CommentAuthorStyle styles comment author names.
	CommentAuthorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7DC4E4"))

	// TimestampStyle styles relative timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))
)
