package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit      key.Binding
	Next      key.Binding // j/↓ — scroll to the next video
	Prev      key.Binding // k/↑ — scroll to the previous video
	HalfNext  key.Binding // J — nudge the viewport half a screen down
	HalfPrev  key.Binding // K — nudge the viewport half a screen up
	Toggle    key.Binding // space — play/pause the focused video
	Like      key.Binding // l — toggle like
	BoostLike key.Binding // L — like (never unlike), double-tap analog
	Comment   key.Binding // c — open the comment drawer
	Share     key.Binding // s — share the focused video
	Follow    key.Binding // f — follow/unfollow the author
	Mute      key.Binding // m — toggle mute
	Restart   key.Binding // r — scrub back to the start
	Help      key.Binding // ? — toggle the full help
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		HalfNext: key.NewBinding(
			key.WithKeys("J", "pgdown"),
			key.WithHelp("J", "nudge down"),
		),
		HalfPrev: key.NewBinding(
			key.WithKeys("K", "pgup"),
			key.WithHelp("K", "nudge up"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		BoostLike: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "double-tap like"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comments"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
