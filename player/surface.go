package player

// Surface is the media-playing surface an Active item owns. The machine
// queries Paused live at every play/pause decision: asynchronous
// readiness events race with user input, and the surface is the only
// authoritative source for "is it currently advancing".
type Surface interface {
	// Play requests playback. A policy rejection surfaces as
	// domain.ErrAutoplayBlocked; any error means playback did not start.
	Play() error
	// Pause stops playback, resumable.
	Pause()
	// SeekStart rewinds the playback position to zero.
	SeekStart()
	// Paused reports the live surface pause state.
	Paused() bool
	// Muted reports the live surface mute state.
	Muted() bool
	// SetMuted flips the surface mute state.
	SetMuted(bool)
	// CancelLoad aborts any in-flight buffering request.
	CancelLoad()
	// ClearSource tears the surface down: pause, drop the source, and
	// release any buffered data.
	ClearSource()
}
