package domain

import "errors"

var (
	// ErrAutoplayBlocked indicates a play command was rejected by the
	// autoplay policy. Recoverable: the viewer can start playback manually.
	ErrAutoplayBlocked = errors.New("autoplay blocked by policy")

	// ErrNoMorePages indicates the paged source has no further pages.
	ErrNoMorePages = errors.New("no more pages")

	// ErrFeedUnavailable indicates a transient page fetch failure.
	// Retryable on the next pagination trigger.
	ErrFeedUnavailable = errors.New("feed unavailable")

	// ErrMediaFailed indicates the media resource could not be loaded
	// or decoded. Terminal for the mounted instance.
	ErrMediaFailed = errors.New("media failed to load")
)
