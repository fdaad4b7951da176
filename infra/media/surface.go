// Package media provides a simulated media surface: the playback
// engine's view of a <video>-like element, with live paused/muted
// queries, an autoplay policy, and configurable buffering latency.
package media

import (
	"sync"
	"time"

	"github.com/reelfeed/reelfeed/domain"
)

// AutoplayPolicy controls when a play command may succeed without an
// explicit user gesture having unmuted the surface.
type AutoplayPolicy int

const (
	// AutoplayMutedOnly allows autoplay only while muted, mirroring
	// browser defaults.
	AutoplayMutedOnly AutoplayPolicy = iota
	// AutoplayAlways never rejects a play command.
	AutoplayAlways
	// AutoplayNever rejects every play command until unblocked by a
	// later (muted) retry; useful in tests.
	AutoplayNever
)

// ParsePolicy maps a config string to a policy, defaulting to muted-only.
func ParsePolicy(s string) AutoplayPolicy {
	switch s {
	case "always":
		return AutoplayAlways
	case "never":
		return AutoplayNever
	default:
		return AutoplayMutedOnly
	}
}

// Surface simulates one mounted media element. Queries reflect live
// state synchronously; buffering progress is driven externally by the
// owner scheduling readiness events after BufferDelay.
type Surface struct {
	mu       sync.Mutex
	src      string
	paused   bool
	muted    bool
	position time.Duration
	loading  bool
	policy   AutoplayPolicy
	delay    time.Duration
}

// NewSurface creates a paused, muted surface for src.
func NewSurface(src string, policy AutoplayPolicy, bufferDelay time.Duration) *Surface {
	return &Surface{
		src:    src,
		paused: true,
		muted:  true,
		policy: policy,
		delay:  bufferDelay,
	}
}

// Play issues the play command. Policy rejections return
// domain.ErrAutoplayBlocked and leave the surface paused.
func (s *Surface) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.src == "" {
		return domain.ErrMediaFailed
	}
	switch s.policy {
	case AutoplayNever:
		return domain.ErrAutoplayBlocked
	case AutoplayMutedOnly:
		if !s.muted {
			return domain.ErrAutoplayBlocked
		}
	}
	s.paused = false
	return nil
}

func (s *Surface) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
}

func (s *Surface) SeekStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = 0
}

func (s *Surface) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *Surface) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

func (s *Surface) SetMuted(m bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = m
}

// BeginLoad marks a buffering request in flight and reports how long
// the simulated buffer takes; the owner schedules the readiness event.
func (s *Surface) BeginLoad() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	return s.delay
}

func (s *Surface) CancelLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}

// Loading reports whether a buffering request is in flight.
func (s *Surface) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Source returns the bound media URL, empty after teardown.
func (s *Surface) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src
}

// ClearSource tears the surface down: pause, drop the source, rewind,
// and discard any buffered data. A cleared surface holds no resources.
func (s *Surface) ClearSource() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
	s.src = ""
	s.position = 0
	s.loading = false
}
