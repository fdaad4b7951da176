package player

// fakeSurface records commands and exposes controllable live state.
type fakeSurface struct {
	paused      bool
	muted       bool
	position    int
	playErr     error
	pauseCalls  int
	seekCalls   int
	cancelCalls int
	clearCalls  int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{paused: true, muted: true}
}

func (s *fakeSurface) Play() error {
	if s.playErr != nil {
		return s.playErr
	}
	s.paused = false
	return nil
}

func (s *fakeSurface) Pause() {
	s.pauseCalls++
	s.paused = true
}

func (s *fakeSurface) SeekStart() {
	s.seekCalls++
	s.position = 0
}

func (s *fakeSurface) Paused() bool     { return s.paused }
func (s *fakeSurface) Muted() bool      { return s.muted }
func (s *fakeSurface) SetMuted(m bool)  { s.muted = m }
func (s *fakeSurface) CancelLoad()      { s.cancelCalls++ }
func (s *fakeSurface) ClearSource()     { s.clearCalls++; s.paused = true; s.position = 0 }
