package player

// State is the tracked playback state of one mounted item. It is a
// best-effort projection for the UI; play/pause decisions always read
// the surface itself.
type State int

const (
	StateIdle State = iota
	StateBuffering
	StatePlaying
	StatePaused
	StateError
)

func (s State) String() string {
	switch s {
	case StateBuffering:
		return "buffering"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// PlayRequest identifies an asynchronous play command issued by the
// machine. The issuer runs Surface.Play and feeds the outcome back via
// ResolvePlay with the same generation; stale generations are dropped.
type PlayRequest struct {
	ItemID string
	Gen    int
}

// Machine is the per-item playback state machine. It is bound to
// exactly one item identity at a time; rebinding resets all state.
// No transition ever panics or propagates a media failure: command
// errors are translated into states.
type Machine struct {
	surface      Surface
	itemID       string
	state        State
	errMsg       string
	userPaused   bool
	intersecting bool
	gen          int
}

// NewMachine creates a machine over the given surface, unbound and idle.
func NewMachine(surface Surface) *Machine {
	return &Machine{surface: surface}
}

func (m *Machine) State() State       { return m.state }
func (m *Machine) Err() string        { return m.errMsg }
func (m *Machine) ItemID() string     { return m.itemID }
func (m *Machine) UserPaused() bool   { return m.userPaused }
func (m *Machine) Intersecting() bool { return m.intersecting }
func (m *Machine) Gen() int           { return m.gen }

// Bind changes the bound item identity. Forces Idle regardless of the
// prior state (including Error), clears the user-paused flag, and bumps
// the generation so pending play resolutions and media events for the
// old item become no-ops.
func (m *Machine) Bind(itemID string) {
	m.itemID = itemID
	m.state = StateIdle
	m.errMsg = ""
	m.userPaused = false
	m.gen++
	if m.surface != nil {
		m.surface.CancelLoad()
	}
}

func (m *Machine) request() (PlayRequest, bool) {
	return PlayRequest{ItemID: m.itemID, Gen: m.gen}, true
}

// HandleEnter reacts to the tracker's enter edge: clears the sticky
// user-paused flag, requests buffering, and issues a play command.
func (m *Machine) HandleEnter() (PlayRequest, bool) {
	m.intersecting = true
	m.userPaused = false
	if m.state == StateError {
		return PlayRequest{}, false
	}
	m.state = StateBuffering
	return m.request()
}

// HandleLeave reacts to the tracker's leave edge: stop, rewind, force
// Idle, and cancel any in-flight load. The generation bump discards a
// play resolution that lands after the item scrolled away.
func (m *Machine) HandleLeave() {
	m.intersecting = false
	m.userPaused = false
	m.state = StateIdle
	m.errMsg = ""
	m.gen++
	if m.surface == nil {
		return
	}
	m.surface.Pause()
	m.surface.SeekStart()
	m.surface.CancelLoad()
}

// HandleReady reacts to a media readiness signal. Can-play and
// can-play-through arrive here identically. Issues a play command only
// when the item is intersecting, not user-paused, and the surface
// itself reports paused.
func (m *Machine) HandleReady() (PlayRequest, bool) {
	if m.state == StateError {
		return PlayRequest{}, false
	}
	if !m.intersecting || m.userPaused {
		return PlayRequest{}, false
	}
	if m.surface != nil && !m.surface.Paused() {
		return PlayRequest{}, false
	}
	return m.request()
}

// ResolvePlay applies the outcome of a previously issued play command.
// Success lands in Playing; failure (autoplay rejection included) lands
// in Paused, never Error. Outcomes from a superseded generation are
// dropped.
func (m *Machine) ResolvePlay(gen int, err error) {
	if gen != m.gen {
		return
	}
	if m.state == StateError {
		return
	}
	if err != nil {
		m.state = StatePaused
		return
	}
	m.state = StatePlaying
}

// HandlePlaying reacts to the surface's playing signal. Idempotent.
func (m *Machine) HandlePlaying() {
	if m.state == StateError {
		return
	}
	m.state = StatePlaying
}

// HandlePause reacts to any surface pause signal, user- or
// system-initiated.
func (m *Machine) HandlePause() {
	if m.state == StateError {
		return
	}
	m.state = StatePaused
}

// HandleWaiting reacts to the surface stalling for data. A spinner is
// only warranted while intersecting and not intentionally paused.
func (m *Machine) HandleWaiting() {
	if m.state == StateError {
		return
	}
	if !m.intersecting || m.userPaused {
		return
	}
	m.state = StateBuffering
}

// HandleError marks the machine failed with a viewer-facing message.
// Terminal until the bound item identity changes.
func (m *Machine) HandleError(msg string) {
	m.state = StateError
	m.errMsg = msg
}

// HandleEnded loops the video: rewind and reissue play, with no visible
// state transition.
func (m *Machine) HandleEnded() (PlayRequest, bool) {
	if m.state == StateError {
		return PlayRequest{}, false
	}
	if m.surface != nil {
		m.surface.SeekStart()
	}
	return m.request()
}

// Toggle flips play/pause on explicit user intent. The decision reads
// the live surface pause state, not the tracked enum: Buffering/Playing
// can race user clicks and the enum may lag.
func (m *Machine) Toggle() (PlayRequest, bool) {
	if m.surface == nil || m.state == StateError {
		return PlayRequest{}, false
	}
	if !m.surface.Paused() {
		m.surface.Pause()
		m.userPaused = true
		m.state = StatePaused
		return PlayRequest{}, false
	}
	m.userPaused = false
	return m.request()
}
