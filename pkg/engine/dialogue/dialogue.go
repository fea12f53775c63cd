// Package dialogue implements a typewriter text box as a small state machine.
//
// A session runs Idle -> Revealing -> AwaitingAdvance -> Idle. Completion is
// reported through an event queue that the owning scene drains each tick, so
// no game rules live here.
package dialogue

import "time"

// DefaultRevealDelay is the time between revealed characters
const DefaultRevealDelay = 33 * time.Millisecond

// State is the session phase
type State int

const (
	Idle State = iota
	Revealing
	AwaitingAdvance
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Revealing:
		return "revealing"
	case AwaitingAdvance:
		return "awaiting"
	default:
		return "unknown"
	}
}

// Request opens a session
type Request struct {
	Speaker string
	Text    string
	// Tag is returned untouched in the Completed event
	Tag string
}

// Completed is queued exactly once when a session is dismissed
type Completed struct {
	Speaker string
	Tag     string
}

// Option configures a Machine
type Option func(*Machine)

// WithRevealDelay sets the per-character reveal delay
func WithRevealDelay(d time.Duration) Option {
	return func(m *Machine) {
		if d > 0 {
			m.delay = d
		}
	}
}

// Machine is the dialogue state machine. The zero value is not usable; call New.
type Machine struct {
	delay time.Duration

	state   State
	req     Request
	runes   []rune
	cursor  int
	elapsed time.Duration
	events  []Completed
}

// New creates an idle machine
func New(opts ...Option) *Machine {
	m := &Machine{delay: DefaultRevealDelay}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Show starts a session. It is ignored and returns false while another session is active.
func (m *Machine) Show(req Request) bool {
	if m.IsActive() {
		return false
	}
	m.req = req
	m.runes = []rune(req.Text)
	m.cursor = 0
	m.elapsed = 0
	m.state = Revealing
	if len(m.runes) == 0 {
		m.state = AwaitingAdvance
	}
	return true
}

// Tick advances the reveal timer, revealing one character per elapsed delay
func (m *Machine) Tick(dt time.Duration) {
	if m.state != Revealing {
		return
	}
	m.elapsed += dt
	for m.elapsed >= m.delay && m.cursor < len(m.runes) {
		m.elapsed -= m.delay
		m.cursor++
	}
	if m.cursor >= len(m.runes) {
		m.state = AwaitingAdvance
		m.elapsed = 0
	}
}

// Step reveals exactly one character, as if one reveal delay had passed
func (m *Machine) Step() {
	m.Tick(m.delay - m.elapsed)
}

// Skip reveals the whole text at once. Completion is not signalled.
func (m *Machine) Skip() {
	if m.state != Revealing {
		return
	}
	m.cursor = len(m.runes)
	m.elapsed = 0
	m.state = AwaitingAdvance
}

// Advance dismisses a fully revealed session and queues its Completed event
func (m *Machine) Advance() {
	if m.state != AwaitingAdvance {
		return
	}
	m.events = append(m.events, Completed{Speaker: m.req.Speaker, Tag: m.req.Tag})
	m.reset()
}

// Input handles a generic continue signal: skip while revealing, dismiss otherwise.
// It reports whether the signal was consumed.
func (m *Machine) Input() bool {
	switch m.state {
	case Revealing:
		m.Skip()
		return true
	case AwaitingAdvance:
		m.Advance()
		return true
	default:
		return false
	}
}

// Events returns and clears the queued completions
func (m *Machine) Events() []Completed {
	ev := m.events
	m.events = nil
	return ev
}

// IsActive reports whether a session is open
func (m *Machine) IsActive() bool {
	return m.state != Idle
}

// IsRevealing reports whether text is still being typed out
func (m *Machine) IsRevealing() bool {
	return m.state == Revealing
}

// State returns the current phase
func (m *Machine) State() State {
	return m.state
}

// Revealed returns the visible prefix of the text
func (m *Machine) Revealed() string {
	return string(m.runes[:m.cursor])
}

// Text returns the full session text
func (m *Machine) Text() string {
	return m.req.Text
}

// Speaker returns the session speaker name
func (m *Machine) Speaker() string {
	return m.req.Speaker
}

// Cursor returns how many characters are revealed
func (m *Machine) Cursor() int {
	return m.cursor
}

// Len returns the text length in characters
func (m *Machine) Len() int {
	return len(m.runes)
}

func (m *Machine) reset() {
	m.state = Idle
	m.req = Request{}
	m.runes = nil
	m.cursor = 0
	m.elapsed = 0
}
