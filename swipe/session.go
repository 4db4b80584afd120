// Package swipe turns a continuous drag gesture into discrete accept/reject
// decisions over a loaded profile queue. It is a pure value-object state
// machine: no rendering, no I/O, every transition is an ordinary method call,
// so the whole decision flow is testable headlessly.
package swipe

import "github.com/JAMAL4664jfk/studentKonnect-sub000/models"

// Decision is the terminal outcome of a gesture or button press.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionAccept
	DecisionReject
)

// Action maps the decision onto the stored interaction action.
func (d Decision) Action() string {
	switch d {
	case DecisionAccept:
		return models.ActionAccept
	case DecisionReject:
		return models.ActionReject
	default:
		return ""
	}
}

// State of the gesture machine for the current card.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateResolved
)

const maxRotationDegrees = 10

// Session is the ephemeral decision state for one loaded queue: the current
// card index, the live displacement and the derived machine state. It is
// never persisted.
type Session struct {
	Width    float64
	Profiles []models.Profile

	Index    int
	DX, DY   float64
	State    State
	Decision Decision
}

// NewSession starts a session over a loaded queue. Width is the viewport
// width the thresholds derive from.
func NewSession(width float64, profiles []models.Profile) *Session {
	return &Session{Width: width, Profiles: profiles}
}

// Threshold is the horizontal displacement past which a release resolves.
func (s *Session) Threshold() float64 {
	return s.Width / 4
}

// Current returns the profile under the gesture, if any remain.
func (s *Session) Current() (models.Profile, bool) {
	if s.Exhausted() {
		return models.Profile{}, false
	}
	return s.Profiles[s.Index], true
}

// VisibleCards returns the cards that are live: the current one and the one
// behind it. Everything deeper is inert.
func (s *Session) VisibleCards() []models.Profile {
	if s.Exhausted() {
		return nil
	}
	end := s.Index + 2
	if end > len(s.Profiles) {
		end = len(s.Profiles)
	}
	return s.Profiles[s.Index:end]
}

// Exhausted reports whether every card has been decided.
func (s *Session) Exhausted() bool {
	return s.Index >= len(s.Profiles)
}

// Begin starts a drag. Only valid from idle; in particular a resolved card
// accepts no input until Advance.
func (s *Session) Begin() bool {
	if s.State != StateIdle || s.Exhausted() {
		return false
	}
	s.State = StateDragging
	return true
}

// Move updates the live displacement for a drag frame.
func (s *Session) Move(dx, dy float64) bool {
	if s.State != StateDragging {
		return false
	}
	s.DX, s.DY = dx, dy
	return true
}

// Release ends the drag. Past the threshold it resolves the decision in the
// dragged direction; under it the card springs back and the machine returns
// to idle. The threshold is strict: a release at exactly W/4 springs back.
func (s *Session) Release() Decision {
	if s.State != StateDragging {
		return DecisionNone
	}
	switch {
	case s.DX > s.Threshold():
		s.resolve(DecisionAccept)
	case s.DX < -s.Threshold():
		s.resolve(DecisionReject)
	default:
		s.DX, s.DY = 0, 0
		s.State = StateIdle
		return DecisionNone
	}
	return s.Decision
}

// Press is the programmatic trigger behind the explicit accept/reject
// buttons. It drives the identical terminal transition a gesture does.
func (s *Session) Press(d Decision) bool {
	if d != DecisionAccept && d != DecisionReject {
		return false
	}
	if s.State == StateResolved || s.Exhausted() {
		return false
	}
	s.resolve(d)
	return true
}

func (s *Session) resolve(d Decision) {
	s.Decision = d
	s.State = StateResolved
	// Park the displacement fully off-screen in the decided direction so the
	// exit animation has its end point.
	if d == DecisionAccept {
		s.DX = s.Width
	} else {
		s.DX = -s.Width
	}
}

// Advance moves to the next card after a resolved decision has been handed
// to the recorder. It is the only way out of the resolved state; no undo.
func (s *Session) Advance() bool {
	if s.State != StateResolved {
		return false
	}
	s.Index++
	s.DX, s.DY = 0, 0
	s.State = StateIdle
	s.Decision = DecisionNone
	return true
}

// AcceptOpacity ramps the accept indicator 0 -> 1 as dx goes 0 -> +W/4,
// clamped.
func (s *Session) AcceptOpacity() float64 {
	return clamp01(s.DX / s.Threshold())
}

// RejectOpacity ramps the reject indicator 1 -> 0 as dx goes -W/4 -> 0,
// clamped.
func (s *Session) RejectOpacity() float64 {
	return clamp01(-s.DX / s.Threshold())
}

// Rotation is the card tilt in degrees: linear over [-W/2, W/2] -> [-10, 10],
// clamped outside.
func (s *Session) Rotation() float64 {
	r := s.DX / (s.Width / 2) * maxRotationDegrees
	if r > maxRotationDegrees {
		return maxRotationDegrees
	}
	if r < -maxRotationDegrees {
		return -maxRotationDegrees
	}
	return r
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
