package shooter

import "github.com/vovakirdan/arena-shooter/internal/core"

// Autopilot is an InputState that holds fire and weaves the player up and
// down between the arena edges. The headless simulator drives sessions with it.
type Autopilot struct {
	session *Session
	up      bool
	frame   uint64 // Frame the direction was last decided for
}

// NewAutopilot creates an autopilot steering the session's player.
func NewAutopilot(s *Session) *Autopilot {
	return &Autopilot{session: s, up: true}
}

// IsDown implements core.InputState.
func (a *Autopilot) IsDown(name string) bool {
	switch name {
	case core.KeySpace:
		return true
	case core.KeyUp:
		a.steer()
		return a.up
	case core.KeyDown:
		a.steer()
		return !a.up
	default:
		return false
	}
}

// steer flips direction at the top and bottom edges. The decision is taken
// once per frame, before the player has moved.
func (a *Autopilot) steer() {
	f := a.session.Frames()
	if f == a.frame {
		return
	}
	a.frame = f
	p := a.session.Player()
	maxY := a.session.Config().Arena.Height - p.Size().Y
	switch {
	case p.Pos.Y <= 0:
		a.up = false
	case p.Pos.Y >= maxY:
		a.up = true
	}
}
