package shooter

import (
	"time"

	"github.com/vovakirdan/arena-shooter/internal/core"
)

// FrameResult describes what happened during one simulation step.
type FrameResult struct {
	DT      float64 // Seconds applied this frame
	Fired   bool
	Spawned *Entity // New enemy, if any
	CollisionResult
}

// Step runs one frame of simulation with an already computed dt:
// game time, input, motion, spawning and collisions, in that order.
// now is the real time used for fire-rate limiting.
func (s *Session) Step(in core.InputState, rng core.RNG, now time.Time, dt float64) FrameResult {
	res := FrameResult{DT: dt}
	s.frames++
	s.gameTime += dt

	s.MovePlayer(in, dt)
	if core.Held(in, core.ControlFire) {
		res.Fired = s.Fire(now)
	}

	s.UpdateEntities(dt)
	res.Spawned = s.Spawn(rng)
	res.CollisionResult = s.ResolveCollisions()

	return res
}

// Frames returns how many steps the session has run, across resets.
func (s *Session) Frames() uint64 {
	return s.frames
}
