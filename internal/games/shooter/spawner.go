package shooter

import "github.com/vovakirdan/arena-shooter/internal/core"

// SpawnProbability returns the per-frame enemy spawn chance at the current
// game time.
func (s *Session) SpawnProbability() float64 {
	return s.curve.Probability(s.gameTime)
}

// Spawn draws one sample and, if it falls under the spawn probability, adds
// an enemy just past the right edge at a random height. A second sample is
// drawn only when an enemy spawns. Returns the new enemy or nil.
func (s *Session) Spawn(rng core.RNG) *Entity {
	if rng.Float64() >= s.SpawnProbability() {
		return nil
	}
	y := rng.Float64() * (s.cfg.Arena.Height - s.factory.EnemyHeight())
	e := s.factory.Enemy(core.V(s.cfg.Arena.Width, y))
	s.store.Enemies = append(s.store.Enemies, e)
	return e
}
