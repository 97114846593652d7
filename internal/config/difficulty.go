package config

import "math"

// SpawnCurve gives the per-frame enemy spawn probability as a function of
// game time: 1 - base^t. It starts at 0 and approaches 1 without a cap.
type SpawnCurve struct {
	Base float64
}

// NewSpawnCurve creates a curve from the spawn config.
func NewSpawnCurve(cfg SpawnConfig) SpawnCurve {
	return SpawnCurve{Base: cfg.Base}
}

// Probability returns the chance of spawning one enemy this frame.
func (c SpawnCurve) Probability(gameTime float64) float64 {
	if gameTime <= 0 {
		return 0
	}
	return 1 - math.Pow(c.Base, gameTime)
}
