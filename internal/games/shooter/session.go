package shooter

import (
	"time"

	"github.com/vovakirdan/arena-shooter/internal/config"
	"github.com/vovakirdan/arena-shooter/internal/core"
)

// Session owns all mutable simulation state for one player.
// Every phase of a tick operates on it through a pointer.
type Session struct {
	cfg     config.ShooterConfig
	factory Factory
	curve   config.SpawnCurve
	start   core.Vec2

	store    Store
	gameTime float64 // Seconds since the last reset
	score    int
	lastFire time.Time // Real time of the last volley
	phase    Phase
	frames   uint64
}

// NewSession creates a session in the Playing state with the player at its
// start position. now seeds the fire-rate limiter.
func NewSession(cfg config.ShooterConfig, now time.Time) *Session {
	s := &Session{
		cfg:      cfg,
		factory:  NewFactory(cfg.Sprites),
		curve:    config.NewSpawnCurve(cfg.Spawn),
		start:    core.V(cfg.PlayerStart()),
		lastFire: now,
	}
	s.store.Player = s.factory.Player(s.start)
	return s
}

// Config returns the session configuration.
func (s *Session) Config() config.ShooterConfig {
	return s.cfg
}

// Store returns the entity store.
func (s *Session) Store() *Store {
	return &s.store
}

// Player returns the player entity.
func (s *Session) Player() *Entity {
	return s.store.Player
}

// GameTime returns seconds elapsed since the last reset.
func (s *Session) GameTime() float64 {
	return s.gameTime
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// LastFire returns the time of the last volley.
func (s *Session) LastFire() time.Time {
	return s.lastFire
}

// ArenaSize returns the arena dimensions.
func (s *Session) ArenaSize() core.Vec2 {
	return core.V(s.cfg.Arena.Width, s.cfg.Arena.Height)
}

// Fire spawns a forward, an up and a down bullet from the player centre when
// the game is not over and more than the cooldown has passed since the last
// volley. It reports whether bullets were spawned.
func (s *Session) Fire(now time.Time) bool {
	if s.phase == GameOver || now.Sub(s.lastFire) <= s.cfg.Combat.FireCooldown() {
		return false
	}
	p := s.store.Player
	center := p.Pos.Add(p.Size().Scale(0.5))
	for _, dir := range []Direction{Forward, Up, Down} {
		s.store.Bullets = append(s.store.Bullets, s.factory.Bullet(center, dir))
	}
	s.lastFire = now
	return true
}
