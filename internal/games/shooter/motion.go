package shooter

import "github.com/vovakirdan/arena-shooter/internal/core"

// MovePlayer applies held directional controls to the player. Each axis moves
// at full player speed independently, so diagonals are not normalized.
func (s *Session) MovePlayer(in core.InputState, dt float64) {
	step := s.cfg.Physics.PlayerSpeed * dt
	p := s.store.Player

	if core.Held(in, core.ControlDown) {
		p.Pos.Y += step
	}
	if core.Held(in, core.ControlUp) {
		p.Pos.Y -= step
	}
	if core.Held(in, core.ControlLeft) {
		p.Pos.X -= step
	}
	if core.Held(in, core.ControlRight) {
		p.Pos.X += step
	}
}

// ClampPlayer keeps the player sprite fully inside the arena.
func (s *Session) ClampPlayer() {
	p := s.store.Player
	size := p.Size()
	p.Pos.X = core.ClampF(p.Pos.X, 0, s.cfg.Arena.Width-size.X)
	p.Pos.Y = core.ClampF(p.Pos.Y, 0, s.cfg.Arena.Height-size.Y)
}

// UpdateEntities advances animations and positions by dt and culls what has
// left the arena or finished playing.
func (s *Session) UpdateEntities(dt float64) {
	s.store.Player.Sprite.Update(dt)
	s.updateBullets(dt)
	s.updateEnemies(dt)
	s.updateExplosions(dt)
}

func (s *Session) updateBullets(dt float64) {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	step := s.cfg.Physics.BulletSpeed * dt

	for i := 0; i < len(s.store.Bullets); i++ {
		b := s.store.Bullets[i]
		b.Pos = b.Pos.Add(b.Dir.Unit().Scale(step))
		b.Sprite.Update(dt)

		if b.Pos.Y < 0 || b.Pos.Y > h || b.Pos.X > w {
			s.store.Bullets = removeAt(s.store.Bullets, i)
			i--
		}
	}
}

func (s *Session) updateEnemies(dt float64) {
	step := s.cfg.Physics.EnemySpeed * dt

	for i := 0; i < len(s.store.Enemies); i++ {
		e := s.store.Enemies[i]
		e.Pos.X -= step
		e.Sprite.Update(dt)

		if e.Pos.X+e.Size().X < 0 {
			s.store.Enemies = removeAt(s.store.Enemies, i)
			i--
		}
	}
}

func (s *Session) updateExplosions(dt float64) {
	for i := 0; i < len(s.store.Explosions); i++ {
		x := s.store.Explosions[i]
		x.Sprite.Update(dt)

		if x.Sprite.Done() {
			s.store.Explosions = removeAt(s.store.Explosions, i)
			i--
		}
	}
}
