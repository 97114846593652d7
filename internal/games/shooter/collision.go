package shooter

// CollisionResult summarizes one collision pass.
type CollisionResult struct {
	Kills     int  // Enemies destroyed by bullets
	PlayerHit bool // An enemy touched the player this frame
	Ended     bool // The game moved to GameOver during this pass
}

// ResolveCollisions clamps the player into the arena, then tests every enemy
// against the bullets and the player.
//
// For each enemy, the first colliding bullet destroys it: the enemy and that
// bullet are removed, the score grows and an explosion starts at the enemy's
// position. No other bullet is tested against that enemy. The player test
// then uses the enemy's box from before removal, so an enemy destroyed this
// frame still ends the game if it overlaps the player.
func (s *Session) ResolveCollisions() CollisionResult {
	var res CollisionResult

	s.ClampPlayer()
	player := s.store.Player.Box()

	for i := 0; i < len(s.store.Enemies); i++ {
		enemy := s.store.Enemies[i]
		box := enemy.Box()

		for j := 0; j < len(s.store.Bullets); j++ {
			if !box.Collides(s.store.Bullets[j].Box()) {
				continue
			}

			s.store.Enemies = removeAt(s.store.Enemies, i)
			i--
			s.score += s.cfg.Combat.KillScore
			s.store.Explosions = append(s.store.Explosions, s.factory.Explosion(enemy.Pos))
			s.store.Bullets = removeAt(s.store.Bullets, j)
			res.Kills++
			break
		}

		if box.Collides(player) {
			res.PlayerHit = true
			if s.endGame() {
				res.Ended = true
			}
		}
	}

	return res
}
