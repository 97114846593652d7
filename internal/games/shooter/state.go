package shooter

// Phase is the game state machine state.
type Phase int

const (
	Playing Phase = iota
	GameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case GameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Phase returns the current state.
func (s *Session) Phase() Phase {
	return s.phase
}

// IsGameOver reports whether an enemy has reached the player.
func (s *Session) IsGameOver() bool {
	return s.phase == GameOver
}

// endGame moves Playing to GameOver. Repeated calls are no-ops.
// It reports whether the transition happened.
func (s *Session) endGame() bool {
	if s.phase == GameOver {
		return false
	}
	s.phase = GameOver
	return true
}

// Reset starts a new round: bullets and enemies are cleared, game time and
// score go back to zero and the player returns to the start position.
// Explosions in flight keep animating. lastFire is left untouched.
func (s *Session) Reset() {
	s.store.ClearCombatants()
	s.gameTime = 0
	s.score = 0
	s.store.Player.Pos = s.start
	s.phase = Playing
}
