package shooter

import "math"

// EntityState is the serializable state of one bullet, enemy or explosion.
type EntityState struct {
	X, Y   float64
	Dir    int // Bullets only
	Cursor int // Animation sequence position
}

// Snapshot captures the full simulation state using primitive types only.
type Snapshot struct {
	Frames       uint64
	GameTime     float64
	Score        int
	Phase        string
	LastFire     int64 // Unix nanoseconds
	PlayerX      float64
	PlayerY      float64
	PlayerCursor int
	Bullets      []EntityState
	Enemies      []EntityState
	Explosions   []EntityState
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	p := s.store.Player
	return Snapshot{
		Frames:       s.frames,
		GameTime:     s.gameTime,
		Score:        s.score,
		Phase:        s.phase.String(),
		LastFire:     s.lastFire.UnixNano(),
		PlayerX:      p.Pos.X,
		PlayerY:      p.Pos.Y,
		PlayerCursor: p.Sprite.Cursor(),
		Bullets:      entityStates(s.store.Bullets),
		Enemies:      entityStates(s.store.Enemies),
		Explosions:   entityStates(s.store.Explosions),
	}
}

func entityStates(list []*Entity) []EntityState {
	out := make([]EntityState, len(list))
	for i, e := range list {
		out[i] = EntityState{X: e.Pos.X, Y: e.Pos.Y, Dir: int(e.Dir), Cursor: e.Sprite.Cursor()}
	}
	return out
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frames
	h = h*31 + math.Float64bits(snap.GameTime)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.LastFire) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.PlayerCursor) //#nosec G115 -- hash computation

	for _, group := range [][]EntityState{snap.Bullets, snap.Enemies, snap.Explosions} {
		h = h*31 + uint64(len(group)) //#nosec G115 -- hash computation
		for _, e := range group {
			h = h*31 + math.Float64bits(e.X)
			h = h*31 + math.Float64bits(e.Y)
			h = h*31 + uint64(e.Dir)    //#nosec G115 -- hash computation
			h = h*31 + uint64(e.Cursor) //#nosec G115 -- hash computation
		}
	}

	return h
}
