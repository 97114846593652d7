package shooter

// Store holds every live entity. The player is always present; the other
// collections keep insertion order.
type Store struct {
	Player     *Entity
	Bullets    []*Entity
	Enemies    []*Entity
	Explosions []*Entity
}

// ClearCombatants drops all bullets and enemies. Explosions are kept.
func (s *Store) ClearCombatants() {
	s.Bullets = s.Bullets[:0]
	s.Enemies = s.Enemies[:0]
}

// Count returns the number of entities of a kind.
func (s *Store) Count(k Kind) int {
	switch k {
	case KindPlayer:
		if s.Player != nil {
			return 1
		}
		return 0
	case KindBullet:
		return len(s.Bullets)
	case KindEnemy:
		return len(s.Enemies)
	case KindExplosion:
		return len(s.Explosions)
	default:
		return 0
	}
}

// removeAt deletes the i-th entity, preserving the order of the rest.
// Callers scanning by index must re-examine index i afterwards.
func removeAt(list []*Entity, i int) []*Entity {
	copy(list[i:], list[i+1:])
	list[len(list)-1] = nil
	return list[:len(list)-1]
}
