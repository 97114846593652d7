// Package shooter implements the arena shooter simulation: the entity store,
// spawner, motion integrator, collision resolver, game state machine and the
// loop driver that ties them to a Clock, an InputState and a Renderer.
//
// The simulation is pure logic over core collaborators and never touches a
// terminal or a window directly.
package shooter

import (
	"github.com/vovakirdan/arena-shooter/internal/config"
	"github.com/vovakirdan/arena-shooter/internal/core"
	"github.com/vovakirdan/arena-shooter/internal/sprite"
)

// Kind identifies an entity variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
	KindExplosion
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Direction is the travel direction of a bullet.
type Direction int

const (
	Forward Direction = iota // +x
	Up                       // -y
	Down                     // +y
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Unit returns the unit velocity vector for the direction.
func (d Direction) Unit() core.Vec2 {
	switch d {
	case Up:
		return core.V(0, -1)
	case Down:
		return core.V(0, 1)
	default:
		return core.V(1, 0)
	}
}

// Entity is anything that lives in the arena.
type Entity struct {
	Kind   Kind
	Pos    core.Vec2
	Sprite *sprite.Sprite
	Dir    Direction // Bullets only
}

// Size returns the entity's frame size.
func (e *Entity) Size() core.Vec2 {
	return e.Sprite.Size()
}

// Box returns the entity's bounding box at its current position.
func (e *Entity) Box() core.Box {
	return core.BoxAt(e.Pos, e.Size())
}

// Factory builds entities with the sprite configurations of one sprite table.
type Factory struct {
	player    sprite.Config
	bullets   [3]sprite.Config // Indexed by Direction
	enemy     sprite.Config
	explosion sprite.Config
}

// NewFactory converts the sprite table into animator configurations.
func NewFactory(t config.SpriteTable) Factory {
	return Factory{
		player: t.Player.Sprite(t.Sheet),
		bullets: [3]sprite.Config{
			Forward: t.BulletForward.Sprite(t.Sheet),
			Up:      t.BulletUp.Sprite(t.Sheet),
			Down:    t.BulletDown.Sprite(t.Sheet),
		},
		enemy:     t.Enemy.Sprite(t.Sheet),
		explosion: t.Explosion.Sprite(t.Sheet),
	}
}

// Player creates the player entity at pos.
func (f Factory) Player(pos core.Vec2) *Entity {
	return &Entity{Kind: KindPlayer, Pos: pos, Sprite: sprite.New(f.player)}
}

// Bullet creates a bullet travelling in dir.
func (f Factory) Bullet(pos core.Vec2, dir Direction) *Entity {
	return &Entity{Kind: KindBullet, Pos: pos, Sprite: sprite.New(f.bullets[dir]), Dir: dir}
}

// Enemy creates an enemy at pos.
func (f Factory) Enemy(pos core.Vec2) *Entity {
	return &Entity{Kind: KindEnemy, Pos: pos, Sprite: sprite.New(f.enemy)}
}

// Explosion creates a one-shot explosion at pos.
func (f Factory) Explosion(pos core.Vec2) *Entity {
	return &Entity{Kind: KindExplosion, Pos: pos, Sprite: sprite.New(f.explosion)}
}

// EnemyHeight returns the enemy frame height used for spawn placement.
func (f Factory) EnemyHeight() float64 {
	return float64(f.enemy.H)
}
