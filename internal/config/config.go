// Package config provides YAML-based configuration loading for the arena
// shooter: tuning constants, the sprite table, and host settings.
package config

import (
	"time"

	"github.com/vovakirdan/arena-shooter/internal/sprite"
)

// ShooterConfig contains all configuration for the arena shooter.
type ShooterConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Physics PhysicsConfig `yaml:"physics"`
	Combat  CombatConfig  `yaml:"combat"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Player  PlayerConfig  `yaml:"player"`
	Sprites SpriteTable   `yaml:"sprites"`
	TUI     TUIConfig     `yaml:"tui"`
	Window  WindowConfig  `yaml:"window"`
}

// ArenaConfig defines the playfield size in logical pixels.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines entity speeds in pixels per second.
type PhysicsConfig struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	MaxFrameDT  float64 `yaml:"max_frame_dt"` // Seconds; 0 disables the clamp
}

// CombatConfig defines firing and scoring parameters.
type CombatConfig struct {
	FireCooldownMS int `yaml:"fire_cooldown_ms"`
	KillScore      int `yaml:"kill_score"`
}

// FireCooldown returns the minimum real time between volleys.
func (c CombatConfig) FireCooldown() time.Duration {
	return time.Duration(c.FireCooldownMS) * time.Millisecond
}

// SpawnConfig defines the enemy spawn curve 1 - base^gameTime.
type SpawnConfig struct {
	Base float64 `yaml:"base"`
}

// PlayerConfig defines where the player appears after a reset.
// A nil StartY centres the player vertically in the arena.
type PlayerConfig struct {
	StartX float64  `yaml:"start_x"`
	StartY *float64 `yaml:"start_y,omitempty"`
}

// PlayerStart resolves the player's start position against the arena.
func (c ShooterConfig) PlayerStart() (x, y float64) {
	if c.Player.StartY != nil {
		return c.Player.StartX, *c.Player.StartY
	}
	return c.Player.StartX, c.Arena.Height / 2
}

// SpriteDef describes one animation strip on the sprite sheet.
type SpriteDef struct {
	Origin     [2]int  `yaml:"origin"`
	Size       [2]int  `yaml:"size"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps,omitempty"`
	Frames     []int   `yaml:"frames,omitempty"`
	Once       bool    `yaml:"once,omitempty"`
}

// Sprite converts the definition into an animator configuration.
func (d SpriteDef) Sprite(sheet string) sprite.Config {
	frames := make([]int, len(d.Frames))
	copy(frames, d.Frames)
	return sprite.Config{
		Sheet:         sheet,
		OriginX:       d.Origin[0],
		OriginY:       d.Origin[1],
		W:             d.Size[0],
		H:             d.Size[1],
		FrameCount:    d.FrameCount,
		Sequence:      frames,
		FrameDuration: sprite.FrameDurationFromFPS(d.FPS),
		Once:          d.Once,
	}
}

// SpriteTable lists every sprite the simulation creates.
type SpriteTable struct {
	Sheet         string    `yaml:"sheet"`
	Player        SpriteDef `yaml:"player"`
	BulletForward SpriteDef `yaml:"bullet_forward"`
	BulletUp      SpriteDef `yaml:"bullet_up"`
	BulletDown    SpriteDef `yaml:"bullet_down"`
	Enemy         SpriteDef `yaml:"enemy"`
	Explosion     SpriteDef `yaml:"explosion"`
}

// Named returns the sprite definitions keyed by name, for validation and
// for hosts that build per-sprite assets.
func (t SpriteTable) Named() map[string]SpriteDef {
	return map[string]SpriteDef{
		"player":         t.Player,
		"bullet_forward": t.BulletForward,
		"bullet_up":      t.BulletUp,
		"bullet_down":    t.BulletDown,
		"enemy":          t.Enemy,
		"explosion":      t.Explosion,
	}
}

// SkinEntry defines how a sprite looks in the terminal.
// Glyphs cycle with the animation frame.
type SkinEntry struct {
	Glyphs string `yaml:"glyphs"`
	Color  string `yaml:"color"`
}

// TUIConfig defines terminal host settings.
type TUIConfig struct {
	HoldWindowMS int                  `yaml:"hold_window_ms"` // How long a key press counts as held
	Background   SkinEntry            `yaml:"background"`
	Skin         map[string]SkinEntry `yaml:"skin"` // Keyed like SpriteTable.Named
}

// HoldWindow returns the key hold emulation window.
func (t TUIConfig) HoldWindow() time.Duration {
	return time.Duration(t.HoldWindowMS) * time.Millisecond
}

// WindowConfig defines graphical host settings.
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}
