package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration. It mirrors the
// embedded defaults/shooter.yaml and is the fallback if that fails to parse.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Arena: ArenaConfig{
			Width:  512,
			Height: 480,
		},
		Physics: PhysicsConfig{
			PlayerSpeed: 200,
			BulletSpeed: 500,
			EnemySpeed:  100,
			MaxFrameDT:  0,
		},
		Combat: CombatConfig{
			FireCooldownMS: 100,
			KillScore:      100,
		},
		Spawn: SpawnConfig{
			Base: 0.993,
		},
		Player: PlayerConfig{
			StartX: 50,
		},
		Sprites: SpriteTable{
			Sheet: "sprites",
			Player: SpriteDef{
				Origin:     [2]int{0, 0},
				Size:       [2]int{39, 39},
				FrameCount: 2,
				FPS:        16,
				Frames:     []int{0, 1},
			},
			BulletForward: SpriteDef{
				Origin:     [2]int{0, 39},
				Size:       [2]int{18, 8},
				FrameCount: 1,
			},
			BulletUp: SpriteDef{
				Origin:     [2]int{0, 50},
				Size:       [2]int{9, 5},
				FrameCount: 1,
			},
			BulletDown: SpriteDef{
				Origin:     [2]int{0, 60},
				Size:       [2]int{9, 5},
				FrameCount: 1,
			},
			Enemy: SpriteDef{
				Origin:     [2]int{0, 78},
				Size:       [2]int{80, 39},
				FrameCount: 4,
				FPS:        6,
				Frames:     []int{0, 1, 2, 3, 2, 1},
			},
			Explosion: SpriteDef{
				Origin:     [2]int{0, 117},
				Size:       [2]int{39, 39},
				FrameCount: 13,
				FPS:        16,
				Frames:     []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
				Once:       true,
			},
		},
		TUI: TUIConfig{
			HoldWindowMS: 550,
			Background:   SkinEntry{Glyphs: "·", Color: "gray"},
			Skin: map[string]SkinEntry{
				"player":         {Glyphs: "▶▷", Color: "bright_cyan"},
				"bullet_forward": {Glyphs: "━", Color: "bright_yellow"},
				"bullet_up":      {Glyphs: "╹", Color: "yellow"},
				"bullet_down":    {Glyphs: "╻", Color: "yellow"},
				"enemy":          {Glyphs: "◀◁◂◃", Color: "bright_red"},
				"explosion":      {Glyphs: "@@##**++::...", Color: "orange"},
			},
		},
		Window: WindowConfig{
			Title: "Arena Shooter",
			Scale: 1.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `shooter config --defaults`.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
