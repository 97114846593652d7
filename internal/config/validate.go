package config

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/arena-shooter/internal/core"
)

// ValidationError contains details about a configuration failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable arena.
func (c ShooterConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_ARENA",
			Message: fmt.Sprintf("arena must be positive, got %vx%v", c.Arena.Width, c.Arena.Height),
		}
	}

	speeds := map[string]float64{
		"player_speed": c.Physics.PlayerSpeed,
		"bullet_speed": c.Physics.BulletSpeed,
		"enemy_speed":  c.Physics.EnemySpeed,
		"max_frame_dt": c.Physics.MaxFrameDT,
	}
	for _, name := range sortedKeys(speeds) {
		if speeds[name] < 0 {
			return ValidationError{
				Code:    "NEGATIVE_PHYSICS",
				Message: fmt.Sprintf("%s must not be negative, got %v", name, speeds[name]),
			}
		}
	}

	if c.Combat.FireCooldownMS < 0 || c.Combat.KillScore < 0 {
		return ValidationError{
			Code:    "NEGATIVE_COMBAT",
			Message: "fire_cooldown_ms and kill_score must not be negative",
		}
	}

	if c.Spawn.Base <= 0 || c.Spawn.Base >= 1 {
		return ValidationError{
			Code:    "INVALID_SPAWN_BASE",
			Message: fmt.Sprintf("spawn base must be in (0, 1), got %v", c.Spawn.Base),
		}
	}

	if x, y := c.PlayerStart(); x < 0 || x > c.Arena.Width || y < 0 || y > c.Arena.Height {
		return ValidationError{
			Code:    "INVALID_START",
			Message: fmt.Sprintf("player start (%v, %v) is outside the arena", x, y),
		}
	}

	if c.Sprites.Sheet == "" {
		return ValidationError{Code: "MISSING_SHEET", Message: "sprites.sheet must be set"}
	}

	named := c.Sprites.Named()
	for _, name := range sortedKeys(named) {
		if err := validateSprite(name, named[name]); err != nil {
			return err
		}
	}

	if err := c.TUI.validate(); err != nil {
		return err
	}

	return nil
}

// validateSprite checks one strip definition.
func validateSprite(name string, d SpriteDef) error {
	if d.Size[0] <= 0 || d.Size[1] <= 0 {
		return ValidationError{
			Code:    "INVALID_SPRITE_SIZE",
			Message: fmt.Sprintf("sprite %s has size %v", name, d.Size),
		}
	}
	if d.FrameCount <= 0 {
		return ValidationError{
			Code:    "INVALID_FRAME_COUNT",
			Message: fmt.Sprintf("sprite %s has frame_count %d", name, d.FrameCount),
		}
	}
	if d.FPS < 0 {
		return ValidationError{
			Code:    "INVALID_FPS",
			Message: fmt.Sprintf("sprite %s has negative fps", name),
		}
	}
	for _, f := range d.Frames {
		if f < 0 || f >= d.FrameCount {
			return ValidationError{
				Code:    "FRAME_OUT_OF_STRIP",
				Message: fmt.Sprintf("sprite %s references frame %d of %d", name, f, d.FrameCount),
			}
		}
	}
	return nil
}

func (t TUIConfig) validate() error {
	if t.HoldWindowMS < 0 {
		return ValidationError{Code: "INVALID_HOLD_WINDOW", Message: "tui.hold_window_ms must not be negative"}
	}
	entries := map[string]SkinEntry{"background": t.Background}
	for name, e := range t.Skin {
		entries[name] = e
	}
	for _, name := range sortedKeys(entries) {
		if _, err := core.ParseColor(entries[name].Color); err != nil {
			return ValidationError{
				Code:    "INVALID_COLOR",
				Message: fmt.Sprintf("tui skin %s: %v", name, err),
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
