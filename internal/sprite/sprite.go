// Package sprite implements frame animation over a horizontal strip of
// equally sized frames on a sprite sheet.
package sprite

import "github.com/vovakirdan/arena-shooter/internal/core"

// Config describes one animation strip. It is built explicitly per entity
// kind; nothing is inferred from missing fields except an empty Sequence,
// which means "frame 0 only".
type Config struct {
	Sheet         string  // Sheet name passed through to the renderer
	OriginX       int     // Sheet x of frame 0
	OriginY       int     // Sheet y of frame 0
	W, H          int     // Frame size in pixels
	FrameCount    int     // Frames available in the strip
	Sequence      []int   // Frame indices to play, repeats allowed
	FrameDuration float64 // Seconds per sequence entry; 0 = static
	Once          bool    // Stop on the last entry instead of looping
}

// FrameDurationFromFPS converts a frames-per-second rate to seconds per
// frame. A non-positive rate yields 0 (static).
func FrameDurationFromFPS(fps float64) float64 {
	if fps <= 0 {
		return 0
	}
	return 1 / fps
}

// Sprite is an animation cursor over a Config.
type Sprite struct {
	cfg     Config
	elapsed float64 // Time accumulated toward the next advance
	cursor  int     // Index into cfg.Sequence
	done    bool
}

// New creates a sprite positioned on the first sequence entry.
func New(cfg Config) *Sprite {
	if len(cfg.Sequence) == 0 {
		cfg.Sequence = []int{0}
	}
	return &Sprite{cfg: cfg}
}

// Update advances the animation by dt seconds. Looping sprites wrap around
// the sequence forever. A once sprite marks itself done as soon as the
// cursor lands on the last entry and never advances again.
func (s *Sprite) Update(dt float64) {
	if s.done || s.cfg.FrameDuration <= 0 {
		return
	}

	last := len(s.cfg.Sequence) - 1
	s.elapsed += dt
	for s.elapsed >= s.cfg.FrameDuration {
		s.elapsed -= s.cfg.FrameDuration
		if s.cfg.Once {
			if s.cursor < last {
				s.cursor++
			}
		} else {
			s.cursor = (s.cursor + 1) % len(s.cfg.Sequence)
		}
		if s.cfg.Once && s.cursor >= last {
			break
		}
	}

	if s.cfg.Once && s.cursor >= last {
		s.done = true
		s.elapsed = 0
	}
}

// Render draws the current frame at pos, relative to the renderer's
// current translation.
func (s *Sprite) Render(r core.Renderer, pos core.Vec2) {
	r.DrawSprite(s.cfg.Sheet, s.Source(), pos)
}

// Source returns the sheet rectangle of the current frame.
func (s *Sprite) Source() core.Rect {
	frame := s.Frame()
	return core.NewRect(s.cfg.OriginX+frame*s.cfg.W, s.cfg.OriginY, s.cfg.W, s.cfg.H)
}

// Frame returns the strip index shown at the current cursor.
func (s *Sprite) Frame() int {
	return s.cfg.Sequence[s.cursor]
}

// Cursor returns the current position in the sequence.
func (s *Sprite) Cursor() int {
	return s.cursor
}

// Done reports whether a once sprite has finished. Always false for
// looping sprites.
func (s *Sprite) Done() bool {
	return s.done
}

// Size returns the frame size as a vector.
func (s *Sprite) Size() core.Vec2 {
	return core.V(float64(s.cfg.W), float64(s.cfg.H))
}

// Config returns a copy of the sprite's configuration.
func (s *Sprite) Config() Config {
	return s.cfg
}
