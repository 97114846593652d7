package tui

import (
	"math"

	"github.com/vovakirdan/arena-shooter/internal/config"
	"github.com/vovakirdan/arena-shooter/internal/core"
)

// skin is the terminal look of one sprite strip.
type skin struct {
	originX int
	frameW  int
	glyphs  []rune
	color   core.Color
}

// stripKey identifies a strip on the sheet by its origin row and frame size.
type stripKey struct {
	y, w, h int
}

// CellRenderer draws sprites into a Screen, scaling arena pixels to cells.
// Each sprite frame becomes a filled block of the frame's glyph.
type CellRenderer struct {
	core.Transform

	screen     *core.Screen
	arenaW     float64
	arenaH     float64
	scaleX     float64
	scaleY     float64
	skins      map[stripKey]skin
	background skin
}

// NewCellRenderer builds a renderer for screen using the sprite table and
// terminal skin from cfg. Unknown colors fall back to the default color.
func NewCellRenderer(screen *core.Screen, cfg config.ShooterConfig) *CellRenderer {
	r := &CellRenderer{
		screen: screen,
		arenaW: cfg.Arena.Width,
		arenaH: cfg.Arena.Height,
		skins:  make(map[stripKey]skin),
	}
	r.background = newSkin(0, 1, cfg.TUI.Background)

	for name, def := range cfg.Sprites.Named() {
		entry, ok := cfg.TUI.Skin[name]
		if !ok {
			entry = config.SkinEntry{Glyphs: "#"}
		}
		key := stripKey{y: def.Origin[1], w: def.Size[0], h: def.Size[1]}
		r.skins[key] = newSkin(def.Origin[0], def.Size[0], entry)
	}

	r.Fit()
	return r
}

func newSkin(originX, frameW int, e config.SkinEntry) skin {
	glyphs := []rune(e.Glyphs)
	if len(glyphs) == 0 {
		glyphs = []rune{' '}
	}
	color, err := core.ParseColor(e.Color)
	if err != nil {
		color = core.ColorDefault
	}
	return skin{originX: originX, frameW: frameW, glyphs: glyphs, color: color}
}

// Fit recomputes the arena-to-cell scale from the screen size.
func (r *CellRenderer) Fit() {
	r.scaleX = float64(r.screen.Width()) / r.arenaW
	r.scaleY = float64(r.screen.Height()) / r.arenaH
}

// Screen returns the target screen.
func (r *CellRenderer) Screen() *core.Screen {
	return r.screen
}

// Clear implements core.Renderer by painting the background.
func (r *CellRenderer) Clear() {
	r.ResetTransform()
	r.screen.Fill(r.background.glyphs[0], r.background.color)
}

// DrawSprite implements core.Renderer.
func (r *CellRenderer) DrawSprite(_ string, src core.Rect, dst core.Vec2) {
	sk, ok := r.skins[stripKey{y: src.Y, w: src.W, h: src.H}]
	if !ok {
		sk = skin{frameW: src.W, glyphs: []rune{'?'}}
	}

	frame := 0
	if sk.frameW > 0 {
		frame = (src.X - sk.originX) / sk.frameW
	}
	glyph := sk.glyphs[frame%len(sk.glyphs)]

	r.screen.DrawRect(r.cellRect(r.Apply(dst), src), glyph, sk.color)
}

// cellRect maps an arena-space sprite rectangle to screen cells.
// Every sprite covers at least one cell.
func (r *CellRenderer) cellRect(at core.Vec2, src core.Rect) core.Rect {
	x := int(math.Floor(at.X * r.scaleX))
	y := int(math.Floor(at.Y * r.scaleY))
	w := core.Max(1, int(math.Round(float64(src.W)*r.scaleX)))
	h := core.Max(1, int(math.Round(float64(src.H)*r.scaleY)))
	return core.NewRect(x, y, w, h)
}
