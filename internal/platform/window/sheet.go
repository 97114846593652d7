// Package window hosts the arena shooter in a desktop window with ebiten.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/arena-shooter/internal/config"
)

// palette is the base color of each strip on the generated sheet.
var palette = map[string]color.RGBA{
	"player":         {R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff},
	"bullet_forward": {R: 0xff, G: 0xee, B: 0x58, A: 0xff},
	"bullet_up":      {R: 0xff, G: 0xca, B: 0x28, A: 0xff},
	"bullet_down":    {R: 0xff, G: 0xca, B: 0x28, A: 0xff},
	"enemy":          {R: 0xef, G: 0x53, B: 0x50, A: 0xff},
	"explosion":      {R: 0xff, G: 0x98, B: 0x00, A: 0xff},
}

// shade darkens c for later frames of a strip so animation is visible.
func shade(c color.RGBA, frame, count int) color.RGBA {
	if count <= 1 {
		return c
	}
	k := 1 - 0.6*float64(frame)/float64(count-1)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// sheetSize returns the smallest sheet that holds every strip.
func sheetSize(t config.SpriteTable) (w, h int) {
	for _, def := range t.Named() {
		w = max(w, def.Origin[0]+def.FrameCount*def.Size[0])
		h = max(h, def.Origin[1]+def.Size[1])
	}
	return w, h
}

// NewSheet draws a sprite sheet laid out as the table describes, one
// outlined block per frame, so the window host needs no image files.
func NewSheet(t config.SpriteTable) *ebiten.Image {
	w, h := sheetSize(t)
	sheet := ebiten.NewImage(max(w, 1), max(h, 1))

	for name, def := range t.Named() {
		base, ok := palette[name]
		if !ok {
			base = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		fw, fh := float32(def.Size[0]), float32(def.Size[1])

		for i := range def.FrameCount {
			x := float32(def.Origin[0] + i*def.Size[0])
			y := float32(def.Origin[1])
			c := shade(base, i, def.FrameCount)

			if def.Once {
				// Explosions shrink toward the centre as they play
				inset := float32(i) * min(fw, fh) / float32(2*def.FrameCount)
				vector.DrawFilledRect(sheet, x+inset, y+inset, fw-2*inset, fh-2*inset, c, false)
				continue
			}
			vector.DrawFilledRect(sheet, x, y, fw, fh, c, false)
			if fw > 4 && fh > 4 {
				vector.StrokeRect(sheet, x+1, y+1, fw-2, fh-2, 1, color.Black, false)
			}
		}
	}
	return sheet
}
