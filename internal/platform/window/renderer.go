package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/arena-shooter/internal/core"
)

// ImageRenderer draws sheet regions onto an ebiten image.
type ImageRenderer struct {
	core.Transform

	target     *ebiten.Image
	sheets     map[string]*ebiten.Image
	background color.Color
}

// NewImageRenderer creates a renderer over the named sheets.
func NewImageRenderer(sheets map[string]*ebiten.Image, background color.Color) *ImageRenderer {
	return &ImageRenderer{sheets: sheets, background: background}
}

// SetTarget selects the image drawn on by subsequent calls.
func (r *ImageRenderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// Clear implements core.Renderer.
func (r *ImageRenderer) Clear() {
	r.ResetTransform()
	r.target.Fill(r.background)
}

// DrawSprite implements core.Renderer.
func (r *ImageRenderer) DrawSprite(sheet string, src core.Rect, dst core.Vec2) {
	img, ok := r.sheets[sheet]
	if !ok {
		return
	}
	frame := img.SubImage(image.Rect(src.X, src.Y, src.Right(), src.Bottom())).(*ebiten.Image)

	at := r.Apply(dst)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(at.X, at.Y)
	r.target.DrawImage(frame, op)
}
