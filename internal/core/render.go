package core

// Renderer draws sprite sheet regions onto some surface.
// Positions passed to DrawSprite are relative to the current translation,
// which Save/Translate/Restore manipulate like a 2D transform stack.
type Renderer interface {
	// Clear paints the arena background.
	Clear()
	Save()
	Translate(dx, dy float64)
	Restore()
	// DrawSprite copies the src rectangle of the named sheet to dst.
	DrawSprite(sheet string, src Rect, dst Vec2)
}

// Transform is a translate-only transform stack that renderer
// implementations embed to get Save/Translate/Restore for free.
type Transform struct {
	offset Vec2
	saved  []Vec2
}

// Save pushes the current translation.
func (t *Transform) Save() {
	t.saved = append(t.saved, t.offset)
}

// Restore pops the last saved translation. Unbalanced calls are ignored.
func (t *Transform) Restore() {
	if len(t.saved) == 0 {
		return
	}
	t.offset = t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
}

// Translate shifts subsequent drawing by (dx, dy).
func (t *Transform) Translate(dx, dy float64) {
	t.offset = t.offset.Add(V(dx, dy))
}

// Apply maps a local position to surface coordinates.
func (t *Transform) Apply(p Vec2) Vec2 {
	return t.offset.Add(p)
}

// ResetTransform drops all translation state. Called at the start of a frame.
func (t *Transform) ResetTransform() {
	t.offset = Vec2{}
	t.saved = t.saved[:0]
}

// DrawCall is one DrawSprite invocation captured by a Recorder.
type DrawCall struct {
	Sheet string
	Src   Rect
	At    Vec2 // Final surface position after translation
}

// Recorder is a Renderer that records draw calls instead of drawing.
// The headless simulator uses it to report frame statistics.
type Recorder struct {
	Transform
	Calls  []DrawCall
	Clears int
}

// Clear implements Renderer. It also drops the calls of the previous frame.
func (r *Recorder) Clear() {
	r.Clears++
	r.Calls = r.Calls[:0]
	r.ResetTransform()
}

// DrawSprite implements Renderer.
func (r *Recorder) DrawSprite(sheet string, src Rect, dst Vec2) {
	r.Calls = append(r.Calls, DrawCall{Sheet: sheet, Src: src, At: r.Apply(dst)})
}
