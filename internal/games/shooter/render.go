package shooter

import "github.com/vovakirdan/arena-shooter/internal/core"

// Render draws one frame: background, the player unless the game is over,
// then bullets, enemies and explosions in store order.
func (s *Session) Render(r core.Renderer) {
	r.Clear()

	if s.phase != GameOver {
		renderEntity(r, s.store.Player)
	}
	renderAll(r, s.store.Bullets)
	renderAll(r, s.store.Enemies)
	renderAll(r, s.store.Explosions)
}

func renderAll(r core.Renderer, list []*Entity) {
	for _, e := range list {
		renderEntity(r, e)
	}
}

func renderEntity(r core.Renderer, e *Entity) {
	r.Save()
	r.Translate(e.Pos.X, e.Pos.Y)
	e.Sprite.Render(r, core.Vec2{})
	r.Restore()
}
