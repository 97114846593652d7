package window

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/arena-shooter/internal/config"
	"github.com/vovakirdan/arena-shooter/internal/core"
	"github.com/vovakirdan/arena-shooter/internal/games/shooter"
)

// keyBindings maps physical keys to simulation key names.
var keyBindings = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    core.KeyUp,
	ebiten.KeyArrowDown:  core.KeyDown,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeySpace:      core.KeySpace,
	ebiten.KeyW:          core.KeyW,
	ebiten.KeyA:          core.KeyA,
	ebiten.KeyS:          core.KeyS,
	ebiten.KeyD:          core.KeyD,
}

var (
	backgroundColor = color.RGBA{R: 0x1b, G: 0x2a, B: 0x1f, A: 0xff}
	overlayColor    = color.RGBA{A: 0xc0}
	buttonColor     = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
)

// Options configures the window host.
type Options struct {
	Config config.ShooterConfig
	Seed   int64
	Logger *log.Logger
}

// Game implements ebiten.Game around a shooter driver.
type Game struct {
	cfg      config.ShooterConfig
	driver   *shooter.Driver
	keys     *core.KeyState
	renderer *ImageRenderer
	button   image.Rectangle // Play-again button, arena coordinates
}

// NewGame creates the game and generates its sprite sheet.
func NewGame(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	keys := core.NewKeyState()
	sheets := map[string]*ebiten.Image{
		opts.Config.Sprites.Sheet: NewSheet(opts.Config.Sprites),
	}

	w, h := int(opts.Config.Arena.Width), int(opts.Config.Arena.Height)
	return &Game{
		cfg: opts.Config,
		driver: shooter.NewDriver(opts.Config, shooter.Options{
			Input:  keys,
			RNG:    core.NewRand(opts.Seed),
			Logger: opts.Logger,
		}),
		keys:     keys,
		renderer: NewImageRenderer(sheets, backgroundColor),
		button:   image.Rect(w/2-60, h/2+10, w/2+60, h/2+40),
	}
}

// Update polls input and runs one simulation tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pollKeys()

	if g.driver.Session().IsGameOver() && g.restartRequested() {
		g.driver.Reset()
	}

	g.driver.Tick()
	return nil
}

// pollKeys mirrors the keyboard into the key state.
func (g *Game) pollKeys() {
	if !ebiten.IsFocused() {
		g.keys.ReleaseAll()
		return
	}
	for k, name := range keyBindings {
		if ebiten.IsKeyPressed(k) {
			g.keys.Press(name)
		} else {
			g.keys.Release(name)
		}
	}
}

func (g *Game) restartRequested() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return image.Pt(ebiten.CursorPosition()).In(g.button)
	}
	return false
}

// Draw renders the arena, the score and the game-over overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.driver.Session()

	g.renderer.SetTarget(screen)
	s.Render(g.renderer)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", s.Score()), 8, 8)

	if s.IsGameOver() {
		g.drawGameOver(screen)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	w, h := float32(g.cfg.Arena.Width), float32(g.cfg.Arena.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, overlayColor, false)

	cx, cy := int(w/2), int(h/2)
	ebitenutil.DebugPrintAt(screen, "GAME OVER", cx-27, cy-40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("score %d", g.driver.Session().Score()), cx-30, cy-20)

	b := g.button
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), buttonColor, false)
	ebitenutil.DebugPrintAt(screen, "Play again", b.Min.X+30, b.Min.Y+8)
}

// Layout keeps the logical screen at arena size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.Arena.Width), int(g.cfg.Arena.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	scale := opts.Config.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(opts.Config.Arena.Width*scale), int(opts.Config.Arena.Height*scale))
	ebiten.SetWindowTitle(opts.Config.Window.Title)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
