package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arena-shooter/internal/config"
	"github.com/vovakirdan/arena-shooter/internal/core"
	"github.com/vovakirdan/arena-shooter/internal/games/shooter"
)

// chromeRows is the number of terminal rows used by the HUD and help line.
const chromeRows = 2

// Options configures the terminal host.
type Options struct {
	Config  config.ShooterConfig
	Runtime core.RuntimeConfig
	Clock   core.Clock  // Defaults to the system clock
	Logger  *log.Logger // Defaults to discarding; stderr belongs to the alt screen
}

// Model is the Bubble Tea model running one arena session.
type Model struct {
	driver   *shooter.Driver
	held     *HeldKeys
	renderer *CellRenderer
	keys     KeyMap
	help     help.Model
	theme    Theme
	interval time.Duration
	width    int
	height   int
	quitting bool
}

// NewModel creates the model and its session.
func NewModel(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.FrameRate <= 0 {
		opts.Runtime.FrameRate = core.DefaultConfig().FrameRate
	}

	held := NewHeldKeys(opts.Clock, opts.Config.TUI.HoldWindow())
	driver := shooter.NewDriver(opts.Config, shooter.Options{
		Clock:  opts.Clock,
		Input:  held,
		RNG:    core.NewRand(opts.Runtime.Seed),
		Logger: opts.Logger,
	})

	width := core.Max(opts.Runtime.ScreenW, 1)
	height := core.Max(opts.Runtime.ScreenH, chromeRows+1)
	screen := core.NewScreen(width, height-chromeRows)

	return Model{
		driver:   driver,
		held:     held,
		renderer: NewCellRenderer(screen, opts.Config),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		theme:    DefaultTheme(),
		interval: time.Second / time.Duration(opts.Runtime.FrameRate),
		width:    width,
		height:   height,
	}
}

// Session returns the running session.
func (m Model) Session() *shooter.Session {
	return m.driver.Session()
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.driver.Tick()
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.Session().IsGameOver() {
			m.driver.Reset()
			m.held.ReleaseAll()
		}
		return m, nil
	}

	if name, ok := m.keys.KeyName(msg); ok {
		m.held.Press(name)
	}
	return m, nil
}

// handleResize fits the arena to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = core.Max(msg.Width, 1)
	m.height = core.Max(msg.Height, chromeRows+1)
	m.renderer.Screen().Resize(m.width, m.height-chromeRows)
	m.renderer.Fit()
	m.help.Width = m.width
	return m, nil
}

// View renders the HUD, the arena and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.Session()
	s.Render(m.renderer)
	if s.IsGameOver() {
		m.drawGameOver(m.renderer.Screen(), s.Score())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud(s),
		RenderScreen(m.renderer.Screen()),
		m.theme.Help.Render(m.help.View(m.keys)),
	)
}

// hud renders the status line above the arena.
func (m Model) hud(s *shooter.Session) string {
	line := m.theme.HUDTitle.Render("ARENA") + "  " +
		m.theme.HUDLabel.Render("score ") + m.theme.HUDValue.Render(fmt.Sprintf("%d", s.Score())) + "  " +
		m.theme.HUDLabel.Render("time ") + m.theme.HUDValue.Render(fmt.Sprintf("%.1fs", s.GameTime()))
	if s.IsGameOver() {
		line += "  " + m.theme.HUDGameOver.Render("GAME OVER")
	}
	return line
}

// drawGameOver draws the play-again box in the middle of the arena.
func (m Model) drawGameOver(screen *core.Screen, score int) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score %d", score),
		"",
		"enter / r to play again",
	}
	w, h := 29, len(lines)+2
	box := core.NewRect((screen.Width()-w)/2, (screen.Height()-h)/2, w, h)

	screen.DrawRect(box, ' ', core.ColorDefault)
	screen.DrawBox(box, m.theme.OverlayColor)
	for i, line := range lines {
		screen.DrawTextCentered(box.Y+1+i, line, m.theme.OverlayColor)
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
