package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arena-shooter/internal/config"
	"github.com/vovakirdan/arena-shooter/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want string
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, true},
		{runeKey('w'), core.KeyUp, true},
		{runeKey('a'), core.KeyLeft, true},
		{runeKey('s'), core.KeyDown, true},
		{runeKey('d'), core.KeyRight, true},
		{runeKey(' '), core.KeySpace, true},
		{runeKey('x'), "", false},
		{tea.KeyMsg{Type: tea.KeyEnter}, "", false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.KeySpace, true},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			got, ok := DefaultKeyMap().KeyName(tt.msg)
			if got != tt.want || ok != tt.ok {
				t.Errorf("KeyName(%q) = %q, %v; expected %q, %v", tt.msg.String(), got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeyNameFollowsBindings(t *testing.T) {
	km := DefaultKeyMap()
	km.Fire = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fire"))

	if name, ok := km.KeyName(runeKey('f')); !ok || name != core.KeySpace {
		t.Errorf("rebound fire key gave %q, %v", name, ok)
	}
	if _, ok := km.KeyName(runeKey(' ')); ok {
		t.Error("space should stop firing once fire is rebound")
	}

	var helpKeys []string
	for _, col := range km.FullHelp() {
		for _, b := range col {
			helpKeys = append(helpKeys, b.Help().Key)
		}
	}
	if !strings.Contains(strings.Join(helpKeys, " "), "f") {
		t.Errorf("help should list the rebound key, got %v", helpKeys)
	}
}

func TestHeldKeysWindow(t *testing.T) {
	clock := core.NewManualClock(t0)
	held := NewHeldKeys(clock, 150*time.Millisecond)

	if held.IsDown(core.KeyUp) {
		t.Error("nothing pressed yet")
	}

	held.Press(core.KeyUp)
	if !held.IsDown(core.KeyUp) {
		t.Error("key should be down right after a press")
	}

	clock.Advance(149 * time.Millisecond)
	if !held.IsDown(core.KeyUp) {
		t.Error("key should still be down inside the window")
	}

	// Auto-repeat extends the hold
	held.Press(core.KeyUp)
	clock.Advance(100 * time.Millisecond)
	if !held.IsDown(core.KeyUp) {
		t.Error("repeat should extend the hold")
	}

	clock.Advance(50 * time.Millisecond)
	if held.IsDown(core.KeyUp) {
		t.Error("key should be released once the window passes")
	}

	held.Press(core.KeySpace)
	held.ReleaseAll()
	if held.IsDown(core.KeySpace) {
		t.Error("ReleaseAll should forget presses")
	}
}

func TestDefaultHoldBridgesRepeatDelay(t *testing.T) {
	clock := core.NewManualClock(t0)
	held := NewHeldKeys(clock, config.DefaultShooterConfig().TUI.HoldWindow())

	// First press, then the terminal waits before auto-repeating
	held.Press(core.KeyRight)
	for _, step := range []time.Duration{100, 150, 250} {
		clock.Advance(step * time.Millisecond)
		if !held.IsDown(core.KeyRight) {
			t.Fatalf("key dropped %v after the first press", clock.Now().Sub(t0))
		}
	}

	// Repeats at ~30 Hz keep it down
	for range 10 {
		held.Press(core.KeyRight)
		clock.Advance(33 * time.Millisecond)
		if !held.IsDown(core.KeyRight) {
			t.Fatal("key dropped between auto-repeats")
		}
	}
}

func TestCellRendererScalesSprites(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	screen := core.NewScreen(64, 24) // 8 px per column, 20 px per row
	r := NewCellRenderer(screen, cfg)

	r.Clear()
	if got := screen.GetCell(0, 0); got.Rune != '·' || got.Color != core.ColorGray {
		t.Errorf("background cell = %+v", got)
	}

	// Enemy frame 2 of its strip at arena (160, 100)
	r.Save()
	r.Translate(160, 100)
	r.DrawSprite("sprites", core.NewRect(160, 78, 80, 39), core.Vec2{})
	r.Restore()

	// 80x39 px -> 10x2 cells starting at column 20, row 5
	if got := screen.GetCell(20, 5); got.Rune != '◂' || got.Color != core.ColorBrightRed {
		t.Errorf("enemy cell = %+v, expected frame 2 glyph", got)
	}
	if got := screen.GetCell(29, 6); got.Rune != '◂' {
		t.Errorf("enemy should cover 10x2 cells, got %q at (29, 6)", got.Rune)
	}
	if got := screen.GetCell(30, 5); got.Rune != '·' {
		t.Errorf("enemy overflowed to column 30: %q", got.Rune)
	}

	// Tiny sprites still cover one cell
	r.DrawSprite("sprites", core.NewRect(0, 50, 9, 5), core.V(400, 400))
	if got := screen.GetCell(50, 20); got.Rune != '╹' {
		t.Errorf("bullet cell = %q, expected ╹", got.Rune)
	}
}

func TestCellRendererFit(t *testing.T) {
	screen := core.NewScreen(64, 24)
	r := NewCellRenderer(screen, config.DefaultShooterConfig())

	screen.Resize(128, 48)
	r.Fit()
	r.Clear()
	r.DrawSprite("sprites", core.NewRect(0, 0, 39, 39), core.V(512-39, 0))

	// 39 px at 4 px per column rounds to 10 cells
	if got := screen.GetCell(127, 0); got.Rune != '▶' {
		t.Errorf("player should reach the right edge after refit, got %q", got.Rune)
	}
}

func newTestModel(clock core.Clock) Model {
	return NewModel(Options{
		Config:  config.DefaultShooterConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 26, FrameRate: 60, Seed: 1},
		Clock:   clock,
	})
}

func TestModelMovesPlayerWhileKeyHeld(t *testing.T) {
	clock := core.NewManualClock(t0)
	m := newTestModel(clock)

	next, _ := m.Update(runeKey('d'))
	m = next.(Model)

	clock.Advance(100 * time.Millisecond)
	next, _ = m.Update(TickMsg(clock.Now()))
	m = next.(Model)

	if x := m.Session().Player().Pos.X; x != 70 {
		t.Errorf("player x = %v, expected 70 after 0.1s of right", x)
	}

	// Without a repeat the key times out
	clock.Advance(100 * time.Millisecond)
	next, _ = m.Update(TickMsg(clock.Now()))
	m = next.(Model)
	if x := m.Session().Player().Pos.X; x != 70 {
		t.Errorf("player x = %v, expected no movement after release", x)
	}
}

func TestModelRestartOnlyWhenOver(t *testing.T) {
	clock := core.NewManualClock(t0)
	m := newTestModel(clock)
	s := m.Session()

	clock.Advance(time.Second)
	next, _ := m.Update(TickMsg(clock.Now()))
	m = next.(Model)
	before := s.GameTime()

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if s.GameTime() != before {
		t.Error("restart should be ignored while playing")
	}

	// Park an enemy on the player and tick into game over
	e := s.Spawn(core.NewSequenceRNG(0, 0))
	if e == nil {
		t.Fatal("expected a scripted spawn")
	}
	e.Pos = s.Player().Pos
	next, _ = m.Update(TickMsg(clock.Now()))
	m = next.(Model)
	if !s.IsGameOver() {
		t.Fatal("expected game over")
	}
	if view := m.View(); !strings.Contains(view, "GAME OVER") || !strings.Contains(view, "to play again") {
		t.Error("view should show the game over overlay")
	}

	next, _ = m.Update(runeKey('r'))
	m = next.(Model)
	if s.IsGameOver() || s.GameTime() != 0 {
		t.Error("r should reset after game over")
	}
}

func TestModelQuitAndResize(t *testing.T) {
	m := newTestModel(core.NewManualClock(t0))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if w, h := m.renderer.Screen().Width(), m.renderer.Screen().Height(); w != 100 || h != 30-chromeRows {
		t.Errorf("arena screen = %dx%d, expected 100x%d", w, h, 30-chromeRows)
	}

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
