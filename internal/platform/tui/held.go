package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/arena-shooter/internal/core"
)

// HeldKeys emulates key-down state from terminal key presses.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held for a short window after its most recent press.
type HeldKeys struct {
	mu      sync.Mutex
	clock   core.Clock
	window  time.Duration
	pressed map[string]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(clock core.Clock, window time.Duration) *HeldKeys {
	return &HeldKeys{
		clock:   clock,
		window:  window,
		pressed: make(map[string]time.Time),
	}
}

// Press records a press (or auto-repeat) of the named key.
func (h *HeldKeys) Press(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pressed[name] = h.clock.Now()
}

// ReleaseAll forgets every press, e.g. after a reset.
func (h *HeldKeys) ReleaseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.pressed)
}

// IsDown implements core.InputState.
func (h *HeldKeys) IsDown(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	at, ok := h.pressed[name]
	if !ok {
		return false
	}
	return h.clock.Now().Sub(at) < h.window
}
