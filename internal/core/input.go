package core

import "sync"

// Key names understood by the simulation. Special keys are upper-case and
// letters are lower-case, matching what the platform key trackers report.
const (
	KeyUp    = "UP"
	KeyDown  = "DOWN"
	KeyLeft  = "LEFT"
	KeyRight = "RIGHT"
	KeySpace = "SPACE"
	KeyW     = "w"
	KeyA     = "a"
	KeyS     = "s"
	KeyD     = "d"
)

// InputState answers whether a named key is currently held down.
// Names that are not recognized are simply reported as not down.
type InputState interface {
	IsDown(name string) bool
}

// Control is a semantic game control, abstracted from physical keys.
type Control int

const (
	ControlUp Control = iota
	ControlDown
	ControlLeft
	ControlRight
	ControlFire
)

// controlKeys lists the physical key aliases for each control.
var controlKeys = map[Control][]string{
	ControlUp:    {KeyUp, KeyW},
	ControlDown:  {KeyDown, KeyS},
	ControlLeft:  {KeyLeft, KeyA},
	ControlRight: {KeyRight, KeyD},
	ControlFire:  {KeySpace},
}

// String returns a human-readable name for the control.
func (c Control) String() string {
	switch c {
	case ControlUp:
		return "Up"
	case ControlDown:
		return "Down"
	case ControlLeft:
		return "Left"
	case ControlRight:
		return "Right"
	case ControlFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// Keys returns the key names bound to the control.
func (c Control) Keys() []string {
	return controlKeys[c]
}

// Held reports whether any key bound to c is down in the input state.
func Held(in InputState, c Control) bool {
	if in == nil {
		return false
	}
	for _, name := range controlKeys[c] {
		if in.IsDown(name) {
			return true
		}
	}
	return false
}

// KeyState is an InputState backed by explicit press/release events.
// It is safe for a host's input goroutine to write while the loop reads.
type KeyState struct {
	mu   sync.RWMutex
	down map[string]bool
}

// NewKeyState creates an empty key state with nothing held.
func NewKeyState() *KeyState {
	return &KeyState{down: make(map[string]bool)}
}

// Press marks a key as held.
func (k *KeyState) Press(name string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.down[name] = true
}

// Release marks a key as no longer held.
func (k *KeyState) Release(name string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.down, name)
}

// ReleaseAll clears every held key, e.g. when the window loses focus.
func (k *KeyState) ReleaseAll() {
	k.mu.Lock()
	defer k.mu.Unlock()
	for name := range k.down {
		delete(k.down, name)
	}
}

// IsDown implements InputState.
func (k *KeyState) IsDown(name string) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.down[name]
}
