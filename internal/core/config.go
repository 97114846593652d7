package core

// RuntimeConfig contains host settings passed to the simulation at startup.
// Hosts use this to size their surface and seed the RNG.
type RuntimeConfig struct {
	ScreenW   int   // Surface width (terminal columns or window pixels)
	ScreenH   int   // Surface height (terminal rows or window pixels)
	FrameRate int   // Fallback frame rate when the host has no frame callback
	Seed      int64 // RNG seed; 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0,
	}
}
