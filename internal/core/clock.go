package core

import (
	"math/rand"
	"sync"
	"time"
)

// Clock reports the current real time. The loop derives frame deltas from it
// and fire-rate limiting compares against it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to.
// Used by headless simulation and tests.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements Clock.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// RNG is a source of uniform samples in [0, 1).
// *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
}

// NewRand returns a seeded RNG. A zero seed picks one from the current time.
func NewRand(seed int64) RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
}

// SequenceRNG replays a fixed list of samples, then repeats the last one.
// An empty sequence always yields 0.
type SequenceRNG struct {
	values []float64
	next   int
}

// NewSequenceRNG creates a scripted RNG.
func NewSequenceRNG(values ...float64) *SequenceRNG {
	return &SequenceRNG{values: values}
}

// Float64 implements RNG.
func (s *SequenceRNG) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	if s.next >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.next]
	s.next++
	return v
}

// Drawn returns how many scripted samples have been consumed.
func (s *SequenceRNG) Drawn() int {
	return s.next
}
