package sprite

import (
	"testing"

	"github.com/vovakirdan/arena-shooter/internal/core"
)

func looping() Config {
	return Config{
		Sheet:         "sprites",
		OriginX:       0,
		OriginY:       78,
		W:             80,
		H:             39,
		FrameCount:    4,
		Sequence:      []int{0, 1, 2, 3, 2, 1},
		FrameDuration: 0.25,
	}
}

func once(n int) Config {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	return Config{
		Sheet:         "sprites",
		OriginY:       117,
		W:             39,
		H:             39,
		FrameCount:    n,
		Sequence:      seq,
		FrameDuration: 0.25,
		Once:          true,
	}
}

func TestLoopingSpriteWraps(t *testing.T) {
	s := New(looping())

	want := []int{1, 2, 3, 2, 1, 0, 1}
	for i, frame := range want {
		s.Update(0.25)
		if s.Frame() != frame {
			t.Fatalf("step %d: frame = %d, expected %d", i, s.Frame(), frame)
		}
		if s.Done() {
			t.Fatalf("step %d: looping sprite must never be done", i)
		}
	}
}

func TestLoopingSpriteLargeDelta(t *testing.T) {
	s := New(looping())

	// 13 whole frames in one update: 13 mod 6 = 1
	s.Update(13 * 0.25)
	if s.Cursor() != 1 {
		t.Errorf("cursor = %d, expected 1", s.Cursor())
	}
	if s.Done() {
		t.Error("looping sprite must never be done")
	}
}

func TestAccumulatorCarriesRemainder(t *testing.T) {
	s := New(looping())

	s.Update(0.125)
	if s.Cursor() != 0 {
		t.Fatalf("half a frame should not advance, cursor = %d", s.Cursor())
	}
	s.Update(0.125)
	if s.Cursor() != 1 {
		t.Fatalf("two halves should advance once, cursor = %d", s.Cursor())
	}
}

func TestOnceSpriteDoneWindow(t *testing.T) {
	const n = 13
	const d = 0.25

	s := New(once(n))

	// Just short of (N-1)*d: not done yet
	for i := 0; i < n-2; i++ {
		s.Update(d)
	}
	s.Update(d / 2)
	if s.Done() {
		t.Fatalf("done too early at cursor %d", s.Cursor())
	}

	// Reaching (N-1)*d lands on the last entry
	s.Update(d / 2)
	if !s.Done() {
		t.Fatalf("expected done at elapsed (N-1)*d, cursor = %d", s.Cursor())
	}
	if s.Cursor() != n-1 {
		t.Errorf("cursor = %d, expected %d", s.Cursor(), n-1)
	}

	// Finished sprites stay on the last frame
	s.Update(10)
	if s.Frame() != n-1 {
		t.Errorf("frame after finish = %d, expected %d", s.Frame(), n-1)
	}
}

func TestOnceSpriteSingleUpdateOvershoot(t *testing.T) {
	s := New(once(5))
	s.Update(100)
	if !s.Done() || s.Cursor() != 4 {
		t.Errorf("done=%v cursor=%d, expected done on last entry", s.Done(), s.Cursor())
	}
}

func TestStaticSprite(t *testing.T) {
	s := New(Config{Sheet: "sprites", OriginY: 39, W: 18, H: 8, FrameCount: 1})
	s.Update(5)
	if s.Frame() != 0 || s.Done() {
		t.Errorf("static sprite changed: frame=%d done=%v", s.Frame(), s.Done())
	}
	if got := s.Size(); got != core.V(18, 8) {
		t.Errorf("Size() = %v", got)
	}
}

func TestSourceRect(t *testing.T) {
	s := New(looping())
	s.Update(0.25 * 3) // cursor 3 -> frame 3

	want := core.NewRect(3*80, 78, 80, 39)
	if got := s.Source(); got != want {
		t.Errorf("Source() = %+v, expected %+v", got, want)
	}
}

func TestRender(t *testing.T) {
	s := New(looping())
	r := &core.Recorder{}
	r.Translate(10, 20)
	s.Render(r, core.V(0, 0))

	if len(r.Calls) != 1 {
		t.Fatalf("expected 1 draw call, got %d", len(r.Calls))
	}
	call := r.Calls[0]
	if call.Sheet != "sprites" || call.At != core.V(10, 20) || call.Src != core.NewRect(0, 78, 80, 39) {
		t.Errorf("unexpected draw call %+v", call)
	}
}

func TestDeterministicForSameDeltas(t *testing.T) {
	deltas := []float64{0.016, 0.2, 0.033, 0.5, 0.001, 0.27}
	a, b := New(looping()), New(looping())
	for _, dt := range deltas {
		a.Update(dt)
		b.Update(dt)
		if a.Cursor() != b.Cursor() {
			t.Fatalf("cursors diverged: %d vs %d", a.Cursor(), b.Cursor())
		}
	}
}

func TestFrameDurationFromFPS(t *testing.T) {
	if got := FrameDurationFromFPS(16); got != 0.0625 {
		t.Errorf("16 fps = %v, expected 0.0625", got)
	}
	if got := FrameDurationFromFPS(0); got != 0 {
		t.Errorf("0 fps = %v, expected 0", got)
	}
}
