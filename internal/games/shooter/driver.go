package shooter

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arena-shooter/internal/config"
	"github.com/vovakirdan/arena-shooter/internal/core"
)

// DefaultFrameInterval is the fallback frame period for hosts without a
// frame callback.
const DefaultFrameInterval = time.Second / 60

// Options holds the collaborators of a Driver. Nil fields get defaults:
// the system clock, a time-seeded RNG, no input, no renderer and a
// discarding logger.
type Options struct {
	Clock    core.Clock
	Input    core.InputState
	Renderer core.Renderer
	RNG      core.RNG
	Logger   *log.Logger
}

// Driver runs the game loop: each tick it takes dt from the clock, steps the
// session and renders it.
type Driver struct {
	session  *Session
	clock    core.Clock
	input    core.InputState
	renderer core.Renderer
	rng      core.RNG
	logger   *log.Logger
	maxDT    float64
	lastTick time.Time
}

// NewDriver creates a session from cfg and a driver around it.
// The first tick measures dt from the moment of creation.
func NewDriver(cfg config.ShooterConfig, opts Options) *Driver {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.RNG == nil {
		opts.RNG = core.NewRand(0)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	now := opts.Clock.Now()
	return &Driver{
		session:  NewSession(cfg, now),
		clock:    opts.Clock,
		input:    opts.Input,
		renderer: opts.Renderer,
		rng:      opts.RNG,
		logger:   opts.Logger,
		maxDT:    cfg.Physics.MaxFrameDT,
		lastTick: now,
	}
}

// Session returns the driven session.
func (d *Driver) Session() *Session {
	return d.session
}

// SetInput swaps the input state read by subsequent ticks.
func (d *Driver) SetInput(in core.InputState) {
	d.input = in
}

// SetRenderer swaps the renderer used by subsequent ticks. nil disables drawing.
func (d *Driver) SetRenderer(r core.Renderer) {
	d.renderer = r
}

// Tick runs one frame against the current clock reading.
func (d *Driver) Tick() FrameResult {
	now := d.clock.Now()
	dt := now.Sub(d.lastTick).Seconds()
	if dt < 0 {
		dt = 0
	}
	if d.maxDT > 0 && dt > d.maxDT {
		dt = d.maxDT
	}

	res := d.session.Step(d.input, d.rng, now, dt)
	d.logFrame(res)

	if d.renderer != nil {
		d.session.Render(d.renderer)
	}

	d.lastTick = now
	return res
}

func (d *Driver) logFrame(res FrameResult) {
	if res.Spawned != nil {
		d.logger.Debug("enemy spawned", "y", res.Spawned.Pos.Y, "gameTime", d.session.GameTime())
	}
	if res.Kills > 0 {
		d.logger.Debug("enemy destroyed", "kills", res.Kills, "score", d.session.Score())
	}
	if res.Ended {
		d.logger.Info("game over",
			"score", d.session.Score(),
			"gameTime", d.session.GameTime(),
			"frames", d.session.Frames())
	}
}

// Reset is the external restart trigger.
func (d *Driver) Reset() {
	d.logger.Info("reset", "score", d.session.Score(), "phase", d.session.Phase())
	d.session.Reset()
}

// Run ticks once per frame yielded by the scheduler until the scheduler is
// exhausted (nil) or ctx is cancelled (ctx.Err()).
func (d *Driver) Run(ctx context.Context, sched Scheduler) error {
	for sched.Wait(ctx) {
		d.Tick()
	}
	return ctx.Err()
}

// Scheduler paces the game loop.
type Scheduler interface {
	// Wait blocks until the next frame is due. It returns false when no
	// more frames will come.
	Wait(ctx context.Context) bool
}

// TickerScheduler yields frames on a fixed real-time interval.
type TickerScheduler struct {
	ticker *time.Ticker
}

// NewTickerScheduler creates a scheduler firing every interval, or every
// DefaultFrameInterval if interval is not positive. Call Stop when done.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerScheduler{ticker: time.NewTicker(interval)}
}

// Wait implements Scheduler.
func (t *TickerScheduler) Wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-t.ticker.C:
		return true
	}
}

// Stop releases the ticker.
func (t *TickerScheduler) Stop() {
	t.ticker.Stop()
}

// FixedStepScheduler drives a manual clock forward by Step before each of
// Frames frames, without sleeping.
type FixedStepScheduler struct {
	Clock  *core.ManualClock
	Step   time.Duration
	Frames int

	done int
}

// Wait implements Scheduler.
func (f *FixedStepScheduler) Wait(ctx context.Context) bool {
	if ctx.Err() != nil || f.done >= f.Frames {
		return false
	}
	f.Clock.Advance(f.Step)
	f.done++
	return true
}

// Done returns how many frames have been yielded.
func (f *FixedStepScheduler) Done() int {
	return f.done
}
