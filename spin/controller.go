package spin

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"reelspin/constants"
	"reelspin/reel"
)

// Sentinel errors
var (
	ErrSpinInFlight = errors.New("a spin is already in flight")
)

// FrameFunc receives the eased offset and raw progress once per animation
// frame while the reel is in motion.
type FrameFunc func(offset float64, progress float64)

// Config wires a controller. Zero durations fall back to the constants;
// nil callbacks are skipped.
type Config struct {
	Geometry Geometry
	Bonus    reel.BonusConfig
	RNG      reel.RandomSource
	Clock    Clock

	FrameInterval time.Duration
	PostLandDelay time.Duration

	OnFrame  FrameFunc
	OnLanded func(*reel.Session)
	OnResult func(*reel.Session)
}

// Controller drives one spin at a time: it builds the session synchronously,
// then advances a time-eased translation toward the precomputed terminal
// offset on an animation-frame cadence. A busy check serializes spins; there
// is no queueing.
type Controller struct {
	cfg Config

	mu        sync.Mutex
	phase     Phase
	session   *reel.Session
	offset    float64
	duration  time.Duration
	startedAt time.Time

	stop      chan struct{}
	landTimer *time.Timer

	// pending counts scheduled callbacks (frame loop + timers) so tests can
	// assert none survive a reset
	pending atomic.Int32
}

// NewController creates an idle controller.
func NewController(cfg Config) *Controller {
	if cfg.RNG == nil {
		cfg.RNG = reel.DefaultRNG()
	}
	if cfg.Clock == nil {
		cfg.Clock = NewSystemClock()
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = constants.FrameInterval
	}
	if cfg.PostLandDelay <= 0 {
		cfg.PostLandDelay = constants.PostLandDelay
	}
	return &Controller{cfg: cfg, phase: PhaseIdle}
}

// Start builds a fresh session for the pool and begins the eased scroll
// toward its winner tile. Returns ErrSpinInFlight when a spin is already
// active and reel.ErrPoolTooSmall for degenerate pools.
func (c *Controller) Start(pool []reel.Slot) (*reel.Session, error) {
	c.mu.Lock()

	if c.phase != PhaseIdle {
		c.mu.Unlock()
		return nil, ErrSpinInFlight
	}
	c.phase = PhaseBuilding

	sess, err := reel.NewSession(pool, c.cfg.Bonus, c.cfg.RNG)
	if err != nil {
		c.phase = PhaseIdle
		c.mu.Unlock()
		return nil, err
	}

	jitter := c.cfg.RNG.Float64() * constants.MaxJitterFraction * c.cfg.Geometry.TileWidth
	c.session = sess
	c.offset = TerminalOffset(c.cfg.Geometry, sess.WinnerIndex, jitter)
	c.duration = SpinDuration(c.offset)
	c.startedAt = c.cfg.Clock.Now()
	c.phase = PhaseSpinning

	c.stop = make(chan struct{})
	c.pending.Add(1)
	go c.loop(c.stop, c.offset, c.duration, c.startedAt)

	c.mu.Unlock()
	return sess, nil
}

// loop is the animation-frame goroutine for one spin. The per-spin values
// are passed by value: Reset does not wait for the goroutine to drain, so a
// stale loop must never read controller fields a new Start may be writing.
func (c *Controller) loop(stop chan struct{}, offset float64, duration time.Duration, startedAt time.Time) {
	defer c.pending.Add(-1)

	ticker := time.NewTicker(c.cfg.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return

		case <-ticker.C:
			elapsed := c.cfg.Clock.Now().Sub(startedAt)
			progress := float64(elapsed) / float64(duration)
			if progress > 1 {
				progress = 1
			}
			if progress < 0 {
				progress = 0
			}

			if c.cfg.OnFrame != nil {
				c.cfg.OnFrame(offset*EaseOutCubic(progress), progress)
			}

			if progress >= 1 {
				c.land(stop)
				return
			}
		}
	}
}

// land moves Spinning->Landed and arms the post-land timer that reveals the
// result. The stop channel identifies the spin that scheduled the landing:
// a stale loop that outlived its reset cannot land a newer spin.
func (c *Controller) land(stop chan struct{}) {
	c.mu.Lock()
	if c.stop != stop || !CanTransition(c.phase, PhaseLanded) || c.phase != PhaseSpinning {
		c.mu.Unlock()
		return
	}
	c.phase = PhaseLanded
	sess := c.session

	c.pending.Add(1)
	c.landTimer = time.AfterFunc(c.cfg.PostLandDelay, func() {
		defer c.pending.Add(-1)
		c.reveal()
	})
	c.mu.Unlock()

	if c.cfg.OnLanded != nil {
		c.cfg.OnLanded(sess)
	}
}

// reveal moves Landed->Result after the post-land delay.
func (c *Controller) reveal() {
	c.mu.Lock()
	if !CanTransition(c.phase, PhaseResult) || c.phase != PhaseLanded {
		c.mu.Unlock()
		return
	}
	c.phase = PhaseResult
	sess := c.session
	c.mu.Unlock()

	if c.cfg.OnResult != nil {
		c.cfg.OnResult(sess)
	}
}

// Reset cancels the in-flight animation frame loop and the pending timer
// and returns to Idle. Safe from any phase and idempotent: clearing an
// already-cleared handle is a no-op.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	if c.landTimer != nil {
		if c.landTimer.Stop() {
			c.pending.Add(-1)
		}
		c.landTimer = nil
	}

	c.phase = PhaseIdle
	c.session = nil
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Session returns the active session, or nil when idle.
func (c *Controller) Session() *reel.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// TargetOffset returns the terminal offset of the active spin.
func (c *Controller) TargetOffset() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}

// Duration returns the active spin's animation duration.
func (c *Controller) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

// Pending reports scheduled callbacks still outstanding. Zero after a reset
// has fully settled.
func (c *Controller) Pending() int {
	return int(c.pending.Load())
}
