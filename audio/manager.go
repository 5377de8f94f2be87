package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"reelspin/constants"
)

// tickGate rate-limits reel ticks: one per centered-tile change, never two
// within MinTickGap of each other regardless of scroll speed.
type tickGate struct {
	lastTile atomic.Int64
	lastTick atomic.Int64 // UnixNano of the last emitted tick
}

// arm resets the gate for a new spin so tile zero can fire.
func (g *tickGate) arm() {
	g.lastTile.Store(-1)
	g.lastTick.Store(0)
}

// allow reports whether a tick may fire for the tile centered now. The tile
// memory advances even when the gap suppresses the tick, so a suppressed
// crossing does not fire late.
func (g *tickGate) allow(tile int, now time.Time) bool {
	if g.lastTile.Swap(int64(tile)) == int64(tile) {
		return false
	}
	prev := g.lastTick.Load()
	if prev != 0 && now.UnixNano()-prev < constants.MinTickGap.Nanoseconds() {
		return false
	}
	g.lastTick.Store(now.UnixNano())
	return true
}

// SoundManager owns the process-wide audio capability: one lazily
// initialized speaker, one mixer, one cached noise table shared by all
// effects and spins. Muting gates synthesis without tearing anything down;
// a missing audio backend degrades to silent no-ops.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	noise       []float64
	prefs       *PrefStore
	initialized bool

	silentMode atomic.Bool
	muted      atomic.Bool
	spinActive atomic.Bool

	gate tickGate
}

// NewSoundManager creates an uninitialized manager. Initialization is
// deferred to the first user-triggered spin because audio backends reject
// creation without a prior user gesture.
func NewSoundManager(cfg *Config, prefs *PrefStore) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if prefs == nil {
		prefs = NewPrefStore("")
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		prefs: prefs,
	}
}

// Initialize sets up the speaker and noise table on first use. A failed
// speaker init is not an error: the manager enters silent mode and every
// later call is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.muted.Store(sm.prefs.Muted())

	if !sm.cfg.Enabled {
		sm.silentMode.Store(true)
		sm.initialized = true
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		sm.silentMode.Store(true)
		sm.initialized = true
		return nil
	}

	speaker.Play(sm.mixer)
	sm.noise = makeNoiseTable(rate)
	sm.initialized = true
	return nil
}

// ready reports whether synthesis calls should produce sound.
func (sm *SoundManager) ready() bool {
	sm.mu.Lock()
	init := sm.initialized
	sm.mu.Unlock()
	return init && !sm.silentMode.Load() && !sm.muted.Load()
}

// play adds a streamer to the live mixer.
func (sm *SoundManager) play(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// BeginSpin marks a spin active: the tick gate re-arms and the mute flag
// becomes read-only until EndSpin.
func (sm *SoundManager) BeginSpin() {
	sm.gate.arm()
	sm.spinActive.Store(true)
}

// EndSpin releases the mute lock after landing or reset.
func (sm *SoundManager) EndSpin() {
	sm.spinActive.Store(false)
}

// PlayWhoosh fires the spin-start effect.
func (sm *SoundManager) PlayWhoosh() {
	if !sm.ready() {
		return
	}
	sm.play(CreateWhooshSound(sm.cfg, sm.noise))
}

// OnFrame recomputes the centered tile from the animation's eased offset
// and emits a boundary tick when it changes. Called every frame while
// spinning.
func (sm *SoundManager) OnFrame(centeredTile int, now time.Time) {
	// Gate state advances even while muted so unmuting mid-spin does not
	// replay stale crossings.
	if !sm.gate.allow(centeredTile, now) {
		return
	}
	if !sm.ready() {
		return
	}
	sm.play(CreateTickSound(sm.cfg))
}

// PlayFanfare fires the normal landing effect.
func (sm *SoundManager) PlayFanfare() {
	if !sm.ready() {
		return
	}
	sm.play(CreateFanfareSound(sm.cfg))
}

// PlayPop fires the confetti pop on result reveal.
func (sm *SoundManager) PlayPop() {
	if !sm.ready() {
		return
	}
	sm.play(CreatePopSound(sm.cfg, sm.noise))
}

// PlayBonusFanfare fires the rare-event landing effect.
func (sm *SoundManager) PlayBonusFanfare() {
	if !sm.ready() {
		return
	}
	sm.play(CreateBonusFanfareSound(sm.cfg, sm.noise))
}

// ToggleMute flips and persists the mute flag, returning true when sound is
// now enabled. The flag is read-only while a spin is active, so toggling
// mid-spin is refused and the current state returned.
func (sm *SoundManager) ToggleMute() bool {
	if sm.spinActive.Load() {
		return !sm.muted.Load()
	}

	newMute := !sm.muted.Load()
	sm.muted.Store(newMute)
	_ = sm.prefs.SetMuted(newMute) // non-fatal, in-memory flag still applies
	return !newMute
}

// IsMuted returns the current mute state.
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsSilent reports whether the manager degraded to silent mode.
func (sm *SoundManager) IsSilent() bool {
	return sm.silentMode.Load()
}
