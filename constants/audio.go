package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default synthesis rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// NoiseBufferDuration is the length of the shared noise table reused by
	// every noise-based effect
	NoiseBufferDuration = 500 * time.Millisecond

	// MinTickGap is the floor between consecutive reel ticks, regardless of
	// how fast tile boundaries are crossed
	MinTickGap = 40 * time.Millisecond
)

// Whoosh Sound Timing (spin start)
const (
	WhooshSoundDuration = 400 * time.Millisecond
	WhooshSoundAttack   = 120 * time.Millisecond
	WhooshSweepDuration = 300 * time.Millisecond
	WhooshSweepFromHz   = 200.0
	WhooshSweepToHz     = 1200.0
)

// Tick Sound Timing (tile boundary crossing)
const (
	TickSoundDuration = 25 * time.Millisecond
	TickSoundAttack   = 2 * time.Millisecond
	TickSoundFreqHz   = 800.0
)

// Fanfare Sound Timing (normal landing)
const (
	FanfareNoteDuration = 350 * time.Millisecond
	FanfareNoteAttack   = 10 * time.Millisecond
	FanfareStagger      = 100 * time.Millisecond
)

// Confetti Pop Timing (result reveal)
const (
	PopSoundDuration = 150 * time.Millisecond
	PopSoundAttack   = 5 * time.Millisecond
	PopSweepFromHz   = 1200.0
	PopSweepToHz     = 600.0
)

// Bonus Fanfare Timing (rare-event landing)
const (
	BonusNoteDuration = 400 * time.Millisecond
	BonusNoteAttack   = 10 * time.Millisecond
	BonusStagger      = 120 * time.Millisecond
	ShimmerDuration   = 700 * time.Millisecond
	ShimmerAttack     = 300 * time.Millisecond
	ShimmerRelease    = 300 * time.Millisecond
	ShimmerHighPassHz = 3000.0
)
