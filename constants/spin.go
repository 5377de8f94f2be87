package constants

import "time"

// Reel construction
const (
	// MinReelTiles is the tile floor the builder must meet or exceed so the
	// strip supports a multi-second scroll at minimum tile width
	MinReelTiles = 70

	// MinRepeatRounds guarantees every slot recurs even for large pools
	MinRepeatRounds = 8

	// MinTravelFraction is the fraction of the strip the winner tile must
	// lie beyond, so the spin never looks instantaneous
	MinTravelFraction = 0.30
)

// Rare event tuning. Presentation values, overridable via config.
const (
	// DefaultBonusLandChance is the probability the bonus tile is the winner
	DefaultBonusLandChance = 1.0 / 1000.0

	// DefaultBonusAppearChance is the probability a bonus tile appears at
	// all, rolled independently of the land trial
	DefaultBonusAppearChance = 1.0 / 100.0

	// Bonus insertion window relative to the winner tile, in tiles.
	// The window passes through the viewport before or just after the
	// winner, which is what makes a near-miss readable.
	BonusWindowBefore = -8
	BonusWindowAfter  = 2
)

// Animation Timing
const (
	// MinSpinDuration and MaxSpinDuration bound the eased translation
	MinSpinDuration = 3000 * time.Millisecond
	MaxSpinDuration = 6000 * time.Millisecond

	// DurationPerUnit is milliseconds of spin per unit of travel distance
	DurationPerUnit = 1.2

	// FrameInterval is the animation frame cadence (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxJitterFraction caps landing jitter relative to one tile width
	MaxJitterFraction = 0.15

	// PostLandDelay is the pause between landing and the result transition
	PostLandDelay = 900 * time.Millisecond
)

// Result Presentation Timing
const (
	// PreResultDelay holds the winner highlight before the cross-fade
	PreResultDelay = 500 * time.Millisecond

	// CrossFadeDelay is the reel-out / result-in fade time
	CrossFadeDelay = 350 * time.Millisecond
)

// Confetti tuning
const (
	ConfettiParticles      = 60
	BonusConfettiParticles = 140
)
