package audio

// SoundType represents the synthesized sound effects
type SoundType int

const (
	SoundWhoosh       SoundType = iota // spin start
	SoundTick                          // tile boundary crossing
	SoundFanfare                       // normal landing
	SoundPop                           // result reveal confetti
	SoundBonusFanfare                  // rare-event landing
	soundTypeCount
)

// String returns the effect name used in the volume config keys.
func (st SoundType) String() string {
	switch st {
	case SoundWhoosh:
		return "whoosh"
	case SoundTick:
		return "tick"
	case SoundFanfare:
		return "fanfare"
	case SoundPop:
		return "pop"
	case SoundBonusFanfare:
		return "bonus"
	default:
		return "unknown"
	}
}
