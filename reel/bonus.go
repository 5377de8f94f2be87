package reel

import (
	"reelspin/constants"
)

// BonusConfig carries the rare-event tuning. The probabilities and the
// insertion window are presentation values with no deeper semantics; they
// default to the constants but stay configurable.
type BonusConfig struct {
	LandChance   float64 // probability the bonus tile is itself the winner
	AppearChance float64 // probability a bonus tile appears at all
	WindowBefore int     // insertion window start, in tiles relative to the winner
	WindowAfter  int     // insertion window end, inclusive
}

// DefaultBonusConfig returns the stock tuning (~1/1000 land, ~1/100 appear,
// window -8..+2).
func DefaultBonusConfig() BonusConfig {
	return BonusConfig{
		LandChance:   constants.DefaultBonusLandChance,
		AppearChance: constants.DefaultBonusAppearChance,
		WindowBefore: constants.BonusWindowBefore,
		WindowAfter:  constants.BonusWindowAfter,
	}
}

// InjectBonus rolls the two independent rare-event trials and, when one
// fires, inserts the bonus sentinel into the session's strip. A land places
// the sentinel at the winner index and takes over the winner role; an
// appear-only places it in the window around the winner and shifts the
// winner index when the insertion lands at or before it.
//
// Both trials are always rolled: a land implies appearance, so the appear
// trial's outcome is irrelevant when land fires, but rolling it keeps the
// two probabilities independent.
func InjectBonus(s *Session, cfg BonusConfig, rng RandomSource) {
	land := rng.Float64() < cfg.LandChance
	appear := rng.Float64() < cfg.AppearChance
	if !land && !appear {
		return
	}

	var at int
	if land {
		at = s.WinnerIndex
	} else {
		insertAt := make([]int, 0, cfg.WindowAfter-cfg.WindowBefore)
		for off := cfg.WindowBefore; off <= cfg.WindowAfter; off++ {
			if off == 0 {
				continue
			}
			idx := s.WinnerIndex + off
			if idx < 0 || idx >= len(s.Items) {
				continue
			}
			insertAt = append(insertAt, idx)
		}
		if len(insertAt) == 0 {
			return
		}
		at = insertAt[rng.IntN(len(insertAt))]
	}

	// Insert the sentinel, shifting all later tiles up by one.
	s.Items = append(s.Items, Item{})
	copy(s.Items[at+1:], s.Items[at:])
	s.Items[at] = Item{Bonus: true}
	s.BonusIndex = at

	if land {
		s.Winner = nil
		s.WinnerIndex = at
		s.BonusLanded = true
		return
	}
	if at <= s.WinnerIndex {
		s.WinnerIndex++
	}
	if diff := s.WinnerIndex - s.BonusIndex; diff >= -1 && diff <= 1 {
		s.NearMiss = true
	}
}
