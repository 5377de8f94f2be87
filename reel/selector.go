package reel

import (
	"reelspin/constants"
)

// SelectWinner picks the logical winner uniformly from the pool, then
// chooses which physical tile represents it. Candidate tiles below 30% of
// the strip length are filtered out so the scroll always travels a visible
// distance; if the filter empties the set (pathologically short strips) the
// unfiltered candidates are used instead.
//
// The returned index is guaranteed valid whenever BuildStrip's postcondition
// holds: every pool slot appears at least RepeatRounds times.
func SelectWinner(pool []Slot, items []Item, rng RandomSource) (*Slot, int) {
	winner := &pool[rng.IntN(len(pool))]

	candidates := make([]int, 0, len(items)/len(pool)+1)
	for i := range items {
		if items[i].Slot != nil && items[i].Slot.ID == winner.ID {
			candidates = append(candidates, i)
		}
	}

	minIndex := int(float64(len(items)) * constants.MinTravelFraction)
	far := make([]int, 0, len(candidates))
	for _, idx := range candidates {
		if idx >= minIndex {
			far = append(far, idx)
		}
	}
	if len(far) == 0 {
		far = candidates
	}

	return winner, far[rng.IntN(len(far))]
}
