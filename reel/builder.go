package reel

import (
	"reelspin/constants"
)

// RepeatRounds returns how many shuffled copies of the pool the strip holds:
// ceil(MinReelTiles/poolSize), floored at MinRepeatRounds. Large pools still
// repeat enough times for the winner selector's distance filter to have
// candidates, small pools still reach the tile floor.
func RepeatRounds(poolSize int) int {
	rounds := (constants.MinReelTiles + poolSize - 1) / poolSize
	if rounds < constants.MinRepeatRounds {
		rounds = constants.MinRepeatRounds
	}
	return rounds
}

// BuildStrip expands the pool into the tile sequence for one spin. Each
// round shuffles the pool independently before appending, so every slot
// recurs roughly RepeatRounds times without long runs of the same slot.
//
// The pool size >= 2 precondition is enforced by the binding layer before a
// session exists; the builder assumes it holds.
func BuildStrip(pool []Slot, rng RandomSource) []Item {
	rounds := RepeatRounds(len(pool))
	items := make([]Item, 0, rounds*len(pool))

	order := make([]int, len(pool))
	for i := range order {
		order[i] = i
	}

	for r := 0; r < rounds; r++ {
		shuffle(order, rng)
		for _, idx := range order {
			items = append(items, Item{Slot: &pool[idx]})
		}
	}
	return items
}

// shuffle is an in-place Fisher-Yates over the index slice.
func shuffle(order []int, rng RandomSource) {
	for i := len(order) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
}
