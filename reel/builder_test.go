package reel

import (
	"fmt"
	"testing"

	"reelspin/constants"
)

// makePool builds a pool of n distinct slots for tests.
func makePool(n int) []Slot {
	pool := make([]Slot, n)
	for i := range pool {
		pool[i] = Slot{
			ID:    fmt.Sprintf("slot-%d", i),
			Label: fmt.Sprintf("L%d", i),
			Icon:  rune('A' + i%26),
			Name:  fmt.Sprintf("Slot %d", i),
		}
	}
	return pool
}

// TestRepeatRounds verifies the round formula max(ceil(70/poolSize), 8)
func TestRepeatRounds(t *testing.T) {
	cases := []struct {
		poolSize int
		want     int
	}{
		{2, 35},
		{3, 24},
		{5, 14},
		{7, 10},
		{9, 8},
		{10, 8},
		{50, 8},
	}

	for _, c := range cases {
		if got := RepeatRounds(c.poolSize); got != c.want {
			t.Errorf("RepeatRounds(%d) = %d, want %d", c.poolSize, got, c.want)
		}
	}
}

// TestBuildStripLength verifies the strip always meets the tile floor and
// that every slot recurs exactly once per round
func TestBuildStripLength(t *testing.T) {
	rng := NewSeededRNG(1)

	for size := 2; size <= 12; size++ {
		pool := makePool(size)
		items := BuildStrip(pool, rng)

		rounds := RepeatRounds(size)
		if len(items) != rounds*size {
			t.Errorf("pool %d: strip length %d, want %d", size, len(items), rounds*size)
		}
		if len(items) < constants.MinReelTiles {
			t.Errorf("pool %d: strip length %d below floor %d", size, len(items), constants.MinReelTiles)
		}

		counts := make(map[string]int)
		for _, it := range items {
			if it.Slot == nil || it.Bonus {
				t.Fatalf("pool %d: builder emitted a non-slot tile", size)
			}
			counts[it.Slot.ID]++
		}
		for id, n := range counts {
			if n != rounds {
				t.Errorf("pool %d: slot %s appears %d times, want %d", size, id, n, rounds)
			}
		}
	}
}

// TestBuildStripRoundsArePermutations verifies each round is an independent
// shuffle of the full pool, not a global shuffle
func TestBuildStripRoundsArePermutations(t *testing.T) {
	pool := makePool(5)
	items := BuildStrip(pool, NewSeededRNG(7))

	rounds := RepeatRounds(len(pool))
	for r := 0; r < rounds; r++ {
		seen := make(map[string]bool)
		for i := 0; i < len(pool); i++ {
			id := items[r*len(pool)+i].Slot.ID
			if seen[id] {
				t.Fatalf("round %d repeats slot %s", r, id)
			}
			seen[id] = true
		}
		if len(seen) != len(pool) {
			t.Errorf("round %d covers %d slots, want %d", r, len(seen), len(pool))
		}
	}
}
