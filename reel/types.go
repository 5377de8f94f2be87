package reel

import "errors"

// Slot is one candidate item in the pool for a spin. Slots are owned by the
// caller and immutable for the duration of a session.
type Slot struct {
	ID       string  // stable identity key
	Label    string  // short tile label
	Icon     rune    // tile glyph
	Name     string  // full display name
	Progress float64 // auxiliary progress value, 0.0-1.0
	Badge    string  // accessor-derived result badge text
}

// Item is one physical tile in the built sequence. A tile either references
// a Slot or is the bonus sentinel carrying no Slot reference.
type Item struct {
	Slot  *Slot
	Bonus bool
}

// Session is the ephemeral state of a single spin. It is created fresh per
// spin and discarded on reset; index positions inside Items are meaningful
// (they determine animation distance and geometric offset).
type Session struct {
	Items       []Item
	Winner      *Slot // nil when the bonus tile itself is the winner
	WinnerIndex int   // tile index the animation is guaranteed to land on
	BonusIndex  int   // -1 when no bonus tile was inserted
	BonusLanded bool  // the spin's winner is the bonus tile
	NearMiss    bool  // winner is adjacent to a non-winning bonus tile
}

// Sentinel errors
var (
	ErrPoolTooSmall = errors.New("slot pool needs at least two entries")
)
