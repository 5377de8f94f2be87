package reel

// NewSession builds a complete spin session: expanded strip, winner tile,
// rare-event injection. After it returns, exactly one of {Winner != nil,
// BonusLanded} holds and WinnerIndex points at the tile the animation must
// land on.
func NewSession(pool []Slot, cfg BonusConfig, rng RandomSource) (*Session, error) {
	if len(pool) < 2 {
		return nil, ErrPoolTooSmall
	}

	items := BuildStrip(pool, rng)
	winner, idx := SelectWinner(pool, items, rng)

	s := &Session{
		Items:       items,
		Winner:      winner,
		WinnerIndex: idx,
		BonusIndex:  -1,
	}
	InjectBonus(s, cfg, rng)
	return s, nil
}
