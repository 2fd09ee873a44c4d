package engine

// LegalPlays returns the cards of hand that may be played now. Cards already
// played are ignored, so hand may be the seat's full post-pass hand.
func (g *GameState) LegalPlays(hand Cards) Cards {
	plays := hand &^ g.Played

	// The holder of the two of clubs leads it.
	if plays.Contains(TwoClubs) {
		return TwoClubs.Bit()
	}

	// No points on the first trick unless the hand holds nothing else, in
	// which case the jack goes before the queen.
	if g.FirstTrick() {
		switch {
		case !Points.ContainsAll(plays):
			plays &^= Points
		case plays.Contains(JackDiamonds):
			return JackDiamonds.Bit()
		case plays.Contains(QueenSpades):
			return QueenSpades.Bit()
		}
	}

	if !g.CurrentTrick.IsEmpty() {
		suit := g.CurrentTrick.Suit()
		if plays.ContainsAny(suit.Cards()) {
			plays &= suit.Cards()
			// A charged card may not follow to its suit's first trick
			// unless it is the only card of the suit.
			if !g.LedSuits.Contains(suit) && plays.Len() > 1 {
				plays &^= g.Charges.AllCharges()
			}
		}
		return plays
	}

	// Leading: hearts wait until broken.
	if !g.HeartsPlayed() && !AllHearts.ContainsAll(plays) {
		plays &^= AllHearts
	}
	// So do charged cards, until their suit has been led.
	unled := g.Charges.AllCharges() &^ g.LedSuits.Cards()
	if !unled.ContainsAll(plays) {
		plays &^= unled
	}
	return plays
}

// DistinctLegalPlays returns one representative of each group of legal plays
// that lead to equivalent positions.
func (g *GameState) DistinctLegalPlays(hand Cards) Cards {
	return g.LegalPlays(hand).DistinctPlays(g.searchPlayed())
}

// searchPlayed is the played set used to group equivalent plays. The card
// currently winning the trick counts as unplayed, since the cards still to
// follow are ranked against it.
func (g *GameState) searchPlayed() Cards {
	if g.CurrentTrick.IsEmpty() {
		return g.Played
	}
	winning := g.CurrentTrick.Cards() & g.CurrentTrick.Suit().Cards()
	return g.Played.Without(winning.Max())
}
