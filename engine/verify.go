package engine

// The Verify methods check a request against the current state. A nil result
// means the event built from the request may be applied.

// VerifyPass checks seat passing cards from hand, its cards before passing.
func (g *GameState) VerifyPass(seat Seat, hand, cards Cards) error {
	const action = "pass"
	if g.IsComplete() {
		return g.reject(action, ErrGameComplete, NoSeat, NoCards)
	}
	if !g.Phase.IsPassing() {
		return g.reject(action, ErrIllegalAction, NoSeat, NoCards)
	}
	if !hand.ContainsAll(cards) {
		return g.reject(action, ErrNotYourCards, seat, cards&^hand)
	}
	if cards.Len() != 3 {
		return g.reject(action, ErrIllegalPassSize, seat, cards)
	}
	if g.Done.SentPass(seat) {
		return g.reject(action, ErrAlreadyPassed, seat, NoCards)
	}
	return nil
}

// VerifyCharge checks seat charging cards from hand. An empty cards declines.
func (g *GameState) VerifyCharge(seat Seat, hand, cards Cards) error {
	const action = "charge"
	if g.IsComplete() {
		return g.reject(action, ErrGameComplete, NoSeat, NoCards)
	}
	if !g.Phase.IsCharging() {
		return g.reject(action, ErrIllegalAction, NoSeat, NoCards)
	}
	if !hand.ContainsAll(cards) {
		return g.reject(action, ErrNotYourCards, seat, cards&^hand)
	}
	if !Chargeable.ContainsAll(cards) {
		return g.reject(action, ErrUnchargeable, seat, cards&^Chargeable)
	}
	if charged := g.Charges.AllCharges() & cards; !charged.IsEmpty() {
		return g.reject(action, ErrAlreadyCharged, seat, charged)
	}
	if !g.CanCharge(seat) {
		return g.reject(action, ErrNotYourTurn, g.NextActor, NoCards)
	}
	return nil
}

// VerifyPlay checks seat playing card from hand. The checks run in the same
// order as LegalPlays so the error names the first rule the card breaks.
func (g *GameState) VerifyPlay(seat Seat, hand Cards, card Card) error {
	const action = "play"
	if g.IsComplete() {
		return g.reject(action, ErrGameComplete, NoSeat, NoCards)
	}
	if !g.Phase.IsPlaying() {
		return g.reject(action, ErrIllegalAction, NoSeat, NoCards)
	}
	plays := hand &^ g.Played
	if !card.Valid() || !plays.Contains(card) {
		return g.reject(action, ErrNotYourCards, seat, card.Bit()&AllCards)
	}
	switch {
	case g.NextActor == NoSeat && !plays.Contains(TwoClubs):
		return g.reject(action, ErrNotYourTurn, NoSeat, NoCards)
	case g.NextActor != NoSeat && g.NextActor != seat:
		return g.reject(action, ErrNotYourTurn, g.NextActor, NoCards)
	}

	if plays.Contains(TwoClubs) {
		if card != TwoClubs {
			return g.reject(action, ErrMustPlayTwoOfClubs, seat, card.Bit())
		}
		return nil
	}

	if g.FirstTrick() {
		switch {
		case !Points.ContainsAll(plays):
			plays &^= Points
			if !plays.Contains(card) {
				return g.reject(action, ErrNoPointsOnFirstTrick, seat, card.Bit())
			}
		case plays.Contains(JackDiamonds):
			if card != JackDiamonds {
				return g.reject(action, ErrMustPlayJackOfDiamonds, seat, card.Bit())
			}
			return nil
		case plays.Contains(QueenSpades):
			if card != QueenSpades {
				return g.reject(action, ErrMustPlayQueenOfSpades, seat, card.Bit())
			}
			return nil
		}
	}

	if !g.CurrentTrick.IsEmpty() {
		suit := g.CurrentTrick.Suit()
		if !plays.ContainsAny(suit.Cards()) {
			return nil
		}
		plays &= suit.Cards()
		if !plays.Contains(card) {
			return g.reject(action, ErrMustFollowSuit, seat, card.Bit())
		}
		if !g.LedSuits.Contains(suit) && plays.Len() > 1 {
			plays &^= g.Charges.AllCharges()
			if !plays.Contains(card) {
				return g.reject(action, ErrNoChargeOnFirstTrickOfSuit, seat, card.Bit())
			}
		}
		return nil
	}

	if !g.HeartsPlayed() && !AllHearts.ContainsAll(plays) {
		plays &^= AllHearts
		if !plays.Contains(card) {
			return g.reject(action, ErrHeartsNotBroken, seat, card.Bit())
		}
	}
	unled := g.Charges.AllCharges() &^ g.LedSuits.Cards()
	if !unled.ContainsAll(plays) {
		plays &^= unled
		if !plays.Contains(card) {
			return g.reject(action, ErrNoChargeOnFirstTrickOfSuit, seat, card.Bit())
		}
	}
	return nil
}

// VerifyClaim checks seat starting a claim.
func (g *GameState) VerifyClaim(seat Seat) error {
	const action = "claim"
	if g.IsComplete() {
		return g.reject(action, ErrGameComplete, NoSeat, NoCards)
	}
	if !g.Phase.IsPlaying() {
		return g.reject(action, ErrIllegalAction, NoSeat, NoCards)
	}
	if g.Claims.IsClaiming(seat) {
		return g.reject(action, ErrAlreadyClaiming, seat, NoCards)
	}
	return nil
}

// VerifyAcceptClaim checks acceptor accepting claimer's claim.
func (g *GameState) VerifyAcceptClaim(claimer, acceptor Seat) error {
	const action = "accept_claim"
	if g.IsComplete() {
		return g.reject(action, ErrGameComplete, NoSeat, NoCards)
	}
	if !g.Phase.IsPlaying() {
		return g.reject(action, ErrIllegalAction, NoSeat, NoCards)
	}
	if !g.Claims.IsClaiming(claimer) {
		return g.reject(action, ErrNotClaiming, claimer, NoCards)
	}
	if g.Claims.HasAccepted(claimer, acceptor) {
		return g.reject(action, ErrAlreadyAcceptedClaim, acceptor, NoCards)
	}
	return nil
}

// VerifyRejectClaim checks a rejection of claimer's claim.
func (g *GameState) VerifyRejectClaim(claimer Seat) error {
	const action = "reject_claim"
	if g.IsComplete() {
		return g.reject(action, ErrGameComplete, NoSeat, NoCards)
	}
	if !g.Phase.IsPlaying() {
		return g.reject(action, ErrIllegalAction, NoSeat, NoCards)
	}
	if !g.Claims.IsClaiming(claimer) {
		return g.reject(action, ErrNotClaiming, claimer, NoCards)
	}
	return nil
}
