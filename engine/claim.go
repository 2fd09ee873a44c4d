package engine

// ShouldClaim reports whether seat, holding hand, ought to claim now: on lead
// of an empty trick, not already claiming, with more than one trick left, and
// certain to take every remaining trick.
func ShouldClaim(g *GameState, voids VoidState, seat Seat, hand Cards) bool {
	hand &^= g.Played
	switch {
	case !g.CurrentTrick.IsEmpty():
		return false
	case g.Claims.IsClaiming(seat):
		return false
	case g.Played.Len() >= 48:
		return false
	case MustClaim(hand, g.Played):
		return true
	case !g.Won.CanRun(seat):
		return false
	}
	return CanClaimWithVoids(g, voids, seat, hand)
}

// MustClaim reports whether every card of hand outranks every unplayed card
// of its suit held elsewhere.
func MustClaim(hand, played Cards) bool {
	remaining := AllCards &^ hand &^ played
	for _, suit := range AllSuits {
		h, r := hand.Suit(suit), remaining.Suit(suit)
		if !h.IsEmpty() && !r.IsEmpty() && h.Min() < r.Max() {
			return false
		}
	}
	return true
}

// CanClaim reports whether seat, holding hand, takes every remaining trick
// however the other seats play.
func CanClaim(g *GameState, seat Seat, hand Cards) bool {
	return CanClaimWithVoids(g, 0, seat, hand)
}

// CanClaimWithVoids is CanClaim where opponents never play a suit voids says
// they lack.
func CanClaimWithVoids(g *GameState, voids VoidState, seat Seat, hand Cards) bool {
	// Nothing left to score.
	if (g.Played &^ g.CurrentTrick.Cards()).ContainsAll(Scoring) {
		return true
	}
	return canClaim(*g, voids, seat, hand&^g.Played)
}

func canClaim(g GameState, voids VoidState, seat Seat, hand Cards) bool {
	if g.CurrentTrick.IsEmpty() && g.NextActor == seat {
		return canLeaderClaim(&g, hand)
	}
	actor := g.NextActor
	switch actor {
	case NoSeat:
		return false
	case seat:
		for card := range g.DistinctLegalPlays(hand).All() {
			next := g
			next.Apply(Play{Seat: seat, Card: card})
			if next.CurrentTrick.IsEmpty() && next.NextActor != seat {
				continue
			}
			if canClaim(next, voids, seat, hand.Without(card)) {
				return true
			}
		}
		return false
	}
	others := g.Unplayed() &^ hand
	for card := range others.DistinctPlays(g.searchPlayed()).All() {
		if voids.IsVoid(actor, card.Suit()) {
			continue
		}
		next := g
		next.Apply(Play{Seat: actor, Card: card})
		if next.CurrentTrick.IsEmpty() && next.NextActor != seat {
			return false
		}
		if !canClaim(next, voids, seat, hand) {
			return false
		}
	}
	return true
}

// canLeaderClaim decides a claim by a seat on lead from per-suit loser
// counts. Until hearts are broken the other suits must carry the lead on
// their own.
func canLeaderClaim(g *GameState, hand Cards) bool {
	hearts := losers(Hearts, hand, g)
	others := losers(Spades, hand, g) + losers(Diamonds, hand, g) + losers(Clubs, hand, g)
	if g.HeartsPlayed() {
		return hearts+others <= 0
	}
	return others <= 0 && hearts+others <= 0
}

// losers counts the cards of suit in hand that can lose a trick when the
// suit is run from the top. It returns -1 when the suit's nine gives an extra
// lead that can cover a loser elsewhere.
func losers(suit Suit, hand Cards, g *GameState) int {
	hand = hand &^ g.Played & suit.Cards()
	remaining := suit.Cards() &^ hand &^ g.Played
	nine := suit.With(Nine)
	legal := hand
	if hand.Len() != 1 && !g.LedSuits.Contains(suit) {
		legal = hand &^ g.Charges.AllCharges()
	}
	hadWinner := false
	for {
		if hand.IsEmpty() {
			return 0
		}
		if remaining.IsEmpty() {
			if hand.Contains(nine) {
				return -1
			}
			return 0
		}
		top := nine
		if remaining != nine.Bit() {
			top = remaining.Without(nine).Max()
		}
		if top > legal.Max() {
			if hadWinner && hand.Contains(nine) {
				hand = hand.Without(nine)
				remaining = remaining.Without(remaining.Min())
				continue
			}
			if top == nine && hand.Len() == 2 && hand.Max() > top {
				return 0
			}
			if top > hand.Max() {
				return hand.Len()
			}
			return legal.Len()
		}
		winners := legal.Above(top)
		if winners == nine.Bit() {
			hand = hand.Without(nine)
			remaining = remaining.Without(remaining.Min())
			if hand.IsEmpty() {
				return -1
			}
			hand = hand.Without(hand.Min())
			if !remaining.IsEmpty() {
				remaining = remaining.Without(remaining.Min())
			}
		} else {
			hand = hand.Without(winners.Without(nine).Min())
			remaining = remaining.Without(remaining.Min())
		}
		legal = hand
		hadWinner = true
	}
}
