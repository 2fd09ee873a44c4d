package engine

import "strings"

// VoidState records suits a seat is known to hold no cards of: bit
// 4*seat+suit. It is inferred from public plays only.
type VoidState uint16

func voidBit(seat Seat, suit Suit) VoidState { return 1 << (4*uint(seat&3) + uint(suit&3)) }

// MarkVoid records seat as void in suit.
func (v VoidState) MarkVoid(seat Seat, suit Suit) VoidState { return v | voidBit(seat, suit) }

// IsVoid reports whether seat is known to be void in suit.
func (v VoidState) IsVoid(seat Seat, suit Suit) bool { return v&voidBit(seat, suit) != 0 }

// OnPlay updates the voids for seat playing card in state g, before the play
// is applied.
func (v VoidState) OnPlay(g *GameState, seat Seat, card Card) VoidState {
	trick := g.CurrentTrick
	suit := card.Suit()
	switch {
	case !trick.IsEmpty() && trick.Suit() != suit:
		// Did not follow.
		return v.MarkVoid(seat, trick.Suit())
	case trick.IsEmpty() && suit == Hearts && !g.HeartsPlayed():
		// Leading an unbroken heart means nothing else was held.
		return v.MarkVoid(seat, Clubs).MarkVoid(seat, Diamonds).MarkVoid(seat, Spades)
	case !g.LedSuits.Contains(suit) && g.Charges.IsCharged(card):
		// A charged card on its suit's first trick is only legal alone.
		v = v.MarkVoid(seat, suit)
		if !trick.IsEmpty() {
			return v
		}
		// Leading it means every other holding was also barred.
		unled := g.Charges.AllCharges() &^ g.LedSuits.Cards()
		for _, other := range AllSuits {
			switch {
			case other == suit:
			case other == Hearts && !g.HeartsPlayed():
			case unled.ContainsAny(other.Cards()):
			default:
				v = v.MarkVoid(seat, other)
			}
		}
		return v
	}
	return v
}

func (v VoidState) String() string {
	parts := make([]string, 0, NumSeats)
	for _, seat := range AllSeats {
		var b strings.Builder
		b.WriteString(seat.String())
		b.WriteString(" [")
		for _, suit := range AllSuits {
			if v.IsVoid(seat, suit) {
				b.WriteByte(suit.Char())
			}
		}
		b.WriteByte(']')
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ", ")
}
