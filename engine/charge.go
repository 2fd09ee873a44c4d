package engine

import "strings"

// ChargeState records which chargeable cards each seat has charged. Seat s
// owns bits 4s..4s+3: QS=8, AH=4, JD=2, TC=1.
type ChargeState uint16

const (
	chargeQueen ChargeState = 0x8888
	chargeAce   ChargeState = 0x4444
	chargeJack  ChargeState = 0x2222
	chargeTen   ChargeState = 0x1111
)

// Charge returns the state with seat additionally charging the chargeable
// cards in cards. Other cards are ignored.
func (c ChargeState) Charge(seat Seat, cards Cards) ChargeState {
	var mask ChargeState
	if cards.Contains(QueenSpades) {
		mask |= 8
	}
	if cards.Contains(AceHearts) {
		mask |= 4
	}
	if cards.Contains(JackDiamonds) {
		mask |= 2
	}
	if cards.Contains(TenClubs) {
		mask |= 1
	}
	return c | mask<<(4*uint(seat&3))
}

// IsCharged reports whether any seat charged card.
func (c ChargeState) IsCharged(card Card) bool {
	switch card {
	case QueenSpades:
		return c&chargeQueen != 0
	case AceHearts:
		return c&chargeAce != 0
	case JackDiamonds:
		return c&chargeJack != 0
	case TenClubs:
		return c&chargeTen != 0
	}
	return false
}

// Charges returns the cards seat has charged.
func (c ChargeState) Charges(seat Seat) Cards {
	return (c & (0xf << (4 * uint(seat&3)))).cards()
}

// AllCharges returns every charged card.
func (c ChargeState) AllCharges() Cards { return c.cards() }

func (c ChargeState) cards() Cards {
	var out Cards
	if c&chargeQueen != 0 {
		out = out.With(QueenSpades)
	}
	if c&chargeAce != 0 {
		out = out.With(AceHearts)
	}
	if c&chargeJack != 0 {
		out = out.With(JackDiamonds)
	}
	if c&chargeTen != 0 {
		out = out.With(TenClubs)
	}
	return out
}

func (c ChargeState) String() string {
	parts := make([]string, 0, NumSeats)
	for _, s := range AllSeats {
		parts = append(parts, s.String()+" ["+c.Charges(s).String()+"]")
	}
	return strings.Join(parts, ", ")
}
