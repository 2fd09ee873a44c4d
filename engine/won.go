package engine

import (
	"fmt"
	"math/bits"
	"strings"
)

// WonState tallies captured scoring cards. Seat s owns byte s: bits 0-3
// count hearts, then QS=0x10, JD=0x20 and TC=0x40.
type WonState uint32

const (
	wonHearts WonState = 0x0f0f_0f0f
	wonQueen  WonState = 0x1010_1010
	wonJack   WonState = 0x2020_2020
	wonTen    WonState = 0x4040_4040
	wonPoints WonState = wonHearts | wonQueen
)

// Win credits seat with the scoring cards among cards.
func (w WonState) Win(seat Seat, cards Cards) WonState {
	update := WonState((cards & AllHearts).Len())
	if cards.Contains(QueenSpades) {
		update += 0x10
	}
	if cards.Contains(JackDiamonds) {
		update += 0x20
	}
	if cards.Contains(TenClubs) {
		update += 0x40
	}
	return w + update<<(8*uint(seat&3))
}

// Claim credits seat with every scoring card not yet won by anyone.
func (w WonState) Claim(seat Seat) WonState {
	hearts := NumRanks
	for _, s := range AllSeats {
		hearts -= w.Hearts(s)
	}
	update := WonState(hearts)
	if w&wonQueen == 0 {
		update += 0x10
	}
	if w&wonJack == 0 {
		update += 0x20
	}
	if w&wonTen == 0 {
		update += 0x40
	}
	return w + update<<(8*uint(seat&3))
}

// Hearts returns how many hearts seat has taken.
func (w WonState) Hearts(seat Seat) int { return int(w>>(8*uint(seat&3))) & 0xf }

// Queen reports whether seat took the queen of spades.
func (w WonState) Queen(seat Seat) bool { return w&(0x10<<(8*uint(seat&3))) != 0 }

// Jack reports whether seat took the jack of diamonds.
func (w WonState) Jack(seat Seat) bool { return w&(0x20<<(8*uint(seat&3))) != 0 }

// Ten reports whether seat took the ten of clubs.
func (w WonState) Ten(seat Seat) bool { return w&(0x40<<(8*uint(seat&3))) != 0 }

func flagWinner(masked WonState) Seat {
	if masked == 0 {
		return NoSeat
	}
	return Seat(bits.TrailingZeros32(uint32(masked)) / 8)
}

// QueenWinner returns the seat holding the queen of spades, or NoSeat.
func (w WonState) QueenWinner() Seat { return flagWinner(w & wonQueen) }

// JackWinner returns the seat holding the jack of diamonds, or NoSeat.
func (w WonState) JackWinner() Seat { return flagWinner(w & wonJack) }

// TenWinner returns the seat holding the ten of clubs, or NoSeat.
func (w WonState) TenWinner() Seat { return flagWinner(w & wonTen) }

// HeartsBroken reports whether any heart has been captured.
func (w WonState) HeartsBroken() bool { return w&wonHearts != 0 }

// CanRun reports whether no other seat has taken a heart or the queen, so
// seat can still take all of them.
func (w WonState) CanRun(seat Seat) bool {
	return w&(wonPoints^(0x1f<<(8*uint(seat&3)))) == 0
}

// Runner describes who can still take every heart and the queen: all is true
// when nobody has taken any, otherwise seat is the only seat with points, or
// NoSeat when points are split.
func (w WonState) Runner() (seat Seat, all bool) {
	masked := uint32(w & wonPoints)
	if masked == 0 {
		return NoSeat, true
	}
	first := bits.TrailingZeros32(masked) / 8
	last := (31 - bits.LeadingZeros32(masked)) / 8
	if first != last {
		return NoSeat, false
	}
	return Seat(first), false
}

// Scores computes each seat's score under the given charges.
func (w WonState) Scores(charges ChargeState) Scores {
	heartValue := 1
	if charges.IsCharged(AceHearts) {
		heartValue = 2
	}
	var scores Scores
	for _, s := range AllSeats {
		scores[s] = heartValue * w.Hearts(s)
	}
	if s := w.QueenWinner(); s != NoSeat {
		if charges.IsCharged(QueenSpades) {
			scores[s] += 26
		} else {
			scores[s] += 13
		}
		if w.Hearts(s) == NumRanks {
			scores[s] = -scores[s]
		}
	}
	if s := w.JackWinner(); s != NoSeat {
		if charges.IsCharged(JackDiamonds) {
			scores[s] -= 20
		} else {
			scores[s] -= 10
		}
	}
	if s := w.TenWinner(); s != NoSeat {
		if charges.IsCharged(TenClubs) {
			scores[s] *= 4
		} else {
			scores[s] *= 2
		}
	}
	return scores
}

func (w WonState) String() string {
	parts := make([]string, 0, NumSeats)
	for _, s := range AllSeats {
		var b strings.Builder
		fmt.Fprintf(&b, "%s [%dH", s, w.Hearts(s))
		if w.Queen(s) {
			b.WriteString(", QS")
		}
		if w.Jack(s) {
			b.WriteString(", JD")
		}
		if w.Ten(s) {
			b.WriteString(", TC")
		}
		b.WriteByte(']')
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ", ")
}
