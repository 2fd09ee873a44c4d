package engine

import (
	"math/bits"
	"strings"
)

// Trick packs up to eight cards, one per byte, oldest card in the highest
// occupied byte. Unused bytes hold 0x80, which no card can equal.
type Trick uint64

// EmptyTrick has no cards played.
const EmptyTrick Trick = 0x8080_8080_8080_8080

// maxTrickLen is the length of a trick extended by its suit's nine.
const maxTrickLen = 8

var (
	// nineBytes repeats the nine of each suit over four bytes.
	nineBytes = [NumSuits]uint32{0x0707_0707, 0x1717_1717, 0x2727_2727, 0x3737_3737}
	// ledSuitXor maps the led suit's cards above every other card and above
	// the empty-slot sentinel when compared a byte at a time.
	ledSuitXor = [NumSuits]uint64{
		0xb0b0_b0b0_b0b0_b0b0,
		0xa0a0_a0a0_a0a0_a0a0,
		0x9090_9090_9090_9090,
		0x8080_8080_8080_8080,
	}
)

// NewTrick returns an empty trick.
func NewTrick() Trick { return EmptyTrick }

func (t Trick) occupied() uint64 { return uint64(t ^ EmptyTrick) }

// Push appends a card. It must not be called on a complete trick.
func (t Trick) Push(c Card) Trick {
	return t<<8 | Trick(c)
}

// Len returns the number of cards played to the trick.
func (t Trick) Len() int {
	return maxTrickLen - bits.LeadingZeros64(t.occupied())/8
}

// IsEmpty reports whether no card has been played.
func (t Trick) IsEmpty() bool { return t == EmptyTrick }

// Suit returns the led suit. The trick must not be empty.
func (t Trick) Suit() Suit {
	shift := 8*t.Len() - 4
	return Suit(uint64(t)>>uint(shift)) & 3
}

// Lead returns the first card of the trick, or NoCard when empty.
func (t Trick) Lead() Card {
	n := t.Len()
	if n == 0 {
		return NoCard
	}
	return Card(uint64(t) >> uint(8*(n-1)))
}

// IsComplete reports whether the trick is resolved: eight cards, or four
// cards none of which is the nine of the led suit.
func (t Trick) IsComplete() bool {
	state := uint64(t)
	if state&uint64(EmptyTrick) == 0 {
		return true
	}
	if state&uint64(EmptyTrick) != 0x8080_8080_0000_0000 {
		return false
	}
	suit := (state >> 28) & 3
	x := uint32(state) ^ nineBytes[suit]
	return (x-0x0101_0101)&^x&0x8080_8080 == 0
}

// Cards returns the set of cards played to the trick.
func (t Trick) Cards() Cards {
	var out Cards
	state := uint64(t)
	for range t.Len() {
		out |= Card(state).Bit()
		state >>= 8
	}
	return out
}

// Plays returns the cards in the order they were played.
func (t Trick) Plays() []Card {
	n := t.Len()
	out := make([]Card, n)
	state := uint64(t)
	for i := n - 1; i >= 0; i-- {
		out[i] = Card(state)
		state >>= 8
	}
	return out
}

// WinningSeat returns the seat of the highest card of the led suit, given the
// seat that would play next. The trick must not be empty.
func (t Trick) WinningSeat(next Seat) Seat {
	n := t.Len()
	state := uint64(t) ^ ledSuitXor[t.Suit()]
	best, index := uint8(0), 0
	for i := range n {
		if b := uint8(state); b > best {
			best, index = b, i
		}
		state >>= 8
	}
	// index counts back from the most recent card.
	switch index % NumSeats {
	case 0:
		return next.Right()
	case 1:
		return next.Across()
	case 2:
		return next.Left()
	default:
		return next
	}
}

func (t Trick) String() string {
	plays := t.Plays()
	parts := make([]string, len(plays))
	for i, c := range plays {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
