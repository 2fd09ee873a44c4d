package engine

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Cards is a set of cards: bit 16*suit+rank is set when the card is present.
// Bits 13-15 of every lane are always zero.
type Cards uint64

const (
	NoCards     Cards = 0x0000_0000_0000_0000
	AllClubs    Cards = 0x0000_0000_0000_1fff
	AllDiamonds Cards = 0x0000_0000_1fff_0000
	AllHearts   Cards = 0x0000_1fff_0000_0000
	AllSpades   Cards = 0x1fff_0000_0000_0000
	AllCards    Cards = AllClubs | AllDiamonds | AllHearts | AllSpades

	// Nines holds the nine of every suit.
	Nines Cards = 0x0080_0080_0080_0080
	// Chargeable holds TC, JD, AH and QS.
	Chargeable Cards = 0x0400_1000_0200_0100
	// Points holds every card with a nonzero point value.
	Points Cards = AllHearts | Cards(1)<<QueenSpades | Cards(1)<<JackDiamonds
	// Scoring is Points plus the ten of clubs, which doubles a score.
	Scoring Cards = Points | Cards(1)<<TenClubs
)

// CardsOf builds a set from individual cards.
func CardsOf(cards ...Card) Cards {
	var s Cards
	for _, c := range cards {
		s |= c.Bit()
	}
	return s
}

// Len returns the number of cards in the set.
func (s Cards) Len() int { return bits.OnesCount64(uint64(s)) }

// IsEmpty reports whether the set has no cards.
func (s Cards) IsEmpty() bool { return s == 0 }

// Contains reports whether c is in the set.
func (s Cards) Contains(c Card) bool { return s&c.Bit() != 0 }

// ContainsAny reports whether the sets share a card.
func (s Cards) ContainsAny(o Cards) bool { return s&o != 0 }

// ContainsAll reports whether o is a subset of s.
func (s Cards) ContainsAll(o Cards) bool { return s&o == o }

// With returns s with c added.
func (s Cards) With(c Card) Cards { return s | c.Bit() }

// Without returns s with c removed.
func (s Cards) Without(c Card) Cards { return s &^ c.Bit() }

// Max returns the highest card by suit-major order, or NoCard when empty.
func (s Cards) Max() Card {
	if s == 0 {
		return NoCard
	}
	return Card(63 - bits.LeadingZeros64(uint64(s)))
}

// Min returns the lowest card by suit-major order, or NoCard when empty.
func (s Cards) Min() Card {
	if s == 0 {
		return NoCard
	}
	return Card(bits.TrailingZeros64(uint64(s)))
}

// Above returns the cards of s in c's suit that outrank c.
func (s Cards) Above(c Card) Cards { return s & c.Above() }

// Below returns the cards of s in c's suit that c outranks.
func (s Cards) Below(c Card) Cards { return s & c.Below() }

// Suit returns the cards of s in the given suit.
func (s Cards) Suit(suit Suit) Cards { return s & suit.Cards() }

// All iterates the set from the highest card to the lowest.
func (s Cards) All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for rest := s; rest != 0; {
			c := rest.Max()
			if !yield(c) {
				return
			}
			rest = rest.Without(c)
		}
	}
}

// Slice returns the cards highest first.
func (s Cards) Slice() []Card {
	out := make([]Card, 0, s.Len())
	for c := range s.All() {
		out = append(out, c)
	}
	return out
}

// subset maps the bits of index onto the cards of s, bit i selecting the
// i-th highest card.
func subset(cards []Card, index uint64) Cards {
	var out Cards
	for i, c := range cards {
		if index&(1<<uint(i)) != 0 {
			out |= c.Bit()
		}
	}
	return out
}

// Powerset iterates all 2^n subsets of s. The index counts down from 2^n-1,
// so the first subset is s itself and the last is the empty set.
func (s Cards) Powerset() iter.Seq[Cards] {
	cards := s.Slice()
	return func(yield func(Cards) bool) {
		for index := uint64(1)<<uint(len(cards)) - 1; ; index-- {
			if !yield(subset(cards, index)) || index == 0 {
				return
			}
		}
	}
}

// Choose iterates every k-card subset of s in colexicographic order of the
// selection bits (Gosper's hack).
func (s Cards) Choose(k int) iter.Seq[Cards] {
	cards := s.Slice()
	n := len(cards)
	return func(yield func(Cards) bool) {
		if k < 0 || k > n {
			return
		}
		if k == 0 {
			yield(NoCards)
			return
		}
		limit := uint64(1) << uint(n)
		for set := uint64(1)<<uint(k) - 1; set < limit; {
			if !yield(subset(cards, set)) {
				return
			}
			c := set & -set
			r := set + c
			set = ((r^set)>>2)/c | r
		}
	}
}

// DistinctPlays collapses runs of cards that are interchangeable in search to
// the highest card of each run. Two held cards belong to one run when every
// card ranked between them is held or already played. Nines and chargeable
// cards are never collapsed. All four lanes are processed at once.
func (s Cards) DistinctPlays(played Cards) Cards {
	always := s & (Nines | Chargeable)
	magic := uint64(s &^ always)
	blocks := magic | uint64(played)
	for range 11 {
		magic = (magic | magic>>1) & blocks
	}
	magic += ^magic<<1 | 0x0001_0001_0001_0001
	return always | s&Cards(magic>>1)
}

// String renders the set as ranks high to low followed by the suit letter,
// one group per suit, spades first: "AQ9S TH JD".
func (s Cards) String() string {
	var b strings.Builder
	prev := Suit(0xFF)
	for c := range s.All() {
		if c.Suit() != prev && prev != 0xFF {
			b.WriteByte(prev.Char())
			b.WriteByte(' ')
		}
		b.WriteByte(c.Rank().Char())
		prev = c.Suit()
	}
	if prev != 0xFF {
		b.WriteByte(prev.Char())
	}
	return b.String()
}

// ParseCards reads the form produced by String. A rank belongs to the nearest
// suit letter to its right; whitespace and commas are ignored.
func ParseCards(text string) (Cards, error) {
	var cards Cards
	suit, haveSuit := Suit(0), false
	for i := len(text) - 1; i >= 0; i-- {
		ch := text[i]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == ',' {
			continue
		}
		if su, ok := suitFromChar(ch); ok {
			suit, haveSuit = su, true
			continue
		}
		r, ok := rankFromChar(ch)
		if !ok {
			return NoCards, fmt.Errorf("parse cards %q: unexpected %q at %d", text, ch, i)
		}
		if !haveSuit {
			return NoCards, fmt.Errorf("parse cards %q: rank %q has no suit", text, ch)
		}
		cards = cards.With(NewCard(r, suit))
	}
	return cards, nil
}

// MustParseCards is ParseCards for literals; it panics on malformed input.
func MustParseCards(text string) Cards {
	c, err := ParseCards(text)
	if err != nil {
		panic(err)
	}
	return c
}
