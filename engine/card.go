// Package engine implements the turbo hearts rules.
//
// Every piece of game state is a small fixed-width value: a card is a byte,
// a set of cards is a 64-bit board with one 16-bit lane per suit, and the
// per-seat bookkeeping (charges, claims, completion flags, captured points)
// is packed into integers with accessor methods. GameState is a flat value
// type, so search code copies it for every branch instead of undoing moves.
package engine

import "fmt"

// Suit of a card. Suits order clubs < diamonds < hearts < spades.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in the deck.
const NumSuits = 4

const suitChars = "CDHS"

// AllSuits lists every suit in ascending order.
var AllSuits = [NumSuits]Suit{Clubs, Diamonds, Hearts, Spades}

// Valid reports whether s names one of the four suits.
func (s Suit) Valid() bool { return s < NumSuits }

// Cards returns all thirteen cards of the suit.
func (s Suit) Cards() Cards { return Cards(0x1fff) << (16 * uint(s&3)) }

// With returns the card of this suit with the given rank.
func (s Suit) With(r Rank) Card { return NewCard(r, s) }

// Char returns the single-letter form of the suit.
func (s Suit) Char() byte {
	if !s.Valid() {
		return '?'
	}
	return suitChars[s]
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

func suitFromChar(c byte) (Suit, bool) {
	switch c {
	case 'C', 'c':
		return Clubs, true
	case 'D', 'd':
		return Diamonds, true
	case 'H', 'h':
		return Hearts, true
	case 'S', 's':
		return Spades, true
	}
	return 0, false
}

// Rank of a card, two lowest and ace highest.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of ranks per suit.
const NumRanks = 13

const rankChars = "23456789TJQKA"

// Valid reports whether r names one of the thirteen ranks.
func (r Rank) Valid() bool { return r < NumRanks }

// Char returns the single-character form of the rank.
func (r Rank) Char() byte {
	if !r.Valid() {
		return '?'
	}
	return rankChars[r]
}

func (r Rank) String() string { return string(r.Char()) }

func rankFromChar(c byte) (Rank, bool) {
	if c >= '2' && c <= '9' {
		return Rank(c - '2'), true
	}
	switch c {
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	case 'A', 'a':
		return Ace, true
	}
	return 0, false
}

// Card is packed as suit*16 + rank. The gaps between suits keep every suit
// on its own 16-bit lane of a Cards board.
type Card uint8

// NoCard is returned where a card is absent.
const NoCard Card = 0xFF

const (
	TwoClubs Card = iota
	ThreeClubs
	FourClubs
	FiveClubs
	SixClubs
	SevenClubs
	EightClubs
	NineClubs
	TenClubs
	JackClubs
	QueenClubs
	KingClubs
	AceClubs
)

const (
	TwoDiamonds Card = iota + 16
	ThreeDiamonds
	FourDiamonds
	FiveDiamonds
	SixDiamonds
	SevenDiamonds
	EightDiamonds
	NineDiamonds
	TenDiamonds
	JackDiamonds
	QueenDiamonds
	KingDiamonds
	AceDiamonds
)

const (
	TwoHearts Card = iota + 32
	ThreeHearts
	FourHearts
	FiveHearts
	SixHearts
	SevenHearts
	EightHearts
	NineHearts
	TenHearts
	JackHearts
	QueenHearts
	KingHearts
	AceHearts
)

const (
	TwoSpades Card = iota + 48
	ThreeSpades
	FourSpades
	FiveSpades
	SixSpades
	SevenSpades
	EightSpades
	NineSpades
	TenSpades
	JackSpades
	QueenSpades
	KingSpades
	AceSpades
)

// NewCard constructs a Card from rank and suit.
func NewCard(r Rank, s Suit) Card {
	return Card(uint8(s&3)<<4 | uint8(r))
}

// Valid reports whether c is one of the 52 cards.
func (c Card) Valid() bool { return c < 64 && c.Rank().Valid() }

// Suit returns the suit bits (upper nibble).
func (c Card) Suit() Suit { return Suit(c >> 4) }

// Rank returns the rank bits (lower nibble).
func (c Card) Rank() Rank { return Rank(c & 0x0F) }

// Bit returns the single-card set {c}.
func (c Card) Bit() Cards { return Cards(1) << uint(c&63) }

// Above returns the cards of c's suit that outrank c.
func (c Card) Above() Cards {
	bit := uint64(c.Bit())
	return c.Suit().Cards() &^ Cards(2*bit-1)
}

// Below returns the cards of c's suit that c outranks.
func (c Card) Below() Cards {
	bit := uint64(c.Bit())
	return c.Suit().Cards() & Cards(bit-1)
}

func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{c.Rank().Char(), c.Suit().Char()})
}

// ParseCard parses the two-character form produced by Card.String.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return NoCard, fmt.Errorf("parse card %q: want rank and suit", s)
	}
	r, ok := rankFromChar(s[0])
	if !ok {
		return NoCard, fmt.Errorf("parse card %q: unknown rank %q", s, s[0])
	}
	suit, ok := suitFromChar(s[1])
	if !ok {
		return NoCard, fmt.Errorf("parse card %q: unknown suit %q", s, s[1])
	}
	return NewCard(r, suit), nil
}

// MustParseCard is ParseCard for literals; it panics on malformed input.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}
