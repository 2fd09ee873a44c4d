package solver

import engine "github.com/tjwilson90/turbo-hearts-sub000/engine"

// suitBits is the number of cards per suit; a suit's played cards index its
// class table directly.
const suitBits = engine.NumRanks

// Key identifies a position at the start of a trick up to relabelling of
// interchangeable cards.
type Key struct {
	Leader  engine.Seat
	Leads   engine.Suits
	Won     engine.WonState
	Classes [engine.NumSuits]uint16
}

// Table caches solved won-states for one deal. It must not be shared between
// deals: the class tables are derived from the deal's hands.
type Table struct {
	classes [engine.NumSuits][]uint16
	entries map[Key]engine.WonState
}

// NewTable precomputes the per-suit classes for hands.
func NewTable(hands [engine.NumSeats]engine.Cards) *Table {
	t := &Table{entries: make(map[Key]engine.WonState)}
	for _, suit := range engine.AllSuits {
		t.classes[suit] = suitClasses(suit, hands)
	}
	return t
}

// Class returns the canonical class of the given played cards within suit.
func (t *Table) Class(suit engine.Suit, played engine.Cards) uint16 {
	index := uint64(played.Suit(suit)) >> (16 * uint(suit))
	return t.classes[suit][index]
}

// Key builds the key of g, which must be at the start of a trick.
func (t *Table) Key(g *engine.GameState) Key {
	k := Key{Leader: g.NextActor, Leads: g.LedSuits, Won: g.Won}
	for _, suit := range engine.AllSuits {
		k.Classes[suit] = t.Class(suit, g.Played)
	}
	return k
}

// Lookup returns the cached result for k.
func (t *Table) Lookup(k Key) (engine.WonState, bool) {
	won, ok := t.entries[k]
	return won, ok
}

// Store caches the result for k.
func (t *Table) Store(k Key, won engine.WonState) { t.entries[k] = won }

// Len returns the number of cached positions.
func (t *Table) Len() int { return len(t.entries) }

// Card categories within a suit signature. Chargeable cards and nines change
// trick outcomes on their own, so they never stand in for other cards.
const (
	categoryOther uint8 = iota
	categoryNine
	categoryChargeable
)

// signature lists, highest card first, the category and owner of every card
// of a suit still held. Slot 0 holds the count.
type signature [suitBits + 1]uint8

func suitSignature(suit engine.Suit, hands [engine.NumSeats]engine.Cards) signature {
	var sig signature
	for card := range suit.Cards().All() {
		owner := engine.NoSeat
		for _, s := range engine.AllSeats {
			if hands[s].Contains(card) {
				owner = s
				break
			}
		}
		if owner == engine.NoSeat {
			continue
		}
		category := categoryOther
		switch {
		case engine.Chargeable.Contains(card):
			category = categoryChargeable
		case card.Rank() == engine.Nine:
			category = categoryNine
		}
		sig[0]++
		sig[sig[0]] = category<<2 | uint8(owner)
	}
	return sig
}

// suitClasses maps each of the 2^13 played subsets of suit to the first
// subset with the same signature.
func suitClasses(suit engine.Suit, hands [engine.NumSeats]engine.Cards) []uint16 {
	const size = 1 << suitBits
	classes := make([]uint16, size)
	first := make(map[signature]uint16, size)
	for i := range size {
		played := engine.Cards(uint64(i) << (16 * uint(suit)))
		var partial [engine.NumSeats]engine.Cards
		for s, h := range hands {
			partial[s] = h &^ played
		}
		sig := suitSignature(suit, partial)
		class, ok := first[sig]
		if !ok {
			class = uint16(i)
			first[sig] = class
		}
		classes[i] = class
	}
	return classes
}
