// Package solver finds the won-state reached from a position when every seat
// plays to maximise its own money, knowing all four hands.
package solver

import (
	"math"

	engine "github.com/tjwilson90/turbo-hearts-sub000/engine"
)

// Stats counts the work done by a solver.
type Stats struct {
	Nodes   uint64 // positions visited
	Lookups uint64 // transposition table probes
	Hits    uint64 // probes answered from the table
	Entries int    // positions stored
}

// BruteForce searches every distinct line of play. A BruteForce is bound to
// one deal and is not safe for concurrent use.
type BruteForce struct {
	hands [engine.NumSeats]engine.Cards
	table *Table
	stats Stats
}

// New returns a solver for the given post-pass hands. Cards already played
// may be left in the hands.
func New(hands [engine.NumSeats]engine.Cards) *BruteForce {
	return &BruteForce{hands: hands, table: NewTable(hands)}
}

// Stats reports the work done so far.
func (b *BruteForce) Stats() Stats {
	s := b.stats
	s.Entries = b.table.Len()
	return s
}

// Solve returns the final won-state of the hand from state under optimal
// play. state must be in a playing phase with a seat to act and no claims
// pending.
func (b *BruteForce) Solve(state engine.GameState) engine.WonState {
	b.start(&state)
	return b.solve(state)
}

// start fills in the opening leader, which the state leaves undetermined
// until the two of clubs is played.
func (b *BruteForce) start(g *engine.GameState) {
	if g.NextActor != engine.NoSeat {
		return
	}
	for _, s := range engine.AllSeats {
		if (b.hands[s] &^ g.Played).Contains(engine.TwoClubs) {
			g.NextActor = s
		}
	}
}

// BestPlay returns the card the seat to act should play from state and the
// won-state it leads to. Ties go to the highest card.
func (b *BruteForce) BestPlay(state engine.GameState) (engine.Card, engine.WonState) {
	b.stats.Nodes++
	b.start(&state)
	seat := state.NextActor
	if seat == engine.NoSeat {
		return engine.NoCard, state.Won
	}
	plays := state.DistinctLegalPlays(b.hands[seat])
	if plays.IsEmpty() {
		return engine.NoCard, state.Won
	}
	return b.branch(state, seat, plays)
}

func (b *BruteForce) solve(g engine.GameState) engine.WonState {
	b.stats.Nodes++
	if g.Played.Len() >= 48 {
		return b.playOut(g)
	}
	// Every scoring card is already in someone's pile.
	if (g.Played &^ g.CurrentTrick.Cards()).ContainsAll(engine.Scoring) {
		return g.Won
	}
	seat := g.NextActor
	hand := b.hands[seat] &^ g.Played
	if g.CurrentTrick.IsEmpty() && engine.MustClaim(hand, g.Played) {
		return g.Won.Win(seat, g.Unplayed())
	}

	plays := g.DistinctLegalPlays(hand)
	switch plays.Len() {
	case 0:
		panic("solver: " + seat.String() + " has no legal play")
	case 1:
		g.Apply(engine.Play{Seat: seat, Card: plays.Max()})
		return b.solve(g)
	case 2:
		_, won := b.branch(g, seat, plays)
		return won
	}

	if !g.CurrentTrick.IsEmpty() {
		_, won := b.branch(g, seat, plays)
		return won
	}
	key := b.table.Key(&g)
	b.stats.Lookups++
	if won, ok := b.table.Lookup(key); ok {
		b.stats.Hits++
		return won
	}
	_, won := b.branch(g, seat, plays)
	b.table.Store(key, won)
	return won
}

// branch tries each play highest first and keeps the strictly best outcome
// for seat.
func (b *BruteForce) branch(g engine.GameState, seat engine.Seat, plays engine.Cards) (engine.Card, engine.WonState) {
	bestCard := engine.NoCard
	var bestWon engine.WonState
	bestMoney := math.MinInt
	for card := range plays.All() {
		next := g
		next.Apply(engine.Play{Seat: seat, Card: card})
		won := b.solve(next)
		if money := won.Scores(g.Charges).Money(seat); money > bestMoney {
			bestCard, bestWon, bestMoney = card, won, money
		}
	}
	return bestCard, bestWon
}

// playOut finishes a hand in which nobody has a choice left.
func (b *BruteForce) playOut(g engine.GameState) engine.WonState {
	for g.Played != engine.AllCards {
		seat := g.NextActor
		card := (b.hands[seat] &^ g.Played).Max()
		if card == engine.NoCard {
			panic("solver: " + seat.String() + " ran out of cards")
		}
		g.Apply(engine.Play{Seat: seat, Card: card})
	}
	return g.Won
}
