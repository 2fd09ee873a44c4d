package solver

import (
	"testing"

	engine "github.com/tjwilson90/turbo-hearts-sub000/engine"
)

func spadeHands(north, east string) [engine.NumSeats]engine.Cards {
	var hands [engine.NumSeats]engine.Cards
	hands[engine.North] = engine.MustParseCards(north)
	hands[engine.East] = engine.MustParseCards(east)
	hands[engine.South] = engine.AllCards &^ engine.AllSpades
	return hands
}

func TestClassMergesInterchangeableCards(t *testing.T) {
	table := NewTable(spadeHands("AKQJT98765432S", ""))
	tests := []struct {
		a, b string
		same bool
	}{
		{"7S", "8S", true},
		{"AS", "KS", true},
		{"76S", "83S", true},
		{"2S", "AS", false},
		{"8S", "9S", false},
		{"KS", "QS", false},
		{"7S", "76S", false},
	}
	for _, tt := range tests {
		a := table.Class(engine.Spades, engine.MustParseCards(tt.a))
		b := table.Class(engine.Spades, engine.MustParseCards(tt.b))
		if (a == b) != tt.same {
			t.Errorf("Class(%s)=%d, Class(%s)=%d, want same=%v", tt.a, a, tt.b, b, tt.same)
		}
	}
}

func TestClassTracksOwnership(t *testing.T) {
	table := NewTable(spadeHands("AKQJT987652S", "43S"))
	class := func(played string) uint16 {
		return table.Class(engine.Spades, engine.MustParseCards(played))
	}
	if class("5S") == class("4S") {
		t.Errorf("north 5S and east 4S share class %d", class("5S"))
	}
	if class("4S") != class("3S") {
		t.Errorf("east 4S and 3S have classes %d and %d", class("4S"), class("3S"))
	}
	if class("8S") != class("5S") {
		t.Errorf("north 8S and 5S have classes %d and %d", class("8S"), class("5S"))
	}
}

func TestClassIsFirstIndex(t *testing.T) {
	table := NewTable(spadeHands("AKQJT98765432S", ""))
	if c := table.Class(engine.Spades, engine.NoCards); c != 0 {
		t.Errorf("Class(empty) = %d, want 0", c)
	}
	// 2S is index 1, the lowest card of the run 8S-2S.
	if c := table.Class(engine.Spades, engine.MustParseCards("6S")); c != 1 {
		t.Errorf("Class(6S) = %d, want 1", c)
	}
	if c := table.Class(engine.Clubs, engine.MustParseCards("5C")); c != 1 {
		t.Errorf("Class(5C) = %d, want 1", c)
	}
}

func TestKeyIgnoresInterchangeablePlayed(t *testing.T) {
	table := NewTable(spadeHands("AKQJT98765432S", ""))
	a := engine.NewGameState()
	a.NextActor = engine.North
	b := a
	a.Played = engine.MustParseCards("5S 3C")
	b.Played = engine.MustParseCards("6S 4C")
	if table.Key(&a) != table.Key(&b) {
		t.Errorf("keys differ: %+v vs %+v", table.Key(&a), table.Key(&b))
	}
	b.NextActor = engine.East
	if table.Key(&a) == table.Key(&b) {
		t.Error("keys ignore the leader")
	}
	table.Store(table.Key(&a), engine.WonState(7))
	if won, ok := table.Lookup(table.Key(&a)); !ok || won != 7 {
		t.Errorf("Lookup = %v, %v", won, ok)
	}
	if table.Len() != 1 {
		t.Errorf("Len = %d, want 1", table.Len())
	}
}
