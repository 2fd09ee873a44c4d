package engine

import "testing"

func TestDealIsDeterministic(t *testing.T) {
	a := NewDealer("seed").Deal(PassLeft)
	b := NewDealer("seed").Deal(PassLeft)
	if a != b {
		t.Fatal("same seed dealt different hands")
	}
	if c := NewDealer("other seed").Deal(PassLeft); c == a {
		t.Error("different seeds dealt the same hands")
	}
	if d := NewDealer("seed").Deal(PassRight); d.Hands == a.Hands {
		t.Error("directions share a shuffle")
	}
	if a.Pass != PassLeft {
		t.Errorf("Pass = %s", a.Pass)
	}
}

func TestDealPartitionsDeck(t *testing.T) {
	for _, dir := range []PassDirection{PassLeft, PassRight, PassAcross, PassKeeper} {
		deal := NewDealer("partition").Deal(dir)
		var all Cards
		for _, s := range AllSeats {
			h := deal.Hands[s]
			if h.Len() != NumRanks {
				t.Errorf("%s: %s holds %d cards", dir, s, h.Len())
			}
			if all&h != 0 {
				t.Errorf("%s: %s shares cards %s", dir, s, all&h)
			}
			all |= h
		}
		if all != AllCards {
			t.Errorf("%s: missing %s", dir, AllCards&^all)
		}
	}
}

func TestKeeperPass(t *testing.T) {
	dealer := NewDealer("keeper")
	hands := dealer.Deal(PassKeeper).Hands
	var partial [NumSeats]Cards
	var pool Cards
	for _, s := range AllSeats {
		passed := CardsOf(hands[s].Slice()[:3]...)
		partial[s] = hands[s] &^ passed
		pool |= passed
	}
	recv := dealer.KeeperPass(partial)
	var got Cards
	for _, s := range AllSeats {
		r := recv[s]
		if r.To != s || r.Cards.Len() != 3 {
			t.Errorf("%s receives %s", s, r.Cards)
		}
		got |= r.Cards
	}
	if got != pool {
		t.Errorf("redistributed %s, want %s", got, pool)
	}
	if again := dealer.KeeperPass(partial); again != recv {
		t.Error("keeper pass is not deterministic")
	}
}
