package engine

import (
	"errors"
	"fmt"
	"testing"
)

// playState returns a state in the first play phase with the given cards
// played and the trick holding the given cards in order.
func playState(t *testing.T, played string, trick ...Card) GameState {
	t.Helper()
	g := NewGameState()
	g.Phase = PhasePlayLeft
	g.NextActor = North
	g.Played = mustCards(t, played)
	for _, c := range trick {
		g.Played = g.Played.With(c)
		g.CurrentTrick = g.CurrentTrick.Push(c)
	}
	return g
}

func TestLegalPlays(t *testing.T) {
	allLed := NoSuits.With(Clubs).With(Diamonds).With(Hearts).With(Spades)
	tests := []struct {
		name    string
		played  string
		trick   []Card
		led     Suits
		charged Cards
		hand    string
		want    string
	}{
		{name: "two of clubs leads", hand: "AS 2C 3C", want: "2C"},
		{name: "no points on first trick", trick: []Card{TwoClubs}, hand: "KH QS 5D", want: "5D"},
		{name: "jack before queen", trick: []Card{TwoClubs}, hand: "QS JD 5H", want: "JD"},
		{name: "queen when only points", trick: []Card{TwoClubs}, hand: "QS 5H 4H", want: "QS"},
		{name: "hearts only on first trick", trick: []Card{TwoClubs}, hand: "5H 4H", want: "5H 4H"},
		{name: "follow suit", trick: []Card{TwoClubs}, hand: "KC 4C 5D", want: "KC 4C"},
		{name: "hearts not broken", played: "2C 3C 4C 5C", led: NoSuits.With(Clubs), hand: "AH 6C", want: "6C"},
		{name: "only hearts left", played: "2C 3C 4C 5C", led: NoSuits.With(Clubs), hand: "AH 5H", want: "AH 5H"},
		{name: "hearts broken", played: "2C 3C 4C 5H", led: NoSuits.With(Clubs), hand: "AH 6C", want: "AH 6C"},
		{name: "charged lead waits", played: "2C 3C 4C 5C", led: NoSuits.With(Clubs), charged: QueenSpades.Bit(), hand: "QS 3S 6C", want: "3S 6C"},
		{name: "charged lead after suit led", played: "2C 3C 4C 5C 2S 3S 4S 5S", led: allLed, charged: QueenSpades.Bit(), hand: "QS 6S", want: "QS 6S"},
		{name: "only charged cards", played: "2C 3C 4C 5C", led: NoSuits.With(Clubs), charged: CardsOf(QueenSpades, JackDiamonds), hand: "QS JD", want: "QS JD"},
		{name: "charged follow waits", played: "2C 3C 4C 5C", trick: []Card{FourSpades}, led: NoSuits.With(Clubs), charged: QueenSpades.Bit(), hand: "QS 3S", want: "3S"},
		{name: "charged follow alone", played: "2C 3C 4C 5C", trick: []Card{FourSpades}, led: NoSuits.With(Clubs), charged: QueenSpades.Bit(), hand: "QS 3H", want: "QS"},
		{name: "void sloughs anything", played: "2C 3C 4C 5C", trick: []Card{FourSpades}, led: NoSuits.With(Clubs), charged: QueenSpades.Bit(), hand: "AH TC", want: "AH TC"},
		{name: "already played ignored", played: "2C 3C 4C 5C KC", led: NoSuits.With(Clubs), hand: "KC 6C", want: "6C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := playState(t, tt.played, tt.trick...)
			g.LedSuits = tt.led
			g.Charges = g.Charges.Charge(East, tt.charged)
			hand := mustCards(t, tt.hand)
			want := mustCards(t, tt.want)
			if got := g.LegalPlays(hand); got != want {
				t.Fatalf("LegalPlays(%s) = %s, want %s", hand, got, want)
			}
			for c := range hand.All() {
				err := g.VerifyPlay(North, hand, c)
				if (err == nil) != want.Contains(c) {
					t.Errorf("VerifyPlay(%s) = %v, legal %v", c, err, want.Contains(c))
				}
			}
		})
	}
}

func TestVerifyPlayErrors(t *testing.T) {
	firstLead := playState(t, "")
	firstLead.NextActor = NoSeat
	firstTrick := playState(t, "", TwoClubs)
	clubsLed := playState(t, "2C 3C 4C 5C", SixClubs)
	clubsLed.LedSuits = NoSuits.With(Clubs)
	unbroken := playState(t, "2C 3C 4C 5C")
	unbroken.LedSuits = NoSuits.With(Clubs)
	charged := unbroken
	charged.Charges = charged.Charges.Charge(West, JackDiamonds.Bit())
	passing := NewGameState()
	complete := NewGameState()
	complete.Phase = PhaseComplete

	tests := []struct {
		name string
		g    GameState
		seat Seat
		hand string
		card Card
		want error
	}{
		{"complete", complete, North, "AS", AceSpades, ErrGameComplete},
		{"passing", passing, North, "AS", AceSpades, ErrIllegalAction},
		{"not held", clubsLed, North, "AS", KingSpades, ErrNotYourCards},
		{"already played", clubsLed, North, "AS 5C", FiveClubs, ErrNotYourCards},
		{"wrong seat", clubsLed, East, "AS", AceSpades, ErrNotYourTurn},
		{"opening without two", firstLead, West, "AS", AceSpades, ErrNotYourTurn},
		{"two of clubs first", firstLead, North, "AS 2C", AceSpades, ErrMustPlayTwoOfClubs},
		{"points on first trick", firstTrick, North, "AH 6D", AceHearts, ErrNoPointsOnFirstTrick},
		{"jack first", firstTrick, North, "JD QS", QueenSpades, ErrMustPlayJackOfDiamonds},
		{"queen first", firstTrick, North, "QS AH", AceHearts, ErrMustPlayQueenOfSpades},
		{"follow suit", clubsLed, North, "KC AS", AceSpades, ErrMustFollowSuit},
		{"hearts not broken", unbroken, North, "AH KS", AceHearts, ErrHeartsNotBroken},
		{"charged lead", charged, North, "JD 3D", JackDiamonds, ErrNoChargeOnFirstTrickOfSuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.VerifyPlay(tt.seat, mustCards(t, tt.hand), tt.card)
			if !errors.Is(err, tt.want) {
				t.Fatalf("VerifyPlay = %v, want %v", err, tt.want)
			}
			var re *RuleError
			if !errors.As(err, &re) || re.Action != "play" || re.Phase != tt.g.Phase {
				t.Errorf("error %v lacks details", err)
			}
		})
	}
}

func TestVerifyPassAndCharge(t *testing.T) {
	g := NewGameState()
	hand := mustCards(t, "AKQJT98765432S")
	if err := g.VerifyPass(North, hand, mustCards(t, "AKS")); !errors.Is(err, ErrIllegalPassSize) {
		t.Errorf("short pass: got %v", err)
	}
	if err := g.VerifyPass(North, hand, mustCards(t, "AKS 2H")); !errors.Is(err, ErrNotYourCards) {
		t.Errorf("foreign pass: got %v", err)
	}
	if err := g.VerifyCharge(North, hand, QueenSpades.Bit()); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("charge while passing: got %v", err)
	}

	g.Phase = PhaseChargeLeft
	if err := g.VerifyCharge(North, hand, KingSpades.Bit()); !errors.Is(err, ErrUnchargeable) {
		t.Errorf("charge KS: got %v", err)
	}
	if err := g.VerifyCharge(North, hand, QueenSpades.Bit()); err != nil {
		t.Errorf("charge QS: %v", err)
	}
	if err := g.VerifyPass(North, hand, mustCards(t, "AKQS")); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("pass while charging: got %v", err)
	}
	if err := g.VerifyClaim(North); !errors.Is(err, ErrIllegalAction) {
		t.Errorf("claim while charging: got %v", err)
	}
}

// TestVerifyMatchesLegalPlays plays random games and checks that VerifyPlay
// accepts exactly the legal plays of the seat to act.
func TestVerifyMatchesLegalPlays(t *testing.T) {
	for i := range 20 {
		dealer := NewDealer(fmt.Sprintf("verify-%d", i))
		hands := dealer.Deal(PassAcross).Hands
		r := dealer.stream(7)

		g := NewGameState()
		g.Phase = PhasePlayAcross
		if i%2 == 1 {
			g.Charges = g.Charges.Charge(North, Chargeable)
		}
		for g.Phase == PhasePlayAcross {
			seat := g.NextActor
			if seat == NoSeat {
				seat = twoClubsHolder(hands)
			}
			legal := g.LegalPlays(hands[seat])
			for c := range (hands[seat] &^ g.Played).All() {
				err := g.VerifyPlay(seat, hands[seat], c)
				if (err == nil) != legal.Contains(c) {
					t.Fatalf("deal %d: VerifyPlay(%s, %s) = %v, legal %s", i, seat, c, err, legal)
				}
			}
			other := seat.Left()
			for c := range (hands[other] &^ g.Played).All() {
				if err := g.VerifyPlay(other, hands[other], c); !errors.Is(err, ErrNotYourTurn) {
					t.Fatalf("deal %d: %s playing %s out of turn: %v", i, other, c, err)
				}
			}
			plays := legal.Slice()
			g.Apply(Play{Seat: seat, Card: plays[r.intn(len(plays))]})
		}
		if g.Played != AllCards {
			t.Errorf("deal %d: hand ended with %d cards played", i, g.Played.Len())
		}
	}
}
