package engine

import "testing"

func TestPhaseNext(t *testing.T) {
	uncharged := []GamePhase{
		PhasePassLeft, PhaseChargeLeft, PhasePlayLeft,
		PhasePassRight, PhaseChargeRight, PhasePlayRight,
		PhasePassAcross, PhaseChargeAcross, PhasePlayAcross,
		PhaseChargeKeeper1, PhasePassKeeper, PhaseChargeKeeper2, PhasePlayKeeper,
		PhaseComplete,
	}
	for i := 0; i+1 < len(uncharged); i++ {
		if got := uncharged[i].Next(false); got != uncharged[i+1] {
			t.Errorf("%s.Next(false) = %s, want %s", uncharged[i], got, uncharged[i+1])
		}
	}
	for _, p := range uncharged[:len(uncharged)-1] {
		want := p.Next(false)
		if p == PhaseChargeKeeper1 {
			want = PhasePlayKeeper
		}
		if got := p.Next(true); got != want {
			t.Errorf("%s.Next(true) = %s, want %s", p, got, want)
		}
	}
}

func TestPhaseNextPanicsWhenComplete(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Next on complete did not panic")
		}
	}()
	PhaseComplete.Next(false)
}

func TestPhaseKinds(t *testing.T) {
	for p := PhasePassLeft; p <= PhaseComplete; p++ {
		kinds := 0
		for _, k := range []bool{p.IsPassing(), p.IsCharging(), p.IsPlaying(), p.IsComplete()} {
			if k {
				kinds++
			}
		}
		if kinds != 1 {
			t.Errorf("%s has %d kinds", p, kinds)
		}
	}
	if PhasePassKeeper.Direction() != PassKeeper || PhasePlayAcross.Direction() != PassAcross {
		t.Error("Direction wrong")
	}
	for _, d := range []PassDirection{PassLeft, PassRight, PassAcross, PassKeeper} {
		if FirstPhase(d).Direction() != d {
			t.Errorf("FirstPhase(%s) = %s", d, FirstPhase(d))
		}
	}
}

func TestFirstCharger(t *testing.T) {
	tests := []struct {
		phase GamePhase
		rules ChargingRules
		want  Seat
	}{
		{PhaseChargeLeft, Classic, NoSeat},
		{PhaseChargeLeft, Blind, NoSeat},
		{PhaseChargeLeft, Bridge, North},
		{PhaseChargeRight, Chain, East},
		{PhaseChargeAcross, BlindBridge, South},
		{PhaseChargeKeeper1, BlindChain, West},
		{PhaseChargeKeeper2, Bridge, West},
	}
	for _, tt := range tests {
		if got := tt.phase.FirstCharger(tt.rules); got != tt.want {
			t.Errorf("%s.FirstCharger(%s) = %s, want %s", tt.phase, tt.rules, got, tt.want)
		}
	}
}

func TestPassDirections(t *testing.T) {
	for _, d := range []PassDirection{PassLeft, PassRight, PassAcross, PassKeeper} {
		for _, s := range AllSeats {
			if d.Sender(d.Receiver(s)) != s {
				t.Errorf("%s: sender of %s's receiver is %s", d, s, d.Sender(d.Receiver(s)))
			}
		}
		got, err := ParsePassDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParsePassDirection(%q) = %s, %v", d.String(), got, err)
		}
	}
	if PassLeft.Receiver(North) != East || PassRight.Receiver(North) != West || PassAcross.Receiver(North) != South {
		t.Error("receivers wrong for north")
	}
	if next, ok := PassAcross.Next(); !ok || next != PassKeeper {
		t.Errorf("PassAcross.Next = %s, %v", next, ok)
	}
	if _, ok := PassKeeper.Next(); ok {
		t.Error("hand after keeper")
	}
}

func TestChargingRules(t *testing.T) {
	for r := Classic; r <= BlindChain; r++ {
		got, err := ParseChargingRules(r.String())
		if err != nil || got != r {
			t.Errorf("ParseChargingRules(%q) = %s, %v", r.String(), got, err)
		}
	}
	if _, err := ParseChargingRules("turbo"); err == nil {
		t.Error("unknown rules parsed")
	}
	if !BlindBridge.Blind() || BlindBridge.Free() || BlindBridge.Chain() {
		t.Error("blind bridge flags wrong")
	}
}
