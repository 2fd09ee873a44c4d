package engine

import "fmt"

// GamePhase is a step of the game. Each hand passes, charges and plays; the
// keeper hand charges first and only passes when nobody charged.
type GamePhase uint8

const (
	PhasePassLeft GamePhase = iota
	PhaseChargeLeft
	PhasePlayLeft
	PhasePassRight
	PhaseChargeRight
	PhasePlayRight
	PhasePassAcross
	PhaseChargeAcross
	PhasePlayAcross
	PhaseChargeKeeper1
	PhasePassKeeper
	PhaseChargeKeeper2
	PhasePlayKeeper
	PhaseComplete
)

var phaseNames = [...]string{
	"pass_left", "charge_left", "play_left",
	"pass_right", "charge_right", "play_right",
	"pass_across", "charge_across", "play_across",
	"charge_keeper_1", "pass_keeper", "charge_keeper_2", "play_keeper",
	"complete",
}

// Valid reports whether p is a known phase.
func (p GamePhase) Valid() bool { return p <= PhaseComplete }

// Next returns the phase after p. charged tells whether any card was charged
// during the hand; a charge in the first keeper round skips straight to play.
// As played, a keeper-hand charge cancels the keeper pass.
// Next panics on PhaseComplete.
func (p GamePhase) Next(charged bool) GamePhase {
	if p >= PhaseComplete {
		panic("engine: no phase after complete")
	}
	if p == PhaseChargeKeeper1 && charged {
		return PhasePlayKeeper
	}
	return p + 1
}

// IsComplete reports whether the game is over.
func (p GamePhase) IsComplete() bool { return p == PhaseComplete }

// IsPassing reports whether p is a pass phase.
func (p GamePhase) IsPassing() bool {
	switch p {
	case PhasePassLeft, PhasePassRight, PhasePassAcross, PhasePassKeeper:
		return true
	}
	return false
}

// IsCharging reports whether p is a charge phase.
func (p GamePhase) IsCharging() bool {
	switch p {
	case PhaseChargeLeft, PhaseChargeRight, PhaseChargeAcross, PhaseChargeKeeper1, PhaseChargeKeeper2:
		return true
	}
	return false
}

// IsPlaying reports whether p is a play phase.
func (p GamePhase) IsPlaying() bool {
	switch p {
	case PhasePlayLeft, PhasePlayRight, PhasePlayAcross, PhasePlayKeeper:
		return true
	}
	return false
}

// Direction returns the pass direction of p's hand.
func (p GamePhase) Direction() PassDirection {
	switch {
	case p <= PhasePlayLeft:
		return PassLeft
	case p <= PhasePlayRight:
		return PassRight
	case p <= PhasePlayAcross:
		return PassAcross
	}
	return PassKeeper
}

// FirstCharger returns the seat that charges first, or NoSeat under free
// rules. The seat rotates with the hand: north, east, south, then west.
func (p GamePhase) FirstCharger(rules ChargingRules) Seat {
	if rules.Free() {
		return NoSeat
	}
	switch p.Direction() {
	case PassLeft:
		return North
	case PassRight:
		return East
	case PassAcross:
		return South
	}
	return West
}

// PassReceiver returns the seat receiving seat's pass in this hand.
func (p GamePhase) PassReceiver(seat Seat) Seat { return p.Direction().Receiver(seat) }

// PassSender returns the seat whose pass seat receives in this hand.
func (p GamePhase) PassSender(seat Seat) Seat { return p.Direction().Sender(seat) }

// FirstPhase returns the phase that starts the hand passed in d.
func FirstPhase(d PassDirection) GamePhase {
	switch d {
	case PassRight:
		return PhasePassRight
	case PassAcross:
		return PhasePassAcross
	case PassKeeper:
		return PhaseChargeKeeper1
	}
	return PhasePassLeft
}

func (p GamePhase) String() string {
	if !p.Valid() {
		return fmt.Sprintf("GamePhase(%d)", uint8(p))
	}
	return phaseNames[p]
}
