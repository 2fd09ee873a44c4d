package engine

// GameEvent is one entry of a game's event log. Apply consumes events in log
// order; the set of kinds is closed.
type GameEvent interface {
	// Kind names the event for logs.
	Kind() string
	isGameEvent()
}

// Sit starts a game with the given rules.
type Sit struct {
	Rules ChargingRules
}

// Deal starts a hand.
type Deal struct {
	Hands [NumSeats]Cards
	Pass  PassDirection
}

// SendPass removes a pass from a hand.
type SendPass struct {
	From  Seat
	Cards Cards
}

// RecvPass adds a pass to a hand.
type RecvPass struct {
	To    Seat
	Cards Cards
}

// BlindCharge is a charge whose cards stay hidden until RevealCharges.
type BlindCharge struct {
	Seat  Seat
	Count int
}

// Charge is seat charging cards, or declining when cards is empty.
type Charge struct {
	Seat  Seat
	Cards Cards
}

// RevealCharges discloses blind charges once charging is over.
type RevealCharges struct {
	Charges [NumSeats]Cards
}

// Play is seat playing card to the current trick.
type Play struct {
	Seat Seat
	Card Card
}

// Claim is seat claiming every remaining trick, showing its hand.
type Claim struct {
	Seat Seat
	Hand Cards
}

// AcceptClaim is acceptor agreeing to claimer's claim.
type AcceptClaim struct {
	Claimer  Seat
	Acceptor Seat
}

// RejectClaim is rejector refusing claimer's claim.
type RejectClaim struct {
	Claimer  Seat
	Rejector Seat
}

func (Sit) Kind() string           { return "sit" }
func (Deal) Kind() string          { return "deal" }
func (SendPass) Kind() string      { return "send_pass" }
func (RecvPass) Kind() string      { return "recv_pass" }
func (BlindCharge) Kind() string   { return "blind_charge" }
func (Charge) Kind() string        { return "charge" }
func (RevealCharges) Kind() string { return "reveal_charges" }
func (Play) Kind() string          { return "play" }
func (Claim) Kind() string         { return "claim" }
func (AcceptClaim) Kind() string   { return "accept_claim" }
func (RejectClaim) Kind() string   { return "reject_claim" }

func (Sit) isGameEvent()           {}
func (Deal) isGameEvent()          {}
func (SendPass) isGameEvent()      {}
func (RecvPass) isGameEvent()      {}
func (BlindCharge) isGameEvent()   {}
func (Charge) isGameEvent()        {}
func (RevealCharges) isGameEvent() {}
func (Play) isGameEvent()          {}
func (Claim) isGameEvent()         {}
func (AcceptClaim) isGameEvent()   {}
func (RejectClaim) isGameEvent()   {}
