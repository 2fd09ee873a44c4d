package engine

// Apply advances the state by one event. Apply never fails: callers check
// requests with the Verify methods before building events from them.
func (g *GameState) Apply(event GameEvent) {
	switch e := event.(type) {
	case Sit:
		g.Rules = e.Rules
	case Deal:
		g.deal()
	case SendPass:
		g.Done = g.Done.SendPass(e.From)
	case RecvPass:
		g.recvPass(e.To)
	case BlindCharge:
		g.ChargeCount += uint8(e.Count)
		g.charge(e.Seat, e.Count)
	case Charge:
		g.ChargeCount += uint8(e.Cards.Len())
		g.Charges = g.Charges.Charge(e.Seat, e.Cards)
		g.charge(e.Seat, e.Cards.Len())
	case RevealCharges:
		for _, s := range AllSeats {
			g.Charges = g.Charges.Charge(s, e.Charges[s])
		}
	case Play:
		g.play(e.Seat, e.Card)
	case Claim:
		g.Claims = g.Claims.Claim(e.Seat)
	case AcceptClaim:
		g.acceptClaim(e.Claimer, e.Acceptor)
	case RejectClaim:
		g.Claims = g.Claims.Reject(e.Claimer)
	}
}

// deal resets the per-hand state. The phase is left alone: it already names
// the new hand.
func (g *GameState) deal() {
	g.ChargeCount = 0
	g.Charges = 0
	g.NextActor = g.Phase.FirstCharger(g.Rules)
	g.Played = NoCards
	g.Claims = 0
	g.Won = 0
	g.LedSuits = NoSuits
	g.CurrentTrick = EmptyTrick
}

func (g *GameState) recvPass(to Seat) {
	g.Done = g.Done.RecvPass(to)
	if g.Done.AllRecvPass() {
		g.advance()
		g.NextActor = g.Phase.FirstCharger(g.Rules)
	}
}

// charge records that seat acted during charging with count cards.
func (g *GameState) charge(seat Seat, count int) {
	if g.NextActor != NoSeat {
		g.NextActor = g.NextActor.Left()
	}
	if count == 0 {
		g.Done = g.Done.Charge(seat)
		if g.Done.AllCharge() {
			g.advance()
			g.NextActor = NoSeat
		}
		return
	}
	// A charge gives everyone who already declined another chance. Under
	// chain rules that includes the charger.
	g.Done = 0
	if !g.Rules.Chain() {
		g.Done = g.Done.Charge(seat)
	}
}

func (g *GameState) play(seat Seat, card Card) {
	g.Played = g.Played.With(card)
	g.CurrentTrick = g.CurrentTrick.Push(card)
	g.NextActor = seat.Left()
	if !g.CurrentTrick.IsComplete() && g.Played != AllCards {
		return
	}
	g.LedSuits = g.LedSuits.With(g.CurrentTrick.Suit())
	winner := g.CurrentTrick.WinningSeat(seat.Left())
	g.Won = g.Won.Win(winner, g.CurrentTrick.Cards())
	g.CurrentTrick = EmptyTrick
	g.NextActor = winner
	if g.Played == AllCards {
		g.advance()
	}
}

func (g *GameState) acceptClaim(claimer, acceptor Seat) {
	g.Claims = g.Claims.Accept(claimer, acceptor)
	if !g.Claims.SuccessfullyClaimed(claimer) {
		return
	}
	g.Won = g.Won.Win(claimer, g.Unplayed()|g.CurrentTrick.Cards())
	g.Played = AllCards
	g.CurrentTrick = EmptyTrick
	g.advance()
	g.NextActor = NoSeat
}

// advance moves to the next phase and clears the completion flags.
func (g *GameState) advance() {
	g.Phase = g.Phase.Next(g.ChargeCount != 0)
	g.Done = 0
}
