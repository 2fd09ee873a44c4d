package engine

// Scores holds each seat's hand score, indexed by Seat. Lower is better.
type Scores [NumSeats]int

// Score returns seat's score.
func (s Scores) Score(seat Seat) int { return s[seat&3] }

// Total returns the sum of all four scores.
func (s Scores) Total() int { return s[0] + s[1] + s[2] + s[3] }

// Money returns what seat collects when every seat settles with every other:
// the opponents' scores minus three times seat's own.
func (s Scores) Money(seat Seat) int { return s.Total() - 4*s[seat&3] }

// Scores returns the current scores of the hand.
func (g *GameState) Scores() Scores { return g.Won.Scores(g.Charges) }
