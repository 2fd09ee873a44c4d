// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
	engine "github.com/tjwilson90/turbo-hearts-sub000/engine"
)

// SeatView is one seat's public state, plus its hand when the view belongs to
// that seat.
type SeatView struct {
	Seat     string `json:"seat"`
	HandSize int    `json:"handSize"`
	Hand     string `json:"hand,omitempty"`
	Charged  string `json:"charged,omitempty"`
	Claiming bool   `json:"claiming"`
	Hearts   int    `json:"hearts"`
	Queen    bool   `json:"queen"`
	Jack     bool   `json:"jack"`
	Ten      bool   `json:"ten"`
}

// View is the table as one observer may see it.
type View struct {
	GameID    uuid.UUID  `json:"gameId"`
	Rules     string     `json:"rules"`
	Phase     string     `json:"phase"`
	NextActor string     `json:"nextActor,omitempty"`
	Trick     string     `json:"trick,omitempty"`
	Played    int        `json:"played"`
	LedSuits  string     `json:"ledSuits,omitempty"`
	Seats     []SeatView `json:"seats"`
	Results   [][]int    `json:"results,omitempty"` // scores of finished hands
}

// View returns the table as seen by forSeat. Pass engine.NoSeat for a
// spectator, who sees no hands.
func (t *Table) View(forSeat engine.Seat) View {
	t.Mu.Lock()
	defer t.Mu.Unlock()

	s := &t.state
	v := View{
		GameID:   t.ID,
		Rules:    s.Rules.String(),
		Phase:    s.Phase.String(),
		Played:   s.Played.Len(),
		LedSuits: s.LedSuits.String(),
		Seats:    make([]SeatView, 0, engine.NumSeats),
	}
	if next := t.toPlay(); next != engine.NoSeat {
		v.NextActor = next.String()
	} else if s.NextActor != engine.NoSeat {
		v.NextActor = s.NextActor.String()
	}
	if !s.CurrentTrick.IsEmpty() {
		v.Trick = s.CurrentTrick.String()
	}
	for _, seat := range engine.AllSeats {
		sv := SeatView{
			Seat:     seat.String(),
			HandSize: t.hands[seat].Len(),
			Charged:  s.Charges.Charges(seat).String(),
			Claiming: s.Claims.IsClaiming(seat),
			Hearts:   s.Won.Hearts(seat),
			Queen:    s.Won.Queen(seat),
			Jack:     s.Won.Jack(seat),
			Ten:      s.Won.Ten(seat),
		}
		// Claimers show their hands to everyone.
		if seat == forSeat || sv.Claiming {
			sv.Hand = t.hands[seat].String()
		}
		v.Seats = append(v.Seats, sv)
	}
	for _, r := range t.results {
		v.Results = append(v.Results, r[:])
	}
	return v
}
