// internal/game/autoplay.go
package game

import (
	"fmt"

	engine "github.com/tjwilson90/turbo-hearts-sub000/engine"
)

// StopFunc reports whether AutoPlay should hand control back.
type StopFunc func(state engine.GameState) bool

// AtEndgame stops once a trick is about to start with at most unplayed cards
// left in the hand.
func AtEndgame(unplayed int) StopFunc {
	return func(g engine.GameState) bool {
		return g.Phase.IsPlaying() && g.CurrentTrick.IsEmpty() && g.Unplayed().Len() <= unplayed
	}
}

// AutoPlay acts for every seat until stop returns true or the game ends:
// each seat passes its three highest cards, declines to charge and plays its
// highest legal card. Requests go through the same checks as any other.
func (t *Table) AutoPlay(stop StopFunc) error {
	for {
		state := t.State()
		if state.IsComplete() || stop(state) {
			return nil
		}
		var err error
		switch {
		case state.Phase.IsPassing():
			seat := firstSeat(func(s engine.Seat) bool { return !state.Done.SentPass(s) })
			err = t.Pass(seat, engine.CardsOf(t.Hand(seat).Slice()[:3]...))
		case state.Phase.IsCharging():
			seat := state.NextActor
			if seat == engine.NoSeat {
				seat = firstSeat(func(s engine.Seat) bool { return !state.Done.Charged(s) })
			}
			err = t.Charge(seat, engine.NoCards)
		case state.Phase.IsPlaying():
			seat := t.ToPlay()
			err = t.Play(seat, state.LegalPlays(t.Hand(seat)).Max())
		default:
			return fmt.Errorf("auto play: unexpected phase %s", state.Phase)
		}
		if err != nil {
			return fmt.Errorf("auto play: %w", err)
		}
	}
}

func firstSeat(pred func(engine.Seat) bool) engine.Seat {
	for _, s := range engine.AllSeats {
		if pred(s) {
			return s
		}
	}
	return engine.NoSeat
}
