package engine

import (
	"errors"
	"fmt"
)

// Rule violations. Verify methods return them wrapped in a *RuleError, so
// callers match with errors.Is.
var (
	ErrAlreadyAcceptedClaim       = errors.New("claim already accepted")
	ErrAlreadyCharged             = errors.New("cards already charged")
	ErrAlreadyClaiming            = errors.New("already claiming")
	ErrAlreadyPassed              = errors.New("already passed")
	ErrGameComplete               = errors.New("game is already complete")
	ErrHeartsNotBroken            = errors.New("hearts cannot be led if hearts are not broken")
	ErrIllegalAction              = errors.New("illegal action for the current phase")
	ErrIllegalPassSize            = errors.New("passes must have 3 cards")
	ErrMustPlayTwoOfClubs         = errors.New("the first lead must be the two of clubs")
	ErrMustPlayJackOfDiamonds     = errors.New("holding only points on the first trick, the jack of diamonds must be played")
	ErrMustPlayQueenOfSpades      = errors.New("holding only positive points on the first trick, the queen of spades must be played")
	ErrMustFollowSuit             = errors.New("suit must be followed")
	ErrNoChargeOnFirstTrickOfSuit = errors.New("charged cards cannot be played on the first trick of their suit")
	ErrNoPointsOnFirstTrick       = errors.New("points cannot be played on the first trick")
	ErrNotClaiming                = errors.New("not claiming, or the claim was rejected")
	ErrNotYourCards               = errors.New("cards are not in hand")
	ErrNotYourTurn                = errors.New("not your turn")
	ErrUnchargeable               = errors.New("cards cannot be charged")
)

// RuleError is a rejected request with the details needed to explain it.
type RuleError struct {
	Err    error     // one of the Err* values above
	Action string    // pass, charge, play, claim, accept_claim or reject_claim
	Seat   Seat      // the seat the error is about, NoSeat if none
	Cards  Cards     // the offending cards, if any
	Phase  GamePhase // phase at the time of the request
}

func (e *RuleError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s rejected in %s: %v", e.Action, e.Phase, e.Err)
	if !e.Cards.IsEmpty() {
		msg += " (" + e.Cards.String() + ")"
	}
	if e.Seat != NoSeat {
		msg += " [" + e.Seat.String() + "]"
	}
	return msg
}

func (e *RuleError) Unwrap() error { return e.Err }

func (g *GameState) reject(action string, err error, seat Seat, cards Cards) error {
	return &RuleError{Err: err, Action: action, Seat: seat, Cards: cards, Phase: g.Phase}
}
