package engine

import (
	"fmt"
	"strings"
)

// ChargingRules selects how charging proceeds.
//
//   - Free rules (Classic, Blind) let every seat charge in any order.
//   - Bridge and chain rules go around the table starting from a fixed seat.
//   - Chain rules reopen charging for everyone after each charge.
//   - Blind rules hide charged cards until charging ends.
type ChargingRules uint8

const (
	Classic ChargingRules = iota
	Blind
	Bridge
	BlindBridge
	Chain
	BlindChain
)

const numChargingRules = 6

var chargingRuleNames = [numChargingRules]string{
	"classic", "blind", "bridge", "blind_bridge", "chain", "blind_chain",
}

// Valid reports whether r is a known rules variant.
func (r ChargingRules) Valid() bool { return r < numChargingRules }

// Free reports whether charges may come from any seat in any order.
func (r ChargingRules) Free() bool { return r == Classic || r == Blind }

// Chain reports whether a charge reopens charging for the other seats.
func (r ChargingRules) Chain() bool { return r == Chain || r == BlindChain }

// Blind reports whether charges stay hidden until charging completes.
func (r ChargingRules) Blind() bool { return r == Blind || r == BlindBridge || r == BlindChain }

func (r ChargingRules) String() string {
	if !r.Valid() {
		return fmt.Sprintf("ChargingRules(%d)", uint8(r))
	}
	return chargingRuleNames[r]
}

// ParseChargingRules accepts the names produced by String.
func ParseChargingRules(text string) (ChargingRules, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	for i, n := range chargingRuleNames {
		if n == name {
			return ChargingRules(i), nil
		}
	}
	return Classic, fmt.Errorf("parse charging rules %q: unknown rules", text)
}

// PassDirection is the direction cards travel before a hand. A game plays
// one hand in each direction, in order.
type PassDirection uint8

const (
	PassLeft PassDirection = iota
	PassRight
	PassAcross
	PassKeeper
)

var passDirectionNames = [4]string{"left", "right", "across", "keeper"}

// Valid reports whether d is one of the four directions.
func (d PassDirection) Valid() bool { return d <= PassKeeper }

// Next returns the direction of the following hand; ok is false after the
// keeper hand, which ends the game.
func (d PassDirection) Next() (next PassDirection, ok bool) {
	if d >= PassKeeper {
		return PassKeeper, false
	}
	return d + 1, true
}

// Receiver returns the seat that receives seat's pass. Keeper passes are
// pooled, so the seat itself is returned.
func (d PassDirection) Receiver(seat Seat) Seat {
	switch d {
	case PassLeft:
		return seat.Left()
	case PassRight:
		return seat.Right()
	case PassAcross:
		return seat.Across()
	}
	return seat
}

// Sender returns the seat whose pass seat receives.
func (d PassDirection) Sender(seat Seat) Seat {
	switch d {
	case PassLeft:
		return seat.Right()
	case PassRight:
		return seat.Left()
	case PassAcross:
		return seat.Across()
	}
	return seat
}

func (d PassDirection) String() string {
	if !d.Valid() {
		return fmt.Sprintf("PassDirection(%d)", uint8(d))
	}
	return passDirectionNames[d]
}

// ParsePassDirection accepts the names produced by String.
func ParsePassDirection(text string) (PassDirection, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	for i, n := range passDirectionNames {
		if n == name {
			return PassDirection(i), nil
		}
	}
	return PassLeft, fmt.Errorf("parse pass direction %q: unknown direction", text)
}
