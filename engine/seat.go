package engine

import (
	"fmt"
	"strings"
)

// Seat is a position at the table. Play proceeds clockwise, so a seat's left
// neighbour plays after it.
type Seat uint8

const (
	North Seat = iota
	East
	South
	West
)

// NumSeats is the number of players at a table.
const NumSeats = 4

// NoSeat marks the absence of a seat, e.g. no next actor.
const NoSeat Seat = 0xFF

// AllSeats lists the seats in play order starting at North.
var AllSeats = [NumSeats]Seat{North, East, South, West}

// Valid reports whether s is one of the four seats.
func (s Seat) Valid() bool { return s < NumSeats }

// Left returns the seat that plays after s.
func (s Seat) Left() Seat { return (s + 1) % NumSeats }

// Across returns the seat opposite s.
func (s Seat) Across() Seat { return (s + 2) % NumSeats }

// Right returns the seat that plays before s.
func (s Seat) Right() Seat { return (s + 3) % NumSeats }

func (s Seat) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case NoSeat:
		return "none"
	}
	return fmt.Sprintf("Seat(%d)", uint8(s))
}

// ParseSeat accepts a seat name or its first letter, in any case.
func ParseSeat(text string) (Seat, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return NoSeat, fmt.Errorf("parse seat %q: unknown seat", text)
}
