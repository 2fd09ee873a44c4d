package engine

import (
	"encoding/binary"
	"fmt"
)

// EncodedSize is the length of a GameState's binary form.
const EncodedSize = 36

// Binary layout, big-endian:
//
//	 0 rules          1
//	 1 phase          1
//	 2 done           1
//	 3 charge count   1
//	 4 charges        2
//	 6 next actor     1 (0xFF for none)
//	 7 played         8
//	15 claims         2
//	17 won            4
//	21 led suits      1
//	22 current trick  8
//	30 reserved       6 (zero)

// MarshalBinary encodes the state as a fixed-width record.
func (g GameState) MarshalBinary() ([]byte, error) {
	return g.AppendBinary(make([]byte, 0, EncodedSize))
}

// AppendBinary appends the encoded state to b.
func (g GameState) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, byte(g.Rules), byte(g.Phase), byte(g.Done), g.ChargeCount)
	b = binary.BigEndian.AppendUint16(b, uint16(g.Charges))
	b = append(b, byte(g.NextActor))
	b = binary.BigEndian.AppendUint64(b, uint64(g.Played))
	b = binary.BigEndian.AppendUint16(b, uint16(g.Claims))
	b = binary.BigEndian.AppendUint32(b, uint32(g.Won))
	b = append(b, byte(g.LedSuits))
	b = binary.BigEndian.AppendUint64(b, uint64(g.CurrentTrick))
	return append(b, 0, 0, 0, 0, 0, 0), nil
}

// UnmarshalBinary decodes a record written by MarshalBinary.
func (g *GameState) UnmarshalBinary(data []byte) error {
	if len(data) != EncodedSize {
		return fmt.Errorf("decode game state: got %d bytes, want %d", len(data), EncodedSize)
	}
	var s GameState
	s.Rules = ChargingRules(data[0])
	s.Phase = GamePhase(data[1])
	s.Done = DoneState(data[2])
	s.ChargeCount = data[3]
	s.Charges = ChargeState(binary.BigEndian.Uint16(data[4:]))
	s.NextActor = Seat(data[6])
	s.Played = Cards(binary.BigEndian.Uint64(data[7:]))
	s.Claims = ClaimState(binary.BigEndian.Uint16(data[15:]))
	s.Won = WonState(binary.BigEndian.Uint32(data[17:]))
	s.LedSuits = Suits(data[21])
	s.CurrentTrick = Trick(binary.BigEndian.Uint64(data[22:]))

	switch {
	case !s.Rules.Valid():
		return fmt.Errorf("decode game state: invalid rules %d", data[0])
	case !s.Phase.Valid():
		return fmt.Errorf("decode game state: invalid phase %d", data[1])
	case !s.NextActor.Valid() && s.NextActor != NoSeat:
		return fmt.Errorf("decode game state: invalid next actor %d", data[6])
	case s.Played&^AllCards != 0:
		return fmt.Errorf("decode game state: played holds non-card bits %#x", uint64(s.Played&^AllCards))
	case s.LedSuits > 0xf:
		return fmt.Errorf("decode game state: invalid led suits %#x", data[21])
	}
	for _, b := range data[30:] {
		if b != 0 {
			return fmt.Errorf("decode game state: reserved bytes must be zero")
		}
	}
	*g = s
	return nil
}
