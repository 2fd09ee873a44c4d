package engine

// DoneState holds per-seat completion flags for the current phase. The low
// nibble means "sent pass" while passing and "done charging" while charging;
// the high nibble means "received pass".
type DoneState uint8

func seatBit(seat Seat) DoneState { return 1 << (seat & 3) }

// SendPass marks seat as having sent its pass.
func (d DoneState) SendPass(seat Seat) DoneState { return d | seatBit(seat) }

// SentPass reports whether seat has sent its pass.
func (d DoneState) SentPass(seat Seat) bool { return d&seatBit(seat) != 0 }

// RecvPass marks seat as having received its pass.
func (d DoneState) RecvPass(seat Seat) DoneState { return d | seatBit(seat)<<4 }

// ReceivedPass reports whether seat has received its pass.
func (d DoneState) ReceivedPass(seat Seat) bool { return d&(seatBit(seat)<<4) != 0 }

// AllRecvPass reports whether every seat has received a pass.
func (d DoneState) AllRecvPass() bool { return d&0xf0 == 0xf0 }

// Charge marks seat as done charging.
func (d DoneState) Charge(seat Seat) DoneState { return d | seatBit(seat) }

// Charged reports whether seat is done charging.
func (d DoneState) Charged(seat Seat) bool { return d&seatBit(seat) != 0 }

// AllCharge reports whether every seat is done charging.
func (d DoneState) AllCharge() bool { return d&0x0f == 0x0f }
