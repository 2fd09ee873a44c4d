package engine

// ClaimState records claim acceptances: bit 4*claimer+acceptor is set once
// acceptor has accepted claimer's claim. A claimer accepts its own claim.
type ClaimState uint16

func claimBit(claimer, acceptor Seat) ClaimState {
	return 1 << (4*uint(claimer&3) + uint(acceptor&3))
}

func (c ClaimState) nibble(claimer Seat) ClaimState {
	return c >> (4 * uint(claimer&3)) & 0xf
}

// Claim registers a new claim by seat.
func (c ClaimState) Claim(seat Seat) ClaimState { return c.Accept(seat, seat) }

// Accept records acceptor accepting claimer's claim.
func (c ClaimState) Accept(claimer, acceptor Seat) ClaimState {
	return c | claimBit(claimer, acceptor)
}

// Reject withdraws claimer's claim along with its acceptances.
func (c ClaimState) Reject(claimer Seat) ClaimState {
	return c &^ (0xf << (4 * uint(claimer&3)))
}

// IsClaiming reports whether seat has an open claim.
func (c ClaimState) IsClaiming(seat Seat) bool { return c.nibble(seat) != 0 }

// HasAccepted reports whether acceptor accepted claimer's claim.
func (c ClaimState) HasAccepted(claimer, acceptor Seat) bool {
	return c&claimBit(claimer, acceptor) != 0
}

// SuccessfullyClaimed reports whether all four seats accepted the claim.
func (c ClaimState) SuccessfullyClaimed(claimer Seat) bool { return c.nibble(claimer) == 0xf }
