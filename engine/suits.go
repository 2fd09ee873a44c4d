package engine

// Suits is a set of suits, bit s set when suit s is present.
type Suits uint8

// NoSuits is the empty suit set.
const NoSuits Suits = 0

// With returns the set with s added.
func (u Suits) With(s Suit) Suits { return u | 1<<(s&3) }

// Contains reports whether s is in the set.
func (u Suits) Contains(s Suit) bool { return u&(1<<(s&3)) != 0 }

// Len returns the number of suits in the set.
func (u Suits) Len() int {
	n := 0
	for _, s := range AllSuits {
		if u.Contains(s) {
			n++
		}
	}
	return n
}

// Cards returns every card belonging to a suit of the set.
func (u Suits) Cards() Cards {
	var out Cards
	for _, s := range AllSuits {
		if u.Contains(s) {
			out |= s.Cards()
		}
	}
	return out
}

func (u Suits) String() string {
	out := make([]byte, 0, NumSuits)
	for _, s := range AllSuits {
		if u.Contains(s) {
			out = append(out, s.Char())
		}
	}
	return string(out)
}
