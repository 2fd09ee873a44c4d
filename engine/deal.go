package engine

import (
	"crypto/sha256"
	"encoding/binary"
)

// Dealer shuffles deterministically from a seed string. The same seed always
// produces the same deals, one independent stream per pass direction.
type Dealer struct {
	seed [sha256.Size]byte
}

// NewDealer hashes seed into a dealer.
func NewDealer(seed string) Dealer {
	return Dealer{seed: sha256.Sum256([]byte(seed))}
}

// keeperStream is the stream used to redistribute keeper passes.
const keeperStream = 4

// rng is the xorshift64 generator for one stream.
type rng uint64

func (d Dealer) stream(n int) rng {
	x := binary.BigEndian.Uint64(d.seed[8*(n%4):]) ^ uint64(n+1)*0x9e37_79b9_7f4a_7c15
	if x == 0 {
		x = 1 // xorshift can't start at 0
	}
	return rng(x)
}

func (r *rng) next() uint64 {
	x := uint64(*r)
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	*r = rng(x)
	return x
}

// intn returns a number in [0, n).
func (r *rng) intn(n int) int { return int(r.next() % uint64(n)) }

// shuffle is Fisher-Yates over cards.
func (r *rng) shuffle(cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := r.intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deal returns the hands for the hand passed in direction d.
func (d Dealer) Deal(dir PassDirection) Deal {
	r := d.stream(int(dir))
	deck := AllCards.Slice()
	r.shuffle(deck)
	var hands [NumSeats]Cards
	for i, c := range deck {
		hands[i/NumRanks] = hands[i/NumRanks].With(c)
	}
	return Deal{Hands: hands, Pass: dir}
}

// KeeperPass pools the cards passed in the keeper hand and deals them back
// out. partial holds each seat's hand without the cards it passed.
func (d Dealer) KeeperPass(partial [NumSeats]Cards) [NumSeats]RecvPass {
	r := d.stream(keeperStream)
	pool := AllCards
	for _, h := range partial {
		pool &^= h
	}
	cards := pool.Slice()
	r.shuffle(cards)
	var out [NumSeats]RecvPass
	for _, s := range AllSeats {
		n := NumRanks - partial[s].Len()
		out[s] = RecvPass{To: s, Cards: CardsOf(cards[:n]...)}
		cards = cards[n:]
	}
	return out
}
