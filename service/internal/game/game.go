// internal/game/game.go
package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	engine "github.com/tjwilson90/turbo-hearts-sub000/engine"
)

var (
	// ErrAlreadyStarted is returned by Start on a table that has already dealt.
	ErrAlreadyStarted = errors.New("table already started")
	// ErrInvalidSeat is returned for a request naming no seat at the table.
	ErrInvalidSeat = errors.New("invalid seat")
)

func checkSeats(seats ...engine.Seat) error {
	for _, s := range seats {
		if !s.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidSeat, uint8(s))
		}
	}
	return nil
}

// OnHandEndFunc is called when a hand finishes, with the scores it produced.
type OnHandEndFunc func(tableID uuid.UUID, dir engine.PassDirection, scores engine.Scores)

// Options configures a new Table.
type Options struct {
	Rules  engine.ChargingRules
	Seed   string               // deals are a pure function of the seed; empty picks a random one
	First  engine.PassDirection // direction of the first hand
	Logger *logrus.Entry
}

// Table is one game at a table of four seats. It owns the hands, checks
// every request against the engine, and turns accepted requests into engine
// events that it applies, records and broadcasts.
type Table struct {
	ID    uuid.UUID
	Rules engine.ChargingRules
	Seed  string

	Mu sync.Mutex

	state   engine.GameState
	dealer  engine.Dealer
	first   engine.PassDirection
	dir     engine.PassDirection // direction of the hand in progress
	started bool

	hands [engine.NumSeats]engine.Cards // current holdings
	sent  [engine.NumSeats]engine.Cards // cards each seat passed this hand
	blind [engine.NumSeats]engine.Cards // hidden charges under blind rules
	voids engine.VoidState

	events  []engine.GameEvent
	results []engine.Scores

	// Communication callbacks. Private events (hands, passed cards) go only
	// to their seat; everyone else sees them with the cards removed.
	BroadcastFn       func(ev engine.GameEvent)
	BroadcastToSeatFn func(seat engine.Seat, ev engine.GameEvent)
	OnHandEnd         OnHandEndFunc

	log *logrus.Entry
}

// NewTable creates a table. Nothing is dealt until Start.
func NewTable(opts Options) *Table {
	id := uuid.New()
	seed := opts.Seed
	if seed == "" {
		seed = uuid.NewString()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Table{
		ID:     id,
		Rules:  opts.Rules,
		Seed:   seed,
		dealer: engine.NewDealer(seed),
		first:  opts.First,
		state:  engine.NewGameState(),
		log:    log.WithField("game_id", id),
	}
}

// Start seats the players and deals the first hand.
func (t *Table) Start() error {
	t.Mu.Lock()
	defer t.Mu.Unlock()

	if t.started {
		return ErrAlreadyStarted
	}
	if !t.Rules.Valid() {
		return fmt.Errorf("start table: invalid rules %d", t.Rules)
	}
	t.started = true
	t.state.Phase = engine.FirstPhase(t.first)
	t.emit(engine.Sit{Rules: t.Rules})
	t.deal()
	t.log.WithFields(logrus.Fields{"rules": t.Rules, "first": t.first}).Info("table started")
	return nil
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

// Pass sends three cards from seat's hand.
func (t *Table) Pass(seat engine.Seat, cards engine.Cards) error {
	t.Mu.Lock()
	defer t.Mu.Unlock()

	if err := checkSeats(seat); err != nil {
		return err
	}
	entry := t.log.WithFields(logrus.Fields{"seat": seat, "cards": cards})
	if err := t.state.VerifyPass(seat, t.hands[seat], cards); err != nil {
		entry.WithError(err).Info("pass rejected")
		return err
	}
	t.emit(engine.SendPass{From: seat, Cards: cards})
	t.hands[seat] &^= cards
	t.sent[seat] = cards

	dir := t.state.Phase.Direction()
	if dir == engine.PassKeeper {
		t.keeperPass()
		return nil
	}
	// A pass is delivered once its receiver has sent its own.
	if to := dir.Receiver(seat); t.state.Done.SentPass(to) {
		t.deliver(to, cards)
	}
	if from := dir.Sender(seat); t.state.Phase.IsPassing() && t.state.Done.SentPass(from) {
		t.deliver(seat, t.sent[from])
	}
	return nil
}

func (t *Table) keeperPass() {
	for _, s := range engine.AllSeats {
		if !t.state.Done.SentPass(s) {
			return
		}
	}
	for _, recv := range t.dealer.KeeperPass(t.hands) {
		t.deliver(recv.To, recv.Cards)
	}
}

func (t *Table) deliver(to engine.Seat, cards engine.Cards) {
	t.emit(engine.RecvPass{To: to, Cards: cards})
	t.hands[to] |= cards
}

// Charge charges cards from seat's hand; no cards declines.
func (t *Table) Charge(seat engine.Seat, cards engine.Cards) error {
	t.Mu.Lock()
	defer t.Mu.Unlock()

	if err := checkSeats(seat); err != nil {
		return err
	}
	entry := t.log.WithFields(logrus.Fields{"seat": seat, "cards": cards})
	err := t.state.VerifyCharge(seat, t.hands[seat], cards)
	if err == nil && t.Rules.Blind() {
		for _, hidden := range t.blind {
			if hidden&cards != 0 {
				err = &engine.RuleError{Err: engine.ErrAlreadyCharged, Action: "charge", Seat: seat, Cards: hidden & cards, Phase: t.state.Phase}
			}
		}
	}
	if err != nil {
		entry.WithError(err).Info("charge rejected")
		return err
	}

	if t.Rules.Blind() {
		t.blind[seat] |= cards
		t.emit(engine.BlindCharge{Seat: seat, Count: cards.Len()})
	} else {
		t.emit(engine.Charge{Seat: seat, Cards: cards})
	}
	if !t.state.Phase.IsCharging() && t.Rules.Blind() {
		t.emit(engine.RevealCharges{Charges: t.blind})
		t.blind = [engine.NumSeats]engine.Cards{}
	}
	return nil
}

// Play plays card from seat's hand.
func (t *Table) Play(seat engine.Seat, card engine.Card) error {
	t.Mu.Lock()
	defer t.Mu.Unlock()

	if err := checkSeats(seat); err != nil {
		return err
	}
	if err := t.state.VerifyPlay(seat, t.hands[seat], card); err != nil {
		t.log.WithFields(logrus.Fields{"seat": seat, "card": card}).WithError(err).Info("play rejected")
		return err
	}
	t.voids = t.voids.OnPlay(&t.state, seat, card)
	t.emit(engine.Play{Seat: seat, Card: card})
	t.hands[seat] = t.hands[seat].Without(card)
	if !t.state.Phase.IsPlaying() {
		t.endHand()
	}
	return nil
}

// Claim claims every remaining trick for seat, showing its hand.
func (t *Table) Claim(seat engine.Seat) error {
	t.Mu.Lock()
	defer t.Mu.Unlock()

	if err := checkSeats(seat); err != nil {
		return err
	}
	if err := t.state.VerifyClaim(seat); err != nil {
		t.log.WithField("seat", seat).WithError(err).Info("claim rejected")
		return err
	}
	t.emit(engine.Claim{Seat: seat, Hand: t.hands[seat]})
	return nil
}

// AcceptClaim records acceptor agreeing to claimer's claim. The hand ends
// when everyone has accepted.
func (t *Table) AcceptClaim(claimer, acceptor engine.Seat) error {
	t.Mu.Lock()
	defer t.Mu.Unlock()

	if err := checkSeats(claimer, acceptor); err != nil {
		return err
	}
	if err := t.state.VerifyAcceptClaim(claimer, acceptor); err != nil {
		t.log.WithFields(logrus.Fields{"claimer": claimer, "seat": acceptor}).WithError(err).Info("accept claim rejected")
		return err
	}
	t.emit(engine.AcceptClaim{Claimer: claimer, Acceptor: acceptor})
	if !t.state.Phase.IsPlaying() {
		t.endHand()
	}
	return nil
}

// RejectClaim withdraws claimer's claim on rejector's refusal.
func (t *Table) RejectClaim(claimer, rejector engine.Seat) error {
	t.Mu.Lock()
	defer t.Mu.Unlock()

	if err := checkSeats(claimer, rejector); err != nil {
		return err
	}
	if err := t.state.VerifyRejectClaim(claimer); err != nil {
		t.log.WithFields(logrus.Fields{"claimer": claimer, "seat": rejector}).WithError(err).Info("reject claim rejected")
		return err
	}
	t.emit(engine.RejectClaim{Claimer: claimer, Rejector: rejector})
	return nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// State returns a copy of the public game state.
func (t *Table) State() engine.GameState {
	t.Mu.Lock()
	defer t.Mu.Unlock()
	return t.state
}

// Hand returns seat's current cards.
func (t *Table) Hand(seat engine.Seat) engine.Cards {
	if !seat.Valid() {
		return engine.NoCards
	}
	t.Mu.Lock()
	defer t.Mu.Unlock()
	return t.hands[seat]
}

// Hands returns every seat's current cards.
func (t *Table) Hands() [engine.NumSeats]engine.Cards {
	t.Mu.Lock()
	defer t.Mu.Unlock()
	return t.hands
}

// Voids returns the suits each seat has shown it lacks this hand.
func (t *Table) Voids() engine.VoidState {
	t.Mu.Lock()
	defer t.Mu.Unlock()
	return t.voids
}

// Events returns a copy of the event log.
func (t *Table) Events() []engine.GameEvent {
	t.Mu.Lock()
	defer t.Mu.Unlock()
	return append([]engine.GameEvent(nil), t.events...)
}

// Results returns the scores of every finished hand, in order.
func (t *Table) Results() []engine.Scores {
	t.Mu.Lock()
	defer t.Mu.Unlock()
	return append([]engine.Scores(nil), t.results...)
}

// ToPlay returns the seat that plays next, resolving the opening lead to the
// holder of the two of clubs. It is NoSeat outside play.
func (t *Table) ToPlay() engine.Seat {
	t.Mu.Lock()
	defer t.Mu.Unlock()
	return t.toPlay()
}

func (t *Table) toPlay() engine.Seat {
	if !t.state.Phase.IsPlaying() {
		return engine.NoSeat
	}
	if t.state.NextActor != engine.NoSeat {
		return t.state.NextActor
	}
	for _, s := range engine.AllSeats {
		if t.hands[s].Contains(engine.TwoClubs) {
			return s
		}
	}
	return engine.NoSeat
}

// ShouldClaim reports whether seat is on lead and certain to take every
// remaining trick given what the table has seen.
func (t *Table) ShouldClaim(seat engine.Seat) bool {
	t.Mu.Lock()
	defer t.Mu.Unlock()
	if !t.state.Phase.IsPlaying() || t.toPlay() != seat {
		return false
	}
	return engine.ShouldClaim(&t.state, t.voids, seat, t.hands[seat])
}

// ---------------------------------------------------------------------------
// Internals. The lock is held by the caller.
// ---------------------------------------------------------------------------

func (t *Table) deal() {
	t.sent = [engine.NumSeats]engine.Cards{}
	t.blind = [engine.NumSeats]engine.Cards{}
	t.voids = 0
	t.dir = t.state.Phase.Direction()
	d := t.dealer.Deal(t.dir)
	t.emit(d)
	t.hands = d.Hands
}

func (t *Table) endHand() {
	scores := t.state.Scores()
	t.results = append(t.results, scores)
	t.log.WithFields(logrus.Fields{"pass": t.dir, "won": t.state.Won, "scores": scores}).Info("hand complete")
	if t.OnHandEnd != nil {
		t.OnHandEnd(t.ID, t.dir, scores)
	}
	t.hands = [engine.NumSeats]engine.Cards{}
	if t.state.IsComplete() {
		t.log.Info("game complete")
		return
	}
	t.deal()
}

// emit applies ev, records it and broadcasts it.
func (t *Table) emit(ev engine.GameEvent) {
	t.state.Apply(ev)
	t.events = append(t.events, ev)
	t.log.WithFields(logrus.Fields{"event": ev.Kind(), "phase": t.state.Phase}).Debug("applied")

	switch e := ev.(type) {
	case engine.Deal:
		for _, s := range engine.AllSeats {
			private := engine.Deal{Pass: e.Pass}
			private.Hands[s] = e.Hands[s]
			t.fireEventToSeat(s, private)
		}
	case engine.SendPass:
		t.fireEventToSeat(e.From, e)
		t.fireEvent(engine.SendPass{From: e.From})
	case engine.RecvPass:
		t.fireEventToSeat(e.To, e)
		t.fireEvent(engine.RecvPass{To: e.To})
	default:
		t.fireEvent(ev)
	}
}

func (t *Table) fireEvent(ev engine.GameEvent) {
	if t.BroadcastFn != nil {
		t.BroadcastFn(ev)
	}
}

func (t *Table) fireEventToSeat(seat engine.Seat, ev engine.GameEvent) {
	if t.BroadcastToSeatFn != nil {
		t.BroadcastToSeatFn(seat, ev)
	}
}
