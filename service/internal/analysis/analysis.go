// internal/analysis/analysis.go
package analysis

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	engine "github.com/tjwilson90/turbo-hearts-sub000/engine"
	"github.com/tjwilson90/turbo-hearts-sub000/engine/solver"
	"github.com/tjwilson90/turbo-hearts-sub000/service/internal/config"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrTooLarge is returned for positions with more unplayed cards than the
	// analyzer is configured to search.
	ErrTooLarge = errors.New("position too large to search")
	// ErrNotPlaying is returned for positions outside a play phase.
	ErrNotPlaying = errors.New("position is not in a play phase")
	// ErrBadPosition is returned when the hands do not hold exactly the
	// unplayed cards.
	ErrBadPosition = errors.New("hands do not match the unplayed cards")
	// ErrInternal is returned when a search fails on a position that passed
	// validation.
	ErrInternal = errors.New("analysis failed")
)

// Position is a game state together with the four hands it was reached with.
// Hands may still contain cards already played.
type Position struct {
	State engine.GameState
	Hands [engine.NumSeats]engine.Cards
}

// Key is the cache key of p.
func (p Position) Key() string {
	b, _ := p.State.MarshalBinary()
	for _, h := range p.Hands {
		b = binary.BigEndian.AppendUint64(b, uint64(h&^p.State.Played))
	}
	return keyPrefix + hex.EncodeToString(b)
}

const keyPrefix = "hearts:solve:"

func (p Position) check() error {
	if !p.State.Phase.IsPlaying() {
		return fmt.Errorf("%w: %s", ErrNotPlaying, p.State.Phase)
	}
	var held engine.Cards
	for _, h := range p.Hands {
		h &^= p.State.Played
		if held&h != 0 {
			return fmt.Errorf("%w: %s held twice", ErrBadPosition, held&h)
		}
		held |= h
	}
	if unplayed := p.State.Unplayed(); held != unplayed {
		return fmt.Errorf("%w: held %s, unplayed %s", ErrBadPosition, held, unplayed)
	}
	return p.checkTurn()
}

// checkTurn checks that the seat to act and the hand sizes agree with the
// current trick: adding back each seat's cards in the trick must leave all
// four hands the same size.
func (p Position) checkTurn() error {
	g := &p.State
	trick := g.CurrentTrick
	if !g.Played.ContainsAll(trick.Cards()) {
		return fmt.Errorf("%w: trick %s not marked played", ErrBadPosition, trick)
	}
	next := g.NextActor
	if next == engine.NoSeat {
		// Only the opening lead is left undetermined.
		if !trick.IsEmpty() || g.Played.Contains(engine.TwoClubs) {
			return fmt.Errorf("%w: no seat to act", ErrBadPosition)
		}
	} else if !next.Valid() {
		return fmt.Errorf("%w: invalid seat to act %d", ErrBadPosition, uint8(next))
	}

	var sizes [engine.NumSeats]int
	for s, h := range p.Hands {
		sizes[s] = (h &^ g.Played).Len()
	}
	if next != engine.NoSeat {
		seat := next
		for range trick.Len() {
			seat = seat.Right()
			sizes[seat]++
		}
	}
	for _, s := range engine.AllSeats {
		if sizes[s] != sizes[engine.North] {
			return fmt.Errorf("%w: %s holds %d cards, north %d", ErrBadPosition, s, sizes[s], sizes[engine.North])
		}
	}
	return nil
}

// Result is the outcome of solving a position.
type Result struct {
	Best   engine.Card // NoCard when no seat can act
	Won    engine.WonState
	Scores engine.Scores
	Cached bool
	Stats  solver.Stats // zero for cached results
}

func (r Result) encode() []byte {
	return binary.BigEndian.AppendUint32([]byte{byte(r.Best)}, uint32(r.Won))
}

func decodeResult(data []byte) (Result, error) {
	if len(data) != 5 {
		return Result{}, fmt.Errorf("decode result: got %d bytes, want 5", len(data))
	}
	best := engine.Card(data[0])
	if best != engine.NoCard && !best.Valid() {
		return Result{}, fmt.Errorf("decode result: invalid card %#x", data[0])
	}
	return Result{Best: best, Won: engine.WonState(binary.BigEndian.Uint32(data[1:]))}, nil
}

// Cache stores encoded results. Get reports a miss with ok false and a nil
// error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte) error
}

// Analyzer runs solver and claim searches for the service. Each search gets
// its own solver; nothing is shared between goroutines but the cache.
type Analyzer struct {
	maxUnplayed int
	workers     int
	timeout     time.Duration
	cache       Cache
	log         *logrus.Entry
}

// New returns an analyzer using cfg's limits. cache and log may be nil.
func New(cfg config.Config, cache Cache, log *logrus.Entry) *Analyzer {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{
		maxUnplayed: cfg.MaxUnplayed,
		workers:     workers,
		timeout:     cfg.Timeout,
		cache:       cache,
		log:         log.WithField("component", "analysis"),
	}
}

func (a *Analyzer) checkSize(g *engine.GameState) error {
	if n := g.Unplayed().Len(); n > a.maxUnplayed {
		return fmt.Errorf("%w: %d unplayed cards, limit %d", ErrTooLarge, n, a.maxUnplayed)
	}
	return nil
}

// run calls fn on its own goroutine and waits for it or for ctx to end,
// whichever comes first. An abandoned fn runs to completion in the
// background and its result is dropped.
func run[T any](ctx context.Context, timeout time.Duration, fn func() T) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	type outcome struct {
		v   T
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%w: %v", ErrInternal, r)}
			}
		}()
		done <- outcome{v: fn()}
	}()
	select {
	case o := <-done:
		return o.v, o.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Solve finds the best play and final won-state of pos.
func (a *Analyzer) Solve(ctx context.Context, pos Position) (Result, error) {
	if err := pos.check(); err != nil {
		return Result{}, err
	}
	if err := a.checkSize(&pos.State); err != nil {
		return Result{}, err
	}
	key := pos.Key()
	log := a.log.WithFields(logrus.Fields{"job_id": uuid.New(), "unplayed": pos.State.Unplayed().Len()})

	if res, ok := a.lookup(ctx, log, key); ok {
		res.Scores = res.Won.Scores(pos.State.Charges)
		log.WithField("best", res.Best).Debug("solve answered from cache")
		return res, nil
	}

	start := time.Now()
	res, err := run(ctx, a.timeout, func() Result {
		b := solver.New(pos.Hands)
		best, won := b.BestPlay(pos.State)
		return Result{Best: best, Won: won, Stats: b.Stats()}
	})
	if err != nil {
		log.WithError(err).Info("solve abandoned")
		return Result{}, err
	}
	res.Scores = res.Won.Scores(pos.State.Charges)
	log.WithFields(logrus.Fields{
		"best":    res.Best,
		"won":     res.Won,
		"nodes":   res.Stats.Nodes,
		"entries": res.Stats.Entries,
		"elapsed": time.Since(start),
	}).Debug("solved")

	if a.cache != nil {
		if err := a.cache.Set(ctx, key, res.encode()); err != nil {
			log.WithError(err).Warn("cache store failed")
		}
	}
	return res, nil
}

// lookup returns a cached result for key. Cache failures are logged and
// treated as misses.
func (a *Analyzer) lookup(ctx context.Context, log *logrus.Entry, key string) (Result, bool) {
	if a.cache == nil {
		return Result{}, false
	}
	data, ok, err := a.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("cache lookup failed")
		return Result{}, false
	}
	if !ok {
		return Result{}, false
	}
	res, err := decodeResult(data)
	if err != nil {
		log.WithError(err).Warn("discarding cached result")
		return Result{}, false
	}
	res.Cached = true
	return res, true
}

// SolveAll solves every position with at most the configured number of
// searches in flight. The first failure cancels the rest.
func (a *Analyzer) SolveAll(ctx context.Context, positions []Position) ([]Result, error) {
	results := make([]Result, len(positions))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, pos := range positions {
		g.Go(func() error {
			res, err := a.Solve(ctx, pos)
			if err != nil {
				return fmt.Errorf("position %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ClaimCheck reports whether seat, holding hand, takes every remaining trick
// from state however the others play, skipping plays voids rules out.
func (a *Analyzer) ClaimCheck(ctx context.Context, state engine.GameState, voids engine.VoidState, seat engine.Seat, hand engine.Cards) (bool, error) {
	if !state.Phase.IsPlaying() {
		return false, fmt.Errorf("%w: %s", ErrNotPlaying, state.Phase)
	}
	if !seat.Valid() {
		return false, fmt.Errorf("claim check: invalid seat %d", uint8(seat))
	}
	// A leader holding only top cards needs no search.
	if state.CurrentTrick.IsEmpty() && state.NextActor == seat && engine.MustClaim(hand&^state.Played, state.Played) {
		return true, nil
	}
	if err := a.checkSize(&state); err != nil {
		return false, err
	}
	ok, err := run(ctx, a.timeout, func() bool {
		return engine.CanClaimWithVoids(&state, voids, seat, hand)
	})
	if err != nil {
		return false, err
	}
	a.log.WithFields(logrus.Fields{"seat": seat, "hand": hand, "claim": ok}).Debug("claim checked")
	return ok, nil
}
