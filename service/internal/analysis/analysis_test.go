// internal/analysis/analysis_test.go
package analysis

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	engine "github.com/tjwilson90/turbo-hearts-sub000/engine"
	"github.com/tjwilson90/turbo-hearts-sub000/engine/solver"
	"github.com/tjwilson90/turbo-hearts-sub000/service/internal/config"
	"github.com/tjwilson90/turbo-hearts-sub000/service/internal/game"
)

func quietLogger() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

// endgame auto-plays the first hand dealt from seed until at most unplayed
// cards remain.
func endgame(t *testing.T, seed string, unplayed int) Position {
	t.Helper()
	table := game.NewTable(game.Options{Rules: engine.Classic, Seed: seed, First: engine.PassLeft, Logger: quietLogger()})
	require.NoError(t, table.Start())
	require.NoError(t, table.AutoPlay(game.AtEndgame(unplayed)))
	return Position{State: table.State(), Hands: table.Hands()}
}

func newAnalyzer(cache Cache) *Analyzer {
	cfg := config.Default()
	cfg.MaxUnplayed = 12
	cfg.Workers = 2
	return New(cfg, cache, quietLogger())
}

type failingCache struct{ gets, sets int }

func (f *failingCache) Get(context.Context, string) ([]byte, bool, error) {
	f.gets++
	return nil, false, errors.New("cache down")
}

func (f *failingCache) Set(context.Context, string, []byte) error {
	f.sets++
	return errors.New("cache down")
}

func TestSolveMatchesSolver(t *testing.T) {
	pos := endgame(t, "analysis 1", 12)
	res, err := newAnalyzer(nil).Solve(context.Background(), pos)
	require.NoError(t, err)

	best, won := solver.New(pos.Hands).BestPlay(pos.State)
	assert.Equal(t, best, res.Best)
	assert.Equal(t, won, res.Won)
	assert.Equal(t, won.Scores(pos.State.Charges), res.Scores)
	assert.False(t, res.Cached)
	assert.NotZero(t, res.Stats.Nodes)
	assert.Contains(t, pos.Hands[pos.State.NextActor].Slice(), res.Best)
}

func TestSolveUsesCache(t *testing.T) {
	cache := NewMemoryCache()
	a := newAnalyzer(cache)
	pos := endgame(t, "analysis 2", 12)

	first, err := a.Solve(context.Background(), pos)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	second, err := a.Solve(context.Background(), pos)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Best, second.Best)
	assert.Equal(t, first.Won, second.Won)
	assert.Equal(t, first.Scores, second.Scores)
	assert.Zero(t, second.Stats)
}

func TestSolveSurvivesCacheFailure(t *testing.T) {
	cache := &failingCache{}
	res, err := newAnalyzer(cache).Solve(context.Background(), endgame(t, "analysis 3", 8))
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, 1, cache.gets)
	assert.Equal(t, 1, cache.sets)
}

func TestSolveRejects(t *testing.T) {
	a := newAnalyzer(nil)
	ctx := context.Background()

	_, err := a.Solve(ctx, endgame(t, "analysis 4", 16))
	assert.ErrorIs(t, err, ErrTooLarge)

	table := game.NewTable(game.Options{Seed: "analysis 4", Logger: quietLogger()})
	require.NoError(t, table.Start())
	_, err = a.Solve(ctx, Position{State: table.State(), Hands: table.Hands()})
	assert.ErrorIs(t, err, ErrNotPlaying)

	pos := endgame(t, "analysis 4", 12)
	seat := pos.State.NextActor
	pos.Hands[seat] = pos.Hands[seat].Without(pos.Hands[seat].Max())
	_, err = a.Solve(ctx, pos)
	assert.ErrorIs(t, err, ErrBadPosition)

	pos = endgame(t, "analysis 4", 12)
	pos.Hands[seat.Left()] |= pos.Hands[seat]
	_, err = a.Solve(ctx, pos)
	assert.ErrorIs(t, err, ErrBadPosition)
}

// unequalHands is the last two tricks of a hand with the spades dealt
// unevenly: every card covered, no card twice, but east and south short.
func unequalHands(t *testing.T) Position {
	t.Helper()
	hands := [engine.NumSeats]engine.Cards{
		engine.MustParseCards("AKS"),
		engine.MustParseCards("QS"),
		engine.MustParseCards("JS"),
		engine.MustParseCards("T987S"),
	}
	var held engine.Cards
	for _, h := range hands {
		held |= h
	}
	g := engine.NewGameState()
	g.Phase = engine.PhasePlayLeft
	g.NextActor = engine.North
	g.Played = engine.AllCards &^ held
	g.LedSuits = engine.NoSuits.With(engine.Clubs).With(engine.Diamonds).With(engine.Hearts).With(engine.Spades)
	return Position{State: g, Hands: hands}
}

func TestSolveRejectsUnequalHands(t *testing.T) {
	a := newAnalyzer(nil)
	ctx := context.Background()

	_, err := a.Solve(ctx, unequalHands(t))
	assert.ErrorIs(t, err, ErrBadPosition)
	assert.Contains(t, err.Error(), "east holds 1 cards")

	pos := unequalHands(t)
	pos.State.NextActor = engine.Seat(7)
	_, err = a.Solve(ctx, pos)
	assert.ErrorIs(t, err, ErrBadPosition)
}

func TestSolveMidTrickPosition(t *testing.T) {
	pos := endgame(t, "analysis 6", 8)
	seat := pos.State.NextActor
	card := pos.State.LegalPlays(pos.Hands[seat]).Max()
	pos.State.Apply(engine.Play{Seat: seat, Card: card})
	pos.Hands[seat] = pos.Hands[seat].Without(card)

	res, err := newAnalyzer(nil).Solve(context.Background(), pos)
	require.NoError(t, err)
	assert.True(t, pos.Hands[seat.Left()].Contains(res.Best))

	pos.State.NextActor = engine.NoSeat
	_, err = newAnalyzer(nil).Solve(context.Background(), pos)
	assert.ErrorIs(t, err, ErrBadPosition)

	pos.State.NextActor = seat
	_, err = newAnalyzer(nil).Solve(context.Background(), pos)
	assert.ErrorIs(t, err, ErrBadPosition)
}

func TestRunRecoversPanics(t *testing.T) {
	_, err := run(context.Background(), 0, func() int { panic("boom") })
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "boom")
}

func TestSolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newAnalyzer(nil).Solve(ctx, endgame(t, "analysis 5", 12))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveAll(t *testing.T) {
	a := newAnalyzer(nil)
	seeds := []string{"all 1", "all 2", "all 3", "all 4", "all 5"}
	positions := make([]Position, len(seeds))
	for i, seed := range seeds {
		positions[i] = endgame(t, seed, 8)
	}

	results, err := a.SolveAll(context.Background(), positions)
	require.NoError(t, err)
	require.Len(t, results, len(positions))
	for i, pos := range positions {
		want, err := a.Solve(context.Background(), pos)
		require.NoError(t, err)
		assert.Equal(t, want.Won, results[i].Won, "position %d", i)
		assert.Equal(t, want.Best, results[i].Best, "position %d", i)
	}
}

func TestSolveAllFailsFast(t *testing.T) {
	positions := []Position{
		endgame(t, "all 1", 8),
		endgame(t, "all 2", 20),
		endgame(t, "all 3", 8),
	}
	results, err := newAnalyzer(nil).SolveAll(context.Background(), positions)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Contains(t, err.Error(), "position 1")
	assert.Nil(t, results)
}

func TestClaimCheckMatchesEngine(t *testing.T) {
	a := newAnalyzer(nil)
	for _, seed := range []string{"claim 1", "claim 2", "claim 3"} {
		pos := endgame(t, seed, 8)
		for _, seat := range engine.AllSeats {
			got, err := a.ClaimCheck(context.Background(), pos.State, 0, seat, pos.Hands[seat])
			require.NoError(t, err)
			want := engine.CanClaim(&pos.State, seat, pos.Hands[seat])
			assert.Equal(t, want, got, "seed %q seat %s", seed, seat)
		}
	}
}

func TestClaimCheckRejects(t *testing.T) {
	a := newAnalyzer(nil)
	pos := endgame(t, "claim 4", 20)
	seat := pos.State.NextActor

	_, err := a.ClaimCheck(context.Background(), pos.State, 0, seat, pos.Hands[seat])
	if !engine.MustClaim(pos.Hands[seat], pos.State.Played) {
		assert.ErrorIs(t, err, ErrTooLarge)
	}
	_, err = a.ClaimCheck(context.Background(), engine.NewGameState(), 0, seat, pos.Hands[seat])
	assert.ErrorIs(t, err, ErrNotPlaying)
	_, err = a.ClaimCheck(context.Background(), pos.State, 0, engine.NoSeat, engine.NoCards)
	assert.Error(t, err)
}

func TestKeyIgnoresPlayedCards(t *testing.T) {
	pos := endgame(t, "key", 12)
	key := pos.Key()
	assert.True(t, strings.HasPrefix(key, "hearts:solve:"))
	// 36 state bytes and 32 hand bytes, hex encoded.
	assert.Len(t, key, len("hearts:solve:")+2*(engine.EncodedSize+32))

	padded := pos
	padded.Hands[engine.North] |= pos.State.Played
	assert.Equal(t, key, padded.Key())

	other := endgame(t, "key", 8)
	assert.NotEqual(t, key, other.Key())
}

func TestDecodeResult(t *testing.T) {
	res := Result{Best: engine.QueenSpades, Won: engine.WonState(0).Win(engine.East, engine.QueenSpades.Bit())}
	got, err := decodeResult(res.encode())
	require.NoError(t, err)
	assert.Equal(t, res.Best, got.Best)
	assert.Equal(t, res.Won, got.Won)

	got, err = decodeResult(Result{Best: engine.NoCard}.encode())
	require.NoError(t, err)
	assert.Equal(t, engine.NoCard, got.Best)

	_, err = decodeResult([]byte{1, 2})
	assert.Error(t, err)
	_, err = decodeResult([]byte{0x0f, 0, 0, 0, 0})
	assert.Error(t, err)
}
