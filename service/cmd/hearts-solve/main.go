// Command hearts-solve deals a hand from a seed (or takes four hands),
// plays it out to an endgame and prints the double-dummy solution.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	engine "github.com/tjwilson90/turbo-hearts-sub000/engine"
	"github.com/tjwilson90/turbo-hearts-sub000/service/internal/analysis"
	"github.com/tjwilson90/turbo-hearts-sub000/service/internal/cache"
	"github.com/tjwilson90/turbo-hearts-sub000/service/internal/config"
	"github.com/tjwilson90/turbo-hearts-sub000/service/internal/game"
)

type options struct {
	seed      string
	direction string
	rules     string
	unplayed  int
	hands     string
	leader    string
	charged   string
	line      bool
}

func main() {
	var opts options
	flag.StringVar(&opts.seed, "seed", "", "deal seed; empty picks a random one")
	flag.StringVar(&opts.direction, "direction", "left", "pass direction of the hand: left, right, across or keeper")
	flag.StringVar(&opts.rules, "rules", "classic", "charging rules")
	flag.IntVar(&opts.unplayed, "unplayed", 12, "auto-play until at most this many cards remain")
	flag.StringVar(&opts.hands, "hands", "", "four comma-separated hands, north first, instead of dealing")
	flag.StringVar(&opts.leader, "leader", "", "seat on lead when -hands is given")
	flag.StringVar(&opts.charged, "charged", "", "charged cards when -hands is given")
	flag.BoolVar(&opts.line, "line", false, "print the full line of optimal play")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := cfg.Logger()
	if err := run(cfg, logger, opts); err != nil {
		logger.WithError(err).Error("hearts-solve failed")
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logrus.Logger, opts options) error {
	pos, err := position(logger, opts)
	if err != nil {
		return err
	}
	if n := pos.State.Unplayed().Len(); n > cfg.MaxUnplayed {
		cfg.MaxUnplayed = n
	}

	var results analysis.Cache = analysis.NewMemoryCache()
	if cfg.RedisAddr != "" {
		r := cache.NewRedis(cfg)
		defer r.Close()
		results = r
	}
	a := analysis.New(cfg, results, logrus.NewEntry(logger))

	ctx := context.Background()
	printPosition(pos)
	res, err := a.Solve(ctx, pos)
	if err != nil {
		return err
	}
	printResult(pos.State, res)
	if opts.line {
		return printLine(ctx, a, pos)
	}
	return nil
}

// position builds the position to solve from the flags.
func position(logger *logrus.Logger, opts options) (analysis.Position, error) {
	rules, err := engine.ParseChargingRules(opts.rules)
	if err != nil {
		return analysis.Position{}, err
	}
	dir, err := engine.ParsePassDirection(opts.direction)
	if err != nil {
		return analysis.Position{}, err
	}
	if opts.hands != "" {
		return fromHands(rules, dir, opts)
	}

	table := game.NewTable(game.Options{
		Rules:  rules,
		Seed:   opts.seed,
		First:  dir,
		Logger: logrus.NewEntry(logger),
	})
	if err := table.Start(); err != nil {
		return analysis.Position{}, err
	}
	if err := table.AutoPlay(game.AtEndgame(opts.unplayed)); err != nil {
		return analysis.Position{}, err
	}
	state := table.State()
	if !state.Phase.IsPlaying() {
		return analysis.Position{}, fmt.Errorf("hand ended before %d cards remained", opts.unplayed)
	}
	logger.WithFields(logrus.Fields{"seed": table.Seed, "game_id": table.ID}).Info("dealt")
	return analysis.Position{State: state, Hands: table.Hands()}, nil
}

// fromHands builds a position at the start of a trick. Cards missing from
// every hand count as played, won by nobody.
func fromHands(rules engine.ChargingRules, dir engine.PassDirection, opts options) (analysis.Position, error) {
	parts := strings.Split(opts.hands, ",")
	if len(parts) != engine.NumSeats {
		return analysis.Position{}, fmt.Errorf("-hands: got %d hands, want %d", len(parts), engine.NumSeats)
	}
	var pos analysis.Position
	var held engine.Cards
	for i, part := range parts {
		h, err := engine.ParseCards(part)
		if err != nil {
			return analysis.Position{}, fmt.Errorf("-hands: %w", err)
		}
		if h.ContainsAny(held) {
			return analysis.Position{}, fmt.Errorf("-hands: %s dealt twice", h&held)
		}
		held |= h
		pos.Hands[i] = h
	}
	for s, h := range pos.Hands {
		if n := pos.Hands[engine.North].Len(); h.Len() != n {
			return analysis.Position{}, fmt.Errorf("-hands: %s holds %d cards, north %d", engine.Seat(s), h.Len(), n)
		}
	}

	g := engine.NewGameState()
	g.Rules = rules
	g.Phase = engine.FirstPhase(dir)
	for !g.Phase.IsPlaying() {
		g.Phase = g.Phase.Next(false)
	}
	g.Played = engine.AllCards &^ held
	if g.Played.Len()%engine.NumSeats != 0 {
		return analysis.Position{}, errors.New("-hands: hands must be cut at the start of a trick")
	}
	for _, suit := range engine.AllSuits {
		if g.Played.ContainsAny(suit.Cards()) {
			g.LedSuits = g.LedSuits.With(suit)
		}
	}

	if opts.charged != "" {
		charged, err := engine.ParseCards(opts.charged)
		if err != nil {
			return analysis.Position{}, fmt.Errorf("-charged: %w", err)
		}
		if !engine.Chargeable.ContainsAll(charged) {
			return analysis.Position{}, fmt.Errorf("-charged: %s cannot be charged", charged&^engine.Chargeable)
		}
		for _, s := range engine.AllSeats {
			g.Charges = g.Charges.Charge(s, charged&pos.Hands[s])
		}
		g.ChargeCount = uint8(charged.Len())
	}

	if opts.leader != "" {
		seat, err := engine.ParseSeat(opts.leader)
		if err != nil {
			return analysis.Position{}, fmt.Errorf("-leader: %w", err)
		}
		g.NextActor = seat
	} else if !g.Played.IsEmpty() {
		return analysis.Position{}, errors.New("-leader is required once cards have been played")
	}
	pos.State = g
	return pos, nil
}

func printPosition(pos analysis.Position) {
	fmt.Printf("rules %s, %s, %d cards unplayed\n", pos.State.Rules, pos.State.Phase, pos.State.Unplayed().Len())
	for _, s := range engine.AllSeats {
		fmt.Printf("  %-5s  %s\n", s, pos.Hands[s])
	}
	if charged := pos.State.Charges.AllCharges(); !charged.IsEmpty() {
		fmt.Printf("charged %s\n", charged)
	}
}

func printResult(state engine.GameState, res analysis.Result) {
	if res.Best != engine.NoCard {
		fmt.Printf("best play %s\n", res.Best)
	}
	fmt.Printf("won       %s\n", res.Won)
	fmt.Printf("%-5s  %6s  %6s\n", "seat", "score", "money")
	for _, s := range engine.AllSeats {
		fmt.Printf("%-5s  %6d  %6d\n", s, res.Scores.Score(s), res.Scores.Money(s))
	}
	if res.Cached {
		fmt.Println("(cached)")
		return
	}
	fmt.Printf("nodes %d, lookups %d, hits %d, entries %d\n",
		res.Stats.Nodes, res.Stats.Lookups, res.Stats.Hits, res.Stats.Entries)
}

// printLine plays the best card at every step, one trick per line.
func printLine(ctx context.Context, a *analysis.Analyzer, pos analysis.Position) error {
	fmt.Println("line:")
	var trick []string
	for pos.State.Phase.IsPlaying() {
		res, err := a.Solve(ctx, pos)
		if err != nil {
			return err
		}
		if res.Best == engine.NoCard {
			break
		}
		seat := pos.State.NextActor
		if seat == engine.NoSeat {
			seat = holderOf(pos.Hands, engine.TwoClubs)
		}
		trick = append(trick, fmt.Sprintf("%s %s", seat, res.Best))
		pos.State.Apply(engine.Play{Seat: seat, Card: res.Best})
		pos.Hands[seat] = pos.Hands[seat].Without(res.Best)
		if pos.State.CurrentTrick.IsEmpty() {
			fmt.Printf("  %s\n", strings.Join(trick, ", "))
			trick = trick[:0]
		}
	}
	return nil
}

func holderOf(hands [engine.NumSeats]engine.Cards, card engine.Card) engine.Seat {
	for _, s := range engine.AllSeats {
		if hands[s].Contains(card) {
			return s
		}
	}
	return engine.NoSeat
}
