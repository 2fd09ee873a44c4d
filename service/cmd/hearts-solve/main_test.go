package main

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	engine "github.com/tjwilson90/turbo-hearts-sub000/engine"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestFromHands(t *testing.T) {
	pos, err := position(quietLogger(), options{
		rules:     "blind_chain",
		direction: "across",
		hands:     "AKS 2C, QJS 3C, T9S 4C, 87S 5C",
		leader:    "south",
		charged:   "QS",
	})
	require.NoError(t, err)

	g := pos.State
	assert.Equal(t, engine.BlindChain, g.Rules)
	assert.Equal(t, engine.PhasePlayAcross, g.Phase)
	assert.Equal(t, engine.South, g.NextActor)
	assert.Equal(t, 12, g.Unplayed().Len())
	assert.Equal(t, engine.MustParseCards("QS"), g.Charges.Charges(engine.East))
	assert.Equal(t, engine.MustParseCards("QJS 3C"), pos.Hands[engine.East])
	assert.True(t, g.LedSuits.Contains(engine.Hearts))
}

func TestFromHandsRejects(t *testing.T) {
	cases := []struct {
		name string
		opts options
	}{
		{"three hands", options{hands: "AKS,QJS,T9S"}},
		{"duplicate", options{hands: "AKS,AS,T9S,87S", leader: "north"}},
		{"mid trick", options{hands: "AKS,QJS,T9S,8S", leader: "north"}},
		{"unequal hands", options{hands: "AKS,QS,JS,T987S", leader: "north"}},
		{"no leader", options{hands: "AKS,QJS,T9S,87S"}},
		{"bad leader", options{hands: "AKS,QJS,T9S,87S", leader: "middle"}},
		{"unchargeable", options{hands: "AKS,QJS,T9S,87S", leader: "north", charged: "KS"}},
		{"bad rules", options{rules: "cutthroat", hands: "AKS,QJS,T9S,87S", leader: "north"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.opts.rules == "" {
				tc.opts.rules = "classic"
			}
			tc.opts.direction = "left"
			_, err := position(quietLogger(), tc.opts)
			assert.Error(t, err)
		})
	}
}

func TestDealtPosition(t *testing.T) {
	pos, err := position(quietLogger(), options{rules: "classic", direction: "right", seed: "cli", unplayed: 8})
	require.NoError(t, err)
	assert.Equal(t, engine.PhasePlayRight, pos.State.Phase)
	assert.LessOrEqual(t, pos.State.Unplayed().Len(), 8)
	assert.True(t, pos.State.CurrentTrick.IsEmpty())
}
