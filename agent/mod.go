// Package agent holds the Reversi bots and the registry the tournament
// builds them from.
package agent

import (
	"reversi/game"
	"time"

	"golang.org/x/exp/rand"
)

// Bot advises on the game it was constructed with. NextMove reads the live
// state at call time and returns false when the player to move has no legal
// move. Implementations never mutate the state they advise.
type Bot interface {
	NextMove() (game.ScoredMove, bool)
}

// Constructor binds a new bot to the state it will advise
type Constructor func(state *game.GameState, options ...Option) Bot

type Option func(o *options)

type options struct {
	rand *rand.Rand
}

// WithRand makes the bot draw its tie-breaks from r. r must not be shared
// with bots running on other goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithSeed gives the bot a private source seeded with seed
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rand = rand.New(rand.NewSource(seed))
	}
}

func newOptions(state *game.GameState, opts []Option) options {
	if state == nil {
		panic("bot needs a game state to advise")
	}
	o := options{}
	for _, option := range opts {
		option(&o)
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return o
}

func score(m game.ScoredMove) int {
	return m.Score
}
