package engine

import (
	"errors"
	"reversi/agent"
	"reversi/experiments/metrics"
)

// ErrNoMove is returned when a bot passes although its side has a legal move
var ErrNoMove = errors.New("game is not over, but the bot returned no move")

type Option func(o *options)

type options struct {
	collector  metrics.Collector
	botOptions [2][]agent.Option
}

// WithMetrics records every move and the final result with c
func WithMetrics(c metrics.Collector) Option {
	return func(o *options) {
		o.collector = c
	}
}

// WithSeeds gives each bot its own reproducible random source
func WithSeeds(playerOne, playerTwo uint64) Option {
	return func(o *options) {
		o.botOptions[0] = append(o.botOptions[0], agent.WithSeed(playerOne))
		o.botOptions[1] = append(o.botOptions[1], agent.WithSeed(playerTwo))
	}
}
