package engine

import (
	"fmt"
	"reversi/agent"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/meta"
	"time"

	"github.com/rs/zerolog/log"
)

// Engine plays one game between two bots in process
type Engine struct {
	Master    *gamemaster.GameMaster
	names     [2]string
	bots      [2]agent.Bot
	collector metrics.Collector
}

// LocalEngine sets up a fresh game. names[0] and constructors[0] play
// PlayerOne. Both bots are bound to the live game state.
func LocalEngine(names [2]string, constructors [2]agent.Constructor, opts ...Option) *Engine {
	if constructors[0] == nil || constructors[1] == nil {
		panic("need a bot for each player")
	}

	o := options{collector: metrics.NewDummyCollector()}
	for _, opt := range opts {
		opt(&o)
	}

	master := gamemaster.New()
	eng := &Engine{
		Master:    master,
		names:     names,
		collector: o.collector,
	}
	for i, constructor := range constructors {
		eng.bots[i] = constructor(master.State(), o.botOptions[i]...)
	}
	return eng
}

// Run plays the game to the end and returns the outcome with its metrics
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	state := e.Master.State()

	log.Info().Msgf("%s vs %s: player %d is starting", e.names[0], e.names[1], state.CurrentPlayer())
	e.collector.Start(e.names[0], e.names[1])

	for step := 1; !state.IsGameOver(); step++ {
		if step > meta.MAX_MOVES {
			panic(fmt.Sprintf("game still running after %d moves", meta.MAX_MOVES))
		}

		player := state.CurrentPlayer()
		name := e.names[player-1]

		start := time.Now()
		move, ok := e.bots[player-1].NextMove()
		elapsed := time.Since(start)
		if !ok {
			return game.NoneYet, metrics.GameMetric{}, nil,
				fmt.Errorf("%w: %s as %v at step %d", ErrNoMove, name, player, step)
		}

		u, err := e.Master.Play(move.Move())
		if err != nil {
			return game.NoneYet, metrics.GameMetric{}, nil, fmt.Errorf("%s at step %d: %w", name, step, err)
		}

		log.Debug().Msgf("step %d: %s (%v) plays %v flipping %d", step, name, player, move, u.Flips)
		e.collector.AddMove(metrics.MoveMetric{
			Step:     step,
			Player:   int(player),
			Bot:      name,
			Row:      move.Row,
			Col:      move.Col,
			Score:    move.Score,
			Flips:    u.Flips,
			Duration: elapsed,
		})
	}

	outcome := state.Winner()
	p1, p2 := state.DiskCount(game.PlayerOne), state.DiskCount(game.PlayerTwo)
	gameMetric, moveMetrics := e.collector.Complete(outcome, p1, p2)

	log.Info().Msgf("%s vs %s: game over with %v after %d moves (%d-%d)",
		e.names[0], e.names[1], outcome, len(e.Master.Updates()), p1, p2)
	return outcome, gameMetric, moveMetrics, nil
}
