package agent

import (
	"fmt"
	"reversi/game"
	"reversi/utils"

	"golang.org/x/exp/rand"
)

// TwoSteps looks one reply ahead: every legal move is scored by its flips
// minus the flips of the opponent's best greedy answer, and the best net
// score is played. The opponent is assumed to reply greedily; this is not
// minimax.
type TwoSteps struct {
	game *game.GameState
	rand *rand.Rand
}

func NewTwoSteps(state *game.GameState, options ...Option) *TwoSteps {
	o := newOptions(state, options)
	return &TwoSteps{game: state, rand: o.rand}
}

func (b *TwoSteps) NextMove() (game.ScoredMove, bool) {
	return utils.ShuffledMax(b.rand, b.Evaluate(), score)
}

// Evaluate returns the legal moves in row-major order with their net scores
func (b *TwoSteps) Evaluate() []game.ScoredMove {
	return lookahead(b.game, b.rand, unweighted)
}

// TwoStepsWithLocation is TwoSteps with a positional bonus applied to both
// the evaluated move and every opponent reply, so the simulated opponent
// plays the same location-aware greedy heuristic.
type TwoStepsWithLocation struct {
	game *game.GameState
	rand *rand.Rand
}

func NewTwoStepsWithLocation(state *game.GameState, options ...Option) *TwoStepsWithLocation {
	o := newOptions(state, options)
	return &TwoStepsWithLocation{game: state, rand: o.rand}
}

func (b *TwoStepsWithLocation) NextMove() (game.ScoredMove, bool) {
	return utils.ShuffledMax(b.rand, b.Evaluate(), score)
}

// Evaluate returns the legal moves in row-major order with their weighted net scores
func (b *TwoStepsWithLocation) Evaluate() []game.ScoredMove {
	return lookahead(b.game, b.rand, game.WithLocationBonus)
}

func unweighted(m game.ScoredMove) game.ScoredMove {
	return m
}

// lookahead scores each legal move of the player to move on a private copy
// of state: weight(move) minus the best weight(reply) of the opponent, or
// weight(move) alone when the opponent cannot reply.
func lookahead(state *game.GameState, r *rand.Rand, weight func(game.ScoredMove) game.ScoredMove) []game.ScoredMove {
	mover := state.CurrentPlayer()
	moves := state.LegalMoves()
	scored := make([]game.ScoredMove, len(moves))

	for i, m := range moves {
		next := state.Copy()
		if !next.PlaceDisk(m.Row, m.Col) {
			panic(fmt.Sprintf("legal move %v rejected by the engine", m))
		}

		replies := next.PossibleMoves(mover.Opponent())
		for j := range replies {
			replies[j] = weight(replies[j])
		}

		net := weight(m)
		if reply, ok := utils.ShuffledMax(r, replies, score); ok {
			net.Score -= reply.Score
		}
		scored[i] = net
	}
	return scored
}
