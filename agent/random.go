package agent

import (
	"reversi/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move
type Random struct {
	game *game.GameState
	rand *rand.Rand
}

func NewRandom(state *game.GameState, options ...Option) *Random {
	o := newOptions(state, options)
	return &Random{game: state, rand: o.rand}
}

func (b *Random) NextMove() (game.ScoredMove, bool) {
	moves := b.game.LegalMoves()
	if len(moves) == 0 {
		return game.ScoredMove{}, false
	}
	return moves[b.rand.Intn(len(moves))], true
}
