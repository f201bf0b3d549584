package agent

import (
	"reversi/game"
	"reversi/utils"

	"golang.org/x/exp/rand"
)

// Greedy plays the move that flips the most disks right now, choosing
// uniformly among equally good moves
type Greedy struct {
	game *game.GameState
	rand *rand.Rand
}

func NewGreedy(state *game.GameState, options ...Option) *Greedy {
	o := newOptions(state, options)
	return &Greedy{game: state, rand: o.rand}
}

func (b *Greedy) NextMove() (game.ScoredMove, bool) {
	return utils.ShuffledMax(b.rand, b.game.LegalMoves(), score)
}
