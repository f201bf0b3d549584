package gamemaster

import (
	"errors"
	"fmt"
	"reversi/game"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrOffBoard    = errors.New("move is off the board")
	ErrIllegalMove = errors.New("illegal move")
)

// Update records one accepted placement
type Update struct {
	Step   int
	Player game.Player
	Move   game.Move
	Flips  int
	Board  game.Board // Board after the move
}

// GameMaster referees a single game. Moves are validated before they reach
// the game state, so callers get an error instead of a panic.
type GameMaster struct {
	state   *game.GameState
	updates []Update
}

// New starts a game from the standard opening
func New() *GameMaster {
	return &GameMaster{
		state: game.NewGameState(),
	}
}

// FromState referees a game that is already under way
func FromState(state *game.GameState) *GameMaster {
	if state == nil {
		panic("game master needs a game state")
	}
	return &GameMaster{
		state: state,
	}
}

// State returns the live game. Bots are bound to this handle and see every
// move played through the game master.
func (gm *GameMaster) State() *game.GameState {
	return gm.state
}

func (gm *GameMaster) Play(move game.Move) (Update, error) {
	if gm.state.IsGameOver() {
		return Update{}, ErrGameOver
	}
	if !game.IsOnBoard(move.Row, move.Col) {
		return Update{}, fmt.Errorf("%w: %v", ErrOffBoard, move)
	}

	player := gm.state.CurrentPlayer()
	flips := gm.state.LegalMoveFlipTotal(player, move.Row, move.Col)
	if flips == 0 || !gm.state.PlaceDisk(move.Row, move.Col) {
		return Update{}, fmt.Errorf("%w: %v for %v", ErrIllegalMove, move, player)
	}

	u := Update{
		Step:   len(gm.updates) + 1,
		Player: player,
		Move:   move,
		Flips:  flips,
		Board:  gm.state.Board(),
	}
	gm.updates = append(gm.updates, u)
	return u, nil
}

// Updates returns the accepted moves in the order they were played
func (gm *GameMaster) Updates() []Update {
	updates := make([]Update, len(gm.updates))
	copy(updates, gm.updates)
	return updates
}
