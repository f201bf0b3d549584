package game

import (
	"fmt"
)

// GameState is the engine for one game: the board plus the player to move.
// It is mutated in place by PlaceDisk; search code works on Copy().
type GameState struct {
	board         Board
	currentPlayer Player
}

// NewGameState returns the standard opening position with PlayerOne to move
func NewGameState() *GameState {
	return &GameState{
		board:         NewBoard(),
		currentPlayer: PlayerOne,
	}
}

// FromBoard builds a state from an arbitrary position, e.g. for analysis.
// Panics on an invalid player or cell value.
func FromBoard(board Board, current Player) *GameState {
	if !current.valid() {
		panic(fmt.Sprintf("invalid player %d", int(current)))
	}
	for row := range board {
		for col := range board[row] {
			if !board[row][col].valid() {
				panic(fmt.Sprintf("invalid cell value %d at (%d,%d)", int(board[row][col]), row, col))
			}
		}
	}
	return &GameState{board: board, currentPlayer: current}
}

// Copy returns an independent state. Board is an array, so the assignment
// duplicates every cell and nothing is shared with gs.
func (gs *GameState) Copy() *GameState {
	return &GameState{
		board:         gs.board,
		currentPlayer: gs.currentPlayer,
	}
}

// Board returns a snapshot of the grid
func (gs *GameState) Board() Board {
	return gs.board
}

func (gs *GameState) CurrentPlayer() Player {
	return gs.currentPlayer
}

// IsOnBoard reports whether (row, col) is a square of the board
func (gs *GameState) IsOnBoard(row, col int) bool {
	return IsOnBoard(row, col)
}

// FlipsInDirection counts the opponent disks player would flip along one ray
// starting next to (row, col). The count is returned only when the ray of
// opponent disks is closed by one of player's own disks; a ray that runs off
// the board or into an empty square flips nothing.
func (gs *GameState) FlipsInDirection(player Player, row, col, dRow, dCol int) int {
	if !IsOnBoard(row, col) {
		panic(fmt.Sprintf("position (%d,%d) is off board", row, col))
	}
	if dRow < -1 || dRow > 1 || dCol < -1 || dCol > 1 || (dRow == 0 && dCol == 0) {
		panic(fmt.Sprintf("invalid direction (%d,%d)", dRow, dCol))
	}

	own := player.Cell()
	opponent := player.Opponent().Cell()

	flips := 0
	r, c := row+dRow, col+dCol
	for IsOnBoard(r, c) && gs.board[r][c] == opponent {
		flips++
		r += dRow
		c += dCol
	}
	if IsOnBoard(r, c) && gs.board[r][c] == own {
		return flips
	}
	return 0
}

// LegalMoveFlipTotal is the number of disks player would flip by playing at
// (row, col); zero means the move is illegal.
func (gs *GameState) LegalMoveFlipTotal(player Player, row, col int) int {
	if !IsOnBoard(row, col) {
		panic(fmt.Sprintf("position (%d,%d) is off board", row, col))
	}
	if gs.board[row][col] != CellEmpty {
		return 0
	}
	total := 0
	for _, d := range directions {
		total += gs.FlipsInDirection(player, row, col, d.dRow, d.dCol)
	}
	return total
}

// PlaceDisk plays the current player's disk at (row, col). It returns false,
// leaving the state untouched, when the square is occupied or the move flips
// nothing. On success the flips are applied and the turn advances.
//
// Off-board coordinates and moving on a position where the current player has
// no legal move at all are caller errors and panic.
func (gs *GameState) PlaceDisk(row, col int) bool {
	if !IsOnBoard(row, col) {
		panic(fmt.Sprintf("position (%d,%d) is off board", row, col))
	}
	if gs.board[row][col] != CellEmpty {
		return false
	}

	// Collect every ray first so the board is only written on success
	var rays [len(directions)]int
	total := 0
	for i, d := range directions {
		rays[i] = gs.FlipsInDirection(gs.currentPlayer, row, col, d.dRow, d.dCol)
		total += rays[i]
	}
	if total == 0 {
		if !gs.hasMoves(gs.currentPlayer) {
			panic(fmt.Sprintf("%s has no legal move: check IsGameOver before placing a disk", gs.currentPlayer))
		}
		return false
	}

	own := gs.currentPlayer.Cell()
	gs.board[row][col] = own
	for i, d := range directions {
		r, c := row, col
		for k := 0; k < rays[i]; k++ {
			r += d.dRow
			c += d.dCol
			gs.board[r][c] = own
		}
	}

	gs.switchToNextPlayablePlayer()
	return true
}

// switchToNextPlayablePlayer hands the turn to the opponent unless the
// opponent has no legal move, in which case the mover plays again.
// Termination is not detected here; callers check IsGameOver.
func (gs *GameState) switchToNextPlayablePlayer() Player {
	gs.currentPlayer = gs.currentPlayer.Opponent()
	if !gs.hasMoves(gs.currentPlayer) {
		gs.currentPlayer = gs.currentPlayer.Opponent()
	}
	return gs.currentPlayer
}

// PossibleMoves lists every legal move for player in row-major order, each
// scored with its flip total
func (gs *GameState) PossibleMoves(player Player) []ScoredMove {
	moves := []ScoredMove{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if flips := gs.LegalMoveFlipTotal(player, row, col); flips > 0 {
				moves = append(moves, ScoredMove{Row: row, Col: col, Score: flips})
			}
		}
	}
	return moves
}

// LegalMoves lists the legal moves of the player to move
func (gs *GameState) LegalMoves() []ScoredMove {
	return gs.PossibleMoves(gs.currentPlayer)
}

func (gs *GameState) hasMoves(player Player) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if gs.LegalMoveFlipTotal(player, row, col) > 0 {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports whether neither player has a legal move
func (gs *GameState) IsGameOver() bool {
	return !gs.hasMoves(PlayerOne) && !gs.hasMoves(PlayerTwo)
}

// DiskCount returns the number of disks player has on the board
func (gs *GameState) DiskCount(player Player) int {
	return gs.board.Count(player.Cell())
}

// Winner compares disk counts once the game is over
func (gs *GameState) Winner() Outcome {
	if !gs.IsGameOver() {
		return NoneYet
	}
	one, two := gs.DiskCount(PlayerOne), gs.DiskCount(PlayerTwo)
	switch {
	case one > two:
		return PlayerOneWins
	case two > one:
		return PlayerTwoWins
	default:
		return Tie
	}
}
