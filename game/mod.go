package game

import "fmt"

// Size is the number of rows and columns of the board
const Size = 8

// Player identifies one of the two sides. PlayerOne moves first.
type Player int

const (
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Opponent returns the other player
func (p Player) Opponent() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Cell returns the disk this player places on the board
func (p Player) Cell() Cell {
	return Cell(p)
}

func (p Player) String() string {
	return fmt.Sprintf("Player%d", int(p))
}

func (p Player) valid() bool {
	return p == PlayerOne || p == PlayerTwo
}

// Cell is the content of a single board square
type Cell int

const (
	CellEmpty     Cell = 0
	CellPlayerOne Cell = 1
	CellPlayerTwo Cell = 2
)

func (c Cell) valid() bool {
	return c == CellEmpty || c == CellPlayerOne || c == CellPlayerTwo
}

// Outcome of a game, using the same values as the classic getWinner contract:
// -1 while the game is running, 0 for a tie, otherwise the winning player number.
type Outcome int

const (
	NoneYet       Outcome = -1
	Tie           Outcome = 0
	PlayerOneWins Outcome = 1
	PlayerTwoWins Outcome = 2
)

func (o Outcome) String() string {
	switch o {
	case NoneYet:
		return "none yet"
	case Tie:
		return "tie"
	case PlayerOneWins:
		return "Player1"
	case PlayerTwoWins:
		return "Player2"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// directions lists the 8 unit steps a flip ray can follow
var directions = [8]struct{ dRow, dCol int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
