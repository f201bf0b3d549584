package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var expectedOpening = Board{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 2, 0, 0, 0},
	{0, 0, 0, 2, 1, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

// skipBoard has PlayerOne to move with two legal moves, (7,6) and (0,0).
// After (7,6) PlayerTwo's only disk is (1,0), which cannot be used.
func skipBoard() Board {
	var b Board
	b[1][0] = CellPlayerTwo
	for row := 2; row < Size; row++ {
		b[row][0] = CellPlayerOne
	}
	b[7][4] = CellPlayerOne
	b[7][5] = CellPlayerTwo
	return b
}

func TestNewGameState(t *testing.T) {
	t.Run("opening position", func(t *testing.T) {
		gs := NewGameState()

		require.Equal(t, expectedOpening, gs.Board(), "Board should hold the four centre disks")
		require.Equal(t, PlayerOne, gs.CurrentPlayer(), "PlayerOne should move first")
		require.Equal(t, 2, gs.DiskCount(PlayerOne))
		require.Equal(t, 2, gs.DiskCount(PlayerTwo))
	})

	t.Run("opening is not over", func(t *testing.T) {
		gs := NewGameState()

		require.False(t, gs.IsGameOver(), "Opening position should not be terminal")
		require.Equal(t, NoneYet, gs.Winner(), "Winner should be NoneYet for a running game")
	})
}

func TestFromBoard(t *testing.T) {
	t.Run("panics on invalid player", func(t *testing.T) {
		require.Panics(t, func() {
			FromBoard(NewBoard(), Player(3))
		}, "Should panic when the player is neither one nor two")
	})

	t.Run("panics on invalid cell", func(t *testing.T) {
		b := NewBoard()
		b[0][0] = Cell(7)

		require.Panics(t, func() {
			FromBoard(b, PlayerOne)
		}, "Should panic when a cell holds an unknown value")
	})
}

func TestIsOnBoard(t *testing.T) {
	gs := NewGameState()
	require.True(t, gs.IsOnBoard(0, 0))
	require.True(t, gs.IsOnBoard(7, 7))
	require.False(t, gs.IsOnBoard(-1, 0))
	require.False(t, gs.IsOnBoard(0, 8))
	require.False(t, gs.IsOnBoard(8, 3))
}

func TestFlipsInDirection(t *testing.T) {
	t.Run("ray closed by own disk", func(t *testing.T) {
		gs := NewGameState()

		require.Equal(t, 1, gs.FlipsInDirection(PlayerOne, 2, 4, 1, 0),
			"Ray down from (2,4) should flip (3,4)")
	})

	t.Run("ray starting on own disk", func(t *testing.T) {
		gs := NewGameState()

		require.Equal(t, 0, gs.FlipsInDirection(PlayerTwo, 2, 4, 1, 0),
			"A ray that starts on an own disk flips nothing")
	})

	t.Run("ray into empty square", func(t *testing.T) {
		gs := NewGameState()

		require.Equal(t, 0, gs.FlipsInDirection(PlayerOne, 2, 4, 0, 1))
	})

	t.Run("ray falling off the board", func(t *testing.T) {
		var b Board
		for col := 1; col < Size; col++ {
			b[0][col] = CellPlayerTwo
		}
		gs := FromBoard(b, PlayerOne)

		require.Equal(t, 0, gs.FlipsInDirection(PlayerOne, 0, 0, 0, 1),
			"Opponent disks running off the board flip nothing")

		b[0][7] = CellPlayerOne
		gs = FromBoard(b, PlayerOne)
		require.Equal(t, 6, gs.FlipsInDirection(PlayerOne, 0, 0, 0, 1),
			"Six opponent disks closed by an own disk should flip")
	})

	t.Run("panics with off board origin", func(t *testing.T) {
		gs := NewGameState()

		require.Panics(t, func() {
			gs.FlipsInDirection(PlayerOne, -1, 0, 1, 0)
		}, "Should panic when the origin is off the board")
	})

	t.Run("panics with null direction", func(t *testing.T) {
		gs := NewGameState()

		require.Panics(t, func() {
			gs.FlipsInDirection(PlayerOne, 2, 4, 0, 0)
		}, "Should panic when the direction does not move")
	})
}

func TestLegalMoveFlipTotal(t *testing.T) {
	gs := NewGameState()

	require.Equal(t, 1, gs.LegalMoveFlipTotal(PlayerOne, 2, 4))
	require.Equal(t, 0, gs.LegalMoveFlipTotal(PlayerOne, 3, 3), "Occupied square should score 0")
	require.Equal(t, 0, gs.LegalMoveFlipTotal(PlayerOne, 3, 2), "Square without flips should score 0")
}

func TestPossibleMoves(t *testing.T) {
	t.Run("opening moves in row-major order", func(t *testing.T) {
		gs := NewGameState()

		require.Equal(t, []ScoredMove{
			{Row: 2, Col: 4, Score: 1},
			{Row: 3, Col: 5, Score: 1},
			{Row: 4, Col: 2, Score: 1},
			{Row: 5, Col: 3, Score: 1},
		}, gs.PossibleMoves(PlayerOne))
		require.Equal(t, []ScoredMove{
			{Row: 2, Col: 3, Score: 1},
			{Row: 3, Col: 2, Score: 1},
			{Row: 4, Col: 5, Score: 1},
			{Row: 5, Col: 4, Score: 1},
		}, gs.PossibleMoves(PlayerTwo))
	})

	t.Run("legal moves follow the current player", func(t *testing.T) {
		gs := NewGameState()
		require.Equal(t, gs.PossibleMoves(PlayerOne), gs.LegalMoves())

		require.True(t, gs.PlaceDisk(2, 4))
		require.Equal(t, gs.PossibleMoves(PlayerTwo), gs.LegalMoves())
	})

	t.Run("empty but not nil without moves", func(t *testing.T) {
		var b Board
		gs := FromBoard(b, PlayerOne)

		moves := gs.PossibleMoves(PlayerOne)
		require.NotNil(t, moves)
		require.Empty(t, moves)
	})
}

func TestPlaceDisk(t *testing.T) {
	t.Run("classic opening move", func(t *testing.T) {
		gs := NewGameState()

		require.True(t, gs.PlaceDisk(2, 4), "(2,4) should be legal for PlayerOne")
		require.Equal(t, CellPlayerOne, gs.board[2][4])
		require.Equal(t, CellPlayerOne, gs.board[3][4], "(3,4) should flip to PlayerOne")
		require.Equal(t, PlayerTwo, gs.CurrentPlayer(), "Turn should pass to PlayerTwo")
		require.Equal(t, 4, gs.DiskCount(PlayerOne))
		require.Equal(t, 1, gs.DiskCount(PlayerTwo))
	})

	t.Run("sequence of legal moves", func(t *testing.T) {
		gs := NewGameState()

		for _, m := range []Move{{2, 4}, {4, 5}, {5, 5}, {2, 3}, {2, 2}, {1, 3}} {
			require.True(t, gs.PlaceDisk(m.Row, m.Col), "Expected %v to be legal on\n%v", m, gs.Board())
		}
		require.Equal(t, CellPlayerTwo, gs.board[2][3], "(1,3) should flip (2,3) and (3,3)")
		require.Equal(t, CellPlayerTwo, gs.board[3][3])
	})

	t.Run("illegal moves leave the state untouched", func(t *testing.T) {
		for _, m := range []Move{{3, 2}, {5, 4}, {0, 0}, {3, 3}, {3, 4}, {5, 2}} {
			gs := NewGameState()
			before := *gs

			require.False(t, gs.PlaceDisk(m.Row, m.Col), "Expected %v to be illegal", m)
			require.Equal(t, before, *gs, "State should not change after rejecting %v", m)
		}
	})

	t.Run("flips every qualifying direction", func(t *testing.T) {
		var b Board
		b[2][3], b[1][3], b[0][3] = CellPlayerTwo, CellPlayerTwo, CellPlayerOne // up: 2
		b[3][4], b[3][5] = CellPlayerTwo, CellPlayerOne                         // right: 1
		b[4][4], b[5][5] = CellPlayerTwo, CellPlayerOne                         // down-right: 1
		b[4][3] = CellPlayerTwo                                                 // down: open end
		b[3][2] = CellPlayerOne                                                 // left: own disk
		gs := FromBoard(b, PlayerOne)

		require.Equal(t, 4, gs.LegalMoveFlipTotal(PlayerOne, 3, 3))
		require.True(t, gs.PlaceDisk(3, 3))

		for _, m := range []Move{{3, 3}, {2, 3}, {1, 3}, {3, 4}, {4, 4}} {
			require.Equal(t, CellPlayerOne, gs.board[m.Row][m.Col], "%v should belong to PlayerOne", m)
		}
		require.Equal(t, CellPlayerTwo, gs.board[4][3], "An open ray should not flip")
	})

	t.Run("panics with off board target", func(t *testing.T) {
		gs := NewGameState()

		require.Panics(t, func() {
			gs.PlaceDisk(8, 0)
		}, "Should panic when the target is off the board")
	})

	t.Run("panics once the game is over", func(t *testing.T) {
		gs := FromBoard(skipBoard(), PlayerOne)
		require.True(t, gs.PlaceDisk(7, 6))
		require.True(t, gs.PlaceDisk(0, 0))
		require.True(t, gs.IsGameOver())

		require.Panics(t, func() {
			gs.PlaceDisk(0, 1)
		}, "Should panic when the mover has no legal move")
	})
}

func TestTurnAdvance(t *testing.T) {
	t.Run("opponent without moves is skipped", func(t *testing.T) {
		gs := FromBoard(skipBoard(), PlayerOne)

		require.True(t, gs.PlaceDisk(7, 6))
		require.Empty(t, gs.PossibleMoves(PlayerTwo), "PlayerTwo should be stuck")
		require.Equal(t, PlayerOne, gs.CurrentPlayer(), "PlayerOne should move again")
		require.False(t, gs.IsGameOver())
	})

	t.Run("both players stuck ends the game", func(t *testing.T) {
		gs := FromBoard(skipBoard(), PlayerOne)
		require.True(t, gs.PlaceDisk(7, 6))

		require.True(t, gs.PlaceDisk(0, 0))
		require.True(t, gs.IsGameOver(), "No player can move once PlayerTwo has no disks")
		require.Equal(t, PlayerOneWins, gs.Winner())
		require.Equal(t, 0, gs.DiskCount(PlayerTwo))
	})
}

func TestWinner(t *testing.T) {
	t.Run("tie on a full board", func(t *testing.T) {
		var b Board
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				if row < Size/2 {
					b[row][col] = CellPlayerOne
				} else {
					b[row][col] = CellPlayerTwo
				}
			}
		}
		gs := FromBoard(b, PlayerTwo)

		require.True(t, gs.IsGameOver())
		require.Equal(t, Tie, gs.Winner())
	})

	t.Run("majority wins on a full board", func(t *testing.T) {
		var b Board
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				if row < 3 {
					b[row][col] = CellPlayerOne
				} else {
					b[row][col] = CellPlayerTwo
				}
			}
		}
		gs := FromBoard(b, PlayerOne)

		require.Equal(t, PlayerTwoWins, gs.Winner())
	})
}

func TestCopy(t *testing.T) {
	gs := NewGameState()
	c := gs.Copy()

	require.True(t, c.PlaceDisk(2, 4))
	require.Equal(t, expectedOpening, gs.Board(), "Playing on the copy should not touch the original board")
	require.Equal(t, PlayerOne, gs.CurrentPlayer(), "Playing on the copy should not touch the original player")
	require.Equal(t, PlayerTwo, c.CurrentPlayer())
}

// walkRay recomputes a ray independently of the engine
func walkRay(b Board, player Player, row, col, dRow, dCol int) []Move {
	var ray []Move
	r, c := row+dRow, col+dCol
	for IsOnBoard(r, c) && b[r][c] == player.Opponent().Cell() {
		ray = append(ray, Move{Row: r, Col: c})
		r += dRow
		c += dCol
	}
	if IsOnBoard(r, c) && b[r][c] == player.Cell() {
		return ray
	}
	return nil
}

func TestRandomPlayouts(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for g := 0; g < 20; g++ {
		gs := NewGameState()
		for !gs.IsGameOver() {
			before := *gs
			mover := gs.CurrentPlayer()
			moves := gs.LegalMoves()
			require.NotEmpty(t, moves, "A running game must offer the mover a legal move")

			// Every rejected square leaves the state untouched
			for row := 0; row < Size; row++ {
				for col := 0; col < Size; col++ {
					if gs.LegalMoveFlipTotal(mover, row, col) == 0 {
						require.False(t, gs.PlaceDisk(row, col))
						require.Equal(t, before, *gs)
					}
				}
			}

			m := moves[r.Intn(len(moves))]
			flipped := map[Move]bool{}
			for _, d := range directions {
				ray := walkRay(before.board, mover, m.Row, m.Col, d.dRow, d.dCol)
				require.Equal(t, len(ray), gs.FlipsInDirection(mover, m.Row, m.Col, d.dRow, d.dCol))
				for _, cell := range ray {
					flipped[cell] = true
				}
			}
			require.Equal(t, m.Score, len(flipped), "Score should equal the number of flipped disks")

			require.True(t, gs.PlaceDisk(m.Row, m.Col))

			for row := 0; row < Size; row++ {
				for col := 0; col < Size; col++ {
					switch {
					case row == m.Row && col == m.Col, flipped[Move{Row: row, Col: col}]:
						require.Equal(t, mover.Cell(), gs.board[row][col])
					default:
						require.Equal(t, before.board[row][col], gs.board[row][col],
							"(%d,%d) is outside the flipped set and should not change", row, col)
					}
				}
			}
			require.Equal(t, before.DiskCount(mover)+1+m.Score, gs.DiskCount(mover))
			require.Equal(t, before.DiskCount(mover.Opponent())-m.Score, gs.DiskCount(mover.Opponent()))

			if len(gs.PossibleMoves(mover.Opponent())) > 0 {
				require.Equal(t, mover.Opponent(), gs.CurrentPlayer())
			} else {
				require.Equal(t, mover, gs.CurrentPlayer(), "Stuck opponent should be skipped")
			}
		}

		require.Empty(t, gs.PossibleMoves(PlayerOne))
		require.Empty(t, gs.PossibleMoves(PlayerTwo))
		one, two := gs.DiskCount(PlayerOne), gs.DiskCount(PlayerTwo)
		switch {
		case one > two:
			require.Equal(t, PlayerOneWins, gs.Winner())
		case two > one:
			require.Equal(t, PlayerTwoWins, gs.Winner())
		default:
			require.Equal(t, Tie, gs.Winner())
		}
	}
}
