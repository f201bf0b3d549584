package game

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Board is the 8x8 grid, row-major. It is a value type: assigning a Board
// copies every cell.
type Board [Size][Size]Cell

// NewBoard returns the standard opening position
func NewBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = CellPlayerOne, CellPlayerOne
	b[mid-1][mid], b[mid][mid-1] = CellPlayerTwo, CellPlayerTwo
	return b
}

// IsOnBoard reports whether both coordinates lie in [0,Size)
func IsOnBoard(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the content of a square. The square must be on the board.
func (b *Board) At(row, col int) Cell {
	return b[row][col]
}

// Count returns the number of squares holding the given cell value
func (b *Board) Count(c Cell) int {
	count := 0
	for row := range b {
		for col := range b[row] {
			if b[row][col] == c {
				count++
			}
		}
	}
	return count
}

// String prints the board with row and column indices:
//
//	  0 1 2 3 4 5 6 7
//	0 0 0 0 0 0 0 0 0
//	...
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < Size; col++ {
		sb.WriteString(strconv.Itoa(col))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for row := 0; row < Size; row++ {
		sb.WriteString(strconv.Itoa(row))
		sb.WriteByte(' ')
		for col := 0; col < Size; col++ {
			sb.WriteString(strconv.Itoa(int(b[row][col])))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Render draws the board for a terminal. Player one disks are drawn as "X",
// player two disks as "O", and the squares listed in hints as ".".
// With termenv.Ascii the output carries no escape sequences.
func (b Board) Render(profile termenv.Profile, hints []ScoredMove) string {
	hinted := make(map[Move]bool, len(hints))
	for _, h := range hints {
		hinted[h.Move()] = true
	}

	green := profile.Color("2")
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < Size; col++ {
		sb.WriteString(strconv.Itoa(col))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for row := 0; row < Size; row++ {
		sb.WriteString(strconv.Itoa(row))
		sb.WriteByte(' ')
		for col := 0; col < Size; col++ {
			var style termenv.Style
			switch b[row][col] {
			case CellPlayerOne:
				style = profile.String("X").Foreground(profile.Color("0")).Bold()
			case CellPlayerTwo:
				style = profile.String("O").Foreground(profile.Color("15")).Bold()
			default:
				if hinted[Move{Row: row, Col: col}] {
					style = profile.String(".").Foreground(profile.Color("11"))
				} else {
					style = profile.String(" ")
				}
			}
			sb.WriteString(style.Background(green).String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
