package game

import "fmt"

// Move is a placement target on the board
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// ScoredMove is a move with a strategy dependent score: the raw flip count for
// greedy evaluation, a net advantage for look-ahead evaluation.
type ScoredMove struct {
	Row   int
	Col   int
	Score int
}

// Move drops the score
func (sm ScoredMove) Move() Move {
	return Move{Row: sm.Row, Col: sm.Col}
}

func (sm ScoredMove) String() string {
	return fmt.Sprintf("(%d,%d):%d", sm.Row, sm.Col, sm.Score)
}
