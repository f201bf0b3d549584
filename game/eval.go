package game

// Positional bonuses added to a move's score by location-aware strategies
const (
	CornerBonus = 3
	EdgeBonus   = 0
)

// IsCorner reports whether m is one of the four corner squares
func IsCorner(m Move) bool {
	return (m.Row == 0 || m.Row == Size-1) && (m.Col == 0 || m.Col == Size-1)
}

// IsEdge reports whether m lies on the outer ring, corners included
func IsEdge(m Move) bool {
	return m.Row == 0 || m.Row == Size-1 || m.Col == 0 || m.Col == Size-1
}

// LocationBonus returns the positional bonus for m. Corners take precedence
// over edges; interior squares get nothing.
func LocationBonus(m Move) int {
	switch {
	case IsCorner(m):
		return CornerBonus
	case IsEdge(m):
		return EdgeBonus
	default:
		return 0
	}
}

// WithLocationBonus returns sm with its positional bonus added to the score
func WithLocationBonus(sm ScoredMove) ScoredMove {
	sm.Score += LocationBonus(sm.Move())
	return sm
}
