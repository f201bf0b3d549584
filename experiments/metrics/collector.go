package metrics

import (
	"reversi/game"
	"time"
)

type MoveMetric struct {
	Step     int
	Player   int    // Player ID
	Bot      string // Registered bot name
	Row      int
	Col      int
	Score    int // Bot's own evaluation of the move
	Flips    int // Disks actually turned
	Duration time.Duration
}

type GameMetric struct {
	PlayerOne      string // Bot name
	PlayerTwo      string // Bot name
	Winner         string // Bot name, or "tie"
	PlayerOneDisks int
	PlayerTwoDisks int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector records one game as it is played
type Collector interface {
	Start(playerOne, playerTwo string)
	AddMove(m MoveMetric)
	Complete(outcome game.Outcome, playerOneDisks, playerTwoDisks int) (GameMetric, []MoveMetric)
}

type collector struct {
	playerOne string
	playerTwo string
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(playerOne, playerTwo string) {
	m.startTime = time.Now()
	m.playerOne = playerOne
	m.playerTwo = playerTwo
	m.moves = nil
}

func (m *collector) AddMove(mm MoveMetric) {
	m.moves = append(m.moves, mm)
}

func (m *collector) Complete(outcome game.Outcome, playerOneDisks, playerTwoDisks int) (GameMetric, []MoveMetric) {
	endTime := time.Now()
	winner := outcome.String()
	switch outcome {
	case game.PlayerOneWins:
		winner = m.playerOne
	case game.PlayerTwoWins:
		winner = m.playerTwo
	}

	return GameMetric{
		PlayerOne:      m.playerOne,
		PlayerTwo:      m.playerTwo,
		Winner:         winner,
		PlayerOneDisks: playerOneDisks,
		PlayerTwoDisks: playerTwoDisks,
		StartTime:      m.startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(m.startTime),
		TotalMoves:     len(m.moves),
	}, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(playerOne, playerTwo string) {}
func (m *dummyCollector) AddMove(mm MoveMetric)             {}
func (m *dummyCollector) Complete(outcome game.Outcome, playerOneDisks, playerTwoDisks int) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
