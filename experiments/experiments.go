// Package experiments runs round robin tournaments between registered bots.
package experiments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reversi/agent"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

var ErrNotEnoughContestants = errors.New("not enough contestants to run a tournament")

type Contestant struct {
	Name  string
	Score int // One point per match won
}

type Match struct {
	Contestant1 *Contestant
	Contestant2 *Contestant
}

// CreateMatches pairs every contestant with every later one, in order
func CreateMatches(contestants []*Contestant) []Match {
	matches := []Match{}
	for i := 0; i < len(contestants); i++ {
		for j := i + 1; j < len(contestants); j++ {
			matches = append(matches, Match{Contestant1: contestants[i], Contestant2: contestants[j]})
		}
	}
	return matches
}

type MatchResult struct {
	Contestant1 string
	Contestant2 string
	Wins1       int
	Wins2       int
	Ties        int
}

// Diff is positive when contestant 1 won the match and negative when contestant 2 did
func (r MatchResult) Diff() int {
	return r.Wins1 - r.Wins2
}

func (r MatchResult) String() string {
	return fmt.Sprintf("%s %d points, %s %d points, %d ties",
		r.Contestant1, r.Wins1, r.Contestant2, r.Wins2, r.Ties)
}

type Tournament struct {
	contestants []*Contestant
	games       int
	workers     int
	seed        uint64
	writer      *metrics.Writer

	matchRecords []metrics.MatchRecord
	gameRecords  []metrics.GameRecord
	moveRecords  []metrics.MoveRecord
}

type Option func(t *Tournament)

// WithGames sets the number of games per match
func WithGames(n int) Option {
	return func(t *Tournament) {
		t.games = n
	}
}

// WithWorkers sets how many games of a match run in parallel
func WithWorkers(n int) Option {
	return func(t *Tournament) {
		t.workers = n
	}
}

// WithSeed makes the contestant order and every bot decision reproducible
func WithSeed(seed uint64) Option {
	return func(t *Tournament) {
		t.seed = seed
	}
}

// WithMetrics stores contestants, matches, games and moves as CSV once the
// tournament is over
func WithMetrics(w *metrics.Writer) Option {
	return func(t *Tournament) {
		t.writer = w
	}
}

// NewTournament prepares a round robin between the named bots
func NewTournament(names []string, options ...Option) (*Tournament, error) {
	t := &Tournament{
		games:   meta.NUM_OF_GAMES,
		workers: meta.GO_ROUTINES,
		seed:    uint64(time.Now().UnixNano()),
	}
	for _, option := range options {
		option(t)
	}

	if t.games < 1 {
		return nil, fmt.Errorf("games per match must be positive, got %d", t.games)
	}
	if t.workers < 1 {
		t.workers = 1
	}

	for _, name := range names {
		if _, err := agent.Lookup(name); err != nil {
			return nil, err
		}
		t.contestants = append(t.contestants, &Contestant{Name: name})
	}
	return t, nil
}

// Run plays every match of the round robin and returns the leaderboard,
// best score first
func (t *Tournament) Run(ctx context.Context) ([]Contestant, error) {
	if len(t.contestants) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughContestants, len(t.contestants))
	}

	r := rand.New(rand.NewSource(t.seed))
	r.Shuffle(len(t.contestants), func(i, j int) {
		t.contestants[i], t.contestants[j] = t.contestants[j], t.contestants[i]
	})

	matches := CreateMatches(t.contestants)
	log.Info().Msgf("starting round robin tournament with %d contestants and %d matches", len(t.contestants), len(matches))

	for mi, m := range matches {
		result, err := t.PlayMatch(ctx, m.Contestant1.Name, m.Contestant2.Name)
		if err != nil {
			return nil, fmt.Errorf("match %d of %d: %w", mi+1, len(matches), err)
		}

		if result.Diff() > 0 {
			m.Contestant1.Score++
		} else if result.Diff() < 0 {
			m.Contestant2.Score++
		}
		log.Info().Msgf("completed match %d of %d, standings: %s", mi+1, len(matches), standings(t.contestants))
	}

	leaderboard := Leaderboard(t.contestants)
	log.Info().Msg("completed tournament")

	if t.writer != nil {
		if err := t.store(leaderboard); err != nil {
			return leaderboard, err
		}
	}
	return leaderboard, nil
}

type gameResult struct {
	c1IsPlayerOne bool
	outcome       game.Outcome
	gameMetric    metrics.GameMetric
	moveMetrics   []metrics.MoveMetric
}

// PlayMatch plays the configured number of games between two bots.
// Contestant 1 moves first in the even numbered games.
func (t *Tournament) PlayMatch(ctx context.Context, name1, name2 string) (MatchResult, error) {
	constructor1, err := agent.Lookup(name1)
	if err != nil {
		return MatchResult{}, err
	}
	constructor2, err := agent.Lookup(name2)
	if err != nil {
		return MatchResult{}, err
	}

	matchID := len(t.matchRecords) + 1
	log.Info().Msgf("starting match between %s and %s", name1, name2)

	results := make([]gameResult, t.games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)

	for i := 0; i < t.games; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			c1IsPlayerOne := i%2 == 0
			names := [2]string{name1, name2}
			constructors := [2]agent.Constructor{constructor1, constructor2}
			if !c1IsPlayerOne {
				names[0], names[1] = names[1], names[0]
				constructors[0], constructors[1] = constructors[1], constructors[0]
			}

			collector := metrics.NewDummyCollector()
			if t.writer != nil {
				collector = metrics.NewCollector()
			}
			e := engine.LocalEngine(names, constructors,
				engine.WithSeeds(botSeed(t.seed, matchID, i, 0), botSeed(t.seed, matchID, i, 1)),
				engine.WithMetrics(collector))

			outcome, gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return fmt.Errorf("game %d of %s vs %s: %w", i+1, names[0], names[1], err)
			}
			results[i] = gameResult{c1IsPlayerOne, outcome, gameMetric, moveMetrics}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return MatchResult{}, err
	}

	result := MatchResult{Contestant1: name1, Contestant2: name2}
	for _, res := range results {
		switch {
		case res.outcome == game.Tie:
			result.Ties++
		case (res.outcome == game.PlayerOneWins) == res.c1IsPlayerOne:
			result.Wins1++
		default:
			result.Wins2++
		}
	}
	t.record(matchID, result, results)

	switch {
	case result.Diff() > 0:
		log.Info().Msgf("match is over! %s wins. Results: %s", name1, result)
	case result.Diff() < 0:
		log.Info().Msgf("match is over! %s wins. Results: %s", name2, result)
	default:
		log.Info().Msgf("match is over! It's a tie. Results: %s", result)
	}
	return result, nil
}

func (t *Tournament) record(matchID int, result MatchResult, results []gameResult) {
	t.matchRecords = append(t.matchRecords, metrics.MatchRecord{
		ID:          matchID,
		Contestant1: result.Contestant1,
		Contestant2: result.Contestant2,
		Wins1:       result.Wins1,
		Wins2:       result.Wins2,
		Ties:        result.Ties,
	})
	if t.writer == nil {
		return
	}

	for _, res := range results {
		gameID := len(t.gameRecords) + 1
		t.gameRecords = append(t.gameRecords, metrics.GameRecord{
			ID:         gameID,
			Match:      matchID,
			GameMetric: res.gameMetric,
		})
		for _, mm := range res.moveMetrics {
			t.moveRecords = append(t.moveRecords, metrics.MoveRecord{
				Game:       gameID,
				MoveMetric: mm,
			})
		}
	}
}

func (t *Tournament) store(leaderboard []Contestant) error {
	records := make([]metrics.ContestantRecord, len(leaderboard))
	for i, c := range leaderboard {
		records[i] = metrics.ContestantRecord{Rank: i + 1, Name: c.Name, Score: c.Score}
	}

	err := t.writer.WriteContestants(records)
	if err != nil {
		return fmt.Errorf("failed to store contestants: %w", err)
	}
	err = t.writer.WriteMatchRecords(t.matchRecords)
	if err != nil {
		return fmt.Errorf("failed to store match records: %w", err)
	}
	err = t.writer.WriteGameRecords(t.gameRecords)
	if err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	err = t.writer.WriteMoveRecords(t.moveRecords)
	if err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}

	log.Info().Msgf("stored results in %s", t.writer.Dir())
	return nil
}

// Leaderboard copies the contestants sorted by score, highest first, with
// equal scores ordered by name
func Leaderboard(contestants []*Contestant) []Contestant {
	board := make([]Contestant, len(contestants))
	for i, c := range contestants {
		board[i] = *c
	}
	sort.SliceStable(board, func(i, j int) bool {
		if board[i].Score != board[j].Score {
			return board[i].Score > board[j].Score
		}
		return board[i].Name < board[j].Name
	})
	return board
}

const banner = "=============================================="

func PrintLeaderboard(w io.Writer, contestants []Contestant) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "============== Leaderboard: ==================")
	fmt.Fprintln(w, banner)
	for _, c := range contestants {
		fmt.Fprintf(w, "%s %d points\n", c.Name, c.Score)
	}
	fmt.Fprintln(w, banner)
}

func standings(contestants []*Contestant) string {
	parts := make([]string, len(contestants))
	for i, c := range contestants {
		parts[i] = fmt.Sprintf("%s %d", c.Name, c.Score)
	}
	return strings.Join(parts, ", ")
}

// botSeed derives an independent seed per match, game and side (splitmix64)
func botSeed(base uint64, match, index, side int) uint64 {
	z := base + uint64(match)<<32 + uint64(index)<<1 + uint64(side) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
