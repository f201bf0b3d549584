package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type ContestantRecord struct {
	Rank  int
	Name  string
	Score int // Tournament points
}

type MatchRecord struct {
	ID          int
	Contestant1 string
	Contestant2 string
	Wins1       int
	Wins2       int
	Ties        int
}

type GameRecord struct {
	ID    int
	Match int // MatchRecord.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	dir string
}

// NewWriter creates a fresh run directory below baseDir, named by the current
// UTC time and a random run ID
func NewWriter(baseDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	dir := filepath.Join(baseDir, fmt.Sprintf("%s-%s", timestamp, uuid.NewString()))
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		dir: dir,
	}, nil
}

// Dir is the run directory the CSV files are written to
func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) WriteContestants(records []ContestantRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Rank),
			record.Name,
			strconv.Itoa(record.Score),
		})
	}
	return w.write("contestants.csv", []string{"rank", "name", "score"}, rows)
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Contestant1,
			record.Contestant2,
			strconv.Itoa(record.Wins1),
			strconv.Itoa(record.Wins2),
			strconv.Itoa(record.Ties),
		})
	}
	header := []string{"id", "contestant1", "contestant2", "wins1", "wins2", "ties"}
	return w.write("match_records.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Match),
			record.PlayerOne,
			record.PlayerTwo,
			record.Winner,
			strconv.Itoa(record.PlayerOneDisks),
			strconv.Itoa(record.PlayerTwoDisks),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	header := []string{
		"id", "match", "player_one", "player_two", "winner", "player_one_disks",
		"player_two_disks", "start_time", "end_time", "duration", "total_moves",
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Bot,
			strconv.Itoa(record.Row),
			strconv.Itoa(record.Col),
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Flips),
			record.Duration.String(),
		})
	}
	header := []string{"game", "step", "player", "bot", "row", "col", "score", "flips", "duration"}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
