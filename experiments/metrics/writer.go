package metrics

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
)

const GameLogFile = "game_logs.txt.zst"

// AgentConfig describes a provider taking part in an experiment.
type AgentConfig struct {
	ID         int
	Provider   string // Registered provider name
	Depth      int
	Goroutines int
	Seed       uint64
}

type GameRecord struct {
	Matchup int
	Agent1  int // AgentConfig.ID playing White
	Agent2  int // AgentConfig.ID playing Black
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

// GameLog is the move list of a single game in move notation.
type GameLog struct {
	ID     string
	Result string
	Moves  []string
}

type Writer struct {
	baseDir string
}

// NewWriter creates a directory for one experiment below root, named by experiment and current timestamp.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "provider", "depth", "goroutines", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Provider,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Goroutines),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "agent1", "agent2", "white", "black", "result", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.Itoa(record.Matchup),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.White,
			record.Black,
			record.Result,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "depth", "goroutines", "duration", "nodes", "candidates", "ties", "score"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Ties),
			strconv.Itoa(record.Score),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// WriteGameLogs stores one zstd-compressed line per game: id, result and the moves separated by commas.
func (w *Writer) WriteGameLogs(logs []GameLog) error {
	path := filepath.Join(w.baseDir, GameLogFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game logs file: %w", err)
	}
	defer f.Close()

	encoder, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("create zstd encoder: %w", err)
	}

	buf := bufio.NewWriter(encoder)
	for _, log := range logs {
		line := log.ID + "\t" + log.Result + "\t" + strings.Join(log.Moves, ",") + "\n"
		if _, err := buf.WriteString(line); err != nil {
			encoder.Close()
			return fmt.Errorf("failed to write game log %s: %w", log.ID, err)
		}
	}
	if err := buf.Flush(); err != nil {
		encoder.Close()
		return fmt.Errorf("failed to flush game logs: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close zstd encoder: %w", err)
	}
	return nil
}

// ReadGameLogs reads game logs written by WriteGameLogs.
func ReadGameLogs(path string) ([]GameLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open game logs: %w", err)
	}
	defer f.Close()

	decoder, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	defer decoder.Close()

	return parseGameLogs(decoder)
}

func parseGameLogs(r io.Reader) ([]GameLog, error) {
	var logs []GameLog
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed game log line %q", line)
		}
		log := GameLog{ID: fields[0], Result: fields[1]}
		if fields[2] != "" {
			log.Moves = strings.Split(fields[2], ",")
		}
		logs = append(logs, log)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game logs: %w", err)
	}
	return logs, nil
}
