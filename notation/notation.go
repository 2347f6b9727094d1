// Package notation translates board points and moves to and from their human-readable form.
//
// Points are labelled like a chess board: a file letter a..g and a rank digit 1..7 on the 7x7 lattice
// that contains the 24 intersections. a7 is the top left corner (point 0), g1 the bottom right (point 23).
package notation

import (
	"errors"
	"fmt"
	"strings"

	"morris/game"
)

const Size = 7 // Width and height of the lattice

var ErrFormat = errors.New("invalid format")

var labels = [game.FieldSize]string{
	"a7", "d7", "g7",
	"b6", "d6", "f6",
	"c5", "d5", "e5",
	"a4", "b4", "c4", "e4", "f4", "g4",
	"c3", "d3", "e3",
	"b2", "d2", "f2",
	"a1", "d1", "g1",
}

var (
	points  = make(map[string]int, game.FieldSize)
	lattice [Size][Size]int // Point at row, col or -1
)

func init() {
	for row := range lattice {
		for col := range lattice[row] {
			lattice[row][col] = -1
		}
	}
	for id, label := range labels {
		points[label] = id
		row, col := coordinates(label)
		lattice[row][col] = id
	}
}

func coordinates(label string) (row, col int) {
	return Size - int(label[1]-'0'), int(label[0] - 'a')
}

// Label returns the label of a point, e.g. "a7" for 0.
func Label(id int) (string, error) {
	if !game.InRange(id) {
		return "", fmt.Errorf("%w: point %d", ErrFormat, id)
	}
	return labels[id], nil
}

// Point returns the point with the given label. Labels are case-insensitive.
func Point(label string) (int, error) {
	id, ok := points[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return 0, fmt.Errorf("%w: label %q", ErrFormat, label)
	}
	return id, nil
}

// Coordinates returns the lattice row and column of a point. Row 0 is rank 7.
func Coordinates(id int) (row, col int, err error) {
	label, err := Label(id)
	if err != nil {
		return 0, 0, err
	}
	row, col = coordinates(label)
	return row, col, nil
}

// PointAt returns the point at a lattice position.
func PointAt(row, col int) (int, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size || lattice[row][col] < 0 {
		return 0, fmt.Errorf("%w: no point at row %d col %d", ErrFormat, row, col)
	}
	return lattice[row][col], nil
}

// Move commands
const (
	CmdPlace       = "p"  // p <to>
	CmdPlaceRemove = "pr" // pr <to> <remove>
	CmdMove        = "m"  // m <from> <to>
	CmdMoveRemove  = "mr" // mr <from> <to> <remove>
)

// ParseMove parses a move command such as "m a7 d7" or "pr g4 b6".
func ParseMove(text string) (game.GameMove, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return game.GameMove{}, fmt.Errorf("%w: empty move", ErrFormat)
	}

	var arity int
	switch fields[0] {
	case CmdPlace:
		arity = 1
	case CmdPlaceRemove, CmdMove:
		arity = 2
	case CmdMoveRemove:
		arity = 3
	default:
		return game.GameMove{}, fmt.Errorf("%w: unknown command %q", ErrFormat, fields[0])
	}
	if len(fields)-1 != arity {
		return game.GameMove{}, fmt.Errorf("%w: %q takes %d points, got %d", ErrFormat, fields[0], arity, len(fields)-1)
	}

	args := make([]int, arity)
	for i, label := range fields[1:] {
		id, err := Point(label)
		if err != nil {
			return game.GameMove{}, err
		}
		args[i] = id
	}

	switch fields[0] {
	case CmdPlace:
		return game.Place(args[0]), nil
	case CmdPlaceRemove:
		return game.PlaceRemove(args[0], args[1]), nil
	case CmdMove:
		return game.Move(args[0], args[1]), nil
	default:
		return game.MoveRemove(args[0], args[1], args[2]), nil
	}
}

// FormatMove returns the command for a move. It is the inverse of ParseMove.
func FormatMove(move game.GameMove) (string, error) {
	to, err := Label(move.To())
	if err != nil {
		return "", err
	}
	parts := []string{CmdPlace, to}
	if from, ok := move.From(); ok {
		label, err := Label(from)
		if err != nil {
			return "", err
		}
		parts = []string{CmdMove, label, to}
	}
	if remove, ok := move.Remove(); ok {
		label, err := Label(remove)
		if err != nil {
			return "", err
		}
		parts[0] += "r"
		parts = append(parts, label)
	}
	return strings.Join(parts, " "), nil
}
