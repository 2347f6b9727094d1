package game

import "fmt"

const noPoint = -1

// GameMove represents a possibly invalid move. It is an immutable value: two moves are equal iff
// their origin, destination and removal all match, so moves can be compared with == and used as map keys.
type GameMove struct {
	from   int
	to     int
	remove int
}

// Place creates a move that places a new stone.
func Place(to int) GameMove {
	return GameMove{from: noPoint, to: to, remove: noPoint}
}

// PlaceRemove creates a move that places a new stone and removes an opponent stone.
func PlaceRemove(to, remove int) GameMove {
	return GameMove{from: noPoint, to: to, remove: remove}
}

// Move creates a move that slides or flies a stone.
func Move(from, to int) GameMove {
	return GameMove{from: from, to: to, remove: noPoint}
}

// MoveRemove creates a move that slides or flies a stone and removes an opponent stone.
func MoveRemove(from, to, remove int) GameMove {
	return GameMove{from: from, to: to, remove: remove}
}

// From returns the origin of a moved stone. ok is false for placements.
func (m GameMove) From() (from int, ok bool) {
	return m.from, m.from != noPoint
}

// To returns the destination of the stone.
func (m GameMove) To() int {
	return m.to
}

// Remove returns the opponent stone removed by the move, if any.
func (m GameMove) Remove() (remove int, ok bool) {
	return m.remove, m.remove != noPoint
}

// IsPlacement reports whether the move places a new stone.
func (m GameMove) IsPlacement() bool {
	return m.from == noPoint
}

// WithRemove returns a copy of the move that removes the given opponent stone.
func (m GameMove) WithRemove(remove int) GameMove {
	m.remove = remove
	return m
}

// WithoutRemove returns a copy of the move without removal.
func (m GameMove) WithoutRemove() GameMove {
	m.remove = noPoint
	return m
}

func (m GameMove) String() string {
	s := fmt.Sprintf("%d", m.to)
	if from, ok := m.From(); ok {
		s = fmt.Sprintf("%d-%d", from, m.to)
	}
	if remove, ok := m.Remove(); ok {
		s += fmt.Sprintf("x%d", remove)
	}
	return s
}
