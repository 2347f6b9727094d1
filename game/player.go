package game

import "fmt"

// Player identifies one of the two sides.
type Player uint8

const (
	White Player = iota + 1
	Black
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	switch p {
	case White:
		return Black
	case Black:
		return White
	}
	panic(fmt.Sprintf("invalid player %d", p))
}

func (p Player) index() int {
	switch p {
	case White:
		return 0
	case Black:
		return 1
	}
	panic(fmt.Sprintf("invalid player %d", p))
}

func (p Player) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return fmt.Sprintf("Player(%d)", p)
}

// Occupation is the content of a single board point.
type Occupation uint8

const (
	Free Occupation = iota
	WhiteStone
	BlackStone
)

// StoneOf returns the occupation value for a player's stone.
func StoneOf(p Player) Occupation {
	switch p {
	case White:
		return WhiteStone
	case Black:
		return BlackStone
	}
	panic(fmt.Sprintf("invalid player %d", p))
}

// IsOccupiedBy checks whether the point holds a stone of the player.
func (o Occupation) IsOccupiedBy(p Player) bool {
	return o != Free && o == StoneOf(p)
}

func (o Occupation) String() string {
	switch o {
	case Free:
		return "Free"
	case WhiteStone:
		return "White"
	case BlackStone:
		return "Black"
	}
	return fmt.Sprintf("Occupation(%d)", o)
}

// Board holds the occupation of every point. It is a value type: copies are independent.
type Board [FieldSize]Occupation

// Count returns the number of stones the player has on the board.
func (b Board) Count(p Player) int {
	stone := StoneOf(p)
	n := 0
	for _, o := range b {
		if o == stone {
			n++
		}
	}
	return n
}

// Points returns the points occupied by the player in ascending order.
func (b Board) Points(p Player) []int {
	stone := StoneOf(p)
	var points []int
	for point, o := range b {
		if o == stone {
			points = append(points, point)
		}
	}
	return points
}

// IsClosedMill reports whether every point of the mill is occupied by the player.
func (b Board) IsClosedMill(m Mill, p Player) bool {
	stone := StoneOf(p)
	return b[m[0]] == stone && b[m[1]] == stone && b[m[2]] == stone
}

// InClosedMill reports whether the point belongs to a mill fully occupied by the player.
func (b Board) InClosedMill(point int, p Player) bool {
	for _, i := range millsByPoint[point] {
		if b.IsClosedMill(Mills[i], p) {
			return true
		}
	}
	return false
}

// AllInClosedMills reports whether every stone of the player belongs to some closed mill of that player.
// It holds trivially when the player has no stones on the board.
func (b Board) AllInClosedMills(p Player) bool {
	stone := StoneOf(p)
	for point, o := range b {
		if o == stone && !b.InClosedMill(point, p) {
			return false
		}
	}
	return true
}
