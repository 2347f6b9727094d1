package game

const (
	FieldSize = 24 // Number of points on the board
	StonesMax = 9  // Stones each player places during the placing phase
	FlyingMax = 3  // Stone count at which a moving player starts flying
)

// Mill is a triple of points that forms three-in-a-row when occupied by one player.
type Mill [3]int

// Mills lists every possible mill. Consecutive members of a mill are adjacent points.
var Mills = [...]Mill{
	// Rows
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{9, 10, 11},
	{12, 13, 14},
	{15, 16, 17},
	{18, 19, 20},
	{21, 22, 23},

	// Columns
	{0, 9, 21},
	{3, 10, 18},
	{6, 11, 15},
	{1, 4, 7},
	{16, 19, 22},
	{8, 12, 17},
	{5, 13, 20},
	{2, 14, 23},
}

var (
	connections  [FieldSize][FieldSize]bool
	adjacentIDs  [FieldSize][]int
	millsByPoint [FieldSize][]int // Indices into Mills
)

// Derives the adjacency graph from the mill table
func init() {
	for i, mill := range Mills {
		for j := 0; j < len(mill)-1; j++ {
			connections[mill[j]][mill[j+1]] = true
			connections[mill[j+1]][mill[j]] = true
		}
		for _, point := range mill {
			millsByPoint[point] = append(millsByPoint[point], i)
		}
	}
	for a := 0; a < FieldSize; a++ {
		for b := 0; b < FieldSize; b++ {
			if connections[a][b] {
				adjacentIDs[a] = append(adjacentIDs[a], b)
			}
		}
	}
}

// AreAdjacent checks if two points are connected by a line on the board.
func AreAdjacent(a, b int) bool {
	return connections[a][b]
}

// Connected returns the points adjacent to a point in ascending order.
func Connected(point int) []int {
	return append([]int(nil), adjacentIDs[point]...)
}

// MillsContaining returns the mills the point is a member of.
func MillsContaining(point int) []Mill {
	mills := make([]Mill, 0, len(millsByPoint[point]))
	for _, i := range millsByPoint[point] {
		mills = append(mills, Mills[i])
	}
	return mills
}

// Contains reports whether the point is part of the mill.
func (m Mill) Contains(point int) bool {
	return m[0] == point || m[1] == point || m[2] == point
}

// InRange reports whether a point identifier denotes a board location.
func InRange(point int) bool {
	return point >= 0 && point < FieldSize
}
