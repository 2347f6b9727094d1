package game

// RemovalCandidates returns the opponent stones the player to move may remove after closing a mill.
// Stones inside closed mills are only candidates when every opponent stone sits in a closed mill.
func RemovalCandidates(v View) []int {
	board := v.Board()
	opponent := v.NextToMove().Opponent()
	allInMill := board.AllInClosedMills(opponent)

	var candidates []int
	for _, point := range board.Points(opponent) {
		if allInMill || !board.InClosedMill(point, opponent) {
			candidates = append(candidates, point)
		}
	}
	return candidates
}

// ExpandMoves returns every fully specified move of the player to move: moves that close a mill
// are expanded into one move per legal removal.
func ExpandMoves(v View) []GameMove {
	basic := v.BasicMoves()
	moves := make([]GameMove, 0, len(basic))
	var removals []int
	for _, move := range basic {
		if v.IsValidMove(move) != ClosesMill {
			moves = append(moves, move)
			continue
		}
		if removals == nil {
			removals = RemovalCandidates(v)
		}
		for _, remove := range removals {
			moves = append(moves, move.WithRemove(remove))
		}
	}
	return moves
}
