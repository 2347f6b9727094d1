package game

// EvaluateMaterial is the difference in stones on the board, positive when White is ahead.
func EvaluateMaterial(v View) int {
	return v.CurrentStones(White) - v.CurrentStones(Black)
}

// EvaluateMobility adds the difference in sliding moves to the material balance. Material dominates.
func EvaluateMobility(v View) int {
	board := v.Board()
	return 10*EvaluateMaterial(v) + mobility(board, White) - mobility(board, Black)
}

func mobility(board Board, p Player) int {
	n := 0
	for from, o := range board {
		if !o.IsOccupiedBy(p) {
			continue
		}
		for _, to := range adjacentIDs[from] {
			if board[to] == Free {
				n++
			}
		}
	}
	return n
}
