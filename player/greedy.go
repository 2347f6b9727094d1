package player

import (
	"context"

	"morris/game"
	"morris/utils"
)

const (
	closeScore = 10
	blockScore = 12
	openScore  = 9
)

// Greedy looks one move ahead. It prefers blocking an opponent mill over closing its own, and closing over
// opening one of its mills to close it again later. Remaining ties go to the destination with the most own
// stones in its mills and are then broken at random.
type Greedy struct {
	rng *source
}

func NewGreedy(seed uint64) *Greedy {
	return &Greedy{rng: newSource(seed)}
}

func (g *Greedy) NextMove(ctx context.Context, state game.View) (game.GameMove, error) {
	if err := ctx.Err(); err != nil {
		return game.GameMove{}, err
	}
	moves := state.BasicMoves()
	if len(moves) == 0 {
		return game.GameMove{}, ErrNoMoves
	}

	best, _ := utils.AllMaxBy(moves, func(move game.GameMove) int { return scoreMove(state, move) })
	move := chooseRandom(g.rng, best)
	if state.IsValidMove(move) != game.ClosesMill {
		return move, nil
	}

	candidates, _ := utils.AllMaxBy(game.RemovalCandidates(state), func(point int) int {
		return scoreRemove(state, point)
	})
	if len(candidates) == 0 {
		return move, nil
	}
	return move.WithRemove(chooseRandom(g.rng, candidates)), nil
}

func scoreMove(state game.View, move game.GameMove) int {
	board := state.Board()
	player := state.NextToMove()
	opponent := player.Opponent()

	score := 0
	if state.IsValidMove(move) == game.ClosesMill {
		score += closeScore
	}
	for _, mill := range game.MillsContaining(move.To()) {
		if countInMill(board, mill, opponent) == 2 {
			score += blockScore
			break
		}
	}
	if from, ok := move.From(); ok && board.InClosedMill(from, player) {
		score += openScore
	}
	for _, mill := range game.MillsContaining(move.To()) {
		score += countInMill(board, mill, player)
	}
	return score
}

// scoreRemove prefers stones that take part in many opponent lines.
func scoreRemove(state game.View, point int) int {
	board := state.Board()
	opponent := state.NextToMove().Opponent()
	score := 0
	for _, mill := range game.MillsContaining(point) {
		score += countInMill(board, mill, opponent)
	}
	return score
}

func countInMill(board game.Board, mill game.Mill, player game.Player) int {
	n := 0
	for _, point := range mill {
		if board[point].IsOccupiedBy(player) {
			n++
		}
	}
	return n
}
