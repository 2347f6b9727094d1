package searcher

import (
	"context"

	"morris/game"
)

// Searcher picks moves for the player to move.
type Searcher interface {
	FindNextMove(ctx context.Context, state game.View) (move game.GameMove, ok bool)
}

var _ Searcher = (*Negamax)(nil)
