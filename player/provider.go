// Package player contains the move providers that can play a side of a game.
package player

import (
	"context"
	"errors"
	"sync"

	"morris/experiments/metrics"
	"morris/game"
	"morris/searcher"
	"morris/utils"

	"golang.org/x/exp/rand"
)

var ErrNoMoves = errors.New("no moves available")

// Provider supplies moves for the player to move. NextMove may block; it may return an invalid move, in
// which case the caller asks again. Once ctx is cancelled it must return promptly with ctx.Err().
type Provider interface {
	NextMove(ctx context.Context, state game.View) (game.GameMove, error)
}

type ProviderFunc func(ctx context.Context, state game.View) (game.GameMove, error)

func (f ProviderFunc) NextMove(ctx context.Context, state game.View) (game.GameMove, error) {
	return f(ctx, state)
}

// MetricProvider is implemented by providers that measure their decisions.
type MetricProvider interface {
	Provider
	LastMetric() metrics.SearchMetric
}

// Negamax plays the moves chosen by a negamax search.
type Negamax struct {
	searcher *searcher.Negamax

	mu     sync.Mutex
	metric metrics.SearchMetric
}

func NewNegamax(options ...searcher.Option) *Negamax {
	return &Negamax{searcher: searcher.NewNegamax(options...)}
}

func (n *Negamax) NextMove(ctx context.Context, state game.View) (game.GameMove, error) {
	decision, metric := n.searcher.Search(ctx, state, n.searcher.Depth())
	if err := ctx.Err(); err != nil {
		return game.GameMove{}, err
	}
	if !decision.Found {
		return game.GameMove{}, ErrNoMoves
	}

	n.mu.Lock()
	n.metric = metric
	n.mu.Unlock()
	return decision.Move, nil
}

// LastMetric returns the metric of the last completed search. It is empty unless the searcher was
// created with searcher.WithMetrics.
func (n *Negamax) LastMetric() metrics.SearchMetric {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.metric
}

// source is a random number generator that is safe for concurrent use.
type source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSource(seed uint64) *source {
	return &source{rng: rand.New(rand.NewSource(seed))}
}

func chooseRandom[T any](s *source, items []T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return utils.ChooseRandom(s.rng, items)
}

// Random plays a random basic move. When the move closes a mill it removes a random opponent stone,
// which may be protected; the move is then rejected and Random is asked again.
type Random struct {
	rng *source
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: newSource(seed)}
}

func (r *Random) NextMove(ctx context.Context, state game.View) (game.GameMove, error) {
	if err := ctx.Err(); err != nil {
		return game.GameMove{}, err
	}
	moves := state.BasicMoves()
	if len(moves) == 0 {
		return game.GameMove{}, ErrNoMoves
	}

	move := chooseRandom(r.rng, moves)
	if state.IsValidMove(move) == game.ClosesMill {
		if opponent := state.Board().Points(state.NextToMove().Opponent()); len(opponent) > 0 {
			move = move.WithRemove(chooseRandom(r.rng, opponent))
		}
	}
	return move, nil
}
