package searcher

import (
	"context"
	"math"
	"sync"
	"time"

	"morris/experiments/metrics"
	"morris/game"
	"morris/utils"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultDepth = 4
	WinScore     = 10

	// Score of a branch whose move could not be applied. Negating it stays in range.
	worst = math.MinInt + 1
)

type Option func(n *Negamax)

// Decision is the outcome of a search from the point of view of the player to move.
type Decision struct {
	Move  game.GameMove
	Score int
	Found bool // False for terminal states and at depth 0
	Ties  int  // Number of moves sharing Score
}

// Negamax is a fixed-depth negamax search with random tie-breaking.
type Negamax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	metrics    bool

	mu  sync.Mutex // Guards rng
	rng *rand.Rand
}

func WithDepth(depth int) Option {
	return func(n *Negamax) {
		if depth >= 0 {
			n.depth = depth
		}
	}
}

// WithGoroutines evaluates the moves at the root concurrently, each on its own copy of the state.
func WithGoroutines(goroutines int) Option {
	return func(n *Negamax) {
		if goroutines > 0 {
			n.goroutines = goroutines
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(n *Negamax) {
		n.rng = rand.New(rand.NewSource(seed))
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(n *Negamax) {
		if evaluate != nil {
			n.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(n *Negamax) {
		n.metrics = true
	}
}

func NewNegamax(options ...Option) *Negamax {
	n := &Negamax{ // Default values
		depth:      DefaultDepth,
		goroutines: 1,
		evaluate:   game.EvaluateMaterial,
	}
	for _, option := range options {
		option(n)
	}
	if n.rng == nil {
		n.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return n
}

func (n *Negamax) Depth() int {
	return n.depth
}

// FindNextMove returns the best move for the player to move at the configured depth.
// ok is false when the game is over or the search was cancelled.
func (n *Negamax) FindNextMove(ctx context.Context, state game.View) (game.GameMove, bool) {
	decision, _ := n.Search(ctx, state, n.depth)
	return decision.Move, decision.Found
}

// Search evaluates the state to the given depth. When several moves share the best score one of them is
// chosen uniformly at random. A cancelled context stops the search early; the returned decision is then
// not found.
func (n *Negamax) Search(ctx context.Context, state game.View, depth int) (Decision, metrics.SearchMetric) {
	collector := metrics.NewDummyCollector()
	if n.metrics {
		collector = metrics.NewCollector()
	}
	collector.Start(depth, n.goroutines)

	decision := n.root(ctx, state.Copy(), max(depth, 0), colorOf(state.NextToMove()), collector)
	return decision, collector.Complete(decision.Score, decision.Ties)
}

func (n *Negamax) root(ctx context.Context, state *game.GameState, depth, color int, collector metrics.Collector) Decision {
	if depth == 0 || state.Result() != game.Running {
		return Decision{Score: n.negamax(state, depth, color, collector)}
	}
	collector.AddNode()

	moves := game.ExpandMoves(state)
	collector.SetRoot(len(moves))
	if len(moves) == 0 {
		return Decision{Score: n.evaluate(state) * color}
	}

	scores := make([]int, len(moves))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n.goroutines)
	for i, move := range moves {
		i, move := i, move // per-iteration copies; module targets go1.21 loop semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores[i] = n.child(state, move, depth, color, collector)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Decision{}
	}

	indices := make([]int, len(moves))
	for i := range indices {
		indices[i] = i
	}
	best, score := utils.AllMaxBy(indices, func(i int) int { return scores[i] })

	n.mu.Lock()
	chosen := utils.ChooseRandom(n.rng, best)
	n.mu.Unlock()

	return Decision{
		Move:  moves[chosen],
		Score: score,
		Found: true,
		Ties:  len(best),
	}
}

func (n *Negamax) negamax(state *game.GameState, depth, color int, collector metrics.Collector) int {
	collector.AddNode()

	switch state.Result() {
	case game.WhiteWins:
		return WinScore * color
	case game.BlackWins:
		return -WinScore * color
	case game.Draw:
		return 0
	}
	if depth == 0 {
		return n.evaluate(state) * color
	}

	moves := game.ExpandMoves(state)
	if len(moves) == 0 {
		return n.evaluate(state) * color
	}
	best := math.MinInt
	for _, move := range moves {
		if score := n.child(state, move, depth, color, collector); score > best {
			best = score
		}
	}
	return best
}

// child scores a move by searching a copy of the state.
func (n *Negamax) child(state *game.GameState, move game.GameMove, depth, color int, collector metrics.Collector) int {
	next := state.Copy()
	if next.TryApplyMove(move) != game.OK {
		return worst
	}
	return -n.negamax(next, depth-1, -color, collector)
}

func colorOf(player game.Player) int {
	if player == game.White {
		return 1
	}
	return -1
}
