// Package gamemaster runs a game between two move providers.
package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"morris/experiments/metrics"
	"morris/game"
	"morris/meta"
	"morris/notation"
	"morris/player"

	"github.com/rs/zerolog/log"
)

var (
	ErrTurnLimit       = errors.New("turn limit reached")
	ErrTooManyAttempts = errors.New("too many invalid moves")
	ErrRewind          = errors.New("cannot rewind")
)

type Option func(g *Game)

// WithDelay waits after every move so that observers can follow the game.
func WithDelay(delay time.Duration) Option {
	return func(g *Game) {
		g.delay = delay
	}
}

// WithMaxTurns stops the game with ErrTurnLimit after the given number of moves. 0 disables the limit.
func WithMaxTurns(turns int) Option {
	return func(g *Game) {
		g.maxTurns = turns
	}
}

// WithMaxAttempts stops the game with ErrTooManyAttempts when a provider proposes that many invalid moves
// in a row. 0 disables the limit.
func WithMaxAttempts(attempts int) Option {
	return func(g *Game) {
		g.maxAttempts = attempts
	}
}

func WithObservers(observers ...Observer) Option {
	return func(g *Game) {
		for _, observer := range observers {
			g.observerID++
			g.observers = append(g.observers, registered{id: g.observerID, Observer: observer})
		}
	}
}

type registered struct {
	id int
	Observer
}

// Game is a single game of Nine Men's Morris. Run drives the game; the other methods may be called
// concurrently from a controlling goroutine.
type Game struct {
	delay       time.Duration
	maxTurns    int
	maxAttempts int

	mu          sync.Mutex
	state       *game.GameState
	moves       []game.GameMove
	moveMetrics []metrics.MoveMetric
	providers   [2]player.Provider
	observers   []registered
	observerID  int
	generation  uint64             // Bumped whenever a pending move request becomes stale
	cancelTurn  context.CancelFunc // Cancels the pending move request
}

func New(white, black player.Provider, options ...Option) *Game {
	g := &Game{
		maxTurns:    meta.MAX_TURNS,
		maxAttempts: meta.MAX_ATTEMPTS,
		state:       game.NewGameState(),
		providers:   [2]player.Provider{white, black},
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func index(p game.Player) int {
	if p == game.White {
		return 0
	}
	return 1
}

// Run plays until the game is over. It returns the result together with ErrTurnLimit when the turn limit
// is reached, ErrTooManyAttempts when a provider keeps proposing invalid moves, the context's error when
// ctx is cancelled or the error of a failing provider.
func (g *Game) Run(ctx context.Context) (game.Result, error) {
	g.mu.Lock()
	snapshot := g.state.Copy()
	g.mu.Unlock()
	g.notify(snapshot)

	attempts := 0
	for {
		g.mu.Lock()
		state := g.state
		if result := state.Result(); result != game.Running {
			turns := len(g.moves)
			g.mu.Unlock()
			log.Info().Msgf("game over after %d moves: %v", turns, result)
			return result, nil
		}
		if g.maxTurns > 0 && len(g.moves) >= g.maxTurns {
			g.mu.Unlock()
			return game.Running, fmt.Errorf("%w: %d moves", ErrTurnLimit, g.maxTurns)
		}
		next := state.NextToMove()
		provider := g.providers[index(next)]
		view := state.Copy()
		generation := g.generation
		turnCtx, cancel := context.WithCancel(ctx)
		g.cancelTurn = cancel
		g.mu.Unlock()

		move, err := provider.NextMove(turnCtx, view)
		cancel()
		if ctx.Err() != nil {
			return g.Result(), ctx.Err()
		}

		g.mu.Lock()
		if generation != g.generation {
			g.mu.Unlock()
			log.Debug().Stringer("player", next).Msg("discarding stale move request")
			attempts = 0
			continue
		}
		if err != nil {
			g.mu.Unlock()
			return game.Running, fmt.Errorf("failed to get move for %v: %w", next, err)
		}
		if result := g.state.TryApplyMove(move); result != game.OK {
			g.mu.Unlock()
			attempts++
			log.Debug().Stringer("player", next).Stringer("move", move).Stringer("result", result).
				Int("attempt", attempts).Msg("move rejected")
			if g.maxAttempts > 0 && attempts >= g.maxAttempts {
				return game.Running, fmt.Errorf("%w: %v proposed %d invalid moves", ErrTooManyAttempts, next, attempts)
			}
			continue
		}
		attempts = 0
		g.moves = append(g.moves, move)
		g.record(provider, next, move)
		turn := len(g.moves)
		snapshot := g.state.Copy()
		g.mu.Unlock()

		log.Debug().Int("turn", turn).Stringer("player", next).Stringer("move", move).Msg("move applied")
		g.notify(snapshot)

		if g.delay > 0 {
			select {
			case <-ctx.Done():
				return g.Result(), ctx.Err()
			case <-time.After(g.delay):
			}
		}
	}
}

// record stores the search metric of the provider that made the last move. Requires g.mu.
func (g *Game) record(provider player.Provider, p game.Player, move game.GameMove) {
	mp, ok := provider.(player.MetricProvider)
	if !ok {
		return
	}
	text, err := notation.FormatMove(move)
	if err != nil {
		text = move.String()
	}
	g.moveMetrics = append(g.moveMetrics, metrics.MoveMetric{
		Step:         len(g.moves),
		Player:       p.String(),
		Move:         text,
		SearchMetric: mp.LastMetric(),
	})
}

// stale cancels the pending move request and makes sure its answer is discarded. Requires g.mu.
func (g *Game) stale() {
	g.generation++
	if g.cancelTurn != nil {
		g.cancelTurn()
	}
}

// SetProvider replaces the provider of a player. If that player is to move, the pending request is
// cancelled and the new provider is asked instead.
func (g *Game) SetProvider(p game.Player, provider player.Provider) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.providers[index(p)] = provider
	if g.state.NextToMove() == p {
		g.stale()
	}
}

// RewindTo resets the game to the position after the first n moves. A running game continues from there.
func (g *Game) RewindTo(n int) error {
	g.mu.Lock()
	if n < 0 || n > len(g.moves) {
		g.mu.Unlock()
		return fmt.Errorf("%w: to move %d of %d", ErrRewind, n, len(g.moves))
	}
	state, err := Replay(g.moves[:n])
	if err != nil {
		g.mu.Unlock()
		return fmt.Errorf("failed to rewind: %w", err)
	}
	g.state = state
	g.moves = g.moves[:n:n]
	kept := g.moveMetrics[:0:0]
	for _, m := range g.moveMetrics {
		if m.Step <= n {
			kept = append(kept, m)
		}
	}
	g.moveMetrics = kept
	g.stale()
	snapshot := g.state.Copy()
	g.mu.Unlock()

	log.Info().Msgf("rewound to move %d", n)
	g.notify(snapshot)
	return nil
}

// AddObserver registers an observer and notifies it with the current position. The returned function
// unregisters it again.
func (g *Game) AddObserver(observer Observer) (remove func()) {
	g.mu.Lock()
	g.observerID++
	id := g.observerID
	g.observers = append(g.observers, registered{id: id, Observer: observer})
	snapshot := g.state.Copy()
	g.mu.Unlock()

	observer.Notify(snapshot)
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		for i, o := range g.observers {
			if o.id == id {
				g.observers = append(g.observers[:i:i], g.observers[i+1:]...)
				return
			}
		}
	}
}

func (g *Game) notify(state *game.GameState) {
	g.mu.Lock()
	observers := append([]registered(nil), g.observers...)
	g.mu.Unlock()
	for _, observer := range observers {
		observer.Notify(state)
	}
}

// Moves returns the moves applied so far.
func (g *Game) Moves() []game.GameMove {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]game.GameMove(nil), g.moves...)
}

// MoveMetrics returns the search metrics of providers that measure their moves.
func (g *Game) MoveMetrics() []metrics.MoveMetric {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]metrics.MoveMetric(nil), g.moveMetrics...)
}

// State returns a copy of the current state.
func (g *Game) State() *game.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Copy()
}

func (g *Game) Result() game.Result {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Result()
}
