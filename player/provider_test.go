package player

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"morris/game"
	"morris/searcher"

	"github.com/stretchr/testify/require"
)

func play(t *testing.T, moves ...game.GameMove) *game.GameState {
	t.Helper()
	state := game.NewGameState()
	for _, move := range moves {
		require.Equal(t, game.OK, state.TryApplyMove(move), "Setup move %v should apply", move)
	}
	return state
}

func TestRandom(t *testing.T) {
	t.Run("plays basic moves", func(t *testing.T) {
		state := play(t, game.Place(0), game.Place(9))
		random := NewRandom(1)
		for i := 0; i < 20; i++ {
			move, err := random.NextMove(context.Background(), state)
			require.NoError(t, err)
			require.Contains(t, state.BasicMoves(), move)
		}
	})

	t.Run("removes an opponent stone after closing a mill", func(t *testing.T) {
		state := play(t, game.Place(0), game.Place(9), game.Place(1), game.Place(10))
		random := NewRandom(3)
		for i := 0; i < 200; i++ {
			move, err := random.NextMove(context.Background(), state)
			require.NoError(t, err)
			if move.To() != 2 {
				continue
			}
			remove, ok := move.Remove()
			require.True(t, ok, "Closing move should remove a stone")
			require.Contains(t, []int{9, 10}, remove)
			return
		}
		t.Fatal("Random should eventually close the mill")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewRandom(1).NextMove(ctx, game.NewGameState())
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestGreedy(t *testing.T) {
	t.Run("blocks an open mill", func(t *testing.T) {
		state := play(t, game.Place(0), game.Place(9), game.Place(1))

		move, err := NewGreedy(1).NextMove(context.Background(), state)

		require.NoError(t, err)
		require.Equal(t, game.Place(2), move)
	})

	t.Run("closes a mill and removes a legal stone", func(t *testing.T) {
		state := play(t, game.Place(0), game.Place(21), game.Place(1), game.Place(3))

		move, err := NewGreedy(1).NextMove(context.Background(), state)

		require.NoError(t, err)
		require.Equal(t, 2, move.To())
		require.Equal(t, game.Valid, state.IsValidMove(move))
		remove, _ := move.Remove()
		require.Contains(t, []int{3, 21}, remove)
	})

	t.Run("always plays valid moves", func(t *testing.T) {
		state := game.NewGameState()
		white, black := NewGreedy(5), NewGreedy(6)
		for turn := 0; turn < 60 && state.Result() == game.Running; turn++ {
			provider := white
			if state.NextToMove() == game.Black {
				provider = black
			}
			move, err := provider.NextMove(context.Background(), state)
			require.NoError(t, err)
			require.Equal(t, game.OK, state.TryApplyMove(move), "Greedy move %v on turn %d", move, turn)
		}
	})
}

func TestNegamax(t *testing.T) {
	t.Run("records metrics", func(t *testing.T) {
		state := play(t, game.Place(0), game.Place(9), game.Place(1), game.Place(10))
		negamax := NewNegamax(searcher.WithDepth(1), searcher.WithMetrics())

		move, err := negamax.NextMove(context.Background(), state)

		require.NoError(t, err)
		require.Equal(t, 2, move.To())
		metric := negamax.LastMetric()
		require.Equal(t, 1, metric.Depth)
		require.Equal(t, 21, metric.Candidates)
		require.Positive(t, metric.Nodes)
	})

	t.Run("finished game", func(t *testing.T) {
		var board game.Board
		board[0], board[1], board[2] = game.WhiteStone, game.WhiteStone, game.WhiteStone
		board[9], board[10] = game.BlackStone, game.BlackStone
		state, err := game.FromSetup(game.Setup{Board: board, NextToMove: game.Black, WhitePlaced: 9, BlackPlaced: 9})
		require.NoError(t, err)

		_, err = NewNegamax().NextMove(context.Background(), state)

		require.ErrorIs(t, err, ErrNoMoves)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewNegamax().NextMove(ctx, game.NewGameState())
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestConsole(t *testing.T) {
	t.Run("re-prompts on unparsable input", func(t *testing.T) {
		var out bytes.Buffer
		console := NewConsole(strings.NewReader("hello\np a7\n"), &out)

		move, err := console.NextMove(context.Background(), game.NewGameState())

		require.NoError(t, err)
		require.Equal(t, game.Place(0), move)
		require.Equal(t, 2, strings.Count(out.String(), "White to move (Placing)"), "Console should prompt twice")
		require.Contains(t, out.String(), consoleHelp)
	})

	t.Run("reads consecutive moves", func(t *testing.T) {
		console := NewConsole(strings.NewReader("p a7\nm a7 d7\n"), io.Discard)

		first, err := console.NextMove(context.Background(), game.NewGameState())
		require.NoError(t, err)
		second, err := console.NextMove(context.Background(), game.NewGameState())
		require.NoError(t, err)

		require.Equal(t, game.Place(0), first)
		require.Equal(t, game.Move(0, 1), second)
	})

	t.Run("end of input", func(t *testing.T) {
		console := NewConsole(strings.NewReader(""), io.Discard)

		_, err := console.NextMove(context.Background(), game.NewGameState())

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("cancelled while waiting for input", func(t *testing.T) {
		reader, writer := io.Pipe()
		defer writer.Close()
		console := NewConsole(reader, io.Discard)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := console.NextMove(ctx, game.NewGameState())

		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestRegistry(t *testing.T) {
	t.Run("creates every registered provider", func(t *testing.T) {
		for _, name := range Names() {
			provider, err := New(name, Settings{Seed: 1, In: strings.NewReader(""), Out: io.Discard})
			require.NoError(t, err, "Provider %s", name)
			require.NotNil(t, provider, "Provider %s", name)
		}
		require.Equal(t, []string{"greedy", "human", "negamax", "random"}, Names())
	})

	t.Run("negamax settings", func(t *testing.T) {
		provider, err := New("negamax", Settings{Seed: 1, Depth: 2, Metrics: true})
		require.NoError(t, err)
		require.IsType(t, &Negamax{}, provider)
		require.Equal(t, 2, provider.(*Negamax).searcher.Depth())
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New("alphazero", Settings{})
		require.ErrorIs(t, err, ErrUnknownProvider)
	})

	t.Run("provider func", func(t *testing.T) {
		var provider Provider = ProviderFunc(func(context.Context, game.View) (game.GameMove, error) {
			return game.Place(4), nil
		})
		move, err := provider.NextMove(context.Background(), game.NewGameState())
		require.NoError(t, err)
		require.Equal(t, game.Place(4), move)
	})
}
