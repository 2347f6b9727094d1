package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/*
cases:
- initial state, placing phase and the transition to moving
- validity: destination, origin, mill closure, removal shape, protected stones
- application: invalid moves leave the state untouched, flying, attrition, stalemate, repetition
- copies are independent
*/

func apply(t *testing.T, state *GameState, moves ...GameMove) {
	t.Helper()
	for _, move := range moves {
		require.Equal(t, OK, state.TryApplyMove(move), "Move %v should apply", move)
	}
}

func fromSetup(t *testing.T, white, black []int, next Player) *GameState {
	t.Helper()
	state, err := FromSetup(Setup{
		Board:       boardOf(white, black),
		NextToMove:  next,
		WhitePlaced: StonesMax,
		BlackPlaced: StonesMax,
	})
	require.NoError(t, err)
	return state
}

func TestNewGameState(t *testing.T) {
	state := NewGameState()

	require.Equal(t, Board{}, state.Board())
	require.Equal(t, White, state.NextToMove())
	require.Equal(t, Running, state.Result())
	for _, p := range []Player{White, Black} {
		require.Equal(t, Placing, state.Phase(p))
		require.Zero(t, state.StonesPlaced(p))
		require.Zero(t, state.CurrentStones(p))
	}
	require.Len(t, state.BasicMoves(), FieldSize)
}

func TestPlacingPhase(t *testing.T) {
	t.Run("alternating placements lead to moving", func(t *testing.T) {
		state := NewGameState()
		for point := 0; point < 2*StonesMax; point++ {
			require.Equal(t, Placing, state.Phase(state.NextToMove()))
			apply(t, state, Place(point))
		}

		require.Equal(t, Moving, state.Phase(White))
		require.Equal(t, Moving, state.Phase(Black))
		require.Equal(t, Running, state.Result())
		require.Equal(t, White, state.NextToMove())
		require.Equal(t, StonesMax, state.StonesPlaced(White))
		require.Equal(t, StonesMax, state.CurrentStones(Black))
		for _, move := range state.BasicMoves() {
			from, ok := move.From()
			require.True(t, ok, "Moving players slide stones")
			require.True(t, AreAdjacent(from, move.To()))
		}
	})

	t.Run("placement counters", func(t *testing.T) {
		state := NewGameState()
		apply(t, state, Place(0), Place(9), Place(1), Place(10), PlaceRemove(2, 9))

		require.Equal(t, 3, state.StonesPlaced(White))
		require.Equal(t, 2, state.StonesPlaced(Black))
		require.Equal(t, 1, state.CurrentStones(Black))
		require.Equal(t, Running, state.Result(), "Players still placing cannot lose by attrition")
		require.Equal(t, 5, state.HistoryLen())
	})
}

func TestIsValidMove(t *testing.T) {
	placing := NewGameState()
	apply(t, placing, Place(0), Place(9), Place(1), Place(10))

	t.Run("destination", func(t *testing.T) {
		require.Equal(t, Invalid, placing.IsValidMove(Place(0)), "Occupied")
		require.Equal(t, Invalid, placing.IsValidMove(Place(FieldSize)), "Out of range")
		require.Equal(t, Invalid, placing.IsValidMove(Place(-2)), "Out of range")
		require.Equal(t, Valid, placing.IsValidMove(Place(5)))
	})

	t.Run("origin", func(t *testing.T) {
		require.Equal(t, Invalid, placing.IsValidMove(Move(0, 5)), "Must place all stones first")

		moving := fromSetup(t, []int{0, 4, 12, 20}, []int{9, 10, 16, 23}, White)
		require.Equal(t, Invalid, moving.IsValidMove(Place(2)), "All stones placed")
		require.Equal(t, Invalid, moving.IsValidMove(Move(0, 2)), "Not adjacent")
		require.Equal(t, Invalid, moving.IsValidMove(Move(9, 21)), "Opponent stone")
		require.Equal(t, Invalid, moving.IsValidMove(Move(1, 2)), "Empty origin")
		require.Equal(t, Invalid, moving.IsValidMove(Move(FieldSize, 2)), "Out of range")
		require.Equal(t, Valid, moving.IsValidMove(Move(0, 1)))

		flying := fromSetup(t, []int{0, 4, 12}, []int{9, 10, 16, 23}, White)
		require.Equal(t, Flying, flying.Phase(White))
		require.Equal(t, Valid, flying.IsValidMove(Move(0, 22)), "Flying stones go anywhere")
	})

	t.Run("mill closure", func(t *testing.T) {
		require.Equal(t, ClosesMill, placing.IsValidMove(Place(2)))
		require.Equal(t, Valid, placing.IsValidMove(PlaceRemove(2, 9)))
		require.Equal(t, Invalid, placing.IsValidMove(PlaceRemove(2, 0)), "Own stone")
		require.Equal(t, Invalid, placing.IsValidMove(PlaceRemove(2, 5)), "Free point")
		require.Equal(t, Invalid, placing.IsValidMove(PlaceRemove(2, FieldSize)), "Out of range")
		require.Equal(t, DoesNotCloseMill, placing.IsValidMove(PlaceRemove(5, 9)))

		moving := fromSetup(t, []int{0, 1, 14, 20}, []int{9, 10, 16, 23}, White)
		require.Equal(t, ClosesMill, moving.IsValidMove(Move(14, 2)))
		require.Equal(t, Valid, moving.IsValidMove(MoveRemove(14, 2, 16)))
	})

	t.Run("vacated origin does not count", func(t *testing.T) {
		flying := fromSetup(t, []int{0, 1, 2}, []int{9, 10, 16, 23}, White)
		require.Equal(t, Valid, flying.IsValidMove(Move(2, 14)), "Leaving a mill does not close it")

		closed := fromSetup(t, []int{3, 4, 5, 0}, []int{9, 10, 16, 23}, White)
		require.Equal(t, Valid, closed.IsValidMove(Move(0, 1)), "A mill elsewhere is not closed by the move")
	})

	t.Run("stones in closed mills are protected", func(t *testing.T) {
		state := fromSetup(t, []int{0, 1, 14, 20}, []int{21, 22, 23, 9}, White)

		require.Equal(t, Invalid, state.IsValidMove(MoveRemove(14, 2, 21)))
		require.Equal(t, Invalid, state.IsValidMove(MoveRemove(14, 2, 22)))
		require.Equal(t, Valid, state.IsValidMove(MoveRemove(14, 2, 9)))
	})

	t.Run("protection is lifted when every stone is in a mill", func(t *testing.T) {
		state := fromSetup(t, []int{0, 1, 14, 20}, []int{21, 22, 23, 3, 4, 5}, White)

		require.Equal(t, Valid, state.IsValidMove(MoveRemove(14, 2, 21)))
		require.Equal(t, Valid, state.IsValidMove(MoveRemove(14, 2, 4)))
	})
}

func TestTryApplyMove(t *testing.T) {
	t.Run("invalid move leaves the state untouched", func(t *testing.T) {
		state := NewGameState()
		apply(t, state, Place(0), Place(9), Place(1), Place(10))
		before := *state
		before.history = append([]Board(nil), state.history...)

		for _, move := range []GameMove{Place(0), Place(2), PlaceRemove(2, 0), PlaceRemove(5, 9), Move(0, 2)} {
			require.Equal(t, InvalidMove, state.TryApplyMove(move), "Move %v", move)
		}
		require.Equal(t, before, *state)
	})

	t.Run("removal reduces the opponent to flying", func(t *testing.T) {
		state := fromSetup(t, []int{0, 1, 14, 20}, []int{9, 10, 12, 22}, White)

		apply(t, state, MoveRemove(14, 2, 22))

		require.Equal(t, 3, state.CurrentStones(Black))
		require.Equal(t, Flying, state.Phase(Black))
		require.Equal(t, Moving, state.Phase(White))
		require.Equal(t, Running, state.Result())
		require.Equal(t, Black, state.NextToMove())
	})

	t.Run("reducing the opponent to two stones wins", func(t *testing.T) {
		state := fromSetup(t, []int{0, 1, 14, 20}, []int{9, 10, 22}, White)
		require.Equal(t, Flying, state.Phase(Black))

		apply(t, state, MoveRemove(14, 2, 22))

		require.Equal(t, WhiteWins, state.Result())
		require.Equal(t, GameNotRunning, state.TryApplyMove(Move(9, 22)))
	})

	t.Run("blocking every stone wins", func(t *testing.T) {
		state := fromSetup(t, []int{9, 4, 14, 11}, []int{0, 1, 2, 3}, White)
		require.Equal(t, Running, state.Result())

		apply(t, state, Move(11, 10))

		require.Equal(t, WhiteWins, state.Result())
		require.Empty(t, state.BasicMoves())
	})

	t.Run("repeated position is a draw", func(t *testing.T) {
		state := fromSetup(t, []int{0, 5, 19, 12}, []int{23, 15, 7, 10}, White)

		apply(t, state, Move(0, 1), Move(23, 22), Move(1, 0))
		require.Equal(t, Running, state.Result())

		apply(t, state, Move(22, 23))
		require.Equal(t, Draw, state.Result())
		require.Equal(t, GameNotRunning, state.TryApplyMove(Move(0, 1)))
	})
}

func TestCopy(t *testing.T) {
	state := NewGameState()
	apply(t, state, Place(0), Place(9))

	a, b := state.Copy(), state.Copy()
	apply(t, a, Place(1))
	apply(t, b, Place(2))

	require.Equal(t, Free, state.Board()[1], "Original should not change")
	require.Equal(t, 2, state.HistoryLen())
	require.Equal(t, Free, a.Board()[2])
	require.Equal(t, Free, b.Board()[1])
	require.Equal(t, a.history[:2], b.history[:2], "Copies share the common history")
	require.Equal(t, state.Board(), a.history[2])
	require.Equal(t, state.Board(), b.history[2])
}
