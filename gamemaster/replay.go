package gamemaster

import (
	"errors"
	"fmt"

	"morris/game"
)

var ErrReplay = errors.New("move cannot be replayed")

// Replay plays the moves from the initial position and returns the resulting state.
func Replay(moves []game.GameMove) (*game.GameState, error) {
	state := game.NewGameState()
	for i, move := range moves {
		if result := state.TryApplyMove(move); result != game.OK {
			return nil, fmt.Errorf("%w: move %d (%v) returned %v", ErrReplay, i+1, move, result)
		}
	}
	return state, nil
}
