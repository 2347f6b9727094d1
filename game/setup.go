package game

import (
	"errors"
	"fmt"
)

var ErrSetup = errors.New("invalid position")

// Setup describes an arbitrary position, e.g. a puzzle or a test fixture.
type Setup struct {
	Board       Board
	NextToMove  Player
	WhitePlaced int // Stones White has placed so far
	BlackPlaced int // Stones Black has placed so far
}

// FromSetup builds a state from a position. Phases follow from the placed and current stone counts and the
// result is derived the same way TryApplyMove derives it. The returned state has no history.
func FromSetup(s Setup) (*GameState, error) {
	if s.NextToMove != White && s.NextToMove != Black {
		return nil, fmt.Errorf("%w: next to move %v", ErrSetup, s.NextToMove)
	}
	for _, o := range s.Board {
		if o != Free && o != WhiteStone && o != BlackStone {
			return nil, fmt.Errorf("%w: occupation %v", ErrSetup, o)
		}
	}

	gs := &GameState{
		board:        s.Board,
		nextToMove:   s.NextToMove,
		result:       Running,
		stonesPlaced: [2]int{s.WhitePlaced, s.BlackPlaced},
	}
	for _, player := range []Player{White, Black} {
		i := player.index()
		gs.currentStones[i] = s.Board.Count(player)
		placed := gs.stonesPlaced[i]
		if placed < 0 || placed > StonesMax || gs.currentStones[i] > placed {
			return nil, fmt.Errorf("%w: %v placed %d stones and has %d on the board",
				ErrSetup, player, placed, gs.currentStones[i])
		}
		switch {
		case placed < StonesMax:
			gs.phase[i] = Placing
		case gs.currentStones[i] <= FlyingMax:
			gs.phase[i] = Flying
		default:
			gs.phase[i] = Moving
		}
	}

	for _, player := range []Player{White, Black} {
		if gs.Phase(player) != Placing && gs.CurrentStones(player) < FlyingMax {
			gs.result = WinFor(player.Opponent())
			return gs, nil
		}
	}
	if !gs.hasMoves() {
		gs.result = WinFor(gs.nextToMove.Opponent())
	}
	return gs, nil
}
