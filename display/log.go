package display

import (
	"morris/game"

	"github.com/rs/zerolog"
)

// Log writes one structured event per position.
type Log struct {
	logger zerolog.Logger
}

func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Notify(state game.View) {
	level := zerolog.DebugLevel
	if state.Result() != game.Running {
		level = zerolog.InfoLevel
	}
	l.logger.WithLevel(level).
		Stringer("result", state.Result()).
		Stringer("next", state.NextToMove()).
		Stringer("white_phase", state.Phase(game.White)).
		Stringer("black_phase", state.Phase(game.Black)).
		Int("white_stones", state.CurrentStones(game.White)).
		Int("black_stones", state.CurrentStones(game.Black)).
		Str("board", compact(state.Board())).
		Msg("position")
}

// compact writes the board as 24 characters, one per point: W, B or '.'.
func compact(board game.Board) string {
	b := make([]byte, len(board))
	for point, o := range board {
		switch o {
		case game.WhiteStone:
			b[point] = 'W'
		case game.BlackStone:
			b[point] = 'B'
		default:
			b[point] = '.'
		}
	}
	return string(b)
}
