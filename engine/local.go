package engine

import (
	"context"
	"errors"
	"time"

	"morris/experiments/metrics"
	"morris/game"
	"morris/gamemaster"
	"morris/notation"
	"morris/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Unfinished is the recorded result of a game stopped by the turn limit.
const Unfinished = "Unfinished"

// Agent is a provider together with the name it is recorded under.
type Agent struct {
	Name     string
	Provider player.Provider
}

// LocalEngine plays headless games in the current process.
type LocalEngine struct {
	white   Agent
	black   Agent
	options []gamemaster.Option
}

var _ Engine = (*LocalEngine)(nil)

func NewLocalEngine(white, black Agent, options ...gamemaster.Option) *LocalEngine {
	return &LocalEngine{
		white:   white,
		black:   black,
		options: options,
	}
}

// Run plays one game. Reaching the turn limit is not an error; the game is recorded as Unfinished.
func (e *LocalEngine) Run(ctx context.Context) (Outcome, error) {
	id := uuid.NewString()
	start := time.Now()
	g := gamemaster.New(e.white.Provider, e.black.Provider, e.options...)

	log.Debug().Str("game", id).Msgf("%s is starting against %s", e.white.Name, e.black.Name)
	result, err := g.Run(ctx)
	if err != nil && !errors.Is(err, gamemaster.ErrTurnLimit) {
		return Outcome{}, err
	}
	end := time.Now()

	moves := g.Moves()
	resultText := result.String()
	if result == game.Running {
		resultText = Unfinished
	}

	texts := make([]string, len(moves))
	for i, move := range moves {
		text, err := notation.FormatMove(move)
		if err != nil {
			return Outcome{}, err
		}
		texts[i] = text
	}

	return Outcome{
		Result: result,
		GameMetric: metrics.GameMetric{
			ID:         id,
			White:      e.white.Name,
			Black:      e.black.Name,
			Result:     resultText,
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
			TotalMoves: len(moves),
		},
		MoveMetrics: g.MoveMetrics(),
		Log: metrics.GameLog{
			ID:     id,
			Result: resultText,
			Moves:  texts,
		},
	}, nil
}
