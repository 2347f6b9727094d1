package engine

import (
	"context"

	"morris/experiments/metrics"
	"morris/game"
)

// Outcome summarises a finished game.
type Outcome struct {
	Result      game.Result
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
	Log         metrics.GameLog
}

type Engine interface {
	// Run plays a game till it is over or the turn limit is reached
	Run(ctx context.Context) (Outcome, error)
}
