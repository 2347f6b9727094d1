package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	state := fromSetup(t, []int{0, 1, 14, 20}, []int{9, 10, 22}, White)

	require.Equal(t, 1, EvaluateMaterial(state))
	require.Equal(t, 0, EvaluateMaterial(NewGameState()))

	// Both sides have seven sliding moves
	require.Equal(t, 10, EvaluateMobility(state))
}
