package game

// View is a read-only view on a game state. Move providers and observers only ever hold a View.
type View interface {
	Board() Board
	NextToMove() Player
	Result() Result
	Phase(player Player) Phase
	StonesPlaced(player Player) int
	CurrentStones(player Player) int
	BasicMoves() []GameMove
	IsValidMove(move GameMove) MoveValidity
	// Copy returns an independent mutable copy. Changes to the copy never affect the viewed state.
	Copy() *GameState
}

// Evaluate scores a non-terminal state from White's point of view.
type Evaluate func(View) int
