package game

import "fmt"

// Phase is the movement privilege a player currently has.
type Phase int

const (
	Placing Phase = iota
	Moving
	Flying
)

func (p Phase) String() string {
	switch p {
	case Placing:
		return "Placing"
	case Moving:
		return "Moving"
	case Flying:
		return "Flying"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Result tells whether the game is still running and how it ended.
type Result int

const (
	Running Result = iota
	Draw
	WhiteWins
	BlackWins
)

// WinFor returns the result of a game won by the player.
func WinFor(p Player) Result {
	if p == White {
		return WhiteWins
	}
	return BlackWins
}

// Winner returns the winning player. ok is false while running and for draws.
func (r Result) Winner() (winner Player, ok bool) {
	switch r {
	case WhiteWins:
		return White, true
	case BlackWins:
		return Black, true
	}
	return 0, false
}

func (r Result) String() string {
	switch r {
	case Running:
		return "Running"
	case Draw:
		return "Draw"
	case WhiteWins:
		return "WhiteWins"
	case BlackWins:
		return "BlackWins"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// MoveValidity classifies a move against the current state.
type MoveValidity int

const (
	Valid            MoveValidity = iota
	Invalid                       // Geometry, occupancy or phase violation
	ClosesMill                    // Legal, but closes a mill and no removal was given
	DoesNotCloseMill              // Legal, but a removal was given without closing a mill
)

func (v MoveValidity) String() string {
	switch v {
	case Valid:
		return "Valid"
	case Invalid:
		return "Invalid"
	case ClosesMill:
		return "ClosesMill"
	case DoesNotCloseMill:
		return "DoesNotCloseMill"
	}
	return fmt.Sprintf("MoveValidity(%d)", int(v))
}

// MoveResult is the outcome of an attempt to apply a move. It deliberately does not tell whether the
// move ended the game; check Result afterwards.
type MoveResult int

const (
	OK MoveResult = iota
	InvalidMove
	GameNotRunning
)

func (r MoveResult) String() string {
	switch r {
	case OK:
		return "OK"
	case InvalidMove:
		return "InvalidMove"
	case GameNotRunning:
		return "GameNotRunning"
	}
	return fmt.Sprintf("MoveResult(%d)", int(r))
}

// GameState represents a Nine Men's Morris position together with everything needed to continue the game.
// It is only ever mutated by TryApplyMove.
type GameState struct {
	board         Board
	nextToMove    Player
	result        Result
	phase         [2]Phase
	stonesPlaced  [2]int
	currentStones [2]int
	history       []Board // Boards before each applied move, for repetition checks
}

var _ View = (*GameState)(nil)

// NewGameState returns an empty board with White to move.
func NewGameState() *GameState {
	return &GameState{
		nextToMove: White,
		result:     Running,
	}
}

// Copy returns a deep copy of the GameState.
func (gs *GameState) Copy() *GameState {
	c := *gs
	// Boards in history are never modified after being appended, so the prefix can be shared.
	// Capping the capacity makes the next append on either copy reallocate.
	c.history = gs.history[:len(gs.history):len(gs.history)]
	return &c
}

func (gs *GameState) Board() Board {
	return gs.board
}

func (gs *GameState) NextToMove() Player {
	return gs.nextToMove
}

func (gs *GameState) Result() Result {
	return gs.result
}

// Phase returns the phase the player is in.
func (gs *GameState) Phase(player Player) Phase {
	return gs.phase[player.index()]
}

// StonesPlaced returns the number of stones the player has placed so far, between 0 and StonesMax.
func (gs *GameState) StonesPlaced(player Player) int {
	return gs.stonesPlaced[player.index()]
}

// CurrentStones returns the number of the player's stones on the board.
func (gs *GameState) CurrentStones(player Player) int {
	return gs.currentStones[player.index()]
}

// HistoryLen returns the number of moves applied so far.
func (gs *GameState) HistoryLen() int {
	return len(gs.history)
}

// BasicMoves returns all moves of the player to move without removal information.
// IsValidMove tells which of them close a mill and need a removal.
func (gs *GameState) BasicMoves() []GameMove {
	switch gs.Phase(gs.nextToMove) {
	case Placing:
		moves := make([]GameMove, 0, FieldSize)
		for point, o := range gs.board {
			if o == Free {
				moves = append(moves, Place(point))
			}
		}
		return moves
	case Moving:
		return gs.pairs(AreAdjacent)
	case Flying:
		return gs.pairs(func(int, int) bool { return true })
	default:
		panic("unknown phase")
	}
}

// pairs returns a move for every pair (from, to) where from holds a stone of the player to move,
// to is free and pred(from, to) holds.
func (gs *GameState) pairs(pred func(from, to int) bool) []GameMove {
	var moves []GameMove
	for from, o := range gs.board {
		if !o.IsOccupiedBy(gs.nextToMove) {
			continue
		}
		for to, dest := range gs.board {
			if dest == Free && pred(from, to) {
				moves = append(moves, Move(from, to))
			}
		}
	}
	return moves
}

// IsValidMove classifies a move for the player to move.
func (gs *GameState) IsValidMove(move GameMove) MoveValidity {
	player := gs.nextToMove
	phase := gs.Phase(player)

	// Destination
	to := move.To()
	if !InRange(to) || gs.board[to] != Free {
		return Invalid
	}

	// Origin
	from, moving := move.From()
	if moving {
		if phase == Placing {
			return Invalid // Must place all stones first
		}
		if !InRange(from) || !gs.board[from].IsOccupiedBy(player) {
			return Invalid
		}
		if phase == Moving && !AreAdjacent(from, to) {
			return Invalid // Not allowed to fly yet
		}
	} else if phase != Placing {
		return Invalid // All stones placed
	}

	// Removal
	remove, removing := move.Remove()
	if !gs.closesMill(move) {
		if removing {
			return DoesNotCloseMill
		}
		return Valid
	}
	if !removing {
		return ClosesMill
	}
	opponent := player.Opponent()
	if !InRange(remove) || !gs.board[remove].IsOccupiedBy(opponent) {
		return Invalid
	}
	// Stones in a closed mill are protected while the opponent has any stone outside of closed mills
	if gs.board.InClosedMill(remove, opponent) && !gs.board.AllInClosedMills(opponent) {
		return Invalid
	}
	return Valid
}

// closesMill reports whether some mill through the destination is fully occupied by the player to move
// once the move has been made. The move's origin and destination must already be verified.
func (gs *GameState) closesMill(move GameMove) bool {
	after := gs.board
	if from, ok := move.From(); ok {
		after[from] = Free
	}
	after[move.To()] = StoneOf(gs.nextToMove)
	for _, i := range millsByPoint[move.To()] {
		if after.IsClosedMill(Mills[i], gs.nextToMove) {
			return true
		}
	}
	return false
}

// TryApplyMove applies a valid move. The state is left untouched unless OK is returned.
func (gs *GameState) TryApplyMove(move GameMove) MoveResult {
	if gs.result != Running {
		return GameNotRunning
	}
	if gs.IsValidMove(move) != Valid {
		return InvalidMove
	}

	player := gs.nextToMove
	opponent := player.Opponent()
	p, o := player.index(), opponent.index()

	gs.history = append(gs.history, gs.board)

	if from, ok := move.From(); ok {
		gs.board[from] = Free
	} else {
		gs.currentStones[p]++
		gs.stonesPlaced[p]++
		if gs.stonesPlaced[p] == StonesMax {
			gs.phase[p] = Moving
		}
	}

	gs.board[move.To()] = StoneOf(player)

	// Repeated position
	if gs.phase[p] != Placing && gs.phase[o] != Placing && gs.repeated() {
		gs.result = Draw
	}

	if remove, ok := move.Remove(); ok {
		gs.board[remove] = Free
		gs.currentStones[o]--
		if gs.phase[o] == Moving && gs.currentStones[o] == FlyingMax {
			gs.phase[o] = Flying
		}
	}

	// Opponent is down to two stones
	if gs.phase[o] != Placing && gs.currentStones[o] == FlyingMax-1 {
		gs.result = WinFor(player)
	}

	gs.nextToMove = opponent

	// A player without moves loses
	if !gs.hasMoves() {
		gs.result = WinFor(player)
	}

	return OK
}

// hasMoves reports whether BasicMoves would be non-empty.
func (gs *GameState) hasMoves() bool {
	player := gs.nextToMove
	phase := gs.Phase(player)
	for from, o := range gs.board {
		if phase == Placing {
			if o == Free {
				return true
			}
			continue
		}
		if !o.IsOccupiedBy(player) {
			continue
		}
		if phase == Flying {
			// Flying players have at most three stones, so a free point always exists
			return true
		}
		for _, to := range adjacentIDs[from] {
			if gs.board[to] == Free {
				return true
			}
		}
	}
	return false
}

func (gs *GameState) repeated() bool {
	for _, past := range gs.history {
		if past == gs.board {
			return true
		}
	}
	return false
}
