// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines the search uses at the root.
const GO_ROUTINES = 1

// DEPTH defines the default search depth in plies.
const DEPTH = 4

// MAX_TURNS defines the number of moves after which a game is stopped.
const MAX_TURNS = 300

// MAX_ATTEMPTS defines how often a provider may propose an invalid move in one turn.
const MAX_ATTEMPTS = 100
