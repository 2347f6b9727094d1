// Package display contains observers that show the progress of a game.
package display

import (
	"fmt"
	"io"
	"strings"

	"morris/game"
	"morris/notation"
)

const side = 2*notation.Size - 1 // Points and the lines between them

var symbols = map[game.Occupation]rune{
	game.Free:       '·',
	game.WhiteStone: '○',
	game.BlackStone: '●',
}

// Console prints the board after every move.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Notify(state game.View) {
	fmt.Fprint(c.out, Render(state))
}

// Render draws the board as text with ranks on the left and files below. Lines between points are taken
// from the adjacency of the board.
func Render(state game.View) string {
	var field [side][side]rune
	for row := range field {
		for col := range field[row] {
			field[row][col] = ' '
		}
	}

	board := state.Board()
	for point, o := range board {
		row, col := position(point)
		field[row][col] = symbols[o]
	}
	for a := 0; a < game.FieldSize; a++ {
		rowA, colA := position(a)
		for _, b := range game.Connected(a) {
			if b > a {
				continue
			}
			rowB, colB := position(b)
			if rowA == rowB {
				for col := min(colA, colB) + 1; col < max(colA, colB); col++ {
					field[rowA][col] = '-'
				}
			} else {
				for row := min(rowA, rowB) + 1; row < max(rowA, rowB); row++ {
					field[row][colA] = '|'
				}
			}
		}
	}

	var sb strings.Builder
	for row := range field {
		if row%2 == 0 {
			fmt.Fprintf(&sb, "%d ", notation.Size-row/2)
		} else {
			sb.WriteString("  ")
		}
		sb.WriteString(strings.TrimRight(string(field[row][:]), " "))
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g\n")

	for _, player := range []game.Player{game.White, game.Black} {
		fmt.Fprintf(&sb, "%v %c: %v, %d placed, %d on board\n", player, symbols[game.StoneOf(player)],
			state.Phase(player), state.StonesPlaced(player), state.CurrentStones(player))
	}
	sb.WriteString(Status(state.Result(), state.NextToMove()))
	sb.WriteByte('\n')
	return sb.String()
}

// Status describes the result in one sentence.
func Status(result game.Result, next game.Player) string {
	switch result {
	case game.WhiteWins:
		return "White wins."
	case game.BlackWins:
		return "Black wins."
	case game.Draw:
		return "Draw."
	}
	return fmt.Sprintf("%v to move.", next)
}

// position returns the row and column of a point on the rendered field.
func position(point int) (row, col int) {
	row, col, err := notation.Coordinates(point)
	if err != nil {
		panic(err)
	}
	return 2 * row, 2 * col
}
