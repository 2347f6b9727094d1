package notation

import (
	"testing"

	"morris/game"

	"github.com/stretchr/testify/require"
)

func TestLabels(t *testing.T) {
	t.Run("round trip for every point", func(t *testing.T) {
		seen := map[string]bool{}
		for id := 0; id < game.FieldSize; id++ {
			label, err := Label(id)
			require.NoError(t, err)
			require.False(t, seen[label], "Label %s should be unique", label)
			seen[label] = true

			got, err := Point(label)
			require.NoError(t, err)
			require.Equal(t, id, got, "Point(Label(%d)) should be the identity", id)
		}
	})

	t.Run("corners and centre lines", func(t *testing.T) {
		for label, id := range map[string]int{"a7": 0, "g7": 2, "a1": 21, "g1": 23, "d5": 7, "c4": 11, "e4": 12, "d3": 16} {
			got, err := Point(label)
			require.NoError(t, err)
			require.Equal(t, id, got, "Label %s", label)
		}
	})

	t.Run("case and whitespace are ignored", func(t *testing.T) {
		got, err := Point(" G4 ")
		require.NoError(t, err)
		require.Equal(t, 14, got)
	})

	t.Run("invalid input", func(t *testing.T) {
		for _, label := range []string{"", "a2", "d4", "h1", "a8", "a"} {
			_, err := Point(label)
			require.ErrorIs(t, err, ErrFormat, "Label %q should be rejected", label)
		}
		for _, id := range []int{-1, game.FieldSize} {
			_, err := Label(id)
			require.ErrorIs(t, err, ErrFormat, "Point %d should be rejected", id)
		}
	})
}

func TestCoordinates(t *testing.T) {
	t.Run("round trip for every point", func(t *testing.T) {
		for id := 0; id < game.FieldSize; id++ {
			row, col, err := Coordinates(id)
			require.NoError(t, err)
			got, err := PointAt(row, col)
			require.NoError(t, err)
			require.Equal(t, id, got)
		}
	})

	t.Run("adjacent points share a row or a column", func(t *testing.T) {
		for a := 0; a < game.FieldSize; a++ {
			for _, b := range game.Connected(a) {
				rowA, colA, _ := Coordinates(a)
				rowB, colB, _ := Coordinates(b)
				require.True(t, rowA == rowB || colA == colB, "%d and %d should be on one line", a, b)
			}
		}
	})

	t.Run("empty lattice positions", func(t *testing.T) {
		for _, pos := range [][2]int{{3, 3}, {0, 1}, {-1, 0}, {0, Size}} {
			_, err := PointAt(pos[0], pos[1])
			require.ErrorIs(t, err, ErrFormat, "Position %v should be rejected", pos)
		}
	})
}

func TestMoves(t *testing.T) {
	t.Run("parse every command", func(t *testing.T) {
		cases := map[string]game.GameMove{
			"p a7":        game.Place(0),
			"pr d7 g1":    game.PlaceRemove(1, 23),
			"m a7 a4":     game.Move(0, 9),
			"MR a4 a1 d1": game.MoveRemove(9, 21, 22),
		}
		for text, want := range cases {
			got, err := ParseMove(text)
			require.NoError(t, err, "Move %q", text)
			require.Equal(t, want, got, "Move %q", text)
		}
	})

	t.Run("format is the inverse of parse", func(t *testing.T) {
		for _, move := range []game.GameMove{
			game.Place(5), game.PlaceRemove(5, 6), game.Move(3, 4), game.MoveRemove(3, 4, 20),
		} {
			text, err := FormatMove(move)
			require.NoError(t, err)
			got, err := ParseMove(text)
			require.NoError(t, err)
			require.Equal(t, move, got, "Move %v formatted as %q", move, text)
		}
		text, _ := FormatMove(game.MoveRemove(0, 1, 2))
		require.Equal(t, "mr a7 d7 g7", text)
	})

	t.Run("malformed commands", func(t *testing.T) {
		for _, text := range []string{"", "x a1", "p", "p a1 a4", "m a1", "mr a1 a4", "p z9"} {
			_, err := ParseMove(text)
			require.ErrorIs(t, err, ErrFormat, "Move %q should be rejected", text)
		}
		_, err := FormatMove(game.Place(30))
		require.ErrorIs(t, err, ErrFormat)
	})
}
