package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"morris/game"
	"morris/notation"
)

const consoleHelp = "moves: p <to> | pr <to> <remove> | m <from> <to> | mr <from> <to> <remove>, e.g. m a7 d7"

type line struct {
	text string
	err  error
}

// Console asks a human for moves. Prompts go to out and moves are read line by line from in, so a single
// Console can serve both players of a hot-seat game.
type Console struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan line
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// read forwards input lines until the reader is exhausted. It runs in its own goroutine so that a pending
// request can be cancelled while the reader blocks.
func (c *Console) read() {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		c.lines <- line{text: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	c.lines <- line{err: err}
	close(c.lines)
}

func (c *Console) NextMove(ctx context.Context, state game.View) (game.GameMove, error) {
	c.once.Do(func() {
		c.lines = make(chan line)
		go c.read()
	})

	player := state.NextToMove()
	for {
		fmt.Fprintf(c.out, "%v to move (%v): ", player, state.Phase(player))

		var l line
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return game.GameMove{}, ctx.Err()
		case received, ok := <-c.lines:
			if !ok {
				return game.GameMove{}, io.EOF
			}
			l = received
		}
		if l.err != nil {
			return game.GameMove{}, fmt.Errorf("failed to read move: %w", l.err)
		}

		move, err := notation.ParseMove(l.text)
		if err != nil {
			fmt.Fprintf(c.out, "%v\n%s\n", err, consoleHelp)
			continue
		}
		return move, nil
	}
}
