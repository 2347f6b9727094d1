package display

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"morris/gamemaster"

	"github.com/rs/zerolog/log"
)

var ErrUnknownDisplay = errors.New("unknown display")

type Entry struct {
	DisplayName string
	Factory     func(out io.Writer) gamemaster.Observer
}

// Registry lists the displays selectable by name.
var Registry = map[string]Entry{
	"console": {
		DisplayName: "Console board",
		Factory:     func(out io.Writer) gamemaster.Observer {
			return NewConsole(out)
		},
	},
	"log": {
		DisplayName: "Structured log",
		Factory:     func(io.Writer) gamemaster.Observer {
			return NewLog(log.Logger)
		},
	},
}

// New creates the display registered under name. out defaults to os.Stdout.
func New(name string, out io.Writer) (gamemaster.Observer, error) {
	entry, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, available: %v", ErrUnknownDisplay, name, Names())
	}
	if out == nil {
		out = os.Stdout
	}
	return entry.Factory(out), nil
}

func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
