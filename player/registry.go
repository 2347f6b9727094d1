package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"morris/searcher"
)

var ErrUnknownProvider = errors.New("unknown provider")

// Settings configures the providers created by New. Zero values select defaults.
type Settings struct {
	Depth      int
	Goroutines int
	Seed       uint64 // 0 seeds from the clock
	Metrics    bool
	In         io.Reader // Console input, os.Stdin by default
	Out        io.Writer // Console output, os.Stdout by default
}

type Factory func(settings Settings) Provider

type Entry struct {
	DisplayName string
	Factory     Factory
}

// Registry lists the providers selectable by name.
var Registry = map[string]Entry{
	"human": {
		DisplayName: "Human (console)",
		Factory:     func(s Settings) Provider {
			in, out := s.In, s.Out
			if in == nil {
				in = os.Stdin
			}
			if out == nil {
				out = os.Stdout
			}
			return NewConsole(in, out)
		},
	},
	"random": {
		DisplayName: "Random bot",
		Factory:     func(s Settings) Provider {
			return NewRandom(s.seed())
		},
	},
	"greedy": {
		DisplayName: "Greedy bot",
		Factory:     func(s Settings) Provider {
			return NewGreedy(s.seed())
		},
	},
	"negamax": {
		DisplayName: "Negamax bot",
		Factory:     func(s Settings) Provider {
			options := []searcher.Option{searcher.WithSeed(s.seed())}
			if s.Depth > 0 {
				options = append(options, searcher.WithDepth(s.Depth))
			}
			if s.Goroutines > 0 {
				options = append(options, searcher.WithGoroutines(s.Goroutines))
			}
			if s.Metrics {
				options = append(options, searcher.WithMetrics())
			}
			return NewNegamax(options...)
		},
	},
}

func (s Settings) seed() uint64 {
	if s.Seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return s.Seed
}

// New creates the provider registered under name.
func New(name string, settings Settings) (Provider, error) {
	entry, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, available: %v", ErrUnknownProvider, name, Names())
	}
	return entry.Factory(settings), nil
}

// Names returns the registered provider names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
