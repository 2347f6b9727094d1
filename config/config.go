// Package config loads the settings of a game or tournament from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"morris/display"
	"morris/meta"
	"morris/player"
	"morris/utils"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	White       string        `yaml:"white"`
	Black       string        `yaml:"black"`
	Depth       int           `yaml:"depth"`
	Goroutines  int           `yaml:"goroutines"`
	Seed        uint64        `yaml:"seed"` // 0 seeds from the clock
	Delay       time.Duration `yaml:"delay"`
	MaxTurns    int           `yaml:"max_turns"`
	MaxAttempts int           `yaml:"max_attempts"`
	LogLevel    string        `yaml:"log_level"`
	RecordsDir  string        `yaml:"records_dir"`
	Games       int           `yaml:"games"` // Games per colour in a tournament, none for a single game
	Display     string        `yaml:"display"`
}

func Default() Config {
	return Config{
		White:       "human",
		Black:       "negamax",
		Depth:       meta.DEPTH,
		Goroutines:  meta.GO_ROUTINES,
		Delay:       500 * time.Millisecond,
		MaxTurns:    meta.MAX_TURNS,
		MaxAttempts: meta.MAX_ATTEMPTS,
		LogLevel:    "info",
		RecordsDir:  "records",
		Display:     "console",
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	providers := player.Names()
	for _, name := range []string{c.White, c.Black} {
		if utils.FindIndex(providers, name) < 0 {
			return fmt.Errorf("%w: unknown provider %q, available: %v", ErrInvalid, name, providers)
		}
	}
	if c.Games > 0 && (c.White == "human" || c.Black == "human") {
		return fmt.Errorf("%w: tournaments cannot include human players", ErrInvalid)
	}
	if displays := display.Names(); utils.FindIndex(displays, c.Display) < 0 {
		return fmt.Errorf("%w: unknown display %q, available: %v", ErrInvalid, c.Display, displays)
	}
	if c.Depth < 0 {
		return fmt.Errorf("%w: depth must not be negative", ErrInvalid)
	}
	if c.Goroutines < 1 {
		return fmt.Errorf("%w: goroutines must be at least 1", ErrInvalid)
	}
	if c.Delay < 0 || c.MaxTurns < 0 || c.MaxAttempts < 0 || c.Games < 0 {
		return fmt.Errorf("%w: delay, max_turns, max_attempts and games must not be negative", ErrInvalid)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	return nil
}

// Settings returns the provider settings for a game.
func (c Config) Settings() player.Settings {
	return player.Settings{
		Depth:      c.Depth,
		Goroutines: c.Goroutines,
		Seed:       c.Seed,
	}
}
