package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"morris/config"
	"morris/display"
	"morris/experiments"
	"morris/experiments/metrics"
	"morris/gamemaster"
	"morris/logx"
	"morris/player"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("morris failed")
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file")
	white := flag.String("white", "", "White provider: "+strings.Join(player.Names(), ", "))
	black := flag.String("black", "", "Black provider: "+strings.Join(player.Names(), ", "))
	depth := flag.Int("depth", 0, "Search depth of negamax providers")
	delay := flag.Duration("delay", 0, "Pause after every move")
	games := flag.Int("games", 0, "Play a tournament with this many games per colour instead of a single game")
	records := flag.String("records", "", "Directory for tournament records")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	seed := flag.Uint64("seed", 0, "Random seed of the bots, 0 seeds from the clock")
	experiment := flag.String("experiment", "", "Run a preset tournament: depth, parallelization")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}
	// Flags given on the command line override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "white":
			cfg.White = *white
		case "black":
			cfg.Black = *black
		case "depth":
			cfg.Depth = *depth
		case "delay":
			cfg.Delay = *delay
		case "games":
			cfg.Games = *games
		case "records":
			cfg.RecordsDir = *records
		case "log-level":
			cfg.LogLevel = *logLevel
		case "seed":
			cfg.Seed = *seed
		}
	})
	if *experiment != "" && cfg.Games == 0 {
		cfg.Games = experiments.NumGames
	}
	if *experiment != "" {
		// Presets choose their own providers
		cfg.White, cfg.Black = "negamax", "negamax"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logx.Setup(cfg.LogLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *experiment != "":
		return runExperiment(ctx, cfg, *experiment)
	case cfg.Games > 0:
		return runTournament(ctx, cfg, experiments.Tournament{
			Name: "matchup",
			Agents: []metrics.AgentConfig{
				{ID: 1, Provider: cfg.White, Depth: cfg.Depth, Goroutines: cfg.Goroutines, Seed: cfg.Seed},
				{ID: 2, Provider: cfg.Black, Depth: cfg.Depth, Goroutines: cfg.Goroutines, Seed: cfg.Seed},
			},
			MatchUps: [][2]int{{1, 2}, {2, 1}},
		})
	default:
		return playGame(ctx, cfg)
	}
}

func playGame(ctx context.Context, cfg config.Config) error {
	settings := cfg.Settings()
	settings.In, settings.Out = os.Stdin, os.Stdout

	whiteProvider, err := player.New(cfg.White, settings)
	if err != nil {
		return err
	}
	// Two humans share one console
	blackProvider := whiteProvider
	if cfg.White != "human" || cfg.Black != "human" {
		if settings.Seed != 0 {
			settings.Seed++
		}
		if blackProvider, err = player.New(cfg.Black, settings); err != nil {
			return err
		}
	}

	observer, err := display.New(cfg.Display, os.Stdout)
	if err != nil {
		return err
	}
	g := gamemaster.New(whiteProvider, blackProvider,
		gamemaster.WithDelay(cfg.Delay),
		gamemaster.WithMaxTurns(cfg.MaxTurns),
		gamemaster.WithMaxAttempts(cfg.MaxAttempts),
		gamemaster.WithObservers(observer),
	)

	start := time.Now()
	result, err := g.Run(ctx)
	switch {
	case errors.Is(err, gamemaster.ErrTurnLimit):
		log.Warn().Err(err).Msg("game stopped")
	case err != nil:
		return err
	}
	fmt.Println(display.Status(result, g.State().NextToMove()))
	log.Info().Msgf("game took %d moves in %v", len(g.Moves()), time.Since(start).Round(time.Millisecond))
	return nil
}

func runExperiment(ctx context.Context, cfg config.Config, name string) error {
	var tournament experiments.Tournament
	switch name {
	case "depth":
		depths := make([]int, 0, cfg.Depth)
		for d := 1; d <= cfg.Depth; d++ {
			depths = append(depths, d)
		}
		tournament = experiments.DepthTournament(depths...)
	case "parallelization":
		tournament = experiments.ParallelizationTournament(cfg.Depth, 2, 4, 8)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
	return runTournament(ctx, cfg, tournament)
}

func runTournament(ctx context.Context, cfg config.Config, tournament experiments.Tournament) error {
	tournament.Games = cfg.Games
	tournament.MaxTurns = cfg.MaxTurns
	tournament.MaxAttempts = cfg.MaxAttempts
	tournament.RecordsDir = cfg.RecordsDir

	summary, err := experiments.RunTournament(ctx, tournament)
	if err != nil {
		return err
	}
	for _, score := range summary.Scores {
		fmt.Printf("%d:%s (white) vs %d:%s (black): %d-%d, %d draws, %d unfinished\n",
			score.White.ID, score.White.Provider, score.Black.ID, score.Black.Provider,
			score.WhiteWins, score.BlackWins, score.Draws, score.Unfinished)
	}
	if summary.Dir != "" {
		fmt.Printf("records written to %s\n", summary.Dir)
	}
	return nil
}
