package experiments

import (
	"context"
	"fmt"

	"morris/engine"
	"morris/experiments/metrics"
	"morris/game"
	"morris/gamemaster"
	"morris/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const NumGames = 10 // Per match up

// Tournament plays every match up a number of times. Agents refer to providers of the player registry.
type Tournament struct {
	Name        string
	Agents      []metrics.AgentConfig
	MatchUps    [][2]int // Agent IDs playing White and Black
	Games       int      // Per match up, NumGames when 0
	Parallel    int      // Games played at once, 1 when 0
	MaxTurns    int
	MaxAttempts int
	RecordsDir  string // Records are only written when set
}

// Score counts the results of one match up.
type Score struct {
	White      metrics.AgentConfig
	Black      metrics.AgentConfig
	WhiteWins  int
	BlackWins  int
	Draws      int
	Unfinished int
}

type Summary struct {
	Scores []Score
	Dir    string // Directory of the written records
}

// ParallelizationTournament pits a parallel searcher against the sequential baseline at equal depth. Both
// choose the same moves for the same seed, so the records compare search durations.
func ParallelizationTournament(depth int, goroutines ...int) Tournament {
	baseline := metrics.AgentConfig{ID: 0, Provider: "negamax", Depth: depth, Goroutines: 1, Seed: 1}
	agents := []metrics.AgentConfig{baseline}
	matchUps := [][2]int{}
	for i, g := range goroutines {
		config := metrics.AgentConfig{ID: i + 1, Provider: "negamax", Depth: depth, Goroutines: g, Seed: 1}
		agents = append(agents, config)
		matchUps = append(matchUps, [2]int{config.ID, baseline.ID})
	}
	return Tournament{Name: "parallelization", Agents: agents, MatchUps: matchUps}
}

// DepthTournament plays negamax searchers of increasing depth against the greedy bot, with both colours.
func DepthTournament(depths ...int) Tournament {
	baseline := metrics.AgentConfig{ID: 0, Provider: "greedy"}
	agents := []metrics.AgentConfig{baseline}
	matchUps := [][2]int{}
	for i, depth := range depths {
		config := metrics.AgentConfig{ID: i + 1, Provider: "negamax", Depth: depth, Goroutines: 1}
		agents = append(agents, config)
		matchUps = append(matchUps, [2]int{config.ID, baseline.ID}, [2]int{baseline.ID, config.ID})
	}
	return Tournament{Name: "depth", Agents: agents, MatchUps: matchUps}
}

type gameResult struct {
	matchUp int
	outcome engine.Outcome
}

func RunTournament(ctx context.Context, t Tournament) (Summary, error) {
	agents := make(map[int]metrics.AgentConfig, len(t.Agents))
	for _, agent := range t.Agents {
		agents[agent.ID] = agent
	}
	for _, matchUp := range t.MatchUps {
		for _, id := range matchUp {
			if _, ok := agents[id]; !ok {
				return Summary{}, fmt.Errorf("match up refers to unknown agent %d", id)
			}
		}
	}
	games := t.Games
	if games <= 0 {
		games = NumGames
	}
	parallel := t.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	log.Info().Msgf("starting %s experiment...", t.Name)

	results := make([]gameResult, len(t.MatchUps)*games)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for mi, matchUp := range t.MatchUps {
		white, black := agents[matchUp[0]], agents[matchUp[1]]
		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(t.MatchUps), white, black)

		for i := 0; i < games; i++ {
			mi, i := mi, i // per-iteration copies; module targets go1.21 loop semantics
			g.Go(func() error {
				outcome, err := playGame(gctx, t, white, black, i)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				log.Info().Msgf("completed matchup %d of %d game %d with result: %s",
					mi+1, len(t.MatchUps), i+1, outcome.GameMetric.Result)
				results[mi*games+i] = gameResult{matchUp: mi, outcome: outcome}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	log.Info().Msgf("completed %s experiment", t.Name)

	summary := Summary{Scores: make([]Score, len(t.MatchUps))}
	for mi, matchUp := range t.MatchUps {
		summary.Scores[mi] = Score{White: agents[matchUp[0]], Black: agents[matchUp[1]]}
	}
	for _, r := range results {
		score := &summary.Scores[r.matchUp]
		switch r.outcome.Result {
		case game.WhiteWins:
			score.WhiteWins++
		case game.BlackWins:
			score.BlackWins++
		case game.Draw:
			score.Draws++
		default:
			score.Unfinished++
		}
	}

	if t.RecordsDir == "" {
		return summary, nil
	}
	dir, err := writeRecords(t, results)
	if err != nil {
		return Summary{}, err
	}
	summary.Dir = dir
	return summary, nil
}

func playGame(ctx context.Context, t Tournament, white, black metrics.AgentConfig, i int) (engine.Outcome, error) {
	whiteAgent, err := newAgent(white, i)
	if err != nil {
		return engine.Outcome{}, err
	}
	blackAgent, err := newAgent(black, i)
	if err != nil {
		return engine.Outcome{}, err
	}

	options := []gamemaster.Option{}
	if t.MaxTurns > 0 {
		options = append(options, gamemaster.WithMaxTurns(t.MaxTurns))
	}
	if t.MaxAttempts > 0 {
		options = append(options, gamemaster.WithMaxAttempts(t.MaxAttempts))
	}
	return engine.NewLocalEngine(whiteAgent, blackAgent, options...).Run(ctx)
}

// newAgent creates the provider of an agent for the i-th game. Fixed seeds are offset per game so that
// the games of a match up differ but can be reproduced.
func newAgent(config metrics.AgentConfig, i int) (engine.Agent, error) {
	settings := player.Settings{
		Depth:      config.Depth,
		Goroutines: config.Goroutines,
		Metrics:    true,
	}
	if config.Seed != 0 {
		settings.Seed = config.Seed + uint64(i)
	}
	provider, err := player.New(config.Provider, settings)
	if err != nil {
		return engine.Agent{}, err
	}
	return engine.Agent{Name: fmt.Sprintf("%d:%s", config.ID, config.Provider), Provider: provider}, nil
}

func writeRecords(t Tournament, results []gameResult) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	gameLogs := []metrics.GameLog{}
	for _, r := range results {
		matchUp := t.MatchUps[r.matchUp]
		gameRecords = append(gameRecords, metrics.GameRecord{
			Matchup:    r.matchUp + 1,
			Agent1:     matchUp[0],
			Agent2:     matchUp[1],
			GameMetric: r.outcome.GameMetric,
		})
		for _, mm := range r.outcome.MoveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       r.outcome.GameMetric.ID,
				MoveMetric: mm,
			})
		}
		gameLogs = append(gameLogs, r.outcome.Log)
	}

	writer, err := metrics.NewWriter(t.RecordsDir, t.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(t.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	if err := writer.WriteGameLogs(gameLogs); err != nil {
		return "", fmt.Errorf("failed to write game logs: %w", err)
	}
	log.Info().Msg("stored game logs")
	return writer.Dir(), nil
}
