package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"reversi/agent"
	"reversi/config"
	"reversi/engine"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML config file")
	games := flag.Int("games", 0, "Number of games per match")
	workers := flag.Int("workers", 0, "Number of games played in parallel")
	seed := flag.Uint64("seed", 0, "Seed for reproducible runs, 0 seeds from the clock")
	verbose := flag.Bool("verbose", false, "Log every move")
	output := flag.String("output", "", "Directory for CSV results, empty to skip")
	match := flag.String("match", "", "Play a single match between two bots, e.g. GreedyBot,RandomBot")
	single := flag.String("game", "", "Play and show a single game between two bots")
	list := flag.Bool("list", false, "List the available bots")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if *list {
		for _, name := range agent.Names() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Flags given on the command line win over the config
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		case "verbose":
			cfg.Verbose = *verbose
		case "output":
			cfg.OutputDir = *output
		}
	})
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Info().Msgf("using seed %d", cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *single != "":
		err = runGame(*single, cfg)
	case *match != "":
		err = runMatch(ctx, *match, cfg)
	default:
		err = runTournament(ctx, cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func runTournament(ctx context.Context, cfg *config.Config) error {
	options := []experiments.Option{
		experiments.WithGames(cfg.Games),
		experiments.WithWorkers(cfg.Workers),
		experiments.WithSeed(cfg.Seed),
	}
	if cfg.OutputDir != "" {
		writer, err := metrics.NewWriter(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to create results writer: %w", err)
		}
		options = append(options, experiments.WithMetrics(writer))
	}

	tournament, err := experiments.NewTournament(cfg.Bots, options...)
	if err != nil {
		return err
	}

	leaderboard, err := tournament.Run(ctx)
	if err != nil {
		return err
	}
	experiments.PrintLeaderboard(os.Stdout, leaderboard)
	return nil
}

func runMatch(ctx context.Context, pair string, cfg *config.Config) error {
	names, err := splitPair(pair)
	if err != nil {
		return err
	}

	tournament, err := experiments.NewTournament(names[:],
		experiments.WithGames(cfg.Games),
		experiments.WithWorkers(cfg.Workers),
		experiments.WithSeed(cfg.Seed))
	if err != nil {
		return err
	}

	result, err := tournament.PlayMatch(ctx, names[0], names[1])
	if err != nil {
		return err
	}
	fmt.Printf("Results: %s\n", result)
	return nil
}

func runGame(pair string, cfg *config.Config) error {
	names, err := splitPair(pair)
	if err != nil {
		return err
	}

	var constructors [2]agent.Constructor
	for i, name := range names {
		constructors[i], err = agent.Lookup(name)
		if err != nil {
			return err
		}
	}

	e := engine.LocalEngine(names, constructors, engine.WithSeeds(cfg.Seed, cfg.Seed+1))
	outcome, _, _, err := e.Run()
	if err != nil {
		return err
	}

	board := e.Master.State().Board()
	fmt.Print(board.Render(termenv.EnvColorProfile(), nil))
	fmt.Printf("%s (X) vs %s (O): %v\n", names[0], names[1], outcome)
	return nil
}

func splitPair(pair string) ([2]string, error) {
	parts := strings.Split(pair, ",")
	if len(parts) != 2 {
		return [2]string{}, fmt.Errorf("expected two bot names separated by a comma, got %q", pair)
	}
	return [2]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}, nil
}
