package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"adversarial/engine"
	"adversarial/experiments"
	"adversarial/meta"
	"adversarial/searcher"
	"adversarial/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play a single game or run an experiment (play|experiment)")
	configPath := flag.String("config", "", "YAML experiment config (experiment mode)")
	size := flag.Int("size", meta.BOARD_SIZE, "Board dimension")
	strategy := flag.String("strategy", meta.STRATEGY, "Computer player's strategy (minimax|alphabeta|abdl)")
	depth := flag.Int("depth", meta.DEPTH, "Ply budget for abdl")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Goroutines for root-parallel search")
	opponent := flag.String("opponent", "human", "Opponent (human|random|minimax|alphabeta|abdl)")
	aiFirst := flag.Bool("ai-first", false, "Let the computer player move first")
	seed := flag.Uint64("seed", 1, "Seed for the random opponent")
	verbose := flag.Bool("verbose", false, "Log every search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *mode {
	case "play":
		err = play(*size, *strategy, *depth, *goroutines, *opponent, *aiFirst, *seed)
	case "experiment":
		err = experiment(*configPath)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func play(size int, strategyName string, depth, goroutines int, opponentName string, aiFirst bool, seed uint64) (err error) {
	strategy, err := searcher.ParseStrategy(strategyName)
	if err != nil {
		return err
	}
	if strategy == searcher.StrategyDepthLimited && depth < 0 {
		return fmt.Errorf("%w: %d", searcher.ErrNegativeDepth, depth)
	}
	if size < 1 {
		return fmt.Errorf("board size must be positive, got %d", size)
	}
	computer := agent.NewSearchAgent(strategy, depth, searcher.WithGoroutines(goroutines), searcher.WithMetrics())

	var opponent agent.Agent
	switch strings.ToLower(opponentName) {
	case "human":
		opponent = agent.NewHumanAgent(os.Stdin, os.Stdout)
	case agent.KindRandom:
		opponent = agent.NewRandomAgent(seed)
	default:
		other, err := searcher.ParseStrategy(opponentName)
		if err != nil {
			return err
		}
		opponent = agent.NewSearchAgent(other, depth, searcher.WithGoroutines(goroutines))
	}

	players := []string{"computer", opponentName}
	agents := []agent.Agent{computer, opponent}
	if !aiFirst {
		players[0], players[1] = players[1], players[0]
		agents[0], agents[1] = agents[1], agents[0]
	}

	e := engine.LocalEngine(players, agents, size)
	e.OnMove = func(u engine.Update) {
		fmt.Printf("\n%s plays %v\n%v\n", u.Player, u.Move, u.Board)
	}

	// The human agent panics when stdin closes
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game aborted: %v", r)
		}
	}()

	fmt.Printf("%s moves first as X\n%v\n", players[0], e.State)
	winner, gameMetric, _ := e.Run()
	if winner == "" {
		fmt.Printf("\nTie after %d moves.\n", gameMetric.TotalMoves)
	} else {
		fmt.Printf("\n%s wins after %d moves.\n", winner, gameMetric.TotalMoves)
	}
	return nil
}

func experiment(configPath string) error {
	config := experiments.DefaultConfig()
	if configPath != "" {
		var err error
		config, err = experiments.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	summary, err := experiments.Run(config)
	if err != nil {
		return err
	}
	for _, a := range config.Agents {
		tally := summary.Results[a.ID]
		log.Info().Msgf("agent %d (%s depth=%d): %d wins, %d losses, %d ties", a.ID, a.Kind, a.Depth, tally.Wins, tally.Losses, tally.Ties)
	}
	return nil
}
