package agent

import (
	"fmt"
	"strings"

	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"
)

type Agent interface {
	// FindMove returns a move for Max and performance metrics (if collected) from the search
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}

const KindRandom = "random"

// NewAgent builds a non-interactive agent from its experiment config. Kind
// is a searcher strategy name or "random".
func NewAgent(config metrics.AgentConfig) (Agent, error) {
	if strings.EqualFold(config.Kind, KindRandom) {
		return NewRandomAgent(config.Seed), nil
	}

	strategy, err := searcher.ParseStrategy(config.Kind)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}
	if strategy == searcher.StrategyDepthLimited && config.Depth < 0 {
		return nil, fmt.Errorf("agent %d: %w: %d", config.ID, searcher.ErrNegativeDepth, config.Depth)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return NewSearchAgent(strategy, config.Depth, options...), nil
}
