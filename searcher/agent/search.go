package agent

import (
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
	strategy searcher.Strategy
	depth    int
}

// NewSearchAgent returns an agent that plays the move chosen by the given
// strategy. depth only applies to searcher.StrategyDepthLimited.
func NewSearchAgent(strategy searcher.Strategy, depth int, options ...searcher.Option) Agent {
	return searchAgent{
		searcher: searcher.New(options...),
		strategy: strategy,
		depth:    depth,
	}
}

func (a searchAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	decision := a.searcher.Decide(a.strategy, state, a.depth)
	metric := decision.Metric
	metric.Strategy = a.strategy.String()
	metric.Value = decision.Value
	return decision.Move, metric
}
