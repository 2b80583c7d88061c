package agent

import (
	"fmt"

	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// It is not safe for concurrent use.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	moves := state.PossibleMoves()
	if len(moves) == 0 {
		panic(fmt.Errorf("%w: random agent has nothing to play", searcher.ErrNoMoves))
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Strategy: KindRandom}
}
