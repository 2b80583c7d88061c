package searcher

import (
	"fmt"

	"adversarial/experiments/metrics"
	"adversarial/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// search carries the per-call statistics through the recursion.
type search struct {
	metrics metrics.Collector
}

// childValue computes the value of a root successor, with Min to move.
type childValue func(sr *search, child game.State) float64

func (s *Searcher) Minimax(state game.State) Decision {
	return s.decide(StrategyMinimax, state, -1, func(sr *search, child game.State) float64 {
		return sr.value(child, game.Min)
	})
}

func (s *Searcher) AlphaBeta(state game.State) Decision {
	return s.decide(StrategyAlphaBeta, state, -1, func(sr *search, child game.State) float64 {
		return sr.abValue(child, game.Min, negInf, posInf)
	})
}

func (s *Searcher) ABDL(state game.State, depth int) Decision {
	if depth < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeDepth, depth))
	}
	return s.decide(StrategyDepthLimited, state, depth, func(sr *search, child game.State) float64 {
		// The first ply is charged inside the recursion, not here
		return sr.abdlValue(child, game.Min, negInf, posInf, depth)
	})
}

// decide plays every legal move for Max and keeps the first one with the
// maximum value. Each root successor is searched with a fresh window, so
// the values are exact and independent of evaluation order.
func (s *Searcher) decide(strategy Strategy, state game.State, depth int, valueOf childValue) Decision {
	if game.IsTerminal(state) {
		panic(fmt.Errorf("%w: no move to choose", ErrTerminalState))
	}
	moves := state.PossibleMoves()
	if len(moves) == 0 {
		panic(fmt.Errorf("%w: non-terminal state has nothing to play", ErrNoMoves))
	}

	collector := s.newCollector()
	collector.Start(strategy.String(), s.goroutines, depth)
	sr := &search{metrics: collector}

	values := make([]float64, len(moves))
	if s.goroutines > 1 && len(moves) > 1 {
		s.parallel(sr, state, moves, values, valueOf)
	} else {
		for i, move := range moves {
			values[i] = valueOf(sr, state.Successor(move, game.Max))
		}
	}

	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] { // Strict: the first maximum wins
			best = i
		}
	}

	metric := collector.Complete()
	log.Debug().
		Str("strategy", strategy.String()).
		Stringer("move", moves[best]).
		Float64("value", values[best]).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Msg("search complete")

	return Decision{Move: moves[best], Value: values[best], Metric: metric}
}

// parallel fills values[i] for moves[i] using up to s.goroutines workers. A
// panic in a worker is re-raised on the calling goroutine.
func (s *Searcher) parallel(sr *search, state game.State, moves []game.Move, values []float64, valueOf childValue) {
	var g errgroup.Group
	g.SetLimit(s.goroutines)

	for i, move := range moves {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = asError(r)
				}
			}()
			values[i] = valueOf(sr, state.Successor(move, game.Max))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		panic(err)
	}
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
