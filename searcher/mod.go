package searcher

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"adversarial/experiments/metrics"
	"adversarial/game"
)

// Terminal values of the full-depth strategies.
const (
	Win  = 1.0
	Tie  = 0.0
	Loss = -1.0
)

// Window sentinels. Every utility and evaluation is finite, so they never
// collide with a real value.
var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

var (
	ErrNoMoves       = errors.New("no legal moves")
	ErrTerminalState = errors.New("state is terminal")
	ErrNegativeDepth = errors.New("negative depth")
)

// DepthLimitedWin is the depth-limited utility of a Max win on a board of
// the given size. On boards of size 3 or more it dominates the open-lines
// evaluation of any reachable non-terminal state.
//
// NOTE: win and loss are not symmetric about zero (size²-1 vs -size²-1).
func DepthLimitedWin(size int) float64 {
	return float64(size*size) - 1
}

// DepthLimitedLoss is the depth-limited utility of a Min win.
func DepthLimitedLoss(size int) float64 {
	return -float64(size*size) - 1
}

type Strategy int

const (
	StrategyMinimax Strategy = iota
	StrategyAlphaBeta
	StrategyDepthLimited
)

func (s Strategy) String() string {
	switch s {
	case StrategyMinimax:
		return "minimax"
	case StrategyAlphaBeta:
		return "alphabeta"
	case StrategyDepthLimited:
		return "abdl"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts the names produced by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimax":
		return StrategyMinimax, nil
	case "alphabeta", "alpha-beta":
		return StrategyAlphaBeta, nil
	case "abdl", "depth-limited":
		return StrategyDepthLimited, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// Decision is the outcome of a search from the root: the chosen move, its
// backed-up value and the search statistics (zero unless WithMetrics).
type Decision struct {
	Move   game.Move
	Value  float64
	Metric metrics.SearchMetric
}

type Option func(s *Searcher)

// WithGoroutines evaluates root successors on up to n goroutines. The
// chosen move is the same as with a sequential search.
func WithGoroutines(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.newCollector = metrics.NewCollector
	}
}

// Searcher holds search settings only. It keeps no state between calls and
// is safe for concurrent use.
type Searcher struct {
	goroutines   int
	newCollector func() metrics.Collector
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		goroutines:   1,
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Decide runs the given strategy. depth is only used by StrategyDepthLimited.
func (s *Searcher) Decide(strategy Strategy, state game.State, depth int) Decision {
	switch strategy {
	case StrategyMinimax:
		return s.Minimax(state)
	case StrategyAlphaBeta:
		return s.AlphaBeta(state)
	case StrategyDepthLimited:
		return s.ABDL(state, depth)
	default:
		panic(fmt.Sprintf("unexpected strategy %v", strategy))
	}
}

var defaultSearcher = New()

// Minimax returns Max's best move, searching every path to a terminal state.
func Minimax(state game.State) game.Move {
	return defaultSearcher.Minimax(state).Move
}

// AlphaBeta returns the same move as Minimax while skipping branches that
// cannot change the decision.
func AlphaBeta(state game.State) game.Move {
	return defaultSearcher.AlphaBeta(state).Move
}

// ABDL returns Max's best move under an alpha-beta search limited to depth
// plies below the root successors, using State.Eval at the cutoff.
func ABDL(state game.State, depth int) game.Move {
	return defaultSearcher.ABDL(state, depth).Move
}
