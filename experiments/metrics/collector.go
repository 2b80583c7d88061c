package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy    string
	Goroutines  int
	Depth       int // Ply budget, -1 when the search runs to terminal states
	Duration    time.Duration
	Nodes       int     // States visited, root successors included
	Cutoffs     int     // Alpha or beta cutoffs taken
	Evaluations int     // Heuristic evaluations at the depth cutoff
	Terminals   int     // Win, loss or tie leaves reached
	Value       float64 // Backed-up value of the chosen move
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int    // Player ID
	Winner         string // Player name, empty on a tie
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers search statistics. Implementations are safe for
// concurrent use by the goroutines of one search.
type Collector interface {
	Start(strategy string, goroutines, depth int)
	AddNode()
	AddCutoff()
	AddEvaluation()
	AddTerminal()
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	goroutines  int
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	cutoffs     atomic.Int64
	evaluations atomic.Int64
	terminals   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(strategy string, goroutines, depth int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.evaluations.Store(0)
	m.terminals.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Goroutines:  m.goroutines,
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		Evaluations: int(m.evaluations.Load()),
		Terminals:   int(m.terminals.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, goroutines, depth int) {}
func (m *dummyCollector) AddNode()                                     {}
func (m *dummyCollector) AddCutoff()                                   {}
func (m *dummyCollector) AddEvaluation()                               {}
func (m *dummyCollector) AddTerminal()                                 {}
func (m *dummyCollector) Complete() SearchMetric                       { return SearchMetric{} }
