package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrent events", func(t *testing.T) {
		c := NewCollector()
		c.Start("alphabeta", 4, -1)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
				}
				c.AddCutoff()
				c.AddTerminal()
			}()
		}
		wg.Wait()
		c.AddEvaluation()

		got := c.Complete()
		require.Equal(t, "alphabeta", got.Strategy)
		require.Equal(t, 4, got.Goroutines)
		require.Equal(t, -1, got.Depth)
		require.Equal(t, 400, got.Nodes)
		require.Equal(t, 4, got.Cutoffs)
		require.Equal(t, 4, got.Terminals)
		require.Equal(t, 1, got.Evaluations)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", 1, -1)
		c.AddNode()
		c.Start("abdl", 1, 2)

		got := c.Complete()
		require.Zero(t, got.Nodes)
		require.Equal(t, 2, got.Depth)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minimax", 1, -1)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "tournament")
	require.NoError(t, err)

	err = w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "abdl", Depth: 2, Goroutines: 1}})
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err = w.WriteGameRecords([]GameRecord{{
		ID: 1, Agent1: 1, Agent2: 2,
		GameMetric: GameMetric{StartingPlayer: 1, Winner: "agent1", StartTime: start, EndTime: start, TotalMoves: 5},
	}})
	require.NoError(t, err)

	err = w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Player: 1, Move: "(1, 1)", SearchMetric: SearchMetric{Strategy: "abdl", Nodes: 10, Value: 8}},
	}})
	require.NoError(t, err)

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "kind", "depth", "goroutines", "seed"},
		{"1", "abdl", "2", "1", "0"},
	}, configs)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "agent1", games[1][4])
	require.Equal(t, "2024-01-02T03:04:05Z", games[1][5])
	require.Equal(t, "5", games[1][8])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, []string{"1", "1", "1", "(1, 1)", "8", "abdl", "0", "0s", "10", "0", "0", "0"}, moves[1])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
