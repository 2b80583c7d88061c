package experiments

import (
	"fmt"

	"adversarial/engine"
	"adversarial/experiments/metrics"
	"adversarial/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Tally is one agent's results over an experiment.
type Tally struct {
	Wins   int
	Losses int
	Ties   int
}

type Summary struct {
	Dir     string // Where the records were written
	Games   int
	Results map[int]*Tally // By AgentConfig.ID
}

// Run plays every matchup config.Games times, alternating which agent moves
// first, and writes agent configs, game records and move records as CSV.
func Run(config Config) (Summary, error) {
	err := config.Validate()
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Results: map[int]*Tally{}}
	for _, a := range config.Agents {
		summary.Results[a.ID] = &Tally{}
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", config.Name)

	for mi, matchup := range config.Matchups {
		log.Info().Msgf("starting matchup %d of %d between agent %d and agent %d...", mi+1, len(config.Matchups), matchup[0], matchup[1])

		for i := 0; i < config.Games; i++ {
			first, second := config.agent(matchup[0]), config.agent(matchup[1])
			if i%2 == 1 {
				first, second = second, first
			}
			count++

			winner, gameMetric, moveMetrics, err := runGame(config.BoardSize, first, second, uint64(count))
			if err != nil {
				return Summary{}, err
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch winner {
			case player(first):
				summary.Results[first.ID].Wins++
				summary.Results[second.ID].Losses++
			case player(second):
				summary.Results[second.ID].Wins++
				summary.Results[first.ID].Losses++
			default:
				summary.Results[first.ID].Ties++
				summary.Results[second.ID].Ties++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(config.Matchups), i+1, winner)
		}
	}
	summary.Games = count

	log.Info().Msgf("completed %s experiment", config.Name)

	writer, err := metrics.NewWriter(config.OutputDir, config.Name)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	err = writer.WriteAgentConfigs(config.Agents)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return summary, nil
}

// runGame plays a single game between two agents. Random agents are reseeded
// per game so repeated games differ.
func runGame(size int, config1, config2 metrics.AgentConfig, game uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	players := []string{player(config1), player(config2)}
	agents := make([]agent.Agent, 0, 2)
	for _, config := range []metrics.AgentConfig{config1, config2} {
		config.Seed += game
		a, err := agent.NewAgent(config)
		if err != nil {
			return "", metrics.GameMetric{}, nil, err
		}
		agents = append(agents, a)
	}

	e := engine.LocalEngine(players, agents, size)
	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

func player(config metrics.AgentConfig) string {
	return fmt.Sprintf("agent%d", config.ID)
}
