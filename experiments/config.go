package experiments

import (
	"fmt"
	"os"

	"adversarial/experiments/metrics"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Name      string                `yaml:"name"`
	BoardSize int                   `yaml:"board_size"`
	Games     int                   `yaml:"games"` // Per matchup, starting player alternates
	OutputDir string                `yaml:"output_dir"`
	Agents    []metrics.AgentConfig `yaml:"agents"`
	Matchups  [][]int               `yaml:"matchups"` // Pairs of agent IDs
}

// DefaultConfig pits depth-limited agents of increasing depth against a
// random baseline and against full alpha-beta.
func DefaultConfig() Config {
	return Config{
		Name:      "depth",
		BoardSize: 3,
		Games:     10,
		OutputDir: "experiments",
		Agents: []metrics.AgentConfig{
			{ID: 0, Kind: "random", Seed: 1},
			{ID: 1, Kind: "alphabeta"},
			{ID: 2, Kind: "abdl", Depth: 0},
			{ID: 3, Kind: "abdl", Depth: 2},
			{ID: 4, Kind: "abdl", Depth: 4},
		},
		Matchups: [][]int{
			{0, 2}, {0, 3}, {0, 4},
			{1, 2}, {1, 3}, {1, 4},
		},
	}
}

// LoadConfig reads a YAML config. Missing scalar fields take their
// DefaultConfig values; agents and matchups must be given together.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	defaults := DefaultConfig()
	if config.Name == "" {
		config.Name = defaults.Name
	}
	if config.BoardSize == 0 {
		config.BoardSize = defaults.BoardSize
	}
	if config.Games == 0 {
		config.Games = defaults.Games
	}
	if config.OutputDir == "" {
		config.OutputDir = defaults.OutputDir
	}
	if len(config.Agents) == 0 && len(config.Matchups) == 0 {
		config.Agents = defaults.Agents
		config.Matchups = defaults.Matchups
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	if c.BoardSize < 1 {
		return fmt.Errorf("board_size must be positive, got %d", c.BoardSize)
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}

	ids := map[int]bool{}
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("duplicate agent id %d", agent.ID)
		}
		ids[agent.ID] = true
	}

	if len(c.Matchups) == 0 {
		return fmt.Errorf("no matchups")
	}
	for i, matchup := range c.Matchups {
		if len(matchup) != 2 {
			return fmt.Errorf("matchup %d must name 2 agents, got %d", i, len(matchup))
		}
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("matchup %d: unknown agent id %d", i, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("unknown agent id %d", id))
}
