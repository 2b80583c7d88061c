package engine

import (
	"fmt"
	"time"

	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Local runs a game between two in-process agents. Player 1 owns the X
// (Max) stones and moves first. Every agent searches as Max, so player 2
// is shown the board with the stones swapped.
type Local struct {
	State   game.Board
	Players []string
	Agents  []agent.Agent
	OnMove  func(Update)
}

var _ Engine = (*Local)(nil)

func LocalEngine(players []string, agents []agent.Agent, size int) *Local {
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}
	if len(players) != 2 {
		panic("need exactly two players")
	}

	return &Local{
		State:   game.NewBoard(size),
		Players: players,
		Agents:  agents,
	}
}

// Run plays from the current state until the board is terminal. It returns
// the winning player's name, or "" on a tie.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	startTime := time.Now()
	log.Info().Msgf("%s is starting", e.Players[0])

	maxStones, minStones := e.State.Stones()
	step := 0
	var moveMetrics []metrics.MoveMetric
	for !game.IsTerminal(e.State) {
		// Player 1 moves whenever the stone counts are level
		index := 0
		side := game.Max
		view := e.State
		if maxStones > minStones {
			index = 1
			side = game.Min
			view = e.State.Swap()
		}

		move, metric := e.Agents[index].FindMove(view)
		if !e.State.Available(move.Row, move.Col) {
			panic(fmt.Errorf("%w: %s played %v", game.ErrIllegalMove, e.Players[index], move))
		}
		e.State = e.State.Play(move, side)
		if side == game.Max {
			maxStones++
		} else {
			minStones++
		}
		step++

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       index + 1,
			Move:         move.String(),
			SearchMetric: metric,
		})
		log.Debug().Msgf("step %d: %s played %v", step, e.Players[index], move)

		if e.OnMove != nil {
			e.OnMove(Update{
				Step:   step,
				Player: e.Players[index],
				Side:   side,
				Move:   move,
				Board:  e.State,
			})
		}
	}

	winner := ""
	if side, ok := e.State.Winner(); ok {
		winner = e.Players[int(side)]
		log.Info().Msgf("%s won after %d moves", winner, step)
	} else {
		log.Info().Msgf("tie after %d moves", step)
	}

	endTime := time.Now()
	return winner, metrics.GameMetric{
		StartingPlayer: 1,
		Winner:         winner,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     step,
	}, moveMetrics
}
