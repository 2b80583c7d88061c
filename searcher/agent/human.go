package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/utils"
)

var ErrNoInput = errors.New("no more input")

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent returns an agent that reads "row col" moves from in,
// prompting on out. FindMove panics with ErrNoInput once in is exhausted.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (h *humanAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	moves := state.PossibleMoves()
	for {
		fmt.Fprint(h.out, "Enter your move as \"row col\": ")
		if !h.in.Scan() {
			err := h.in.Err()
			if err == nil {
				err = ErrNoInput
			}
			panic(fmt.Errorf("failed to read move: %w", err))
		}

		move, err := parseMove(h.in.Text())
		if err != nil {
			fmt.Fprintf(h.out, "Invalid format: %v\n", err)
			continue
		}
		if !utils.Contains(moves, move) {
			fmt.Fprintf(h.out, "Move %v is not available.\n", move)
			continue
		}
		return move, metrics.SearchMetric{Strategy: "human"}
	}
}

// parseMove reads two integers separated by spaces or a comma.
func parseMove(input string) (game.Move, error) {
	fields := strings.Fields(strings.ReplaceAll(input, ",", " "))
	if len(fields) != 2 {
		return game.Move{}, fmt.Errorf("want 2 numbers, got %d", len(fields))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Move{}, fmt.Errorf("invalid row: %w", err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Move{}, fmt.Errorf("invalid column: %w", err)
	}
	return game.Move{Row: row, Col: col}, nil
}
