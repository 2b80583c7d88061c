package searcher

import "adversarial/game"

// value is the minimax value of state with agent to move: -1, 0 or 1.
func (sr *search) value(state game.State, agent game.Player) float64 {
	sr.metrics.AddNode()

	if state.IsTie() {
		sr.metrics.AddTerminal()
		return Tie
	}
	if state.IsWin(game.Min) {
		sr.metrics.AddTerminal()
		return Loss
	}
	if state.IsWin(game.Max) {
		sr.metrics.AddTerminal()
		return Win
	}

	if agent == game.Max {
		return sr.maxValue(state)
	}
	return sr.minValue(state)
}

func (sr *search) maxValue(state game.State) float64 {
	moves := mustMoves(state)
	v := negInf
	for _, move := range moves {
		v = max(v, sr.value(state.Successor(move, game.Max), game.Min))
	}
	return v
}

func (sr *search) minValue(state game.State) float64 {
	moves := mustMoves(state)
	v := posInf
	for _, move := range moves {
		v = min(v, sr.value(state.Successor(move, game.Min), game.Max))
	}
	return v
}

// mustMoves returns the moves of a state already known not to be terminal.
func mustMoves(state game.State) []game.Move {
	moves := state.PossibleMoves()
	if len(moves) == 0 {
		panic(ErrNoMoves)
	}
	return moves
}
