package searcher

import "adversarial/game"

// abdlValue is the depth-limited alpha-beta utility of state with agent to
// move. Terminal states score DepthLimitedWin, 0 or DepthLimitedLoss; at
// depth 0 a non-terminal state scores state.Eval().
func (sr *search) abdlValue(state game.State, agent game.Player, alpha, beta float64, depth int) float64 {
	sr.metrics.AddNode()

	if state.IsWin(game.Max) {
		sr.metrics.AddTerminal()
		return DepthLimitedWin(state.Size())
	}
	if state.IsTie() {
		sr.metrics.AddTerminal()
		return Tie
	}
	if state.IsWin(game.Min) {
		sr.metrics.AddTerminal()
		return DepthLimitedLoss(state.Size())
	}

	if depth == 0 {
		sr.metrics.AddEvaluation()
		return state.Eval()
	}

	if agent == game.Max {
		return sr.abdlMaxValue(state, alpha, beta, depth)
	}
	return sr.abdlMinValue(state, alpha, beta, depth)
}

func (sr *search) abdlMaxValue(state game.State, alpha, beta float64, depth int) float64 {
	v := negInf
	for _, move := range mustMoves(state) {
		v = max(v, sr.abdlValue(state.Successor(move, game.Max), game.Min, alpha, beta, depth-1))
		if v >= beta {
			sr.metrics.AddCutoff()
			return v
		}
		alpha = max(alpha, v)
	}
	return v
}

func (sr *search) abdlMinValue(state game.State, alpha, beta float64, depth int) float64 {
	v := posInf
	for _, move := range mustMoves(state) {
		v = min(v, sr.abdlValue(state.Successor(move, game.Min), game.Max, alpha, beta, depth-1))
		if v <= alpha {
			sr.metrics.AddCutoff()
			return v
		}
		beta = min(beta, v)
	}
	return v
}
