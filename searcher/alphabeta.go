package searcher

import "adversarial/game"

// abValue is the minimax value of state with agent to move, computed with
// the (alpha, beta) window. The window is a local copy: it only tightens
// within this call.
func (sr *search) abValue(state game.State, agent game.Player, alpha, beta float64) float64 {
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
		return sr.abMaxValue(state, alpha, beta)
	}
	return sr.abMinValue(state, alpha, beta)
}

func (sr *search) abMaxValue(state game.State, alpha, beta float64) float64 {
	v := negInf
	for _, move := range mustMoves(state) {
		v = max(v, sr.abValue(state.Successor(move, game.Max), game.Min, alpha, beta))
		if v >= beta { // Min already has a better alternative
			sr.metrics.AddCutoff()
			return v
		}
		alpha = max(alpha, v)
	}
	return v
}

func (sr *search) abMinValue(state game.State, alpha, beta float64) float64 {
	v := posInf
	for _, move := range mustMoves(state) {
		v = min(v, sr.abValue(state.Successor(move, game.Min), game.Max, alpha, beta))
		if v <= alpha { // Max already has a better alternative
			sr.metrics.AddCutoff()
			return v
		}
		beta = min(beta, v)
	}
	return v
}
