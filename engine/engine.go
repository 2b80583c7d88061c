package engine

import (
	"adversarial/experiments/metrics"
	"adversarial/game"
)

type Engine interface {
	// Run plays a game till it is won or tied
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Update describes one move as it is applied to the shared board.
type Update struct {
	Step   int
	Player string
	Side   game.Player // Side of the board the player owns: Max for player 1
	Move   game.Move
	Board  game.Board // Board after the move
}
