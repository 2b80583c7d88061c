package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrBoardSize   = errors.New("invalid board size")
)

// Player is the side to move. Max is always the searching agent.
type Player int

const (
	Max Player = iota
	Min
)

func (p Player) Opponent() Player {
	if p == Max {
		return Min
	}
	return Max
}

func (p Player) String() string {
	switch p {
	case Max:
		return "Max"
	case Min:
		return "Min"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// State should be immutable - operations on State always return a new copy
type State interface {
	// PossibleMoves enumerates legal moves in a fixed order. Empty only at terminal states.
	PossibleMoves() []Move
	// Successor returns the state after player plays move. Panics on an illegal move.
	Successor(move Move, player Player) State
	IsWin(player Player) bool
	IsTie() bool
	// Eval is a static estimate of how favorable a non-terminal state is to Max.
	Eval() float64
	Size() int
}

// IsTerminal reports whether either side has won or the game is tied.
func IsTerminal(s State) bool {
	return s.IsWin(Max) || s.IsWin(Min) || s.IsTie()
}
