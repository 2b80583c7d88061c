package searcher

import (
	"fmt"

	"adversarial/game"
)

// mockNode is a hand-built game tree. Move i from a node leads to children[i].
type mockNode struct {
	maxWin   bool
	minWin   bool
	tie      bool
	eval     float64
	children []*mockNode
}

type mockState struct {
	node  *mockNode
	size  int
	moves *[]game.Player // Players that moved, in order, shared along a path; nil to skip
}

func newMockState(root *mockNode) mockState {
	return mockState{node: root, size: 3, moves: &[]game.Player{}}
}

func (m mockState) PossibleMoves() []game.Move {
	if m.node.maxWin || m.node.minWin || m.node.tie {
		return nil
	}
	moves := make([]game.Move, len(m.node.children))
	for i := range m.node.children {
		moves[i] = game.Move{Row: 0, Col: i}
	}
	return moves
}

func (m mockState) Successor(move game.Move, player game.Player) game.State {
	if move.Row != 0 || move.Col < 0 || move.Col >= len(m.node.children) {
		panic(fmt.Errorf("%w: %v", game.ErrIllegalMove, move))
	}
	if m.moves != nil {
		*m.moves = append(*m.moves, player)
	}
	return mockState{node: m.node.children[move.Col], size: m.size, moves: m.moves}
}

func (m mockState) IsWin(player game.Player) bool {
	if player == game.Max {
		return m.node.maxWin
	}
	return m.node.minWin
}

func (m mockState) IsTie() bool {
	return m.node.tie
}

func (m mockState) Eval() float64 {
	return m.node.eval
}

func (m mockState) Size() int {
	return m.size
}

func branch(eval float64, children ...*mockNode) *mockNode {
	return &mockNode{eval: eval, children: children}
}

func leaf(eval float64) *mockNode {
	return &mockNode{eval: eval}
}

func maxWins() *mockNode {
	return &mockNode{maxWin: true}
}

func minWins() *mockNode {
	return &mockNode{minWin: true}
}

func tied() *mockNode {
	return &mockNode{tie: true}
}

func move(i int) game.Move {
	return game.Move{Row: 0, Col: i}
}
