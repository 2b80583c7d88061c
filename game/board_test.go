package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		b := NewBoard(3)

		require.Equal(t, 3, b.Size())
		require.Len(t, b.PossibleMoves(), 9)
		require.False(t, IsTerminal(b))
		require.Equal(t, 0.0, b.Eval(), "Both sides have every line open")
	})

	t.Run("panics on non-positive size", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(0) })
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("round trips through String", func(t *testing.T) {
		b := MustParseBoard(`
			X . O
			- X .
			O . .`)

		again, err := ParseBoard(b.String())

		require.NoError(t, err)
		require.Equal(t, b, again, "Boards with the same stones should be equal")
		require.Equal(t, "X . O\n. X .\nO . .", b.String())
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		_, err := ParseBoard("X.\n...")
		require.ErrorIs(t, err, ErrBoardSize)
	})

	t.Run("rejects unknown cells", func(t *testing.T) {
		_, err := ParseBoard("X?\n..")
		require.Error(t, err)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := ParseBoard("  \n ")
		require.ErrorIs(t, err, ErrBoardSize)
	})
}

func TestBoardMoves(t *testing.T) {
	t.Run("row-major order of empty cells", func(t *testing.T) {
		b := MustParseBoard(`
			X . O
			. X .
			O . .`)

		require.Equal(t, []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}, b.PossibleMoves())
	})

	t.Run("no moves once the game is won", func(t *testing.T) {
		b := MustParseBoard(`
			X X X
			O O .
			. . .`)

		require.Empty(t, b.PossibleMoves())
	})

	t.Run("successor places a stone without touching the receiver", func(t *testing.T) {
		b := NewBoard(3)

		next := b.Successor(Move{Row: 1, Col: 1}, Max)

		require.False(t, next.(Board).Available(1, 1))
		require.True(t, b.Available(1, 1), "Original board should be unchanged")
		maxStones, minStones := next.(Board).Stones()
		require.Equal(t, 1, maxStones)
		require.Equal(t, 0, minStones)
	})

	t.Run("panics on an occupied cell", func(t *testing.T) {
		b := NewBoard(3).Play(Move{Row: 0, Col: 0}, Min)

		require.Panics(t, func() { b.Play(Move{Row: 0, Col: 0}, Max) })
	})

	t.Run("panics off the board", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(3).Play(Move{Row: 3, Col: 0}, Max) })
		require.Panics(t, func() { NewBoard(3).Play(Move{Row: 0, Col: -1}, Max) })
	})
}

func TestBoardOutcome(t *testing.T) {
	cases := []struct {
		name   string
		board  string
		maxWin bool
		minWin bool
		tie    bool
	}{
		{name: "row", board: "XXX\nOO.\n...", maxWin: true},
		{name: "column", board: "OX.\nOX.\nO.X", minWin: true},
		{name: "diagonal", board: "XO.\nOX.\n..X", maxWin: true},
		{name: "anti-diagonal", board: "X.O\nXO.\nO.X", minWin: true},
		{name: "full board without a line", board: "XOX\nXOO\nOXX", tie: true},
		{name: "full board with a line is a win", board: "XXX\nOOX\nXOO", maxWin: true},
		{name: "in progress", board: "X..\n.O.\n...", tie: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := MustParseBoard(c.board)

			require.Equal(t, c.maxWin, b.IsWin(Max))
			require.Equal(t, c.minWin, b.IsWin(Min))
			require.Equal(t, c.tie, b.IsTie())
			require.Equal(t, c.maxWin || c.minWin || c.tie, IsTerminal(b))
		})
	}

	t.Run("one by one board", func(t *testing.T) {
		b := NewBoard(1).Play(Move{}, Max)

		require.True(t, b.IsWin(Max))
		require.False(t, b.IsTie())
	})

	t.Run("winner", func(t *testing.T) {
		p, ok := MustParseBoard("OX.\nOX.\nO.X").Winner()
		require.True(t, ok)
		require.Equal(t, Min, p)

		_, ok = NewBoard(3).Winner()
		require.False(t, ok)
	})
}

func TestBoardEval(t *testing.T) {
	t.Run("center stone closes four lines for the opponent", func(t *testing.T) {
		b := NewBoard(3).Play(Move{Row: 1, Col: 1}, Max)

		require.Equal(t, 4.0, b.Eval())
	})

	t.Run("corner replies", func(t *testing.T) {
		b := MustParseBoard(`
			O . .
			. X .
			. . .`)

		// Max keeps 5 open lines, Min keeps 8-4 = 4
		require.Equal(t, 1.0, b.Eval())
	})

	t.Run("is antisymmetric under swap", func(t *testing.T) {
		b := MustParseBoard(`
			O . X
			. X .
			. . O`)

		require.Equal(t, -b.Eval(), b.Swap().Eval())
	})
}

func TestPlayer(t *testing.T) {
	require.Equal(t, Min, Max.Opponent())
	require.Equal(t, Max, Min.Opponent())
	require.Equal(t, "Max", Max.String())
	require.Equal(t, "Min", Min.String())
	require.Equal(t, "(1, 2)", Move{Row: 1, Col: 2}.String())
}
