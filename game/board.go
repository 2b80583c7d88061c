package game

import (
	"fmt"
	"strings"
)

const (
	emptyCell = '.'
	maxCell   = 'X'
	minCell   = 'O'
)

// Board is an n×n tic-tac-toe board. A line (row, column or main diagonal)
// filled by one player wins. Boards are values: Successor never modifies
// the receiver, and two boards with the same stones compare equal.
type Board struct {
	size  int
	cells string // Row-major, one byte per cell
}

var _ State = Board{}

// NewBoard returns an empty size×size board.
func NewBoard(size int) Board {
	if size < 1 {
		panic(fmt.Errorf("%w: %d", ErrBoardSize, size))
	}
	return Board{size: size, cells: strings.Repeat(string(emptyCell), size*size)}
}

// ParseBoard reads a board from its String form. Rows are separated by
// newlines; spaces inside a row are ignored. X is Max, O is Min, and '.'
// or '-' is an empty cell.
func ParseBoard(s string) (Board, error) {
	rows := []string{}
	for _, line := range strings.Split(s, "\n") {
		row := strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if row != "" {
			rows = append(rows, row)
		}
	}

	size := len(rows)
	if size == 0 {
		return Board{}, fmt.Errorf("%w: empty board", ErrBoardSize)
	}

	var sb strings.Builder
	sb.Grow(size * size)
	for i, row := range rows {
		if len(row) != size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBoardSize, i, len(row), size)
		}
		for j := 0; j < len(row); j++ {
			switch c := row[j]; c {
			case maxCell, minCell:
				sb.WriteByte(c)
			case emptyCell, '-':
				sb.WriteByte(emptyCell)
			default:
				return Board{}, fmt.Errorf("unexpected cell %q at (%d, %d)", c, i, j)
			}
		}
	}
	return Board{size: size, cells: sb.String()}, nil
}

// MustParseBoard is ParseBoard for fixtures known to be valid.
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) Size() int {
	return b.size
}

// Available reports whether (row, col) is on the board and empty.
func (b Board) Available(row, col int) bool {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return false
	}
	return b.cells[row*b.size+col] == emptyCell
}

// PossibleMoves returns the empty cells in row-major order, or none once
// the game is over.
func (b Board) PossibleMoves() []Move {
	if b.IsWin(Max) || b.IsWin(Min) {
		return nil
	}
	moves := make([]Move, 0, len(b.cells))
	for i := 0; i < len(b.cells); i++ {
		if b.cells[i] == emptyCell {
			moves = append(moves, Move{Row: i / b.size, Col: i % b.size})
		}
	}
	return moves
}

func (b Board) Successor(move Move, player Player) State {
	return b.Play(move, player)
}

// Play is Successor with a concrete return type.
func (b Board) Play(move Move, player Player) Board {
	if !b.Available(move.Row, move.Col) {
		panic(fmt.Errorf("%w: %v on\n%v", ErrIllegalMove, move, b))
	}
	if b.IsWin(Max) || b.IsWin(Min) {
		panic(fmt.Errorf("%w: %v after the game is won", ErrIllegalMove, move))
	}

	cells := []byte(b.cells)
	cells[move.Row*b.size+move.Col] = stone(player)
	return Board{size: b.size, cells: string(cells)}
}

func (b Board) IsWin(player Player) bool {
	want := stone(player)
	for _, line := range b.lines() {
		if line.count(b, want) == b.size {
			return true
		}
	}
	return false
}

func (b Board) IsTie() bool {
	if strings.IndexByte(b.cells, emptyCell) >= 0 {
		return false
	}
	return !b.IsWin(Max) && !b.IsWin(Min)
}

// Winner returns the winning player, if any.
func (b Board) Winner() (Player, bool) {
	if b.IsWin(Max) {
		return Max, true
	}
	if b.IsWin(Min) {
		return Min, true
	}
	return Max, false
}

// Swap exchanges Max and Min stones, so the side that was Min can search
// the position as Max.
func (b Board) Swap() Board {
	cells := []byte(b.cells)
	for i, c := range cells {
		switch c {
		case maxCell:
			cells[i] = minCell
		case minCell:
			cells[i] = maxCell
		}
	}
	return Board{size: b.size, cells: string(cells)}
}

// Stones returns the number of stones each side has on the board.
func (b Board) Stones() (maxStones, minStones int) {
	return strings.Count(b.cells, string(maxCell)), strings.Count(b.cells, string(minCell))
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.cells[r*b.size+c])
		}
		if r < b.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func stone(p Player) byte {
	if p == Max {
		return maxCell
	}
	return minCell
}

// line is a run of cells described by a start index and a stride.
type line struct {
	start, stride int
}

func (l line) count(b Board, c byte) int {
	n := 0
	for i, idx := 0, l.start; i < b.size; i, idx = i+1, idx+l.stride {
		if b.cells[idx] == c {
			n++
		}
	}
	return n
}

func (b Board) lines() []line {
	n := b.size
	lines := make([]line, 0, 2*n+2)
	for i := 0; i < n; i++ {
		lines = append(lines, line{start: i * n, stride: 1}) // Row
		lines = append(lines, line{start: i, stride: n})     // Column
	}
	lines = append(lines, line{start: 0, stride: n + 1})
	lines = append(lines, line{start: n - 1, stride: n - 1})
	return lines
}
