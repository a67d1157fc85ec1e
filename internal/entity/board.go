package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const DefaultBoardSize = 3

var ErrInvalidBoardSize = errors.New("board size must be positive")

// Board is an N×N grid. A cell only goes back to Empty through Reset.
type Board struct {
	size  int
	cells []Mark
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}, nil
}

// BoardFromRows - builds a board from rows like "XO_". Both '_' and '.' stand for an empty cell.
func BoardFromRows(rows ...string) (*Board, error) {
	board, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}

	for row, line := range rows {
		if len(line) != board.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoardSize, row, len(line), board.size)
		}

		for col, char := range line {
			switch char {
			case '_', '.':
			case 'X', 'O':
				board.cells[board.index(row, col)] = Mark(string(char))
			default:
				return nil, fmt.Errorf("%w: %q at %s", apperror.ErrIncorrectMark, char, NewMove(row, col))
			}
		}
	}

	return board, nil
}

func (that *Board) Size() int {
	return that.size
}

// At - returns the mark at the given cell. The move must be in range.
func (that *Board) At(move Move) Mark {
	return that.cells[that.index(move.Row, move.Col)]
}

func (that *Board) InBounds(move Move) bool {
	return move.Row >= 0 && move.Col >= 0 && move.Row < that.size && move.Col < that.size
}

// IsLegal - reports whether the move is one of RemainingMoves.
func (that *Board) IsLegal(move Move) bool {
	return that.InBounds(move) && that.At(move) == Empty
}

// RemainingMoves - returns every empty cell in row-major order.
func (that *Board) RemainingMoves() []Move {
	moves := make([]Move, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == Empty {
			moves = append(moves, NewMove(i/that.size, i%that.size))
		}
	}

	return moves
}

// PlaceMove - puts the mark on the board. The board is left untouched on error.
func (that *Board) PlaceMove(mark Mark, move Move) error {
	if !that.IsLegal(move) {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidMove, move)
	}

	if !mark.IsValid() {
		return fmt.Errorf("%w: got %q", apperror.ErrIncorrectMark, string(mark))
	}

	that.cells[that.index(move.Row, move.Col)] = mark

	return nil
}

// Winning - reports whether the mark fills a row, a column or one of the two full diagonals.
func (that *Board) Winning(mark Mark) bool {
	if !mark.IsValid() {
		return false
	}

	for i := 0; i < that.size; i++ {
		if that.lineIs(mark, i, 0, 0, 1) || that.lineIs(mark, 0, i, 1, 0) {
			return true
		}
	}

	return that.lineIs(mark, 0, 0, 1, 1) || that.lineIs(mark, 0, that.size-1, 1, -1)
}

// IsEndState - evaluates the board. X is checked before O.
func (that *Board) IsEndState() Outcome {
	switch {
	case that.Winning(MarkX):
		return Win(MarkX)
	case that.Winning(MarkO):
		return Win(MarkO)
	case that.isFull():
		return Draw()
	default:
		return InProgress()
	}
}

// IsEmpty - reports whether no mark has been placed yet.
func (that *Board) IsEmpty() bool {
	for _, cell := range that.cells {
		if cell != Empty {
			return false
		}
	}

	return true
}

// Reset - clears every cell in place.
func (that *Board) Reset() {
	for i := range that.cells {
		that.cells[i] = Empty
	}
}

func (that *Board) Clone() *Board {
	clone := &Board{
		size:  that.size,
		cells: make([]Mark, len(that.cells)),
	}
	copy(clone.cells, that.cells)

	return clone
}

// Rows - returns a copy of the grid.
func (that *Board) Rows() [][]Mark {
	rows := make([][]Mark, that.size)
	for row := range rows {
		rows[row] = make([]Mark, that.size)
		copy(rows[row], that.cells[row*that.size:(row+1)*that.size])
	}

	return rows
}

func (that *Board) String() string {
	var builder strings.Builder
	builder.WriteString("Tic Tac Toe Board")

	for _, row := range that.Rows() {
		builder.WriteByte('\n')
		for col, cell := range row {
			if col > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteString(cell.String())
		}
	}

	return builder.String()
}

func (that *Board) lineIs(mark Mark, row, col, dRow, dCol int) bool {
	for step := 0; step < that.size; step++ {
		if that.cells[that.index(row+step*dRow, col+step*dCol)] != mark {
			return false
		}
	}

	return true
}

func (that *Board) isFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that *Board) index(row, col int) int {
	return row*that.size + col
}
