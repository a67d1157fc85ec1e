package search

import (
	"context"
	"sync/atomic"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	winScore  = 10
	drawScore = 0

	// checked every this many nodes
	cancelCheckInterval = 1024
)

// Minimax - exhaustive search from the board for toMove, scored for the maximizing mark.
// Wins score 10-depth, losses -10+depth and draws 0. Ties go to the first move in row-major order.
//
// The board must have at least one move made: searching a fresh board is what the
// opening shortcut of the minimax strategy avoids. A board that is already terminal
// returns the zero move with its terminal score. The board is never modified.
// toMove must be X or O.
func Minimax(board *entity.Board, toMove, maximizing entity.Mark, depth int) (entity.Move, int) {
	w := &walker{
		ctx:  context.Background(),
		maxi: maximizing,
	}

	// a background context is never cancelled
	move, score, _ := w.walk(board, toMove, depth, entity.Move{})

	return move, score
}

// walker carries what stays fixed during one search.
type walker struct {
	ctx      context.Context
	maxi     entity.Mark
	maxDepth int
	nodes    *atomic.Uint64
}

func (that *walker) walk(board *entity.Board, toMove entity.Mark, depth int, lastMove entity.Move) (entity.Move, int, error) {
	if that.nodes != nil {
		if n := that.nodes.Add(1); n%cancelCheckInterval == 0 {
			if err := that.ctx.Err(); err != nil {
				return lastMove, 0, err
			}
		}
	}

	if outcome := board.IsEndState(); outcome.IsTerminal() {
		return lastMove, that.score(outcome, depth), nil
	}

	if that.maxDepth > 0 && depth >= that.maxDepth {
		return lastMove, drawScore, nil
	}

	moves := board.RemainingMoves()
	scores := make([]int, len(moves))
	for i, move := range moves {
		child := board.Clone()
		if err := child.PlaceMove(toMove, move); err != nil {
			// toMove is not a valid mark, a caller bug
			panic(err)
		}

		_, score, err := that.walk(child, toMove.Opponent(), depth+1, move)
		if err != nil {
			return lastMove, 0, err
		}
		scores[i] = score
	}

	best := pick(scores, toMove == that.maxi)

	return moves[best], scores[best], nil
}

func (that *walker) score(outcome entity.Outcome, depth int) int {
	switch {
	case outcome.IsDraw():
		return drawScore
	case outcome.Winner == that.maxi:
		return winScore - depth
	default:
		return -winScore + depth
	}
}

// pick - returns the index of the best score, the first one on ties.
func pick(scores []int, maximizing bool) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if maximizing && scores[i] > scores[best] || !maximizing && scores[i] < scores[best] {
			best = i
		}
	}

	return best
}
