package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
)

type searcher interface {
	Search(ctx context.Context, board *entity.Board, mark entity.Mark) (search.Result, error)
}

// corners of the 3x3 board, the best opening cells
var openingCorners = [...]entity.Move{
	{Row: 0, Col: 0},
	{Row: 0, Col: 2},
	{Row: 2, Col: 0},
	{Row: 2, Col: 2},
}

// Minimax plays perfectly through its searcher, except for the very first move of a game.
type Minimax struct {
	logger   *slog.Logger
	mark     entity.Mark
	searcher searcher
	rand     *rand.Rand
}

func NewMinimax(logger *slog.Logger, mark entity.Mark, searcher searcher, rng *rand.Rand) *Minimax {
	return &Minimax{
		logger:   loggerOrDiscard(logger).With("component", "cpu_player", "mark", string(mark)),
		mark:     mark,
		searcher: searcher,
		rand:     randOrTime(rng),
	}
}

// GetMove - returns the opening move on a fresh board, otherwise the searched move.
func (that *Minimax) GetMove(ctx context.Context, board *entity.Board) (entity.Move, error) {
	if board.IsEmpty() {
		move := that.openingMove(board.Size())
		that.logger.Debug("cpu player opening move", "move", move.String())

		return move, nil
	}

	if len(board.RemainingMoves()) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	result, err := that.searcher.Search(ctx, board.Clone(), that.mark)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to search move: %w", err)
	}

	that.logger.Debug("cpu player move",
		"move", result.Move.String(),
		"score", result.Score,
		"nodes", result.Nodes,
		"elapsed", result.Elapsed,
		"partial", result.Partial,
	)

	return result.Move, nil
}

// openingMove - a random corner on 3x3, the top left cell on any other size.
func (that *Minimax) openingMove(size int) entity.Move {
	if size == entity.DefaultBoardSize {
		return openingCorners[that.rand.Intn(len(openingCorners))]
	}

	return entity.NewMove(0, 0)
}
