package strategy

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Random plays a uniformly random legal move. It is not safe for concurrent use.
type Random struct {
	logger *slog.Logger
	mark   entity.Mark
	rand   *rand.Rand
}

func NewRandom(logger *slog.Logger, mark entity.Mark, rng *rand.Rand) *Random {
	return &Random{
		logger: loggerOrDiscard(logger).With("component", "random_player", "mark", string(mark)),
		mark:   mark,
		rand:   randOrTime(rng),
	}
}

func (that *Random) GetMove(_ context.Context, board *entity.Board) (entity.Move, error) {
	moves := board.RemainingMoves()
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	move := moves[that.rand.Intn(len(moves))]
	that.logger.Debug("random player move", "move", move.String())

	return move, nil
}
