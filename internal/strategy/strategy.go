package strategy

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
)

// Strategy picks the next move for one player.
type Strategy interface {
	GetMove(ctx context.Context, board *entity.Board) (entity.Move, error)
}

// Options holds what the strategies of a game may need.
type Options struct {
	Logger *slog.Logger
	Rand   *rand.Rand
	Limits *search.Limits
	// Input is shared by every human player of a game.
	Input *bufio.Scanner
	Out   io.Writer
}

// New - builds the strategy of the given kind for the mark.
func New(kind string, mark entity.Mark, opts Options) (Strategy, error) {
	switch kind {
	case entity.PlayerKindRandom:
		return NewRandom(opts.Logger, mark, opts.Rand), nil
	case entity.PlayerKindHuman:
		return NewInteractive(opts.Logger, mark, opts.Input, opts.Out), nil
	case entity.PlayerKindMinimax:
		return NewMinimax(opts.Logger, mark, search.NewSearcher(opts.Limits), opts.Rand), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerKind, kind)
	}
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}

func randOrTime(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // move choice, not secrets
	}
	return rng
}
