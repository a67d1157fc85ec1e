package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// PlayersFactory builds the X and O players of one worker. Players are never shared between workers.
type PlayersFactory func(worker int) (playerX, playerO Player, err error)

// Tally sums up a series of games.
type Tally struct {
	Games int `json:"games"`
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
	Turns int `json:"turns"`
}

// AverageTurns - returns the mean number of turns per game.
func (that Tally) AverageTurns() float64 {
	if that.Games == 0 {
		return 0
	}

	return float64(that.Turns) / float64(that.Games)
}

type Series struct {
	logger    *slog.Logger
	boardSize int
	workers   int
	players   PlayersFactory
}

func NewSeries(logger *slog.Logger, boardSize, workers int, players PlayersFactory) *Series {
	return &Series{
		logger:    logger.With("component", "series"),
		boardSize: boardSize,
		workers:   max(workers, 1),
		players:   players,
	}
}

// Run - plays games silently across the workers. Each worker owns one board and resets it between games.
func (that *Series) Run(ctx context.Context, games int) (Tally, error) {
	if games <= 0 {
		return Tally{}, nil
	}

	var (
		next                        atomic.Int64
		played, xWins, oWins, draws atomic.Int64
		turns                       atomic.Int64
	)

	group, groupCtx := errgroup.WithContext(ctx)

	for worker := range min(that.workers, games) {
		group.Go(func() error {
			playerX, playerO, err := that.players(worker)
			if err != nil {
				return fmt.Errorf("failed to build players of worker %d: %w", worker, err)
			}

			board, err := entity.NewBoard(that.boardSize)
			if err != nil {
				return fmt.Errorf("failed to create board: %w", err)
			}

			manager := NewGameManager(that.logger.With("worker", worker), nil)

			for next.Add(1) <= int64(games) {
				board.Reset()

				result, err := manager.Play(groupCtx, board, playerX, playerO)
				if err != nil {
					return fmt.Errorf("worker %d failed to play: %w", worker, err)
				}

				played.Add(1)
				turns.Add(int64(result.Turns))

				switch {
				case result.Outcome.IsDraw():
					draws.Add(1)
				case result.Outcome.Winner == entity.MarkX:
					xWins.Add(1)
				default:
					oWins.Add(1)
				}
			}

			return nil
		})
	}

	err := group.Wait()

	tally := Tally{
		Games: int(played.Load()),
		XWins: int(xWins.Load()),
		OWins: int(oWins.Load()),
		Draws: int(draws.Load()),
		Turns: int(turns.Load()),
	}

	if err != nil {
		return tally, err
	}

	that.logger.Info("series finished",
		"games", tally.Games,
		"x_wins", tally.XWins,
		"o_wins", tally.OWins,
		"draws", tally.Draws,
	)

	return tally, nil
}
