package application

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/render"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/strategy"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

// RunApp - runs the application: one rendered game when games is zero, otherwise a silent series.
func RunApp(logger *slog.Logger, conf *config.Config, games int) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if games > 0 {
		return runSeries(ctx, logger, conf, games)
	}

	return runGame(ctx, logger, conf)
}

func runGame(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	board, err := entity.NewBoard(conf.BoardSize)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	opts := strategy.Options{
		Logger: logger,
		Rand:   rand.New(rand.NewSource(conf.RandSeed())), //nolint: gosec // move choice, not secrets
		Limits: searchLimits(conf),
		Input:  bufio.NewScanner(os.Stdin),
		Out:    os.Stdout,
	}

	playerX, playerO, err := newPlayers(conf, opts)
	if err != nil {
		return err
	}

	manager := usecase.NewGameManager(logger, render.New(os.Stdout, conf.Color))

	result, err := manager.Play(ctx, board, playerX, playerO)
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	logger.Debug("game result", "winner", result.Winner, "turns", result.Turns)

	return nil
}

func runSeries(ctx context.Context, logger *slog.Logger, conf *config.Config, games int) error {
	if conf.HasHuman() {
		return fmt.Errorf("%w: a series cannot have human players", config.ErrInvalidConfig)
	}

	seed := conf.RandSeed()
	limits := searchLimits(conf)

	series := usecase.NewSeries(logger, conf.BoardSize, conf.Series.Workers,
		func(worker int) (usecase.Player, usecase.Player, error) {
			return newPlayers(conf, strategy.Options{
				Logger: logger,
				Rand:   rand.New(rand.NewSource(seed + int64(worker))), //nolint: gosec // move choice, not secrets
				Limits: limits,
			})
		})

	tally, err := series.Run(ctx, games)
	if err != nil {
		return fmt.Errorf("series failed: %w", err)
	}

	_, err = fmt.Fprintf(os.Stdout, "games: %d, X wins: %d, O wins: %d, draws: %d, average turns: %.2f\n",
		tally.Games, tally.XWins, tally.OWins, tally.Draws, tally.AverageTurns())
	if err != nil {
		return fmt.Errorf("could not print summary: %w", err)
	}

	return nil
}

func newPlayers(conf *config.Config, opts strategy.Options) (usecase.Player, usecase.Player, error) {
	playerX, err := strategy.New(conf.PlayerX.Kind, entity.MarkX, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create player X: %w", err)
	}

	playerO, err := strategy.New(conf.PlayerO.Kind, entity.MarkO, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create player O: %w", err)
	}

	return playerX, playerO, nil
}

// searchLimits - returns the search limits of the minimax players.
func searchLimits(conf *config.Config) *search.Limits {
	return search.DefaultLimits().
		SetDepth(conf.Search.MaxDepth).
		SetMovetime(conf.Search.Movetime).
		SetThreads(conf.Search.Threads)
}
