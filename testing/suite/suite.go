package suite

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	maxWaitDuration = 60 * time.Second

	// Seed feeds every suite random source so runs repeat.
	Seed = 42
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Rand *rand.Rand
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rand:   rand.New(rand.NewSource(Seed)), //nolint: gosec // deterministic tests
	}
}

// Board - builds a board from rows like "XO_" or fails the test.
func (that *Suite) Board(rows ...string) *entity.Board {
	that.Helper()

	board, err := entity.BoardFromRows(rows...)
	if err != nil {
		that.Fatalf("could not build board: %v", err)
	}

	return board
}

// EmptyBoard - builds a fresh board or fails the test.
func (that *Suite) EmptyBoard(size int) *entity.Board {
	that.Helper()

	board, err := entity.NewBoard(size)
	if err != nil {
		that.Fatalf("could not build board: %v", err)
	}

	return board
}
