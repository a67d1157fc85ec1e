package usecase

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/search"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/strategy"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-minimax/mocks/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

// randomVersusMinimax - builds a random player for one mark and a perfect one for the other.
func randomVersusMinimax(cpuMark entity.Mark) PlayersFactory {
	return func(worker int) (Player, Player, error) {
		rng := rand.New(rand.NewSource(int64(suite.Seed + worker))) //nolint: gosec // deterministic tests

		cpu := strategy.NewMinimax(nil, cpuMark, search.NewSearcher(nil), rng)
		random := strategy.NewRandom(nil, cpuMark.Opponent(), rng)

		if cpuMark == entity.MarkX {
			return cpu, random, nil
		}

		return random, cpu, nil
	}
}

func TestSeries_Run(t *testing.T) {
	t.Run("Minimax as O never loses to random play", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a series of games on several workers
		series := NewSeries(st.Logger, 3, 4, randomVersusMinimax(entity.MarkO))

		// When: the series runs
		tally, err := series.Run(ctx, 24)

		// Then: every game is tallied and X never wins
		require.NoError(t, err)
		assert.Equal(t, 24, tally.Games)
		assert.Equal(t, tally.Games, tally.XWins+tally.OWins+tally.Draws)
		assert.Zero(t, tally.XWins)
		assert.GreaterOrEqual(t, tally.AverageTurns(), 3.0)
	})

	t.Run("Minimax as X never loses to random play", func(t *testing.T) {
		ctx, st := suite.New(t)

		tally, err := NewSeries(st.Logger, 3, 2, randomVersusMinimax(entity.MarkX)).Run(ctx, 16)

		require.NoError(t, err)
		assert.Equal(t, 16, tally.Games)
		assert.Equal(t, tally.Games, tally.XWins+tally.OWins+tally.Draws)
		assert.Zero(t, tally.OWins)
	})

	t.Run("More workers than games", func(t *testing.T) {
		ctx, st := suite.New(t)

		tally, err := NewSeries(st.Logger, 3, 8, randomVersusMinimax(entity.MarkO)).Run(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, 2, tally.Games)
	})

	t.Run("No games", func(t *testing.T) {
		ctx, st := suite.New(t)

		tally, err := NewSeries(st.Logger, 3, 2, randomVersusMinimax(entity.MarkO)).Run(ctx, 0)

		require.NoError(t, err)
		assert.Equal(t, Tally{}, tally)
		assert.Zero(t, tally.AverageTurns())
	})

	t.Run("Factory errors are returned", func(t *testing.T) {
		ctx, st := suite.New(t)

		failing := func(int) (Player, Player, error) {
			return nil, nil, errSomeError
		}

		_, err := NewSeries(st.Logger, 3, 2, failing).Run(ctx, 4)

		require.ErrorIs(t, err, errSomeError)
	})

	t.Run("Game errors stop the series", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: an X player that always fails
		failing := func(int) (Player, Player, error) {
			playerX := mockedUseCase.NewMockPlayer(t)
			playerX.EXPECT().GetMove(mock.Anything, mock.Anything).Return(entity.Move{}, errSomeError).Once()

			return playerX, mockedUseCase.NewMockPlayer(t), nil
		}

		// When: the series runs on one worker
		tally, err := NewSeries(st.Logger, 3, 1, failing).Run(ctx, 3)

		// Then: the error is returned and no game is counted
		require.ErrorIs(t, err, errSomeError)
		assert.Zero(t, tally.Games)
	})
}
