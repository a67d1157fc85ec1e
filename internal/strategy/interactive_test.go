package strategy

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}

func TestInteractive_GetMove(t *testing.T) {
	t.Run("Accepts a legal move", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a person who types the center cell
		var out bytes.Buffer
		player := NewInteractive(st.Logger, entity.MarkX, lines("1,1\n"), &out)

		// When: asking for a move
		move, err := player.GetMove(ctx, st.EmptyBoard(3))

		// Then: the center is returned after a single prompt
		require.NoError(t, err)
		assert.Equal(t, entity.NewMove(1, 1), move)
		assert.Equal(t, "Place X where? row,col\n", out.String())
	})

	t.Run("Re-prompts until the input is legal", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the top left cell is taken and the person makes several mistakes
		board := st.Board("X__", "___", "___")
		input := strings.Join([]string{"abc", "1", "1,2,3", "5,5", "0,0", "-1,0", " 1  2 "}, "\n") + "\n"

		var out bytes.Buffer
		player := NewInteractive(st.Logger, entity.MarkO, lines(input), &out)

		// When: asking for a move
		move, err := player.GetMove(ctx, board)

		// Then: every bad line is reported and the legal one is returned
		require.NoError(t, err)
		assert.Equal(t, entity.NewMove(1, 2), move)
		assert.Equal(t, 6, strings.Count(out.String(), "Invalid Move\n"))
		assert.Equal(t, 7, strings.Count(out.String(), "Place O where? row,col\n"))
	})

	t.Run("Keeps reading the same input across turns", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: two moves typed ahead
		board := st.EmptyBoard(3)
		player := NewInteractive(st.Logger, entity.MarkX, lines("0,0\n2,2\n"), &bytes.Buffer{})

		// When: asking twice
		first, err := player.GetMove(ctx, board)
		require.NoError(t, err)
		require.NoError(t, board.PlaceMove(entity.MarkX, first))
		second, err := player.GetMove(ctx, board)
		require.NoError(t, err)

		// Then: both lines are used in order
		assert.Equal(t, entity.NewMove(0, 0), first)
		assert.Equal(t, entity.NewMove(2, 2), second)
	})

	t.Run("Two players share one input", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: X and O read from the same typed-ahead input
		board := st.EmptyBoard(3)
		input := lines("0,0\n1,1\n0,1\n")
		playerX := NewInteractive(st.Logger, entity.MarkX, input, &bytes.Buffer{})
		playerO := NewInteractive(st.Logger, entity.MarkO, input, &bytes.Buffer{})

		// When: they take turns
		var moves []entity.Move
		for _, turn := range []struct {
			mark   entity.Mark
			player *Interactive
		}{{entity.MarkX, playerX}, {entity.MarkO, playerO}, {entity.MarkX, playerX}} {
			move, err := turn.player.GetMove(ctx, board)
			require.NoError(t, err)
			require.NoError(t, board.PlaceMove(turn.mark, move))
			moves = append(moves, move)
		}

		// Then: each line goes to the player whose turn it is
		assert.Equal(t, []entity.Move{entity.NewMove(0, 0), entity.NewMove(1, 1), entity.NewMove(0, 1)}, moves)
	})

	t.Run("Error when input ends", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: input that runs out before a legal move
		player := NewInteractive(st.Logger, entity.MarkX, lines("9,9\n"), &bytes.Buffer{})

		// When: asking for a move
		_, err := player.GetMove(ctx, st.EmptyBoard(3))

		// Then: ErrInputClosed is returned
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Error when the context is cancelled", func(t *testing.T) {
		ctx, st := suite.New(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		// When: asking for a move with a cancelled context
		_, err := NewInteractive(st.Logger, entity.MarkX, lines("0,0\n"), &bytes.Buffer{}).GetMove(cancelled, st.EmptyBoard(3))

		// Then: the cancellation is returned
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Error on full board", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: asking for a move on a full board
		_, err := NewInteractive(st.Logger, entity.MarkX, lines("0,0\n"), &bytes.Buffer{}).GetMove(ctx, st.Board("XOX", "OXO", "OXO"))

		// Then: ErrNoAvailableMoves is returned without prompting forever
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input    string
		expected entity.Move
		valid    bool
	}{
		{input: "0,2", expected: entity.NewMove(0, 2), valid: true},
		{input: " 2 , 1 ", expected: entity.NewMove(2, 1), valid: true},
		{input: "3 4", expected: entity.NewMove(3, 4), valid: true},
		{input: "-1,0", expected: entity.NewMove(-1, 0), valid: true},
		{input: "", valid: false},
		{input: "1", valid: false},
		{input: "1,2,3", valid: false},
		{input: "a,b", valid: false},
		{input: "1.5,2", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			move, err := ParseMove(tt.input)

			if !tt.valid {
				require.ErrorIs(t, err, ErrMalformedMove)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, move)
		})
	}
}
