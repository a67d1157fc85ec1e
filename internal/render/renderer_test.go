package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var errDiskFull = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errDiskFull
}

func TestRenderer_Board(t *testing.T) {
	t.Run("Plain board matches the text dump", func(t *testing.T) {
		// Given: a board in progress and a renderer without color
		board, err := entity.BoardFromRows("X_O", "_X_", "O__")
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		renderer := New(buf, false)

		// When: rendering it
		err = renderer.Board(board)

		// Then: the output is the header followed by the rows
		require.NoError(t, err)
		assert.Equal(t, "Tic Tac Toe Board\nX _ O\n_ X _\nO _ _\n", buf.String())
		assert.Equal(t, board.String()+"\n", buf.String())
	})

	t.Run("Renders any size", func(t *testing.T) {
		board, err := entity.NewBoard(4)
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		require.NoError(t, New(buf, false).Board(board))

		assert.Equal(t, "Tic Tac Toe Board\n_ _ _ _\n_ _ _ _\n_ _ _ _\n_ _ _ _\n", buf.String())
	})

	t.Run("Returns write failures", func(t *testing.T) {
		board, err := entity.NewBoard(3)
		require.NoError(t, err)

		err = New(failingWriter{}, false).Board(board)

		require.ErrorIs(t, err, errDiskFull)
	})
}

func TestRenderer_Message(t *testing.T) {
	t.Run("Plain message ends with a newline", func(t *testing.T) {
		buf := &bytes.Buffer{}

		require.NoError(t, New(buf, false).Message("X wins!"))

		assert.Equal(t, "X wins!\n", buf.String())
	})

	t.Run("Returns write failures", func(t *testing.T) {
		err := New(failingWriter{}, false).Message("Draw!")

		require.ErrorIs(t, err, errDiskFull)
	})
}
