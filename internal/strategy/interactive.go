package strategy

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	promptFormat      = "Place %s where? row,col\n"
	invalidMoveNotice = "Invalid Move"
)

var ErrMalformedMove = errors.New("expected two integers: row,col")

// Interactive asks a person for moves until one of them is legal.
type Interactive struct {
	logger  *slog.Logger
	mark    entity.Mark
	scanner *bufio.Scanner
	out     io.Writer
}

// NewInteractive - reads lines from input and writes prompts to out. Nil values mean stdin and stdout.
// Players of one game must share input, a scanner buffers ahead of the line it returns.
func NewInteractive(logger *slog.Logger, mark entity.Mark, input *bufio.Scanner, out io.Writer) *Interactive {
	if input == nil {
		input = bufio.NewScanner(os.Stdin)
	}

	if out == nil {
		out = os.Stdout
	}

	return &Interactive{
		logger:  loggerOrDiscard(logger).With("component", "human_player", "mark", string(mark)),
		mark:    mark,
		scanner: input,
		out:     out,
	}
}

// GetMove - prompts until the input names a remaining move. Bad input is reported and asked again.
func (that *Interactive) GetMove(ctx context.Context, board *entity.Board) (entity.Move, error) {
	if len(board.RemainingMoves()) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	for {
		if err := ctx.Err(); err != nil {
			return entity.Move{}, fmt.Errorf("interactive move: %w", err)
		}

		if _, err := fmt.Fprintf(that.out, promptFormat, that.mark); err != nil {
			return entity.Move{}, fmt.Errorf("failed to write prompt: %w", err)
		}

		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return entity.Move{}, fmt.Errorf("failed to read move: %w", err)
			}

			return entity.Move{}, apperror.ErrInputClosed
		}

		input := that.scanner.Text()

		move, err := ParseMove(input)
		if err == nil && !board.IsLegal(move) {
			err = fmt.Errorf("%w: %s", apperror.ErrInvalidMove, move)
		}

		if err == nil {
			return move, nil
		}

		that.logger.Debug("rejected move input", "input", input, "error", err)

		if _, err = fmt.Fprintln(that.out, invalidMoveNotice); err != nil {
			return entity.Move{}, fmt.Errorf("failed to write notice: %w", err)
		}
	}
}

// ParseMove - parses "row,col". Commas and spaces both separate the numbers.
func ParseMove(input string) (entity.Move, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("%w: got %q", ErrMalformedMove, input)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %w", ErrMalformedMove, err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %w", ErrMalformedMove, err)
	}

	return entity.NewMove(row, col), nil
}
