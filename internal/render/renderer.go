package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	header = "Tic Tac Toe Board"

	colorX = "1" // red
	colorO = "4" // blue
)

// Renderer writes boards and notices for a person watching the game.
type Renderer struct {
	output *termenv.Output
}

// New - creates a renderer on w. Without color every style collapses to plain text.
func New(w io.Writer, color bool) *Renderer {
	if !color {
		return &Renderer{output: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
	}

	return &Renderer{output: termenv.NewOutput(w)}
}

// Board - writes the header and one line per row, cells separated by a space.
func (that *Renderer) Board(board *entity.Board) error {
	builder := strings.Builder{}
	builder.WriteString(header)
	builder.WriteByte('\n')

	for _, row := range board.Rows() {
		cells := make([]string, 0, len(row))
		for _, mark := range row {
			cells = append(cells, that.cell(mark))
		}

		builder.WriteString(strings.Join(cells, " "))
		builder.WriteByte('\n')
	}

	if _, err := io.WriteString(that.output, builder.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// Message - writes a single notice line.
func (that *Renderer) Message(message string) error {
	if _, err := fmt.Fprintln(that.output, that.output.String(message).Bold()); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Renderer) cell(mark entity.Mark) string {
	style := that.output.String(mark.String())

	switch mark {
	case entity.MarkX:
		return style.Foreground(that.output.Color(colorX)).Bold().String()
	case entity.MarkO:
		return style.Foreground(that.output.Color(colorO)).Bold().String()
	default:
		return style.Faint().String()
	}
}
