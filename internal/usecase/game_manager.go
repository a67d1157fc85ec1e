package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Player chooses moves for one mark.
type Player interface {
	GetMove(ctx context.Context, board *entity.Board) (entity.Move, error)
}

type renderer interface {
	Board(board *entity.Board) error
	Message(message string) error
}

// Result describes a finished game.
type Result struct {
	Winner  string         `json:"winner"`
	Message string         `json:"message"`
	Turns   int            `json:"turns"`
	Outcome entity.Outcome `json:"outcome"`
	Moves   []entity.Move  `json:"moves"`
}

type GameManager struct {
	logger   *slog.Logger
	renderer renderer
}

// NewGameManager - creates a game loop. A nil renderer plays the game silently.
func NewGameManager(logger *slog.Logger, renderer renderer) *GameManager {
	if renderer == nil {
		renderer = silent{}
	}

	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		renderer: renderer,
	}
}

// Play - runs the game on board until it ends, X moving first.
// Turns grows by one for every completed X and O round and once more when the game ends inside a round.
func (that *GameManager) Play(ctx context.Context, board *entity.Board, playerX, playerO Player) (Result, error) {
	result := Result{}

	if err := that.renderer.Board(board); err != nil {
		return result, fmt.Errorf("failed to render board: %w", err)
	}

	turns := [...]struct {
		mark   entity.Mark
		player Player
	}{
		{mark: entity.MarkX, player: playerX},
		{mark: entity.MarkO, player: playerO},
	}

	for !board.IsEndState().IsTerminal() {
		for _, turn := range turns {
			if err := ctx.Err(); err != nil {
				return result, fmt.Errorf("game interrupted: %w", err)
			}

			move, err := turn.player.GetMove(ctx, board)
			if err != nil {
				return result, fmt.Errorf("failed to get move of %s: %w", turn.mark, err)
			}

			if err = board.PlaceMove(turn.mark, move); err != nil {
				return result, fmt.Errorf("failed to place move %s of %s: %w", move, turn.mark, err)
			}

			result.Moves = append(result.Moves, move)
			that.logger.Debug("move placed", "mark", string(turn.mark), "move", move.String())

			if err = that.renderer.Board(board); err != nil {
				return result, fmt.Errorf("failed to render board: %w", err)
			}

			if board.IsEndState().IsTerminal() {
				result.Turns++
				return that.finish(result, board.IsEndState())
			}
		}

		result.Turns++
	}

	return that.finish(result, board.IsEndState())
}

func (that *GameManager) finish(result Result, outcome entity.Outcome) (Result, error) {
	result.Outcome = outcome
	result.Winner = outcome.Label()
	result.Message = outcome.Message()

	if err := that.renderer.Message(result.Message); err != nil {
		return result, fmt.Errorf("failed to render result: %w", err)
	}

	that.logger.Info("game finished", "winner", result.Winner, "turns", result.Turns, "moves", len(result.Moves))

	return result, nil
}

type silent struct{}

func (silent) Board(*entity.Board) error { return nil }

func (silent) Message(string) error { return nil }
