package search

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrSearchAborted = errors.New("search aborted")

// Result of a search. Partial is set when the movetime ran out before every root move was searched;
// Move is then the best of the finished root moves, or the first legal move when none finished.
type Result struct {
	Move    entity.Move   `json:"move"`
	Score   int           `json:"score"`
	Nodes   uint64        `json:"nodes"`
	Elapsed time.Duration `json:"elapsed"`
	Partial bool          `json:"partial"`
}

// Searcher runs minimax under Limits. With default limits it returns exactly what Minimax returns.
type Searcher struct {
	limits Limits
}

func NewSearcher(limits *Limits) *Searcher {
	if limits == nil {
		limits = DefaultLimits()
	}

	return &Searcher{limits: *limits}
}

func (that *Searcher) Limits() Limits {
	return that.limits
}

// Search - finds the best move for mark, which must be the side to move.
// Only a cancelled or expired ctx of the caller aborts the search; an expired movetime gives a partial result.
func (that *Searcher) Search(ctx context.Context, board *entity.Board, mark entity.Mark) (Result, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrSearchAborted, err)
	}

	searchCtx := ctx
	if that.limits.Movetime > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, that.limits.Movetime)
		defer cancel()
	}

	var nodes atomic.Uint64
	w := &walker{
		ctx:      searchCtx,
		maxi:     mark,
		maxDepth: that.limits.Depth,
		nodes:    &nodes,
	}

	if board.IsEndState().IsTerminal() {
		// the first node never hits a cancellation check
		move, score, _ := w.walk(board, mark, 0, entity.Move{})

		return Result{Move: move, Score: score, Nodes: nodes.Load(), Elapsed: time.Since(start)}, nil
	}

	w.nodes.Add(1)

	root := newRootMoves(board.RemainingMoves())

	var err error
	if that.limits.Threads > 1 {
		err = that.searchParallel(searchCtx, w, board, mark, root)
	} else {
		err = that.searchSequential(w, board, mark, root)
	}

	result := Result{
		Nodes:   nodes.Load(),
		Elapsed: time.Since(start),
	}

	if err != nil {
		if ctx.Err() != nil || !errors.Is(err, context.DeadlineExceeded) {
			return result, fmt.Errorf("%w: %w", ErrSearchAborted, err)
		}

		result.Partial = true
	}

	best := root.best()
	if best < 0 {
		result.Move = root.moves[0]
		return result, nil
	}

	result.Move = root.moves[best]
	result.Score = root.scores[best]

	return result, nil
}

// rootMoves holds the score of every root move and whether its subtree was searched to the end.
type rootMoves struct {
	moves  []entity.Move
	scores []int
	done   []bool
}

func newRootMoves(moves []entity.Move) *rootMoves {
	return &rootMoves{
		moves:  moves,
		scores: make([]int, len(moves)),
		done:   make([]bool, len(moves)),
	}
}

// best - returns the index of the first best finished move, -1 when none finished.
func (that *rootMoves) best() int {
	best := -1
	for i, done := range that.done {
		if done && (best < 0 || that.scores[i] > that.scores[best]) {
			best = i
		}
	}

	return best
}

func (that *Searcher) searchSequential(w *walker, board *entity.Board, mark entity.Mark, root *rootMoves) error {
	for i, move := range root.moves {
		child := board.Clone()
		if err := child.PlaceMove(mark, move); err != nil {
			return fmt.Errorf("failed to place root move: %w", err)
		}

		_, score, err := w.walk(child, mark.Opponent(), 1, move)
		if err != nil {
			return err
		}

		root.scores[i] = score
		root.done[i] = true
	}

	return nil
}

// searchParallel - searches each root move on its own goroutine. Picking stays in enumeration order.
func (that *Searcher) searchParallel(ctx context.Context, w *walker, board *entity.Board, mark entity.Mark, root *rootMoves) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(that.limits.Threads)

	for i, move := range root.moves {
		child := board.Clone()
		if err := child.PlaceMove(mark, move); err != nil {
			return fmt.Errorf("failed to place root move: %w", err)
		}

		branch := *w
		branch.ctx = groupCtx

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			_, score, err := branch.walk(child, mark.Opponent(), 1, move)
			if err != nil {
				return err
			}

			root.scores[i] = score
			root.done[i] = true

			return nil
		})
	}

	return group.Wait()
}
