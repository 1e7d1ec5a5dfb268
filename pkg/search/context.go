// Package search implements the tree search on top of pkg/board and pkg/eval: move
// ordering, alpha-beta/PVS negamax, quiescence search and a lock-free transposition
// table. pkg/search/searchctl wraps it with the iterative-deepening/time-control
// harness the engine actually drives.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corvidae/gyrfalcon/pkg/board"
	"github.com/corvidae/gyrfalcon/pkg/eval"
)

// ErrHalted is returned by a Search when it was stopped (via ctx cancellation) before
// completing. It is not a failure: the caller should use the previous iteration's PV.
var ErrHalted = errors.New("search: halted")

// Context carries the per-search-call state that is not part of the board itself: the
// alpha-beta window, the transposition table, evaluation noise and an optional
// ponder line to search first regardless of move ordering.
type Context struct {
	Alpha, Beta eval.Score
	TT          TranspositionTable
	Noise       eval.Random
	Ponder      []board.Move
}

// Search runs a fixed-depth search from the current board position and returns the
// node count, score and principal variation for the side to move.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error)
}

// QuietSearch resolves a position that has reached the search horizon, typically via
// quiescence search, and returns the node count and score for the side to move.
type QuietSearch interface {
	QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score)
}

// Evaluator is a static position evaluator usable directly as a QuietSearch leaf
// (see ZeroPly) or as the bottom of a Quiescence search. It is the same interface as
// eval.Evaluator: any eval.Evaluator plugs in directly.
type Evaluator = eval.Evaluator

// PV is the result of one iterative-deepening iteration.
type PV struct {
	Depth int
	Nodes uint64
	Score eval.Score
	Moves []board.Move
	Time  time.Duration
	Hash  float64 // transposition table fill fraction, [0;1]
}

func (pv PV) String() string {
	return fmt.Sprintf("depth=%v nodes=%v score=%v time=%v pv=%v", pv.Depth, pv.Nodes, pv.Score, pv.Time, board.PrintMoves(pv.Moves))
}
