package search

import (
	"context"
	"github.com/corvidae/gyrfalcon/pkg/board"
	"github.com/corvidae/gyrfalcon/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Quiescence implements a configurable alpha-beta QuietSearch: it extends search past
// the horizon along captures and promotions only, to avoid misjudging positions where
// material is hanging right at the cutoff depth. Stand-pat is the score of not playing
// any further move; deltaMargin additionally discards captures that, even if they win
// the full value of the captured piece, cannot plausibly raise alpha.
type Quiescence struct {
	Explore Exploration
	Eval    Evaluator
}

// deltaMargin is a safety buffer (in centipawns) added to a capture's material gain
// before comparing against alpha, to avoid pruning moves with compensating positional
// value.
const deltaMargin = eval.Score(200)

func (q Quiescence) QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score) {
	run := &runQuiescence{explore: fullIfNotSet(q.Explore), eval: q.Eval, b: b}

	low, high := eval.NegInfScore, eval.InfScore
	if !sctx.Alpha.IsInvalid() {
		low = sctx.Alpha
	}
	if !sctx.Beta.IsInvalid() {
		high = sctx.Beta
	}

	score := run.search(ctx, sctx, low, high)
	return run.nodes, score
}

type runQuiescence struct {
	explore Exploration
	eval    Evaluator
	b       *board.Board
	nodes   uint64
}

// search returns the positive score for the color.
func (r *runQuiescence) search(ctx context.Context, sctx *Context, alpha, beta eval.Score) eval.Score {
	if r.nodes&2047 == 0 && contextx.IsCancelled(ctx) {
		return eval.ZeroScore
	}
	if r.b.Result().Outcome == board.Draw {
		return eval.ZeroScore
	}

	r.nodes++

	hasLegalMoves := false
	turn := r.b.Turn()
	standPat := r.eval.Evaluate(ctx, r.b) + sctx.Noise.Sample()
	alpha = eval.Max(alpha, standPat)

	// NOTE: Don't cutoff based on evaluation here. See if any legal moves first.
	// Also do not report mate-in-X endings.

	priority, explore := r.explore(ctx, r.b)

	moves := board.NewMoveList(r.b.Position().PseudoLegalMoves(turn), priority)
	for {
		m, ok := moves.Next()
		if !ok {
			break
		}
		if !r.b.PushMove(m) {
			continue // skip: not legal
		}

		if explore(m) && (m.IsPromotion() || standPat+eval.NominalValue(m.Capture)+deltaMargin > alpha) {
			score := r.search(ctx, sctx, beta.Negate(), alpha.Negate())
			score = eval.IncrementMateDistance(score).Negate()
			alpha = eval.Max(alpha, score)
		}

		r.b.PopMove()
		hasLegalMoves = true

		if alpha == beta || beta.Less(alpha) {
			break // cutoff
		}
	}

	if !hasLegalMoves {
		if result := r.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return -eval.MateInPlies(0)
		}
		return eval.ZeroScore
	}
	return alpha
}
