package search

import (
	"context"

	"github.com/corvidae/gyrfalcon/pkg/board"
	"github.com/corvidae/gyrfalcon/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// PVS implements principal variation search: negamax alpha-beta where the first move
// at each node is searched with the full window and every subsequent move is first
// probed with a null window, re-searched at full width only if it fails high. Layered
// on top: a transposition table, null-move pruning, and late-move reductions. Pseudo-
// code for the core recursion:
//
//	function pvs(node, depth, α, β, color) is
//	   if depth = 0 or node is a terminal node then
//	       return color × the heuristic value of node
//	   for each child of node do
//	       if child is first child then
//	           score := −pvs(child, depth − 1, −β, −α, −color)
//	       else
//	           score := −pvs(child, depth − 1, −α − 1, −α, −color) (* null window *)
//	           if α < score < β then
//	               score := −pvs(child, depth − 1, −β, −score, −color) (* re-search *)
//	       α := max(α, score)
//	       if α ≥ β then
//	           break (* beta cutoff *)
//	   return α
//
// See: https://en.wikipedia.org/wiki/Principal_variation_search.
type PVS struct {
	Explore Exploration
	Eval    QuietSearch
	// Static, if set, gates null-move pruning on the static evaluation reaching beta.
	// If nil, the eval-gate is skipped and depth/check conditions alone apply.
	Static Evaluator
}

const (
	// nullMoveMinDepth is the shallowest depth at which null-move pruning is tried.
	nullMoveMinDepth = 3
	// nullMoveReduction is how much shallower the null-move verification search runs.
	nullMoveReduction = 2

	// lmrMinDepth/lmrMinMoveIndex gate late-move reductions: only applied to quiet
	// moves searched this deep into the move list, this deep into the remaining tree.
	lmrMinDepth     = 3
	lmrMinMoveIndex = 4
)

func (p PVS) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runPVS{
		explore: fullIfNotSet(p.Explore),
		eval:    p.Eval,
		static:  p.Static,
		tt:      sctx.TT,
		noise:   sctx.Noise,
		ponder:  sctx.Ponder,
		b:       b,
		order:   newOrderingTables(depth + 64),
	}
	low, high := eval.NegInfScore, eval.InfScore
	if !sctx.Alpha.IsInvalid() {
		low = sctx.Alpha
	}
	if !sctx.Beta.IsInvalid() {
		high = sctx.Beta
	}

	score, moves := run.search(ctx, 0, depth, low, high, true)
	if contextx.IsCancelled(ctx) {
		return 0, eval.InvalidScore, nil, ErrHalted
	}
	return run.nodes, score, moves, nil
}

type runPVS struct {
	explore Exploration
	eval    QuietSearch
	static  Evaluator
	tt      TranspositionTable
	noise   eval.Random
	b       *board.Board
	nodes   uint64

	ponder []board.Move
	order  *orderingTables
}

// search returns the score and principal variation for the side to move.
func (m *runPVS) search(ctx context.Context, ply, depth int, alpha, beta eval.Score, allowNull bool) (eval.Score, []board.Move) {
	if m.nodes&2047 == 0 && contextx.IsCancelled(ctx) {
		return eval.InvalidScore, nil
	}
	if m.b.Result().Outcome == board.Draw {
		return eval.ZeroScore, nil
	}

	pvNode := alpha+1 != beta

	var ttMove board.Move
	if bound, d, score, mv, ok := m.tt.Read(m.b.Hash()); ok {
		ttMove = mv
		// Never cut off at the root: the caller needs an actual move, not just a score.
		if d >= depth && ply > 0 {
			switch {
			case bound == ExactBound:
				return score, nil
			case !pvNode && bound == LowerBound && !score.Less(beta):
				return score, nil
			case !pvNode && bound == UpperBound && !alpha.Less(score):
				return score, nil
			}
		}
	}

	if depth == 0 {
		sctx := &Context{Alpha: alpha, Beta: beta, TT: m.tt, Noise: m.noise}
		nodes, score := m.eval.QuietSearch(ctx, sctx, m.b)
		m.nodes += nodes

		if contextx.IsCancelled(ctx) {
			return eval.InvalidScore, nil
		}
		m.tt.Write(m.b.Hash(), ExactBound, m.b.Ply(), 0, score, board.Move{})
		return score, nil
	}

	m.nodes++

	inCheck := m.b.Position().IsChecked(m.b.Turn())

	// Null-move pruning: if passing the move entirely still fails high, the position
	// is so good a real move will too. Skipped in check, near the root window, near
	// mate scores (to avoid corrupting mate distances), and in likely zugzwang
	// (no non-pawn material left).
	if allowNull && !pvNode && !inCheck && depth >= nullMoveMinDepth && beta.IsHeuristic() &&
		hasNonPawnMaterial(m.b.Position(), m.b.Turn()) && m.standPatReachesBeta(ctx, beta) {
		m.b.PushNullMove()
		score, _ := m.search(ctx, ply+1, depth-1-nullMoveReduction, beta.Negate(), beta.Negate()+1, false)
		score = eval.IncrementMateDistance(score).Negate()
		m.b.PopNullMove()

		if !score.IsInvalid() && !score.Less(beta) {
			return beta, nil
		}
	}

	hasLegalMove := false
	bound := UpperBound
	var pv []board.Move
	moveIndex := 0

	priority, explore := m.explore(ctx, m.b)
	if ply < len(m.order.killers) {
		priority = m.order.priority(ply, ttMove)
	}

	if len(m.ponder) > 0 {
		// Overwrite: follow the ponder line even where ordering/pruning would not.
		priority, explore = Selection(m.ponder[:1])
		m.ponder = m.ponder[1:]
	}

	moves := board.NewMoveList(m.b.Position().PseudoLegalMoves(m.b.Turn()), board.First(ttMove, priority))
	for {
		move, ok := moves.Next()
		if !ok {
			break
		}
		if !m.b.PushMove(move) {
			continue // skip: not legal
		}
		if !explore(move) {
			m.b.PopMove()
			hasLegalMove = true
			continue
		}

		quiet := !move.IsCapture() && !move.IsPromotion()
		reduction := 0
		if !pvNode && quiet && depth >= lmrMinDepth && moveIndex >= lmrMinMoveIndex && !inCheck && !ttMove.Equals(move) {
			reduction = 1
		}

		var score eval.Score
		var rem []board.Move
		switch {
		case moveIndex == 0:
			score, rem = m.search(ctx, ply+1, depth-1, beta.Negate(), alpha.Negate(), true)
			score = eval.IncrementMateDistance(score).Negate()
		default:
			score, rem = m.search(ctx, ply+1, depth-1-reduction, alpha.Negate()-1, alpha.Negate(), true)
			score = eval.IncrementMateDistance(score).Negate()
			if reduction > 0 && alpha.Less(score) {
				// Reduced move beat alpha: re-verify at full depth before trusting it.
				score, rem = m.search(ctx, ply+1, depth-1, alpha.Negate()-1, alpha.Negate(), true)
				score = eval.IncrementMateDistance(score).Negate()
			}
			if alpha.Less(score) && score.Less(beta) {
				// Null window failed high relative to alpha: full re-search.
				score, rem = m.search(ctx, ply+1, depth-1, beta.Negate(), alpha.Negate(), true)
				score = eval.IncrementMateDistance(score).Negate()
			}
		}

		m.b.PopMove()
		hasLegalMove = true
		moveIndex++

		if score.IsInvalid() {
			return eval.InvalidScore, nil
		}

		if alpha.Less(score) {
			alpha = score
			pv = append([]board.Move{move}, rem...)
			bound = ExactBound
		}

		if !alpha.Less(beta) {
			bound = LowerBound
			m.order.recordCutoff(ply, depth, move)
			break // cutoff
		}
	}

	if !hasLegalMove {
		if result := m.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return -eval.MateInPlies(0), nil
		}
		return eval.ZeroScore, nil
	}

	m.tt.Write(m.b.Hash(), bound, m.b.Ply(), depth, alpha, firstOrNone(pv))
	return alpha, pv
}

// standPatReachesBeta reports whether the static evaluation fails high already.
func (m *runPVS) standPatReachesBeta(ctx context.Context, beta eval.Score) bool {
	if m.static == nil {
		return true
	}
	return !m.static.Evaluate(ctx, m.b).Less(beta)
}

func hasNonPawnMaterial(pos *board.Position, turn board.Color) bool {
	return pos.Piece(turn, board.Knight) != 0 ||
		pos.Piece(turn, board.Bishop) != 0 ||
		pos.Piece(turn, board.Rook) != 0 ||
		pos.Piece(turn, board.Queen) != 0
}

func firstOrNone(pv []board.Move) board.Move {
	if len(pv) == 0 {
		return board.Move{}
	}
	return pv[0]
}

func fullIfNotSet(p Exploration) Exploration {
	if p == nil {
		return FullExploration
	}
	return p
}

// ZeroPly is a QuietSearch that evaluates the position statically with no further
// tactical search. Useful as a fast, weak baseline for comparison/testing.
type ZeroPly struct {
	Eval Evaluator
}

func (z ZeroPly) QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score) {
	return 1, z.Eval.Evaluate(ctx, b) + sctx.Noise.Sample()
}
