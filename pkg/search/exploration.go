package search

import (
	"context"
	"math"

	"github.com/corvidae/gyrfalcon/pkg/board"
	"github.com/corvidae/gyrfalcon/pkg/eval"
)

// Exploration defines move selection and priority in a given position. Limited
// exploration is required by quiescence search and can be used for forward pruning in
// full search. Default: explore all moves in MVV-LVA order.
type Exploration func(ctx context.Context, b *board.Board) (board.MovePriorityFn, board.MovePredicateFn)

// FullExploration explores every legal move, ordered by MVV-LVA. Used at full-width
// search nodes when no richer ordering (TT move, killers, history) is available.
func FullExploration(ctx context.Context, b *board.Board) (board.MovePriorityFn, board.MovePredicateFn) {
	return MVVLVA, IsAnyMove
}

// QuiescenceExploration limits search to captures and promotions that are not
// hopeless: a capture is explored only if its static exchange evaluation is
// non-negative, i.e. the full sequence of captures and recaptures on the destination
// square does not lose material. Quiet moves are never explored here; the stand-pat
// evaluation accounts for them.
func QuiescenceExploration(ctx context.Context, b *board.Board) (board.MovePriorityFn, board.MovePredicateFn) {
	pos, turn := b.Position(), b.Turn()
	return MVVLVA, func(m board.Move) bool {
		if m.IsPromotion() {
			return true
		}
		if !m.IsCapture() {
			return false
		}
		return eval.StaticExchange(pos, turn, m) >= 0
	}
}

// Selection returns a move order and predicate restricted to the given list, ranked in
// list order. Used to replay a ponder/principal line ahead of the normal ordering.
func Selection(list []board.Move) (board.MovePriorityFn, board.MovePredicateFn) {
	rank := map[board.Move]board.MovePriority{}
	for i, m := range list {
		rank[m] = board.MovePriority(len(list) - i)
	}

	priority := func(move board.Move) board.MovePriority {
		return rank[move]
	}
	pick := func(move board.Move) bool {
		_, ok := rank[move]
		return ok
	}
	return priority, pick
}

// MVVLVA ranks captures and promotions by material gained, most valuable victim
// first, ties broken by least valuable attacker. Quiet moves rank lowest (zero).
func MVVLVA(m board.Move) board.MovePriority {
	gain := eval.NominalValueGain(m)
	if gain <= 0 {
		return 0
	}
	return board.MovePriority(gain) - board.MovePriority(eval.NominalValue(m.Piece)/100)
}

// IsAnyMove selects all moves.
func IsAnyMove(m board.Move) bool {
	return true
}

// NoMove selects no moves. Useful to disable quiescence/exploration entirely.
func NoMove(m board.Move) bool {
	return false
}

// IsNotUnderPromotion selects any move except an under-promotion (keeps only queen
// promotions), a standard full-search simplification.
func IsNotUnderPromotion(m board.Move) bool {
	return !m.IsPromotion() || m.Promotion == board.Queen
}

// orderingTables holds the per-search-call killer-move slots and history-heuristic
// counters used to order quiet moves at full-width nodes below the root.
type orderingTables struct {
	killers [][2]board.Move // indexed by ply
	history map[board.Move]int
}

func newOrderingTables(maxPly int) *orderingTables {
	return &orderingTables{
		killers: make([][2]board.Move, maxPly+1),
		history: map[board.Move]int{},
	}
}

// historySaturation is the cutoff count at which the history table is aged down, so
// that stale, deep-search-era cutoffs don't permanently outrank more recent ones.
const historySaturation = 1 << 20

// recordCutoff records a quiet move that caused a beta cutoff, for future ordering.
func (t *orderingTables) recordCutoff(ply, depth int, m board.Move) {
	if m.IsCapture() || m.IsPromotion() {
		return
	}
	if ply < len(t.killers) {
		if !t.killers[ply][0].Equals(m) {
			t.killers[ply][1] = t.killers[ply][0]
			t.killers[ply][0] = m
		}
	}
	t.history[m] += depth * depth
	if t.history[m] >= historySaturation {
		for k, v := range t.history {
			t.history[k] = v / 2
		}
	}
}

// priority ranks the TT move first, then all captures/promotions by MVV-LVA, then
// killer moves for this ply, then quiet moves by history score.
func (t *orderingTables) priority(ply int, tt board.Move) board.MovePriorityFn {
	const (
		captureBand = board.MovePriority(20000)
		killerBand  = board.MovePriority(15000)
		historyCap  = board.MovePriority(9999)
	)

	var killers [2]board.Move
	if ply < len(t.killers) {
		killers = t.killers[ply]
	}

	return func(m board.Move) board.MovePriority {
		switch {
		case tt.Equals(m):
			return math.MaxInt16
		case m.IsCapture() || m.IsPromotion():
			return captureBand + MVVLVA(m)
		case killers[0].Equals(m):
			return killerBand + 1
		case killers[1].Equals(m):
			return killerBand
		default:
			h := board.MovePriority(t.history[m])
			if h > historyCap {
				h = historyCap
			}
			return h
		}
	}
}
