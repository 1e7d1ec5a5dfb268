package eval

import "fmt"

// Score is a signed position evaluation in centipawns from the perspective of the side
// to move: positive favors the mover. Scores beyond the mate threshold encode a forced
// mate, as a distance in plies from the position being scored (not from the search
// root): the closer to Mate/−Mate, the fewer plies to deliver/receive it. Search
// unwinds a mate score one ply at a time via IncrementMateDistance, so by the time a
// score reaches a transposition table entry or a caller several plies up, it already
// reflects the distance from that node — no separate root-relative bookkeeping is
// needed (see DESIGN.md for why this is equivalent to the classic store-ply/probe-ply
// shift).
type Score int32

const (
	// Mate is the score for delivering mate on the move (distance 0).
	Mate Score = 30000

	// Infinity bounds the search window; always strictly above any real or mate score.
	Infinity Score = Mate + 1

	InfScore    Score = Infinity
	NegInfScore Score = -Infinity
	ZeroScore   Score = 0

	// InvalidScore marks a search aborted by cancellation. It must never be stored in
	// the transposition table or compared against alpha/beta.
	InvalidScore Score = Infinity + 1

	// mateThreshold is the magnitude beyond which a score encodes mate distance rather
	// than material/positional evaluation. Set well above any plausible heuristic score.
	mateThreshold Score = Mate - 1000
)

func (s Score) String() string {
	if d, ok := s.MateDistance(); ok {
		return fmt.Sprintf("mate %+d", d)
	}
	return fmt.Sprintf("%+d cp", int(s))
}

// HeuristicScore wraps a plain centipawn evaluation.
func HeuristicScore(centipawns int) Score {
	return Score(centipawns)
}

// MateInPlies returns the score for delivering (positive) or suffering (negative)
// mate in the given number of plies from the position being scored.
func MateInPlies(plies int) Score {
	if plies < 0 {
		return -Mate - Score(plies)
	}
	return Mate - Score(plies)
}

// MateInXScore returns the score for mating in x full moves, i.e. 2x-1 plies.
func MateInXScore(x int) Score {
	return MateInPlies(2*x - 1)
}

// IsInvalid reports whether the score is the sentinel for an aborted search.
func (s Score) IsInvalid() bool {
	return s == InvalidScore
}

// IsHeuristic reports whether the score is a plain positional evaluation, as opposed
// to a forced-mate encoding.
func (s Score) IsHeuristic() bool {
	return s > -mateThreshold && s < mateThreshold
}

// MateDistance returns the signed distance to mate in plies (positive: this side
// mates, negative: this side gets mated) and whether the score encodes a mate at all.
func (s Score) MateDistance() (int, bool) {
	switch {
	case s >= mateThreshold && s < Infinity:
		return int(Mate - s), true
	case s <= -mateThreshold && s > -Infinity:
		return -int(Mate + s), true
	default:
		return 0, false
	}
}

// Centipawns returns the raw centipawn value. Meaningless if !IsHeuristic.
func (s Score) Centipawns() int {
	return int(s)
}

// Negate flips the score to the opponent's perspective. InvalidScore is a sentinel and
// passes through unchanged.
func (s Score) Negate() Score {
	if s.IsInvalid() {
		return s
	}
	return -s
}

// Less reports whether s is strictly worse than o for the side it is scored for.
func (s Score) Less(o Score) bool {
	return s < o
}

// IncrementMateDistance moves a mate score one step toward zero, lengthening its mate
// distance by one ply, as it propagates from a child node up to its parent. Non-mate
// and invalid scores pass through.
func IncrementMateDistance(s Score) Score {
	switch {
	case s.IsInvalid():
		return s
	case s >= mateThreshold && s < Infinity:
		return s - 1
	case s <= -mateThreshold && s > -Infinity:
		return s + 1
	default:
		return s
	}
}

// Max returns the larger of two scores.
func Max(a, b Score) Score {
	if a.Less(b) {
		return b
	}
	return a
}

// Min returns the smaller of two scores.
func Min(a, b Score) Score {
	if b.Less(a) {
		return b
	}
	return a
}
