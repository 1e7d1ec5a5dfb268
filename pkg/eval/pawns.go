package eval

import "github.com/corvidae/gyrfalcon/pkg/board"

// pawnStructure scores doubled, isolated and passed pawns for the side to move.
func pawnStructure(pos *board.Position, turn board.Color) Score {
	return pawnStructureFor(pos, turn) - pawnStructureFor(pos, turn.Opponent())
}

func pawnStructureFor(pos *board.Position, c board.Color) Score {
	const (
		doubledPenalty  Score = -20
		isolatedPenalty Score = -15
		passedBonus     Score = 20
	)

	own := pos.Piece(c, board.Pawn)
	opp := pos.Piece(c.Opponent(), board.Pawn)

	var fileCount [8]int
	bb := own
	for bb != 0 {
		sq := bb.LastPopSquare()
		bb ^= board.BitMask(sq)
		fileCount[sq.File()]++
	}

	var score Score
	for f := board.ZeroFile; f < board.NumFiles; f++ {
		if fileCount[f] > 1 {
			score += doubledPenalty * Score(fileCount[f]-1)
		}
		if fileCount[f] > 0 && !hasNeighborFile(fileCount, f) {
			score += isolatedPenalty
		}
	}

	bb = own
	for bb != 0 {
		sq := bb.LastPopSquare()
		bb ^= board.BitMask(sq)
		if isPassed(sq, c, opp) {
			score += passedBonus + passedRankBonus(sq, c)
		}
	}

	return score
}

func hasNeighborFile(fileCount [8]int, f board.File) bool {
	if f > 0 && fileCount[f-1] > 0 {
		return true
	}
	if f < board.NumFiles-1 && fileCount[f+1] > 0 {
		return true
	}
	return false
}

// isPassed reports whether the pawn at sq has no opposing pawn on its own or an
// adjacent file ahead of it.
func isPassed(sq board.Square, c board.Color, oppPawns board.Bitboard) bool {
	f, r := sq.File(), sq.Rank()
	for bb := oppPawns; bb != 0; {
		osq := bb.LastPopSquare()
		bb ^= board.BitMask(osq)

		of := osq.File()
		if of != f && of != f-1 && of != f+1 {
			continue
		}
		if c == board.White && osq.Rank() > r {
			return false
		}
		if c == board.Black && osq.Rank() < r {
			return false
		}
	}
	return true
}

// passedRankBonus grows the closer the pawn is to promotion.
func passedRankBonus(sq board.Square, c board.Color) Score {
	r := int(sq.Rank())
	if c == board.Black {
		r = 7 - r
	}
	return Score(r * r)
}
