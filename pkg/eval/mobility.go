package eval

import "github.com/corvidae/gyrfalcon/pkg/board"

// mobility scores the number of squares each minor/major piece attacks, excluding
// squares occupied by friendly pieces. Cheap proxy for piece activity.
func mobility(pos *board.Position, turn board.Color) Score {
	return mobilityFor(pos, turn) - mobilityFor(pos, turn.Opponent())
}

func mobilityFor(pos *board.Position, c board.Color) Score {
	const weight Score = 4

	occ := pos.Occupancy()
	own := pos.Color(c)

	var count int
	for _, piece := range []board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen} {
		bb := pos.Piece(c, piece)
		for bb != 0 {
			sq := bb.LastPopSquare()
			bb ^= board.BitMask(sq)
			count += (board.Attackboard(occ, sq, piece) &^ own).PopCount()
		}
	}
	return weight * Score(count)
}
