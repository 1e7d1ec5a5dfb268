package eval

import "github.com/corvidae/gyrfalcon/pkg/board"

// rookFiles rewards rooks on files free of friendly pawns, with a larger bonus if the
// file is fully open (no pawns of either color).
func rookFiles(pos *board.Position, turn board.Color) Score {
	return rookFilesFor(pos, turn) - rookFilesFor(pos, turn.Opponent())
}

func rookFilesFor(pos *board.Position, c board.Color) Score {
	const (
		halfOpenBonus Score = 15
		openBonus     Score = 30
	)

	own := pos.Piece(c, board.Pawn)
	enemy := pos.Piece(c.Opponent(), board.Pawn)

	var score Score
	for _, sq := range pos.Piece(c, board.Rook).ToSquares() {
		file := board.BitFile(sq.File())
		switch {
		case own&file == 0 && enemy&file == 0:
			score += openBonus
		case own&file == 0:
			score += halfOpenBonus
		}
	}
	return score
}
