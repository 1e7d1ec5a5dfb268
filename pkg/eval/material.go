package eval

import "github.com/corvidae/gyrfalcon/pkg/board"

// Phase estimates how far a position is into the game, 0 (opening, all officers on
// board) to 1 (bare endgame), by the nominal weight of remaining minor/major pieces.
// Used to taper piece-square tables and king-safety terms between middlegame and
// endgame values.
func Phase(pos *board.Position) float64 {
	const total = 4*knightPhase + 4*bishopPhase + 4*rookPhase + 2*queenPhase

	weight := 0
	for _, c := range []board.Color{board.White, board.Black} {
		weight += pos.Piece(c, board.Knight).PopCount() * knightPhase
		weight += pos.Piece(c, board.Bishop).PopCount() * bishopPhase
		weight += pos.Piece(c, board.Rook).PopCount() * rookPhase
		weight += pos.Piece(c, board.Queen).PopCount() * queenPhase
	}
	if weight > total {
		weight = total
	}
	return 1 - float64(weight)/float64(total)
}

const (
	knightPhase = 1
	bishopPhase = 1
	rookPhase   = 2
	queenPhase  = 4
)

// materialBalance is the nominal material advantage for the side to move.
func materialBalance(pos *board.Position, turn board.Color) Score {
	var score Score
	for p := board.Pawn; p <= board.King; p++ {
		score += Score(pos.Piece(turn, p).PopCount()-pos.Piece(turn.Opponent(), p).PopCount()) * NominalValue(p)
	}
	return score
}

// bishopPair rewards holding both bishops when the opponent does not.
func bishopPair(pos *board.Position, turn board.Color) Score {
	const bonus Score = 30

	var score Score
	if pos.Piece(turn, board.Bishop).PopCount() >= 2 {
		score += bonus
	}
	if pos.Piece(turn.Opponent(), board.Bishop).PopCount() >= 2 {
		score -= bonus
	}
	return score
}
