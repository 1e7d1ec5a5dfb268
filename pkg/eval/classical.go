package eval

import (
	"context"

	"github.com/corvidae/gyrfalcon/pkg/board"
)

// Classical is a hand-weighted evaluator in the classical engine style: material and
// tapered piece-square tables, plus pawn-structure, king-safety, mobility,
// bishop-pair and rook-file terms, each contributing centipawns for the side to
// move. It is the engine's default Evaluator.
type Classical struct{}

func (Classical) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()
	turn := b.Turn()

	if pos.HasInsufficientMaterial() {
		return ZeroScore
	}

	phase := Phase(pos)

	score := materialBalance(pos, turn)
	score += pieceSquareBalance(pos, turn, phase)
	score += pawnStructure(pos, turn)
	score += kingSafety(pos, turn, phase)
	score += mobility(pos, turn)
	score += bishopPair(pos, turn)
	score += rookFiles(pos, turn)
	score += pinPressure(pos, turn)
	return score
}
