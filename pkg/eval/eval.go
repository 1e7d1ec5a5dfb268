// Package eval contains static position evaluation logic and utilities.
package eval

import (
	"context"

	"github.com/corvidae/gyrfalcon/pkg/board"
)

// Evaluator is a static position evaluator. It must be fast and side-effect free:
// search calls it at every leaf.
type Evaluator interface {
	// Evaluate returns the position score, in centipawns, for the side to move.
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Material returns the nominal material balance for the side to move. It ignores
// piece placement entirely; used as a cheap baseline and in tests.
type Material struct{}

func (Material) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()
	turn := b.Turn()

	var score Score
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		score += Score(pos.Piece(turn, p).PopCount()-pos.Piece(turn.Opponent(), p).PopCount()) * NominalValue(p)
	}
	return score
}

// NominalValue is the absolute nominal value, in centipawns, of a piece. The king has
// an arbitrary large value so it always dominates material comparisons.
func NominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 10000
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain, in centipawns, of making a move.
func NominalValueGain(m board.Move) Score {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}
