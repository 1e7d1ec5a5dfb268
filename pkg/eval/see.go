package eval

import "github.com/corvidae/gyrfalcon/pkg/board"

// StaticExchange evaluates the net material result, in centipawns from the mover's
// perspective, of playing the given capture and the ensuing sequence of recaptures on
// the destination square, with each side always recapturing with its least valuable
// attacker and free to stop at any point. Used to split "good" (non-negative) from
// "bad" (losing) captures for quiescence pruning, without having to actually play out
// the moves.
func StaticExchange(pos *board.Position, side board.Color, m board.Move) Score {
	if !m.IsCapture() {
		return 0
	}

	to := m.To
	occ := pos.Occupancy() &^ board.BitMask(m.From)
	if sq, ok := m.EnPassantCapture(); ok {
		occ &^= board.BitMask(sq)
	}

	var gain [32]Score
	depth := 0
	gain[0] = NominalValue(m.Capture)
	attacker := m.Piece
	turn := side.Opponent()

	for depth < len(gain)-1 {
		from, piece, ok := leastValuableAttacker(pos, occ, turn, to)
		if !ok {
			break
		}

		depth++
		gain[depth] = NominalValue(attacker) - gain[depth-1]

		occ &^= board.BitMask(from)
		attacker = piece
		turn = turn.Opponent()
	}

	// Unwind: at each ply the side on move prefers to stop (keeping the result from one
	// ply up) over continuing with a worse outcome, a negamax fold from the deepest
	// reached ply back to the root.
	for depth > 0 {
		depth--
		gain[depth] = Max(gain[depth].Negate(), gain[depth+1]).Negate()
	}
	return gain[0]
}

// leastValuableAttacker returns the cheapest piece of the given color attacking the
// square, given the (possibly reduced) occupancy of an in-progress exchange.
func leastValuableAttacker(pos *board.Position, occ board.Bitboard, side board.Color, sq board.Square) (board.Square, board.Piece, bool) {
	if bb := board.PawnCaptureboard(side.Opponent(), board.BitMask(sq)) & pos.Piece(side, board.Pawn) & occ; bb != 0 {
		return bb.LastPopSquare(), board.Pawn, true
	}
	for _, piece := range []board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen, board.King} {
		if bb := board.Attackboard(occ, sq, piece) & pos.Piece(side, piece) & occ; bb != 0 {
			return bb.LastPopSquare(), piece, true
		}
	}
	return 0, 0, false
}
