package eval

import "github.com/corvidae/gyrfalcon/pkg/board"

// kingSafety scores pawn-shield integrity and open files in front of the king for the
// side to move. Weighted down as the game approaches the endgame, where king activity
// matters more than shelter.
func kingSafety(pos *board.Position, turn board.Color, phase float64) Score {
	mg := kingSafetyFor(pos, turn) - kingSafetyFor(pos, turn.Opponent())
	return Score(float64(mg) * (1 - phase))
}

func kingSafetyFor(pos *board.Position, c board.Color) Score {
	const (
		missingShieldPenalty Score = -25
		openFilePenalty      Score = -30
		attackerPenalty      Score = -20
	)

	kingBB := pos.Piece(c, board.King)
	if kingBB == 0 {
		return 0
	}
	king := kingBB.LastPopSquare()

	pawns := pos.Piece(c, board.Pawn)
	allPawns := pawns | pos.Piece(c.Opponent(), board.Pawn)

	shieldRank := king.Rank() + 1
	if c == board.Black {
		shieldRank = king.Rank() - 1
	}

	var score Score
	for _, f := range shieldFiles(king.File()) {
		if !shieldRank.IsValid() {
			continue
		}
		sq := board.NewSquare(f, shieldRank)
		if pawns&board.BitMask(sq) == 0 {
			score += missingShieldPenalty
		}
		if allPawns&board.BitFile(f) == 0 {
			score += openFilePenalty
		}
	}

	// Count the enemy pieces bearing on the king zone, not just the attacked squares:
	// two attackers on one square are twice the trouble.
	zone := kingBB | board.KingAttackboard(king)
	for _, sq := range zone.ToSquares() {
		score += attackerPenalty * Score(len(FindCapture(pos, c.Opponent(), sq)))
	}
	return score
}

func shieldFiles(f board.File) []board.File {
	files := []board.File{f}
	if f > 0 {
		files = append(files, f-1)
	}
	if f < board.NumFiles-1 {
		files = append(files, f+1)
	}
	return files
}
