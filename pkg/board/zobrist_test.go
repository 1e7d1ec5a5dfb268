package board_test

import (
	"testing"

	"github.com/corvidae/gyrfalcon/pkg/board"
	"github.com/corvidae/gyrfalcon/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestZobristIncrementalAgreesWithRecompute drives a handful of games (including a
// capture, a two-square pawn jump, an en passant capture, a promotion and a castle)
// move by move, checking at each ply that ZobristTable.Move's incremental update
// matches a from-scratch ZobristTable.Hash of the resulting position.
func TestZobristIncrementalAgreesWithRecompute(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
	}{
		{
			name:  "opening with a two-square jump",
			fen:   fen.Initial,
			moves: []string{"e2e4", "e7e5", "g1f3", "b8c6"},
		},
		{
			name:  "capture and recapture",
			fen:   fen.Initial,
			moves: []string{"e2e4", "d7d5", "e4d5", "d8d5"},
		},
		{
			name:  "en passant",
			fen:   "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3",
			moves: []string{"d4e3"},
		},
		{
			name:  "kingside castle",
			fen:   "rnbqk2r/pppp1ppp/5n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
			moves: []string{"e1g1"},
		},
		{
			name:  "pawn promotion",
			fen:   "8/P6k/8/8/8/8/7p/K7 w - - 0 1",
			moves: []string{"a7a8q"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, turn, np, fm, err := fen.Decode(tt.fen)
			require.NoError(t, err)

			zt := board.NewZobristTable(7)
			b := board.NewBoard(zt, pos, turn, np, fm)

			assert.Equal(t, zt.Hash(b.Position(), b.Turn()), b.Hash(), "initial hash mismatch")

			for _, s := range tt.moves {
				parsed, err := board.ParseMove(s)
				require.NoError(t, err)

				move := matchLegalMove(t, b, parsed)
				require.True(t, b.PushMove(move), "illegal move in test line: %v", s)

				assert.Equal(t, zt.Hash(b.Position(), b.Turn()), b.Hash(), "hash mismatch after %v", s)
			}
		})
	}
}

// matchLegalMove finds the fully-populated legal move (with Type/Capture/Promotion set)
// matching the From/To/Promotion of a bare parsed move.
func matchLegalMove(t *testing.T, b *board.Board, parsed board.Move) board.Move {
	t.Helper()
	for _, m := range b.Position().PseudoLegalMoves(b.Turn()) {
		if m.Equals(parsed) {
			return m
		}
	}
	t.Fatalf("no legal move matches %v", parsed)
	return board.Move{}
}
