package board_test

import (
	"testing"

	"github.com/corvidae/gyrfalcon/pkg/board"
	"github.com/corvidae/gyrfalcon/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perft counts the leaves of the legal-move tree at the given depth, the standard
// move-generator correctness check: it exercises check/pin detection, castling,
// en passant and promotion all at once, since any missing or spurious move changes
// the leaf count at some depth.
func perft(pos *board.Position, turn board.Color, depth int) int {
	if depth == 0 {
		return 1
	}

	moves := pos.LegalMoves(turn)
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, m := range moves {
		next, ok := pos.Move(m)
		if !ok {
			continue // pos.LegalMoves already filters, but Move() is the single source of truth
		}
		nodes += perft(next, turn.Opponent(), depth-1)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	tests := []struct {
		depth    int
		expected int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, perft(pos, turn, tt.depth), "depth %v", tt.depth)
	}
}

func TestPerftStartingPositionDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 5 perft from the starting position visits ~4.8M nodes")
	}

	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, 4865609, perft(pos, turn, 5))
}

func TestPerftKnownPositions(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		depth    int
		expected int
	}{
		{
			"kiwipete",
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			3,
			97862,
		},
		{
			"rook-endgame",
			"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			4,
			43238,
		},
		{
			"promotion-heavy",
			"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
			3,
			9467,
		},
		{
			"pinned-knight-discovery",
			"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
			3,
			62379,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, turn, _, _, err := fen.Decode(tt.fen)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, perft(pos, turn, tt.depth))
		})
	}
}

func TestPerftBoundaryPositions(t *testing.T) {
	t.Run("king vs king has only king moves", func(t *testing.T) {
		pos, turn, _, _, err := fen.Decode("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
		require.NoError(t, err)

		for _, m := range pos.LegalMoves(turn) {
			assert.Equal(t, board.King, m.Piece)
			assert.NotEqual(t, board.KingSideCastle, m.Type)
			assert.NotEqual(t, board.QueenSideCastle, m.Type)
		}
	})

	t.Run("stalemate has no legal moves and no check", func(t *testing.T) {
		pos, turn, _, _, err := fen.Decode("8/8/8/8/8/5k2/5p2/5K2 w - - 0 1")
		require.NoError(t, err)

		assert.Empty(t, pos.LegalMoves(turn))
		assert.False(t, pos.IsChecked(turn))
	})

	t.Run("back-rank promotion race yields exactly four promotions", func(t *testing.T) {
		pos, turn, _, _, err := fen.Decode("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
		require.NoError(t, err)

		var promotions int
		for _, m := range pos.LegalMoves(turn) {
			if m.Type == board.Promotion {
				promotions++
			}
		}
		assert.Equal(t, 4, promotions)
	})

	t.Run("en passant that exposes check along the rank is illegal", func(t *testing.T) {
		pos, turn, _, _, err := fen.Decode("8/8/8/2k2pP1/8/8/8/4K2R b - g6 0 1")
		require.NoError(t, err)

		for _, m := range pos.LegalMoves(turn) {
			assert.NotEqual(t, board.EnPassant, m.Type)
		}
	})
}
