package eval_test

import (
	"testing"

	"github.com/corvidae/gyrfalcon/pkg/board"
	"github.com/corvidae/gyrfalcon/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticExchange(t *testing.T) {
	tests := []struct {
		name     string
		pieces   []board.Placement
		move     board.Move
		expected eval.Score
	}{
		{
			name: "undefended pawn capture wins the pawn",
			pieces: []board.Placement{
				{board.A1, board.White, board.King},
				{board.A8, board.Black, board.King},
				{board.D1, board.White, board.Rook},
				{board.D5, board.Black, board.Pawn},
			},
			move: board.Move{
				Type: board.Capture, Piece: board.Rook, From: board.D1, To: board.D5, Capture: board.Pawn,
			},
			expected: eval.NominalValue(board.Pawn),
		},
		{
			name: "pawn-defended pawn capture loses the rook",
			pieces: []board.Placement{
				{board.A1, board.White, board.King},
				{board.A8, board.Black, board.King},
				{board.D1, board.White, board.Rook},
				{board.D5, board.Black, board.Pawn},
				{board.C6, board.Black, board.Pawn},
			},
			move: board.Move{
				Type: board.Capture, Piece: board.Rook, From: board.D1, To: board.D5, Capture: board.Pawn,
			},
			expected: eval.NominalValue(board.Pawn) - eval.NominalValue(board.Rook),
		},
		{
			name: "pawn takes pawn, recapture by knight is an equal trade",
			pieces: []board.Placement{
				{board.A1, board.White, board.King},
				{board.A8, board.Black, board.King},
				{board.E4, board.White, board.Pawn},
				{board.D5, board.Black, board.Pawn},
				{board.F6, board.Black, board.Knight},
			},
			move: board.Move{
				Type: board.Capture, Piece: board.Pawn, From: board.E4, To: board.D5, Capture: board.Pawn,
			},
			expected: eval.NominalValue(board.Pawn) - eval.NominalValue(board.Pawn),
		},
		{
			name:     "non-capture move is a no-op",
			pieces:   []board.Placement{{board.A1, board.White, board.King}, {board.A8, board.Black, board.King}},
			move:     board.Move{Type: board.Push, Piece: board.Pawn, From: board.E2, To: board.E3},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := board.NewPosition(tt.pieces, 0, board.ZeroSquare)
			require.NoError(t, err)

			actual := eval.StaticExchange(pos, board.White, tt.move)
			assert.Equal(t, tt.expected, actual)
		})
	}
}
