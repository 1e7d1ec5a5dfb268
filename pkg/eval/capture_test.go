package eval_test

import (
	"testing"

	"github.com/corvidae/gyrfalcon/pkg/board"
	"github.com/corvidae/gyrfalcon/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCapture(t *testing.T) {
	pieces := []board.Placement{
		{Square: board.A1, Color: board.White, Piece: board.King},
		{Square: board.H8, Color: board.Black, Piece: board.King},
		{Square: board.D1, Color: board.White, Piece: board.Rook},
		{Square: board.C3, Color: board.White, Piece: board.Knight},
		{Square: board.E4, Color: board.White, Piece: board.Pawn},
		{Square: board.D5, Color: board.Black, Piece: board.Pawn},
	}
	pos, err := board.NewPosition(pieces, 0, board.ZeroSquare)
	require.NoError(t, err)

	attackers := eval.FindCapture(pos, board.White, board.D5)
	require.Len(t, attackers, 3)

	sorted := eval.SortByNominalValue(attackers)
	assert.Equal(t, board.Pawn, sorted[0].Piece)
	assert.Equal(t, board.Knight, sorted[1].Piece)
	assert.Equal(t, board.Rook, sorted[2].Piece)
}

func TestFindPins(t *testing.T) {
	// The black knight on e4 shields the black king from the rook on e1.
	pieces := []board.Placement{
		{Square: board.G1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.E1, Color: board.White, Piece: board.Rook},
		{Square: board.E4, Color: board.Black, Piece: board.Knight},
	}
	pos, err := board.NewPosition(pieces, 0, board.ZeroSquare)
	require.NoError(t, err)

	pins := eval.FindPins(pos, board.Black, board.King)
	require.Len(t, pins, 1)
	assert.Equal(t, board.E1, pins[0].Attacker)
	assert.Equal(t, board.E4, pins[0].Pinned)
	assert.Equal(t, board.E8, pins[0].Target)
}
