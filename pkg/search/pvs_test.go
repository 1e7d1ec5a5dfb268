package search_test

import (
	"context"
	"testing"

	"github.com/corvidae/gyrfalcon/pkg/board"
	"github.com/corvidae/gyrfalcon/pkg/board/fen"
	"github.com/corvidae/gyrfalcon/pkg/eval"
	"github.com/corvidae/gyrfalcon/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchContext(ctx context.Context) *search.Context {
	return &search.Context{
		Alpha: eval.NegInfScore,
		Beta:  eval.InfScore,
		TT:    search.NewTranspositionTable(ctx, 1<<20),
	}
}

func TestPVSFindsMateInOne(t *testing.T) {
	ctx := context.Background()

	// White to move: Re1-e8 is a back-rank checkmate (black king boxed in by its own pawns).
	pos, turn, np, fm, err := fen.Decode("6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	require.NoError(t, err)

	b := board.NewBoard(board.NewZobristTable(0), pos, turn, np, fm)
	pvs := search.PVS{Eval: search.ZeroPly{Eval: eval.Material{}}}

	_, score, pv, err := pvs.Search(ctx, newSearchContext(ctx), b, 3)
	require.NoError(t, err)
	require.NotEmpty(t, pv)

	d, isMate := score.MateDistance()
	assert.True(t, isMate, "expected a forced mate score, got %v", score)
	assert.Positive(t, d, "mate should be delivered by the side to move")
	assert.Equal(t, board.Move{Type: board.Normal, Piece: board.Rook, From: board.E1, To: board.E8}, pv[0])
}

func TestPVSFindsFreeCapture(t *testing.T) {
	ctx := context.Background()

	// White to move: the knight on d5 is undefended and sits on the queen's file.
	pos, turn, np, fm, err := fen.Decode("4k3/8/8/3n4/3Q4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	b := board.NewBoard(board.NewZobristTable(0), pos, turn, np, fm)
	pvs := search.PVS{Eval: search.ZeroPly{Eval: eval.Material{}}}

	_, score, pv, err := pvs.Search(ctx, newSearchContext(ctx), b, 3)
	require.NoError(t, err)
	require.NotEmpty(t, pv)

	assert.Equal(t, board.Move{Type: board.Capture, Piece: board.Queen, From: board.D4, To: board.D5, Capture: board.Knight}, pv[0])
	assert.True(t, score.IsHeuristic())
	assert.Positive(t, score.Centipawns(), "should evaluate as clearly ahead after winning the knight")
}

func TestPVSIsDeterministicAcrossRuns(t *testing.T) {
	ctx := context.Background()

	pos, turn, np, fm, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	pvs := search.PVS{Eval: search.ZeroPly{Eval: eval.Material{}}}

	b1 := board.NewBoard(board.NewZobristTable(0), pos, turn, np, fm)
	_, score1, pv1, err := pvs.Search(ctx, newSearchContext(ctx), b1, 3)
	require.NoError(t, err)

	b2 := board.NewBoard(board.NewZobristTable(0), pos, turn, np, fm)
	_, score2, pv2, err := pvs.Search(ctx, newSearchContext(ctx), b2, 3)
	require.NoError(t, err)

	assert.Equal(t, score1, score2)
	assert.Equal(t, pv1, pv2)
}
