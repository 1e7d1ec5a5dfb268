package board_test

import (
	"testing"

	"github.com/corvidae/gyrfalcon/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestColor(t *testing.T) {
	assert.Equal(t, board.Black, board.White.Opponent())
	assert.Equal(t, board.White, board.Black.Opponent())

	assert.Equal(t, board.Score(1), board.White.Unit())
	assert.Equal(t, board.Score(-1), board.Black.Unit())

	assert.Equal(t, "w", board.White.String())
	assert.Equal(t, "b", board.Black.String())
}
