package eval

import (
	"context"
	"math/rand"

	"github.com/corvidae/gyrfalcon/pkg/board"
)

// Random is a small noise generator added to leaf evaluations to avoid always playing
// the same move among equally-scored candidates. The limit specifies how many
// centipawns to add/remove in the range [-limit/2; limit-limit/2). The zero value always
// returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

// Sample draws a fresh noise value.
func (n Random) Sample() Score {
	if n.limit <= 0 || n.rand == nil {
		return ZeroScore
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}

// Randomize wraps an Evaluator so every evaluation is perturbed by fresh noise.
func Randomize(e Evaluator, limit int, seed int64) Evaluator {
	return &randomized{e: e, noise: NewRandom(limit, seed)}
}

type randomized struct {
	e     Evaluator
	noise Random
}

func (r *randomized) Evaluate(ctx context.Context, b *board.Board) Score {
	return r.e.Evaluate(ctx, b) + r.noise.Sample()
}
