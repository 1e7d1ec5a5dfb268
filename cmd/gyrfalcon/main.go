package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/corvidae/gyrfalcon/pkg/engine"
	"github.com/corvidae/gyrfalcon/pkg/engine/console"
	"github.com/corvidae/gyrfalcon/pkg/engine/uci"
	"github.com/corvidae/gyrfalcon/pkg/eval"
	"github.com/corvidae/gyrfalcon/pkg/search"
	"github.com/seekerror/logw"
	"os"
)

var (
	noise = flag.Int("noise", 10, "Evaluation noise in centipawns (zero if deterministic)")
	hash  = flag.Uint("hash", 32, "Transposition table size in MB (zero to disable)")
	depth = flag.Uint("depth", 0, "Default search depth limit (zero for no limit)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: gyrfalcon [options]

GYRFALCON is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	s := search.PVS{
		Explore: search.FullExploration,
		Eval: search.Quiescence{
			Explore: search.QuiescenceExploration,
			Eval:    eval.Classical{}, // noise is added per-search via engine.Options.
		},
		Static: eval.Classical{},
	}
	e := engine.New(ctx, "gyrfalcon", "corvidae", s, engine.WithOptions(engine.Options{
		Depth: *depth,
		Hash:  *hash,
		Noise: uint(*noise),
	}))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, s, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
