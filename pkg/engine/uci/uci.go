// Package uci contains a driver for using the engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
// See: https://en.wikipedia.org/wiki/Universal_Chess_Interface
package uci

import (
	"context"
	"fmt"
	"github.com/corvidae/gyrfalcon/pkg/board"
	"github.com/corvidae/gyrfalcon/pkg/board/fen"
	"github.com/corvidae/gyrfalcon/pkg/engine"
	"github.com/corvidae/gyrfalcon/pkg/search"
	"github.com/corvidae/gyrfalcon/pkg/search/searchctl"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"go.uber.org/atomic"
	"strconv"
	"strings"
	"time"
)

const ProtocolName = "uci"

// movetimeSafetyMargin is subtracted from a fixed "go movetime" budget so the engine
// reliably returns a bestmove before the GUI's own clock expires.
const movetimeSafetyMargin = 50 * time.Millisecond

// Driver implements a UCI driver for an engine. It is activated if sent "uci".
type Driver struct {
	e *engine.Engine

	out chan<- string

	active       atomic.Bool         // user is waiting for engine to move
	ponder       chan search.PV      // chan for intermediate search information
	lastPosition string              // last position line (empty if no last position)

	quit   chan struct{}
	closed atomic.Bool
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		e:      e,
		out:    out,
		ponder: make(chan search.PV, 400),
		quit:   make(chan struct{}),
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) Close() {
	if d.closed.CAS(false, true) {
		close(d.quit)
	}
}

func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	// * uci
	//
	//	tell engine to use the uci (universal chess interface),
	//	this will be send once as a first command after program boot
	//	to tell the engine to switch to uci mode.
	//	After receiving the uci command the engine must identify itself with the "id" command
	//	and sent the "option" commands to tell the GUI which engine settings the engine supports if any.
	//	After that the engine should sent "uciok" to acknowledge the uci mode.
	//	If no uciok is sent within a certain time period, the engine task will be killed by the GUI.

	logw.Infof(ctx, "UCI protocol initialized")

	// * id
	//	* name <x>
	//		this must be sent after receiving the "uci" command to identify the engine,
	//		e.g. "id name Shredder X.Y\n"
	//	* author <x>
	//		this must be sent after receiving the "uci" command to identify the engine,
	//		e.g. "id author Stefan MK\n"

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())

	// * option
	//	This command tells the GUI which parameters can be changed in the engine.
	//	This should be sent once at engine startup after the "uci" and the "id" commands
	//	if any parameter can be changed in the engine.

	opts := d.e.Options()
	d.out <- fmt.Sprintf("option name Hash type spin default %v min 0 max 4096", opts.Hash)
	d.out <- fmt.Sprintf("option name Noise type spin default %v min 0 max 1000", opts.Noise)

	// * uciok
	//
	//	Must be sent after the id and optional options to tell the GUI that the engine
	//	has sent all infos and is ready in uci mode.

	d.out <- fmt.Sprintf("uciok")

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Split(strings.TrimSpace(line), " ")
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "isready":
				// * isready
				//
				//	this is used to synchronize the engine with the GUI.
				//	This command must always be answered with "readyok".

				d.out <- "readyok"

			case "debug":
				// * debug [ on | off ]
				//
				//	switch the debug mode of the engine on and off. Not implemented.

			case "setoption":
				// * setoption name <id> [value <x>]

				var name, value string
				if len(args) > 1 {
					name = args[1]
				}
				if len(args) > 3 {
					value = args[3]
				}

				switch name {
				case "Hash":
					if n, err := strconv.Atoi(value); err == nil {
						d.e.SetHash(uint(n))
					}
				case "Noise":
					if n, err := strconv.Atoi(value); err == nil {
						d.e.SetNoise(uint(n))
					}
				}

			case "register":
				// * register
				//
				//	Registration is not required by this engine.

			case "ucinewgame":
				// * ucinewgame
				//
				//   this is sent to the engine when the next search (started with "position" and "go") will be from
				//   a different game.

				d.ensureInactive(ctx)
				d.lastPosition = ""

			case "position":
				// * position [fen <fenstring> | startpos ]  moves <move1> .... <movei>

				d.ensureInactive(ctx)

				if err := d.setPosition(ctx, line, args); err != nil {
					// Drop the command. The next full position command recovers.
					logw.Errorf(ctx, "Invalid position '%v': %v", line, err)
					d.lastPosition = ""
				}

			case "go":
				// * go
				//
				//	start calculating on the current position set up with the "position" command.
				//	* wtime <x> / btime <x>
				//		side has x msec left on the clock
				//	* winc <x> / binc <x>
				//		side's increment per move in mseconds
				//	* movestogo <x>
				//		moves remaining to the next time control
				//	* depth <x>
				//		search x plies only
				//	* movetime <x>
				//		search exactly x mseconds
				//	* infinite
				//		search until the "stop" command

				d.ensureInactive(ctx)

				opt, timeout, infinite, err := parseGo(args)
				if err != nil {
					logw.Errorf(ctx, "Invalid go command '%v': %v", line, err)
					break // drop the command
				}

				out, err := d.e.Analyze(ctx, opt)
				if err != nil {
					logw.Errorf(ctx, "Analyze failed: %v", err)
					break // drop the command
				}
				d.active.Store(true)

				// Forward ponder info. Complete search if it ends, unless infinite.

				go func() {
					var last search.PV
					for pv := range out {
						last = pv
						d.ponder <- pv
					}
					if !infinite {
						d.searchCompleted(ctx, last)
					}
				}()

				// Enforce move time limit, if set.

				if timeout > 0 {
					time.AfterFunc(timeout, func() {
						_, _ = d.e.Halt(ctx)
					})
				}

			case "stop":
				// * stop
				//
				//	stop calculating as soon as possible, reply with "bestmove"

				pv, err := d.e.Halt(ctx)
				if err == nil {
					d.searchCompleted(ctx, pv)
				}

			case "ponderhit":
				// * ponderhit
				//
				//	the user has played the expected move. Pondering is not implemented, so ignored.

			case "quit":
				// * quit
				//
				//	quit the program as soon as possible
				return

			default:
				logw.Warningf(ctx, "Unknown command '%v': %v", cmd, args)
			}

		case pv := <-d.ponder:
			// * info
			//	the engine wants to send infos to the GUI, e.g.
			//	"info depth 2 score cp 214 time 1242 nodes 2124 nps 34928 pv e2e4 e7e5 g1f3"

			if d.active.Load() {
				d.out <- printPV(pv)
			}

		case <-d.quit:
			d.ensureInactive(ctx)

			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) ensureInactive(ctx context.Context) {
	d.active.Store(false)
	_, _ = d.e.Halt(ctx)
}

func (d *Driver) searchCompleted(ctx context.Context, pv search.PV) {
	if d.active.CAS(true, false) {
		if len(pv.Moves) > 0 {
			// * bestmove <move1> [ ponder <move2> ]
			//
			//	the engine has stopped searching and found the move <move> best in this position.
			//	Directly before that the engine should send a final "info" command.

			d.out <- printPV(pv)
			d.out <- fmt.Sprintf("bestmove %v", printMove(pv.Moves[0]))
		} else {
			// No PV. Position is checkmate or stalemate. Send NullMove.

			d.out <- fmt.Sprintf("bestmove 0000")
		}
	} // else: stale or duplicate result
}

// setPosition applies a position command: either a continuation of the previous game
// (same line plus extra moves) or a fresh FEN/startpos reset followed by moves.
func (d *Driver) setPosition(ctx context.Context, line string, args []string) error {
	if d.lastPosition != "" && strings.HasPrefix(line, d.lastPosition) {
		// Continuation of game.

		moves := strings.TrimSpace(strings.TrimPrefix(line, d.lastPosition))
		for _, arg := range strings.Split(moves, " ") {
			if arg == "moves" || arg == "" {
				continue
			}
			if err := d.e.Move(ctx, arg); err != nil {
				return fmt.Errorf("move '%v': %w", arg, err)
			}
		}

		d.lastPosition = line
		return nil
	}

	// New position.

	position := fen.Initial
	if len(args) >= 7 && args[0] == "fen" {
		position = strings.Join(args[1:7], " ")
	}

	if err := d.e.Reset(ctx, position); err != nil {
		return err
	}

	move := false
	for _, arg := range args {
		if arg == "moves" {
			move = true
			continue
		}
		if !move {
			continue
		}
		if err := d.e.Move(ctx, arg); err != nil {
			return fmt.Errorf("move '%v': %w", arg, err)
		}
	}
	d.lastPosition = line
	return nil
}

// parseGo parses the arguments of a go command into search options, a fixed move time
// budget (zero if unset) and the infinite flag.
func parseGo(args []string) (searchctl.Options, time.Duration, bool, error) {
	var opt searchctl.Options
	var tc searchctl.TimeControl
	haveTC := false
	infinite := false
	timeout := time.Duration(0)

	for i := 0; i < len(args); i++ {
		cmd := args[i]
		switch cmd {
		case "wtime", "btime", "winc", "binc", "movestogo", "depth", "movetime":
			// Next argument is an int.

			i++
			if i == len(args) {
				return opt, 0, false, fmt.Errorf("no argument for %v", cmd)
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return opt, 0, false, fmt.Errorf("invalid argument for %v: %w", cmd, err)
			}

			switch cmd {
			case "depth":
				opt.DepthLimit = lang.Some(uint(n))
			case "wtime":
				tc.White = time.Millisecond * time.Duration(n)
				haveTC = true
			case "btime":
				tc.Black = time.Millisecond * time.Duration(n)
				haveTC = true
			case "winc":
				tc.WhiteInc = time.Millisecond * time.Duration(n)
				haveTC = true
			case "binc":
				tc.BlackInc = time.Millisecond * time.Duration(n)
				haveTC = true
			case "movestogo":
				tc.Moves = n
				haveTC = true
			case "movetime":
				timeout = time.Millisecond*time.Duration(n) - movetimeSafetyMargin
				if timeout <= 0 {
					timeout = time.Millisecond * time.Duration(n)
				}
			}

		case "infinite":
			infinite = true

		default:
			// silently ignore anything not handled, e.g. searchmoves, ponder, mate, nodes.
		}
	}
	if haveTC {
		opt.TimeControl = lang.Some(tc)
	}
	return opt, timeout, infinite, nil
}

func printPV(pv search.PV) string {
	// "info depth 2 score cp 214 nodes 2124 time 1242 nps 1710 pv e2e4 e7e5 g1f3"

	parts := []string{"info"}
	parts = append(parts, fmt.Sprintf("depth %v", pv.Depth))
	if md, ok := pv.Score.MateDistance(); ok {
		parts = append(parts, fmt.Sprintf("score mate %v", pliesToMoves(md)))
	} else {
		parts = append(parts, fmt.Sprintf("score cp %v", pv.Score.Centipawns()))
	}
	if pv.Nodes > 0 {
		parts = append(parts, fmt.Sprintf("nodes %v", pv.Nodes))
	}
	if pv.Time > 0 {
		parts = append(parts, fmt.Sprintf("time %v", pv.Time.Milliseconds()))
	}
	if pv.Nodes > 0 && pv.Time > 0 {
		parts = append(parts, fmt.Sprintf("nps %v", uint64(time.Second)*pv.Nodes/uint64(pv.Time)))
	}
	if len(pv.Moves) > 0 {
		parts = append(parts, "pv")
		parts = append(parts, board.FormatMoves(pv.Moves, printMove))
	}

	return strings.Join(parts, " ")
}

// pliesToMoves converts a signed mate distance in plies to full moves, UCI convention.
func pliesToMoves(plies int) int {
	abs := plies
	sign := 1
	if abs < 0 {
		abs = -abs
		sign = -1
	}
	return sign * ((abs + 1) / 2)
}

func printMove(m board.Move) string {
	return fmt.Sprintf("%v%v%v", m.From, m.To, printPromoPiece(m.Promotion))
}

func printPromoPiece(p board.Piece) string {
	switch p {
	case board.Queen:
		return "q"
	case board.Rook:
		return "r"
	case board.Knight:
		return "n"
	case board.Bishop:
		return "b"
	default:
		return ""
	}
}
