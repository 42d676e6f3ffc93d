// Package shell is a readline-driven interactive frontend for one board:
// show the grid, play swaps, resolve cascades, reshuffle, or run autoplay
// batches. It is a thin caller of the engine and holds no game logic.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/rbcasperson/match-three/autoplay"
	"github.com/rbcasperson/match-three/board"
	"github.com/rbcasperson/match-three/config"
	"github.com/rbcasperson/match-three/game"
	"github.com/rbcasperson/match-three/orbs"
	"github.com/rbcasperson/match-three/rng"
)

type ShellController struct {
	l     *readline.Instance
	cfg   *config.Config
	board *game.Board
	src   rng.Source
	score int
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("show"),
	readline.PcItem("swap"),
	readline.PcItem("eval"),
	readline.PcItem("shuffle"),
	readline.PcItem("new"),
	readline.PcItem("auto"),
	readline.PcItem("seed"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mmatch-three>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    completer,

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := &ShellController{l: l, cfg: cfg}
	sc.src = newSource(cfg.RandomSeed)
	return sc
}

func newSource(seed uint64) rng.Source {
	if seed != 0 {
		return rng.NewSeededSource(seed)
	}
	return rng.NewSource()
}

// NewBoard (re)creates the shell's board from the current config.
func (sc *ShellController) NewBoard() error {
	b, err := game.New(sc.cfg.BoardWidth, sc.cfg.BoardHeight,
		orbs.StandardSet(sc.cfg.OrbTypes), sc.src)
	if err != nil {
		return err
	}
	sc.board = b
	sc.score = 0
	return nil
}

func (sc *ShellController) showBoard(w io.Writer) {
	showMessage(sc.board.Grid().String(), w)
	showMessage(fmt.Sprintf("score: %d   potential move: %v",
		sc.score, sc.board.HasPotentialMatch()), w)
}

func usage(w io.Writer) {
	showMessage("commands:", w)
	showMessage("show - display the board", w)
	showMessage("swap <r1> <c1> <r2> <c2> - play a swap; reverted unless it matches", w)
	showMessage("eval - resolve all cascades and score them", w)
	showMessage("shuffle - reshuffle the board", w)
	showMessage("new [w h types] - start a fresh board", w)
	showMessage("auto <n> - play n automatic sessions and print stats", w)
	showMessage("seed <n> - reseed the random source (0 = from OS)", w)
	showMessage("exit - leave the shell", w)
}

func (sc *ShellController) handleSwap(args []string, w io.Writer) error {
	if len(args) != 4 {
		return fmt.Errorf("swap needs 4 arguments: r1 c1 r2 c2")
	}
	n := make([]int, 4)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("bad coordinate %q", a)
		}
		n[i] = v
	}
	a := board.Coord{Row: n[0], Col: n[1]}
	b := board.Coord{Row: n[2], Col: n[3]}
	kept, err := sc.board.Swap(a, b, true)
	if err != nil {
		return err
	}
	if !kept {
		showMessage("no match; swap reverted", w)
		return nil
	}
	showMessage("swap kept", w)
	sc.resolve(w)
	return nil
}

// resolve loops single evaluation layers until the board settles, tallying
// the score.
func (sc *ShellController) resolve(w io.Writer) {
	for sc.board.HasMatch() {
		for _, e := range sc.board.Evaluate(nil, nil) {
			sc.score += e.Size
			showMessage(fmt.Sprintf("matched %d x %c", e.Size, e.Orb.Rune()), w)
		}
	}
	sc.showBoard(w)
}

func (sc *ShellController) handleNew(args []string) error {
	if len(args) == 3 {
		vals := make([]int, 3)
		for i, a := range args {
			v, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("bad dimension %q", a)
			}
			vals[i] = v
		}
		sc.cfg.BoardWidth, sc.cfg.BoardHeight, sc.cfg.OrbTypes = vals[0], vals[1], vals[2]
	} else if len(args) != 0 {
		return fmt.Errorf("new takes no arguments or: w h types")
	}
	return sc.NewBoard()
}

func (sc *ShellController) handleAuto(args []string, w io.Writer) error {
	n := 10
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return fmt.Errorf("bad session count %q", args[0])
		}
		n = v
	}
	stats, err := autoplay.StartSessions(context.Background(), sc.cfg, n)
	if err != nil {
		return err
	}
	showMessage(stats.Summary(), w)
	return stats.WriteHistogram(w)
}

func (sc *ShellController) command(line string, w io.Writer) error {
	fields, err := shellquote.Split(line)
	if err != nil || len(fields) == 0 {
		return err
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "show":
		sc.showBoard(w)
	case "swap":
		return sc.handleSwap(args, w)
	case "eval":
		sc.resolve(w)
	case "shuffle":
		if err := sc.board.Shuffle(); err != nil {
			return err
		}
		sc.showBoard(w)
	case "new":
		if err := sc.handleNew(args); err != nil {
			return err
		}
		sc.showBoard(w)
	case "seed":
		if len(args) != 1 {
			return fmt.Errorf("seed needs one argument")
		}
		seed, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad seed %q", args[0])
		}
		sc.src = newSource(seed)
	case "help":
		usage(w)
	default:
		showMessage(fmt.Sprintf("unknown command %q, try help", cmd), w)
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	if err := sc.NewBoard(); err != nil {
		log.Error().Err(err).Msg("could not create board")
		return
	}
	sc.showBoard(sc.l.Stderr())

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "bye" {
			sig <- syscall.SIGINT
			break
		}
		if err := sc.command(line, sc.l.Stderr()); err != nil {
			log.Error().Err(err).Msg("")
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
