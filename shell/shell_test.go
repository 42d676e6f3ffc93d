package shell

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/rbcasperson/match-three/config"
	"github.com/rbcasperson/match-three/rng"
)

func testController(t *testing.T) *ShellController {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.BoardWidth = 5
	cfg.BoardHeight = 5
	cfg.OrbTypes = 4
	sc := &ShellController{cfg: &cfg, src: rng.NewSeededSource(5)}
	if err := sc.NewBoard(); err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestShowCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	var sb strings.Builder
	is.NoErr(sc.command("show", &sb))
	is.True(strings.Contains(sb.String(), "score: 0"))
}

func TestSwapCommandBadArgs(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	var sb strings.Builder

	err := sc.command("swap 1 1", &sb)
	is.True(err != nil)

	err = sc.command("swap a b c d", &sb)
	is.True(err != nil)

	err = sc.command("swap 0 0 99 99", &sb)
	is.True(err != nil) // out of bounds surfaces as an error
}

func TestNewCommandResizesBoard(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	var sb strings.Builder
	is.NoErr(sc.command("new 6 7 3", &sb))
	is.Equal(sc.board.Width(), 6)
	is.Equal(sc.board.Height(), 7)
}

func TestUnknownCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	var sb strings.Builder
	is.NoErr(sc.command("frobnicate", &sb))
	is.True(strings.Contains(sb.String(), "unknown command"))
}
