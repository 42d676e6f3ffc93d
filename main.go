package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rbcasperson/match-three/config"
	"github.com/rbcasperson/match-three/shell"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(); err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	sc := shell.NewShellController(&cfg)
	go sc.Loop(sig)

	<-sig
	log.Info().Msg("bye")
}
