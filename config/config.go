// Package config carries the runtime knobs for the shell and the autoplay
// runner. Values come from defaults, an optional match-three.yaml in the
// working directory, and MATCHTHREE_* environment variables, in ascending
// precedence.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	BoardWidth   int
	BoardHeight  int
	OrbTypes     int
	RandomSeed   uint64 // 0 means seed from the OS
	SessionMoves int
	Threads      int
	Debug        bool
}

func DefaultConfig() Config {
	return Config{
		BoardWidth:   8,
		BoardHeight:  8,
		OrbTypes:     6,
		SessionMoves: 50,
		Threads:      4,
	}
}

// Load fills the config from file and environment.
func (c *Config) Load() error {
	v := viper.New()
	v.SetDefault("board-width", c.BoardWidth)
	v.SetDefault("board-height", c.BoardHeight)
	v.SetDefault("orb-types", c.OrbTypes)
	v.SetDefault("random-seed", c.RandomSeed)
	v.SetDefault("session-moves", c.SessionMoves)
	v.SetDefault("threads", c.Threads)
	v.SetDefault("debug", c.Debug)

	v.SetConfigName("match-three")
	v.AddConfigPath(".")
	v.SetEnvPrefix("matchthree")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	c.BoardWidth = v.GetInt("board-width")
	c.BoardHeight = v.GetInt("board-height")
	c.OrbTypes = v.GetInt("orb-types")
	c.RandomSeed = v.GetUint64("random-seed")
	c.SessionMoves = v.GetInt("session-moves")
	c.Threads = v.GetInt("threads")
	c.Debug = v.GetBool("debug")
	return nil
}
