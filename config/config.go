// SPDX-License-Identifier: MIT

// Package config loads process settings from the environment, optionally
// seeded from a .env file.
//
// Variables:
//
//	LETTERBOX_LOG_LEVEL       logrus level name            (info)
//	LETTERBOX_WORKERS         parallel destination groups  (GOMAXPROCS)
//	LETTERBOX_ROWS            default grid rows            (50)
//	LETTERBOX_COLS            default grid cols            (50)
//	LETTERBOX_MAX_EXPANSIONS  search expansion budget      (0, unlimited)
//	LETTERBOX_UNIFORM_COST    use g = g(parent) + 1        (false)
//
// Variables already set in the environment win over the .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/letterbox/astar"
	"github.com/katalvlaran/letterbox/repath"
)

// ErrInvalid indicates an environment variable that could not be parsed.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the process settings.
type Config struct {
	LogLevel      logrus.Level
	Workers       int
	Rows          int
	Cols          int
	MaxExpansions int
	UniformCost   bool
}

// Load reads the given .env files (".env" when none are named), ignoring
// files that do not exist, and then parses the environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv parses the LETTERBOX_* variables.
func FromEnv() (Config, error) {
	var (
		cfg Config
		err error
	)

	if cfg.LogLevel, err = logrus.ParseLevel(getEnv("LETTERBOX_LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("%w: LETTERBOX_LOG_LEVEL: %v", ErrInvalid, err)
	}
	if cfg.Workers, err = atoi("LETTERBOX_WORKERS", runtime.GOMAXPROCS(0), 1); err != nil {
		return Config{}, err
	}
	if cfg.Rows, err = atoi("LETTERBOX_ROWS", 50, 0); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = atoi("LETTERBOX_COLS", 50, 0); err != nil {
		return Config{}, err
	}
	if cfg.MaxExpansions, err = atoi("LETTERBOX_MAX_EXPANSIONS", 0, 0); err != nil {
		return Config{}, err
	}
	uniform := getEnv("LETTERBOX_UNIFORM_COST", "false")
	if cfg.UniformCost, err = strconv.ParseBool(uniform); err != nil {
		return Config{}, fmt.Errorf("%w: LETTERBOX_UNIFORM_COST=%q", ErrInvalid, uniform)
	}

	return cfg, nil
}

// SearchOptions translates the search settings into astar options.
func (c Config) SearchOptions() []astar.Option {
	var opts []astar.Option
	if c.UniformCost {
		opts = append(opts, astar.WithUniformCost())
	}
	if c.MaxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(c.MaxExpansions))
	}
	return opts
}

// WorldOptions returns the repath options for these settings, logging to l.
func (c Config) WorldOptions(l logrus.FieldLogger) []repath.Option {
	opts := []repath.Option{
		repath.WithWorkers(c.Workers),
		repath.WithSearchOptions(c.SearchOptions()...),
	}
	if l != nil {
		opts = append(opts, repath.WithLogger(l))
	}
	return opts
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def, min int) (int, error) {
	s := getEnv(key, "")
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < min {
		return 0, fmt.Errorf("%w: %s=%q (want integer >= %d)", ErrInvalid, key, s, min)
	}
	return n, nil
}
