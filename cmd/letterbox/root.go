// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/letterbox/config"
	"github.com/katalvlaran/letterbox/grid"
)

// app carries what every subcommand needs once the root has loaded it.
type app struct {
	cfg    config.Config
	logger *log.Logger
	env    []string
}

func newRootCmd() *cobra.Command {
	a := &app{logger: log.New()}

	root := &cobra.Command{
		Use:           "letterbox",
		Short:         "Grid A* pathfinding over mutable tile grids",
		Long:          `letterbox builds .lb grids, finds paths across them and repaths whole swarms of agents described in YAML scenarios.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.env...)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.SetOutput(cmd.ErrOrStderr())
			a.logger.SetLevel(cfg.LogLevel)
			return nil
		},
	}
	root.PersistentFlags().StringSliceVar(&a.env, "env", nil, "`.env` files to load (default .env)")

	root.AddCommand(
		newNewCmd(a),
		newPathCmd(a),
		newReachCmd(a),
		newBatchCmd(a),
		newConvertCmd(a),
	)

	return root
}

// parseCell reads "row,col".
func parseCell(s string) (grid.Coordinates, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coordinates{}, fmt.Errorf("cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return grid.Coordinates{}, fmt.Errorf("cell %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return grid.Coordinates{}, fmt.Errorf("cell %q: col: %w", s, err)
	}
	return grid.C(row, col), nil
}

// formatPath renders cells as "(r,c) (r,c) ...".
func formatPath(path []grid.Coordinates) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
