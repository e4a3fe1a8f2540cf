// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/letterbox/astar"
	"github.com/katalvlaran/letterbox/grid"
	"github.com/katalvlaran/letterbox/lbfile"
	"github.com/katalvlaran/letterbox/repath"
	"github.com/katalvlaran/letterbox/scenario"
)

var errNoPath = errors.New("no path")

func newNewCmd(a *app) *cobra.Command {
	var (
		rows, cols int
		closed     bool
		out        string
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Write an empty grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rows") {
				rows = a.cfg.Rows
			}
			if !cmd.Flags().Changed("cols") {
				cols = a.cfg.Cols
			}
			if rows < 0 || cols < 0 {
				return fmt.Errorf("negative dimensions %d×%d", rows, cols)
			}
			def := grid.Open()
			if closed {
				def = grid.Closed()
			}
			if err := lbfile.SaveFile(out, grid.New(rows, cols, def)); err != nil {
				return err
			}
			a.logger.WithFields(log.Fields{"file": out, "rows": rows, "cols": cols}).Info("grid written")
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 50, "number of rows (default LETTERBOX_ROWS)")
	cmd.Flags().IntVar(&cols, "cols", 50, "number of columns (default LETTERBOX_COLS)")
	cmd.Flags().BoolVar(&closed, "closed", false, "start with every cell closed")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output .lb file")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	var (
		file, from, to  string
		uniform, deeper bool
		maxExpansions   int
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the path between two cells",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := lbfile.LoadFile(file)
			if err != nil {
				return err
			}
			start, goal, err := endpoints(g, from, to)
			if err != nil {
				return err
			}

			opts := a.cfg.SearchOptions()
			if uniform {
				opts = append(opts, astar.WithUniformCost())
			}
			if deeper {
				opts = append(opts, astar.WithTieBreak(astar.TieBreakDeeper))
			}
			if maxExpansions > 0 {
				opts = append(opts, astar.WithMaxExpansions(maxExpansions))
			}

			path, ok := astar.Search(g, start, goal, astar.Manhattan, opts...)
			if !ok {
				return fmt.Errorf("%v → %v: %w", start, goal, errNoPath)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d steps: %s\n", len(path)-1, formatPath(path))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "grid", "", ".lb grid file")
	cmd.Flags().StringVar(&from, "from", "", "start cell row,col")
	cmd.Flags().StringVar(&to, "to", "", "goal cell row,col")
	cmd.Flags().BoolVar(&uniform, "uniform", false, "use g = g(parent) + 1")
	cmd.Flags().BoolVar(&deeper, "deeper", false, "break f ties towards larger g")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "give up after n expansions (0 = unlimited)")
	for _, f := range []string{"grid", "from", "to"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newReachCmd(a *app) *cobra.Command {
	var file, from string
	cmd := &cobra.Command{
		Use:   "reach",
		Short: "Count the cells reachable from a cell",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := lbfile.LoadFile(file)
			if err != nil {
				return err
			}
			start, _, err := endpoints(g, from, from)
			if err != nil {
				return err
			}
			n := len(g.Reachable(start))
			a.logger.WithFields(log.Fields{"from": start, "cells": g.Len()}).Debug("reachability")
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d cells reachable from %v\n", n, g.Len(), start)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "grid", "", ".lb grid file")
	cmd.Flags().StringVar(&from, "from", "", "start cell row,col")
	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Repath every agent of a scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(file)
			if err != nil {
				return err
			}
			g, err := s.Build()
			if err != nil {
				return err
			}

			w := repath.NewWorld(g, a.cfg.WorldOptions(a.logger)...)
			agents := s.NewAgents()
			rep, err := w.Repath(cmd.Context(), agents)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, ag := range agents {
				if ag.Path == nil {
					fmt.Fprintf(out, "%s: unreachable\n", ag.Name)
					continue
				}
				fmt.Fprintf(out, "%s: %d steps: %s\n", ag.Name, len(ag.Path)-1, formatPath(ag.Path))
			}
			a.logger.WithFields(log.Fields{
				"agents":      len(agents),
				"found":       rep.Found,
				"unreachable": rep.Unreachable,
				"elapsed":     rep.Elapsed,
			}).Info("batch complete")
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "scenario", "", "YAML scenario file")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	var file, out string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write a scenario's grid as .lb",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(file)
			if err != nil {
				return err
			}
			g, err := s.Build()
			if err != nil {
				return err
			}
			if n := len(g.Entanglements()); n > 0 {
				a.logger.WithField("entanglements", n).Warn(".lb files do not store entanglements; dropped")
			}
			return lbfile.SaveFile(out, g)
		},
	}
	cmd.Flags().StringVar(&file, "scenario", "", "YAML scenario file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output .lb file")
	_ = cmd.MarkFlagRequired("scenario")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// endpoints parses both cells and checks they lie on g.
func endpoints(g *grid.Grid, from, to string) (grid.Coordinates, grid.Coordinates, error) {
	start, err := parseCell(from)
	if err != nil {
		return start, start, err
	}
	goal, err := parseCell(to)
	if err != nil {
		return start, goal, err
	}
	for _, c := range []grid.Coordinates{start, goal} {
		if !g.Contains(c) {
			return start, goal, fmt.Errorf("%w: %v not in %d×%d", grid.ErrOutOfBounds, c, g.Rows(), g.Cols())
		}
	}
	return start, goal, nil
}
