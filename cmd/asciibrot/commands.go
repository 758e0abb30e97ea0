package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/san-kum/asciibrot/internal/analysis"
	"github.com/san-kum/asciibrot/internal/config"
	"github.com/san-kum/asciibrot/internal/tui"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list named view presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tEVALUATOR\tCENTER\tZOOM\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\n",
					name,
					p.Evaluator,
					p.Center,
					p.Zoom,
					p.Description,
				)
			}
			return w.Flush()
		},
	}
}

func newStatsCmd() *cobra.Command {
	var chartWidth, chartHeight int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "escape statistics for the current view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			fc, err := frameConfig(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			stats := analysis.Analyze(&fc)

			fmt.Fprintf(out, "%s %dx%d  iterations %d  zoom %g  center %s\n",
				fc.Kind, fc.Width, fc.Height, fc.Iterations, fc.Zoom, cfg.Center)
			fmt.Fprintf(out, "cells %d  inside %d (%.1f%%)  mean escape %.3f\n\n",
				stats.Cells, stats.Interior, 100*stats.Coverage(), stats.MeanEscape())
			fmt.Fprintln(out, analysis.PlotSteps(stats, chartWidth, chartHeight))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "palette buckets:")
			fmt.Fprint(out, analysis.BucketTable(stats))

			if fc.Animate {
				state := newState(cfg)
				trace := analysis.RadiusTrace(state, state.Radius.Period())
				fmt.Fprintln(out)
				fmt.Fprintln(out, analysis.PlotTrace(trace, chartWidth, chartHeight))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&chartWidth, "chart-width", 60, "chart width")
	cmd.Flags().IntVar(&chartHeight, "chart-height", 10, "chart height")
	return cmd
}

func newExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "pan and zoom interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			fc, err := frameConfig(cfg)
			if err != nil {
				return err
			}
			return tui.Run(fc, newState(cfg))
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [path]",
		Short: "print or save the resolved configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if _, err := frameConfig(cfg); err != nil {
				return err
			}

			if len(args) == 0 {
				return config.Encode(cmd.OutOrStdout(), cfg)
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", args[0])
			return nil
		},
	}
}
