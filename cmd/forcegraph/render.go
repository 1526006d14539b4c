package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesen/forcegraph/internal/config"
	"github.com/wesen/forcegraph/internal/engine"
	"github.com/wesen/forcegraph/internal/scene"
)

const defaultTicks = 300

func renderCmd(load configLoader) *cobra.Command {
	var (
		out     string
		ticks   int
		seed    uint64
		labels  bool
		verbose int
	)
	cmd := &cobra.Command{
		Use:   "render FIGURE",
		Short: "Settle a figure's layout and write it as SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(filepath.Ext(out))
			if format != ".svg" && format != ".png" {
				return fmt.Errorf("output %q: want a .svg or .png file", out)
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			opts, err := cfg.EngineOptions()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), verbosity(verbose))

			fig, err := config.LoadFigure(args[0])
			if err != nil {
				return err
			}
			s, steps, err := settle(opts, fig, ticks)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if format == ".svg" {
				err = s.WriteSVG(&buf)
			} else {
				err = s.WritePNG(&buf, scene.PNGOptions{Labels: labels})
			}
			if err != nil {
				return fmt.Errorf("render %s: %w", out, err)
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			w := cmd.OutOrStdout()
			good.Fprintf(w, "wrote %s", out)
			subtle.Fprintf(w, "  %d nodes, %d links, %d ticks, %.0fx%.0f\n",
				len(s.Nodes), len(s.Links), steps, s.Width, s.Height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "graph.svg", "output file, .svg or .png")
	cmd.Flags().IntVar(&ticks, "ticks", defaultTicks, "maximum simulation steps")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "jiggle seed, overrides the config")
	cmd.Flags().BoolVar(&labels, "labels", false, "draw node ids (PNG only)")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "log to stderr (repeat for debug)")
	return cmd
}

// settle runs a fresh engine on fig until it cools or ticks run out.
func settle(opts engine.Options, fig engine.Figure, ticks int) (*scene.Scene, int, error) {
	e, err := engine.New(opts)
	if err != nil {
		return nil, 0, err
	}
	e.Update(fig)
	steps := e.Settle(ticks)
	return e.Scene(), steps, nil
}
