package main

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wesen/forcegraph/internal/datasource"
	"github.com/wesen/forcegraph/internal/engine"
	"github.com/wesen/forcegraph/internal/netui"
)

func viewCmd(load configLoader) *cobra.Command {
	var (
		logPath string
		mode    string
		verbose int
		noWatch bool
	)
	cmd := &cobra.Command{
		Use:   "view FIGURE",
		Short: "Explore a figure interactively, reloading it when the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			opts, err := cfg.EngineOptions()
			if err != nil {
				return err
			}
			if mode != "" {
				if opts.Mode, err = engine.ParseMode(mode); err != nil {
					return err
				}
			}

			log, closeLog, err := openLog(logPath, verbosity(verbose+1))
			if err != nil {
				return err
			}
			defer closeLog()

			src, err := datasource.Open(args[0], log)
			if err != nil {
				return err
			}
			defer src.Close()
			fig, err := src.Load()
			if err != nil {
				return err
			}

			model, err := netui.New(netui.Options{
				Engine:     opts,
				Figure:     fig,
				Title:      src.Path(),
				FPS:        cfg.UI.FPS,
				CellAspect: cfg.UI.CellAspect,
				Labels:     cfg.UI.Labels,
				Logger:     log,
			})
			if err != nil {
				return err
			}
			log.Info("viewer starting", "figure", src.Path(), "nodes", model.Engine().Graph().Len(), "mode", opts.Mode.String())

			p := tea.NewProgram(model)
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			g, ctx := errgroup.WithContext(ctx)
			if !noWatch {
				g.Go(func() error {
					return src.Run(ctx, func(f engine.Figure) {
						p.Send(netui.FigureMsg{Figure: f})
					})
				})
			}
			g.Go(func() error {
				defer cancel()
				if _, err := p.Run(); err != nil {
					return fmt.Errorf("viewer: %w", err)
				}
				return nil
			})
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&logPath, "log", "", "append logs to this file")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "log more (repeatable)")
	cmd.Flags().StringVar(&mode, "mode", "", "initial mode: default, pan, lasso or zoomStep")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the figure on change")
	return cmd
}
