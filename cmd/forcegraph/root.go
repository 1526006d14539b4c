package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wesen/forcegraph/internal/config"
)

var version = "0.1.0"

// CLI colors.
var (
	brand  = color.New(color.FgHiCyan, color.Bold)
	subtle = color.New(color.FgHiBlack)
	good   = color.New(color.FgGreen)
)

func rootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:           "forcegraph",
		Short:         "Force-directed graph layout in the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("forcegraph {{ .Version }}\n")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (.yaml, .yml or .toml); defaults to "+config.Dir()+"/config.*")

	load := func() (*config.App, error) {
		path := cfgPath
		if path == "" {
			path = config.Locate()
		}
		return config.Load(path)
	}
	root.AddCommand(
		viewCmd(load),
		renderCmd(load),
		schemesCmd(load),
	)
	return root
}

// configLoader resolves and loads the configuration named by --config.
type configLoader func() (*config.App, error)

// newLogger writes text logs to w at the given level.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// verbosity maps a -v count to a log level: warnings by default.
func verbosity(n int) slog.Level {
	switch {
	case n <= 0:
		return slog.LevelWarn
	case n == 1:
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// openLog opens path for appending, or discards logs when path is empty.
func openLog(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return newLogger(f, level), f.Close, nil
}
