package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesen/forcegraph/pkg/colorscheme"
)

func schemesCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the color schemes a figure can name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			r, err := cfg.Resolver()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			brand.Fprintln(w, "schemes")
			for _, name := range r.Names() {
				mark := ""
				if name == colorscheme.DefaultName {
					mark = subtle.Sprint("  (default)")
				}
				if _, ok := cfg.Schemes[name]; ok {
					mark += subtle.Sprint("  (config)")
				}
				fmt.Fprintf(w, "  %s%s\n", name, mark)
			}

			brand.Fprintln(w, "interpolators")
			for _, name := range r.Interpolators() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			return nil
		},
	}
}
