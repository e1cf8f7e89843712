package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvpath",
		Short: "Grid pathfinding playground",
		Long: `lvpath builds a random grid, runs Dijkstra or A* across it and
draws the explored area and the resulting path.

Examples:
  lvpath run
  lvpath run --width 60 --height 20 --density 0.3 --heuristic octile
  lvpath run --conn 4 --heuristic manhattan --start 0,0 --goal 59,19 --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvpath version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "lvpath", version)
			return err
		},
	}
}
