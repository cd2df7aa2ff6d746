package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/ndspace/internal/logging"
)

var (
	dataDir    string
	logLevel   string
	logJSON    bool
	offsetArg  string
	atArg      string
	configFile string
	preset     string
	backend    string
	workers    int
	minChunk   int
	noVerify   bool
	noStore    bool
	plotDim    int
	plotWidth  int
	thisRank   int
	svgPath    string
	asSVG      bool
	xAxis      int
	yAxis      int
)

// main registers the ndspace commands and exits 1 when one fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "ndspace",
		Short:        "n-dimensional index space tools",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel == "" {
				logging.SetLogger(nil)
				return
			}
			logging.SetLogger(logging.New(os.Stderr, logging.ParseLevel(logLevel), logJSON))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ndspace", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); empty disables logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")

	flatCmd := &cobra.Command{
		Use:   "flat [range] [id]",
		Short: "flatten a coordinate in row-major order",
		Args:  cobra.ExactArgs(2),
		RunE:  runFlat,
	}
	flatCmd.Flags().StringVar(&offsetArg, "offset", "", "offset added to the id before flattening")

	delinCmd := &cobra.Command{
		Use:   "delin [range] [index]",
		Short: "recover a coordinate from a flat index",
		Args:  cobra.ExactArgs(2),
		RunE:  runDelin,
	}

	calcCmd := &cobra.Command{
		Use:   "calc [id|scalar] [op] [id|scalar]",
		Short: "apply a component-wise operator",
		Args:  cobra.ExactArgs(3),
		RunE:  runCalc,
	}

	walkCmd := &cobra.Command{
		Use:   "walk [range]",
		Short: "visit every item of a range in parallel and verify linearization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWalk,
	}
	walkCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	walkCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	walkCmd.Flags().StringVar(&backend, "backend", "auto", "backend (auto, cpu, serial)")
	walkCmd.Flags().IntVar(&workers, "workers", 0, "cpu workers (0 = NumCPU)")
	walkCmd.Flags().IntVar(&minChunk, "min-chunk", 0, "smallest chunk handed to one worker")
	walkCmd.Flags().StringVar(&offsetArg, "offset", "", "offset added to every item")
	walkCmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip the round-trip check")
	walkCmd.Flags().BoolVar(&noStore, "no-store", false, "do not save the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored walks",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id|range]",
		Short: "plot one component over the flat index",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotDim, "dim", 0, "component to plot")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored walk as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().BoolVar(&asSVG, "svg", false, "write the visiting path as SVG instead of JSON")
	exportCmd.Flags().IntVar(&xAxis, "x-axis", 1, "component for the svg x-axis")
	exportCmd.Flags().IntVar(&yAxis, "y-axis", 0, "component for the svg y-axis")

	gridCmd := &cobra.Command{
		Use:   "grid [range]",
		Short: "draw the flat offset of every cell",
		Args:  cobra.ExactArgs(1),
		RunE:  runGrid,
	}
	gridCmd.Flags().StringVar(&atArg, "at", "", "coordinate to highlight")
	gridCmd.Flags().StringVar(&svgPath, "svg", "", "also write the grid as SVG to this file")

	exploreCmd := &cobra.Command{
		Use:   "explore [range]",
		Short: "move a cursor through a range interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runExplore,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list walk presets",
		RunE:  listPresets,
	}

	thisIDCmd := &cobra.Command{
		Use:   "this-id",
		Short: "query the current id through the legacy free function",
		Args:  cobra.NoArgs,
		RunE:  runThisID,
	}
	thisIDCmd.Flags().IntVar(&thisRank, "rank", 1, "rank to query")

	rootCmd.AddCommand(flatCmd, delinCmd, calcCmd, walkCmd, listCmd, plotCmd, exportCmd, gridCmd, exploreCmd, presetsCmd, thisIDCmd)
	return rootCmd
}

func errRank(n int) error {
	return fmt.Errorf("rank %d not supported (1 to 3)", n)
}
