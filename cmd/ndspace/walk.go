package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/ndspace/internal/compute"
	"github.com/san-kum/ndspace/internal/config"
	"github.com/san-kum/ndspace/internal/export"
	"github.com/san-kum/ndspace/internal/logging"
	"github.com/san-kum/ndspace/internal/nd"
	"github.com/san-kum/ndspace/internal/storage"
	"github.com/san-kum/ndspace/internal/viz"
)

func openStore() *storage.Store {
	return storage.New(dataDir)
}

// walkConfig layers preset, config file, positional range and flags, in
// that order.
func walkConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) == 1 {
		v, err := nd.ParseComponents(args[0])
		if err != nil {
			return nil, err
		}
		cfg.Range = v
		cfg.Offset = nil
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("min-chunk") {
		cfg.MinChunk = minChunk
	}
	if flags.Changed("offset") {
		v, err := nd.ParseComponents(offsetArg)
		if err != nil {
			return nil, fmt.Errorf("offset: %w", err)
		}
		cfg.Offset = v
	}
	if noVerify {
		cfg.Verify = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWalk(cmd *cobra.Command, args []string) error {
	cfg, err := walkConfig(cmd, args)
	if err != nil {
		return err
	}

	b, err := compute.NewBackend(cfg.Backend, cfg.Workers, uint(cfg.MinChunk))
	if err != nil {
		return err
	}
	defer b.Cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var run *storage.Run
	switch cfg.Rank() {
	case 1:
		run, err = walk[nd.R1](ctx, b, cfg)
	case 2:
		run, err = walk[nd.R2](ctx, b, cfg)
	case 3:
		run, err = walk[nd.R3](ctx, b, cfg)
	default:
		err = errRank(cfg.Rank())
	}
	if err != nil {
		return err
	}

	items := len(run.Coords)
	verified := 1.0
	if items > 0 {
		verified = float64(items-run.Mismatches) / float64(items)
	}
	status := viz.StatusOK.Render("ok")
	if run.Mismatches > 0 {
		status = viz.StatusBad.Render(fmt.Sprintf("%d mismatches", run.Mismatches))
	}
	if !cfg.Verify {
		status = viz.Subtle.Render("skipped")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Title.Render("walk"))
	fmt.Fprintln(out, viz.KeyValues(
		[2]string{"range", fmt.Sprint(cfg.Range)},
		[2]string{"offset", fmt.Sprint(cfg.GetOffset())},
		[2]string{"backend", run.Backend},
		[2]string{"items", strconv.Itoa(items)},
		[2]string{"elapsed", run.Elapsed.String()},
		[2]string{"round trip", status},
	))
	if cfg.Verify {
		fmt.Fprintln(out, viz.ProgressBar(verified, 40))
	}

	if !noStore {
		store := openStore()
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(run)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "saved: %s\n", runID)
	}

	if run.Mismatches > 0 {
		return fmt.Errorf("%d of %d items failed the round trip", run.Mismatches, items)
	}
	return nil
}

// walk visits every item of the configured range, records the global
// coordinate at its flat index, and checks that flattening and
// delinearizing agree for it.
func walk[R nd.Rank](ctx context.Context, b compute.Backend, cfg *config.Config) (*storage.Run, error) {
	r, err := nd.RangeOf[R](cfg.Range)
	if err != nil {
		return nil, err
	}
	off, err := nd.IDOf[R](cfg.GetOffset())
	if err != nil {
		return nil, err
	}

	coords := make([][]uint, r.Size())
	var mismatches atomic.Int64
	var zero nd.ID[R]

	start := time.Now()
	err = compute.ParallelForOffset(ctx, b, r, off, func(it nd.Item[R]) error {
		flat := it.LinearID()
		id := nd.IDFromItem(it)
		coords[flat] = id.Slice()
		if !cfg.Verify {
			return nil
		}
		pos := id.Sub(it.Offset())
		if nd.Delinearize(r, flat) != pos || nd.FlatOffset(r, pos, zero) != flat || !r.Contains(pos) {
			mismatches.Add(1)
		}
		return nil
	})
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	logging.Logger().Info("walk complete",
		"range", r.String(),
		"backend", b.Name(),
		"items", len(coords),
		"elapsed", elapsed,
		"mismatches", mismatches.Load(),
	)

	return &storage.Run{
		Range:      cfg.Range,
		Offset:     cfg.Offset,
		Backend:    b.Name(),
		Elapsed:    elapsed,
		Mismatches: int(mismatches.Load()),
		Coords:     coords,
	}, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := openStore().List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRANGE\tOFFSET\tITEMS\tBACKEND\tMISMATCHES\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%v\t%v\t%d\t%s\t%d\t%s\n",
			r.ID, r.Range, r.Offset, r.Items, r.Backend, r.Mismatches,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

// plotRun plots a stored walk, or computes the plot directly when the
// argument parses as a range.
func plotRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if v, err := nd.ParseComponents(args[0]); err == nil {
		var graph string
		switch len(v) {
		case 1:
			graph, err = plotRange[nd.R1](v)
		case 2:
			graph, err = plotRange[nd.R2](v)
		case 3:
			graph, err = plotRange[nd.R3](v)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, graph)
		return nil
	}

	store := openStore()
	meta, err := store.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	coords, err := store.LoadCoords(args[0])
	if err != nil {
		return fmt.Errorf("failed to load coords: %w", err)
	}

	caption := fmt.Sprintf("x%d over flat index, run %s, range %v", plotDim, meta.ID, meta.Range)
	graph, err := viz.PlotCoords(coords, plotDim, plotWidth, caption)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, graph)
	return nil
}

func plotRange[R nd.Rank](v []uint) (string, error) {
	r, err := checkedRange[R](v)
	if err != nil {
		return "", err
	}
	return viz.PlotComponent(r, plotDim, plotWidth)
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := openStore()
	if !asSVG {
		return store.ExportJSON(cmd.OutOrStdout(), args[0])
	}
	coords, err := store.LoadCoords(args[0])
	if err != nil {
		return fmt.Errorf("failed to load coords: %w", err)
	}
	svg, err := export.PathSVG(coords, xAxis, yAxis, 640, 640, "#00ff88")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), svg)
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRANGE\tOFFSET\tBACKEND\tITEMS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		items := uint(1)
		for _, e := range p.Range {
			items *= e
		}
		fmt.Fprintf(w, "%s\t%v\t%v\t%s\t%d\n", name, p.Range, p.GetOffset(), p.Backend, items)
	}
	return w.Flush()
}
