package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/ndspace/internal/export"
	"github.com/san-kum/ndspace/internal/nd"
	"github.com/san-kum/ndspace/internal/tui"
	"github.com/san-kum/ndspace/internal/viz"
)

// checkedRange builds a range and rejects one whose item count does not
// fit in a uint.
func checkedRange[R nd.Rank](v []uint) (nd.Range[R], error) {
	r, err := nd.RangeOf[R](v)
	if err != nil {
		return r, err
	}
	if _, ok := r.SizeChecked(); !ok {
		return r, fmt.Errorf("%w: range %s has more items than a uint can count", nd.ErrOutOfRange, r)
	}
	return r, nil
}

func parseRangeID[R nd.Rank](rs, ids string) (nd.Range[R], nd.ID[R], error) {
	rv, err := nd.ParseComponents(rs)
	if err != nil {
		return nd.Range[R]{}, nd.ID[R]{}, err
	}
	r, err := checkedRange[R](rv)
	if err != nil {
		return nd.Range[R]{}, nd.ID[R]{}, err
	}
	if ids == "" {
		return r, nd.ID[R]{}, nil
	}
	iv, err := nd.ParseComponents(ids)
	if err != nil {
		return r, nd.ID[R]{}, err
	}
	id, err := nd.IDOf[R](iv)
	if err != nil {
		return r, nd.ID[R]{}, fmt.Errorf("id %s against range %s: %w", ids, r, err)
	}
	return r, id, nil
}

func rankOf(s string) (int, error) {
	v, err := nd.ParseComponents(s)
	if err != nil {
		return 0, err
	}
	return len(v), nil
}

func runFlat(cmd *cobra.Command, args []string) error {
	n, err := rankOf(args[0])
	if err != nil {
		return err
	}
	var flat uint
	switch n {
	case 1:
		flat, err = flatten[nd.R1](args[0], args[1], offsetArg)
	case 2:
		flat, err = flatten[nd.R2](args[0], args[1], offsetArg)
	case 3:
		flat, err = flatten[nd.R3](args[0], args[1], offsetArg)
	default:
		err = errRank(n)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), flat)
	return nil
}

func flatten[R nd.Rank](rs, ids, offs string) (uint, error) {
	r, id, err := parseRangeID[R](rs, ids)
	if err != nil {
		return 0, err
	}
	var off nd.ID[R]
	if offs != "" {
		if _, off, err = parseRangeID[R](rs, offs); err != nil {
			return 0, fmt.Errorf("offset: %w", err)
		}
	}
	for i := 0; i < r.Dims(); i++ {
		if id.Get(i)+off.Get(i) >= r.Get(i) {
			return 0, &nd.BoundsError{What: "coordinate", Dim: i, Value: id.Get(i) + off.Get(i), Limit: r.Get(i)}
		}
	}
	return nd.FlatOffset(r, id, off), nil
}

func runDelin(cmd *cobra.Command, args []string) error {
	n, err := rankOf(args[0])
	if err != nil {
		return err
	}
	idx, err := strconv.ParseUint(args[1], 10, 0)
	if err != nil {
		return fmt.Errorf("index %q: %w", args[1], err)
	}
	var out string
	switch n {
	case 1:
		out, err = delinearize[nd.R1](args[0], uint(idx))
	case 2:
		out, err = delinearize[nd.R2](args[0], uint(idx))
	case 3:
		out, err = delinearize[nd.R3](args[0], uint(idx))
	default:
		err = errRank(n)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func delinearize[R nd.Rank](rs string, idx uint) (string, error) {
	r, _, err := parseRangeID[R](rs, "")
	if err != nil {
		return "", err
	}
	if idx >= r.Size() {
		return "", &nd.BoundsError{What: "flat index", Dim: -1, Value: idx, Limit: r.Size()}
	}
	return nd.Delinearize(r, idx).String(), nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	sym := args[1]
	op, err := nd.ParseOp(sym)
	if err != nil {
		return err
	}
	assign := op.Compound() && strings.HasSuffix(sym, "=")

	lv, err := nd.ParseComponents(args[0])
	if err != nil {
		return err
	}
	rv, err := nd.ParseComponents(args[2])
	if err != nil {
		return err
	}

	if op == nd.OpDiv || op == nd.OpMod {
		if slices.Contains(rv, 0) {
			return fmt.Errorf("%s by zero: divisor %s", op, args[2])
		}
	}

	n := max(len(lv), len(rv))
	var out string
	switch n {
	case 1:
		out, err = calc[nd.R1](op, assign, lv, rv)
	case 2:
		out, err = calc[nd.R2](op, assign, lv, rv)
	case 3:
		out, err = calc[nd.R3](op, assign, lv, rv)
	default:
		err = errRank(n)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// calc applies op to two operands of rank R. A single-component operand
// next to a wider one is a scalar broadcast to every component.
func calc[R nd.Rank](op nd.Op, assign bool, lv, rv []uint) (string, error) {
	n := nd.ID[R]{}.Dims()
	if len(lv) != n && len(lv) != 1 || len(rv) != n && len(rv) != 1 {
		return "", fmt.Errorf("%w: operands of rank %d and %d", nd.ErrDimensionMismatch, len(lv), len(rv))
	}
	switch {
	case len(lv) == n && len(rv) == n:
		a, err := nd.IDOf[R](lv)
		if err != nil {
			return "", err
		}
		b, err := nd.IDOf[R](rv)
		if err != nil {
			return "", err
		}
		if assign {
			a.Assign(op, b)
			return a.String(), nil
		}
		return nd.Apply(op, a, b).String(), nil
	case len(lv) == n:
		a, err := nd.IDOf[R](lv)
		if err != nil {
			return "", err
		}
		if assign {
			a.AssignN(op, rv[0])
			return a.String(), nil
		}
		return nd.ApplyScalar(op, a, rv[0]).String(), nil
	default:
		if assign {
			return "", fmt.Errorf("cannot assign to scalar %d", lv[0])
		}
		b, err := nd.IDOf[R](rv)
		if err != nil {
			return "", err
		}
		return nd.ApplyScalarLeft(op, lv[0], b).String(), nil
	}
}

func runGrid(cmd *cobra.Command, args []string) error {
	n, err := rankOf(args[0])
	if err != nil {
		return err
	}
	var out, svg string
	switch n {
	case 1:
		out, svg, err = grid[nd.R1](args[0], atArg, svgPath != "")
	case 2:
		out, svg, err = grid[nd.R2](args[0], atArg, svgPath != "")
	case 3:
		out, svg, err = grid[nd.R3](args[0], atArg, svgPath != "")
	default:
		err = errRank(n)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "svg: %s\n", svgPath)
	}
	return nil
}

func grid[R nd.Rank](rs, at string, withSVG bool) (string, string, error) {
	r, id, err := parseRangeID[R](rs, at)
	if err != nil {
		return "", "", err
	}
	var cursor *nd.ID[R]
	if at != "" {
		if !r.Contains(id) {
			return "", "", fmt.Errorf("%w: %s outside %s", nd.ErrOutOfRange, id, r)
		}
		cursor = &id
	}
	var svg string
	if withSVG {
		if svg, err = export.GridSVG(r, cursor, 32); err != nil {
			return "", "", err
		}
	}
	return viz.RenderGrid(r, cursor), svg, nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	v, err := nd.ParseComponents(args[0])
	if err != nil {
		return err
	}
	switch len(v) {
	case 1:
		return explore[nd.R1](v)
	case 2:
		return explore[nd.R2](v)
	case 3:
		return explore[nd.R3](v)
	}
	return errRank(len(v))
}

func explore[R nd.Rank](v []uint) error {
	r, err := checkedRange[R](v)
	if err != nil {
		return err
	}
	return tui.Run(r)
}

func runThisID(cmd *cobra.Command, args []string) error {
	var (
		id  fmt.Stringer
		err error
	)
	switch thisRank {
	case 1:
		id, err = nd.CurrentID[nd.R1]()
	case 2:
		id, err = nd.CurrentID[nd.R2]()
	case 3:
		id, err = nd.CurrentID[nd.R3]()
	default:
		return errRank(thisRank)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
