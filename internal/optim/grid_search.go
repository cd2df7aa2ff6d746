// Package optim searches parameter grids by walking them as an index space.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/ndspace/internal/compute"
	"github.com/san-kum/ndspace/internal/nd"
)

var (
	ErrNoParams  = errors.New("optim: grid search needs 1 to 3 parameters")
	ErrEmptyAxis = errors.New("optim: parameter has no values")
	ErrNoResult  = errors.New("optim: every grid point failed")
)

type Param struct {
	Name   string
	Values []float64
}

// Objective scores one grid point. Lower is better.
type Objective func(ctx context.Context, params map[string]float64) (float64, error)

type Result struct {
	Params    map[string]float64
	Value     float64
	Point     []uint
	Evaluated int
	Failed    int
}

type GridSearch struct {
	params  []Param
	backend compute.Backend
}

func NewGridSearch(params ...Param) *GridSearch {
	return &GridSearch{params: params}
}

// WithBackend sets the backend used to evaluate grid points. nil means
// the active backend.
func (g *GridSearch) WithBackend(b compute.Backend) *GridSearch {
	g.backend = b
	return g
}

// Search evaluates objective at every grid point and returns the lowest
// score. Points whose objective fails or returns NaN are skipped. Ties go
// to the point with the lowest flat index.
func (g *GridSearch) Search(ctx context.Context, objective Objective) (*Result, error) {
	if len(g.params) == 0 || len(g.params) > nd.MaxDims {
		return nil, fmt.Errorf("%w, got %d", ErrNoParams, len(g.params))
	}
	extents := make([]uint, len(g.params))
	for i, p := range g.params {
		if len(p.Values) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyAxis, p.Name)
		}
		extents[i] = uint(len(p.Values))
	}

	switch len(extents) {
	case 1:
		return search[nd.R1](ctx, g, extents, objective)
	case 2:
		return search[nd.R2](ctx, g, extents, objective)
	default:
		return search[nd.R3](ctx, g, extents, objective)
	}
}

type evaluation struct {
	value float64
	err   error
}

func search[R nd.Rank](ctx context.Context, g *GridSearch, extents []uint, objective Objective) (*Result, error) {
	r, err := nd.RangeOf[R](extents)
	if err != nil {
		return nil, err
	}

	evals, err := compute.Fill(ctx, g.backend, r, func(id nd.ID[R]) evaluation {
		v, err := objective(ctx, g.paramsAt(id))
		return evaluation{value: v, err: err}
	})
	if err != nil {
		return nil, err
	}

	res := &Result{Value: math.Inf(1), Evaluated: len(evals)}
	bestIdx := -1
	for i, e := range evals {
		if e.err != nil || math.IsNaN(e.value) {
			res.Failed++
			continue
		}
		if bestIdx < 0 || e.value < res.Value {
			res.Value = e.value
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return nil, ErrNoResult
	}

	best := nd.Delinearize(r, uint(bestIdx))
	res.Point = best.Slice()
	res.Params = g.paramsAt(best)
	return res, nil
}

func (g *GridSearch) paramsAt(id interface{ Get(int) uint }) map[string]float64 {
	params := make(map[string]float64, len(g.params))
	for i, p := range g.params {
		params[p.Name] = p.Values[id.Get(i)]
	}
	return params
}
