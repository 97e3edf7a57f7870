package convergence

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gridode/grid"
	"github.com/katalvlaran/gridode/scheme"
)

// Evaluator — two-grid convergence study.
//
// Description:
//
//	Runs the approximate scheme over a coarse grid (point count suggested
//	for the nominal step h) and over a DensityRatio× denser grid, runs the
//	exact scheme over the coarse grid, and assembles one Row per coarse
//	index with both absolute errors and the observed order.
//
// Algorithm Outline:
//  1. n₁ = SuggestPoints(a, b, h); coarse grid with n₁ points.
//  2. Dense grid with 3·(n₁−1)+1 points — the same interval count tripled,
//     so the dense step is exactly coarse/3 and coarse index i lands on
//     dense index 3·i. Any other count silently shifts every comparison
//     coordinate.
//  3. On first Rows call: trace the approximate scheme on both grids and
//     the exact scheme on the coarse grid, then derive per-row errors and
//     p_i = log₃(coarseErr/denseErr). Cache the rows.
//
// Errors:
//   - grid sentinels — invalid interval, step or point count at construction.
//   - scheme sentinels — nil schemes at construction; malformed condition
//     tables or failing steps at first Rows call.
//
// Complexity: O(n₂) time and memory, computed once per instance.
type Evaluator struct {
	coarse, dense *grid.Grid
	opts          Options

	rows []Row // nil until the first successful Rows call
}

// New derives both grids from (a, b, h) and validates the schemes.
// Row computation is deferred to the first Rows call.
func New(a, b, h float64, opts Options) (*Evaluator, error) {
	if opts.Approx == nil || opts.Exact == nil {
		return nil, scheme.ErrNilScheme
	}
	n1, err := grid.SuggestPoints(a, b, h)
	if err != nil {
		return nil, err
	}
	coarse, err := grid.New(a, b, n1)
	if err != nil {
		return nil, err
	}
	dense, err := grid.New(a, b, DensityRatio*(n1-1)+1)
	if err != nil {
		return nil, err
	}
	return &Evaluator{coarse: coarse, dense: dense, opts: opts}, nil
}

// CoarseGrid returns the coarse grid derived at construction.
func (e *Evaluator) CoarseGrid() *grid.Grid { return e.coarse }

// DenseGrid returns the dense grid derived at construction.
func (e *Evaluator) DenseGrid() *grid.Grid { return e.dense }

// Rows returns the evaluated rows in increasing index order. The first
// call computes and caches them; every later call returns the identical
// cached slice without recomputation. Callers must treat the slice as
// read-only.
func (e *Evaluator) Rows() ([]Row, error) {
	if e.rows != nil {
		return e.rows, nil
	}

	coarseRun, err := scheme.Trace(e.opts.Approx, e.coarse, e.opts.CoarseConditions)
	if err != nil {
		return nil, fmt.Errorf("coarse run: %w", err)
	}
	denseRun, err := scheme.Trace(e.opts.Approx, e.dense, e.opts.DenseConditions)
	if err != nil {
		return nil, fmt.Errorf("dense run: %w", err)
	}
	exactRun, err := scheme.Trace(e.opts.Exact, e.coarse, e.opts.ExactConditions)
	if err != nil {
		return nil, fmt.Errorf("exact run: %w", err)
	}

	logRatio := math.Log(DensityRatio)
	rows := make([]Row, e.coarse.Size())
	for i, x := range e.coarse.Points() {
		coarseErr := math.Abs(exactRun[i] - coarseRun[i])
		denseErr := math.Abs(exactRun[i] - denseRun[DensityRatio*i])
		order := math.NaN()
		if coarseErr > 0 && denseErr > 0 && !math.IsInf(coarseErr, 0) && !math.IsInf(denseErr, 0) {
			order = math.Log(coarseErr/denseErr) / logRatio
		}
		rows[i] = Row{
			Index:     i,
			X:         x,
			Exact:     exactRun[i],
			CoarseErr: coarseErr,
			DenseErr:  denseErr,
			Order:     order,
		}
	}
	e.rows = rows
	return e.rows, nil
}

// Summary aggregates the rows: maximum error on each grid and the
// mean/spread of the observed order over rows where it is defined.
func (e *Evaluator) Summary() (Summary, error) {
	rows, err := e.Rows()
	if err != nil {
		return Summary{}, err
	}

	coarseErrs := make([]float64, len(rows))
	denseErrs := make([]float64, len(rows))
	orders := make([]float64, 0, len(rows))
	for i, r := range rows {
		coarseErrs[i] = r.CoarseErr
		denseErrs[i] = r.DenseErr
		if !math.IsNaN(r.Order) {
			orders = append(orders, r.Order)
		}
	}

	s := Summary{
		MaxCoarseErr: floats.Max(coarseErrs),
		MaxDenseErr:  floats.Max(denseErrs),
		MeanOrder:    math.NaN(),
		OrderStdDev:  math.NaN(),
		Defined:      len(orders),
	}
	if len(orders) > 0 {
		s.MeanOrder = stat.Mean(orders, nil)
		s.OrderStdDev = stat.StdDev(orders, nil)
	}
	return s, nil
}
