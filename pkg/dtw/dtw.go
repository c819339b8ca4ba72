package dtw

import (
	"fmt"
	"math"
	"time"

	"github.com/askiada/go-dtw/internal/store"
	"github.com/askiada/go-dtw/pkg/dtw/model"
)

// Number covers the element types a series can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Compute aligns x and y with the exact dynamic time warping algorithm,
// visiting the full cost matrix. It returns the distance between the two
// series and the warp path.
func Compute[T Number](x, y []T, opts ...Option) (*model.Result, error) {
	cfg := newConfig(opts...)

	return computeWindow(toFloat64(x), toFloat64(y), NewFullWindow(len(y), len(x)), cfg)
}

// ComputeWindow aligns x and y visiting only the cells yielded by the
// window. Cells outside the window keep an infinite cost, so the warp path
// never crosses them.
func ComputeWindow[T Number](x, y []T, window Window, opts ...Option) (*model.Result, error) {
	if window == nil {
		return nil, ErrWindowMustBeSet
	}
	cfg := newConfig(opts...)

	return computeWindow(toFloat64(x), toFloat64(y), window, cfg)
}

// minimum picks the cheapest of the three adjacent cells.
//
// i is the cell above (insertion), d the cell to the left (deletion) and m
// the diagonal cell (match). Ties resolve to the match so equal cost
// alternatives produce a stable warp path.
func minimum(i, d, m float64) (float64, store.Action) {
	if i < d {
		if i < m {
			return i, store.ActionInserted
		}
	} else if d < m {
		return d, store.ActionDeleted
	}

	return m, store.ActionMatched
}

func computeWindow(x, y []float64, window Window, cfg *config) (*model.Result, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrEmptySeries
	}

	start := time.Now()
	costs := store.New(len(y), len(x), cfg.maxMatrixBytes)

	var cells int64
	for cell, ok := window.Next(); ok; cell, ok = window.Next() {
		row, column := cell.Row, cell.Column

		var cost float64
		switch cfg.metric {
		case model.Manhattan:
			cost = math.Abs(x[column-1] - y[row-1])
		default:
			difference := x[column-1] - y[row-1]
			cost = difference * difference
		}

		value, action := minimum(
			costs.Cost(row-1, column),   // insertion, the cell above
			costs.Cost(row, column-1),   // deletion, the cell to the left
			costs.Cost(row-1, column-1), // match, the diagonal cell
		)

		costs.SetCost(row, column, cost+value)
		costs.SetAction(row, column, action)
		cells++
	}

	distance := costs.Cost(len(y), len(x))
	if cfg.metric != model.Manhattan {
		distance = math.Sqrt(distance)
	}

	path, err := backtrack(costs, len(y), len(x))
	if err != nil {
		return nil, err
	}

	if cfg.measure != nil {
		metric := cfg.measure.AddMetric(fmt.Sprintf("level %d", cfg.level), len(y), len(x))
		metric.AddCells(cells)
		metric.SetTotalDuration(time.Since(start))
	}

	return &model.Result{Distance: distance, Path: path}, nil
}

// backtrack rebuilds the warp path from the recorded actions, walking from
// the last cell back to the virtual border. The cost storage uses 1 based
// cells, so the emitted path points are shifted back to 0 based indices.
func backtrack(costs store.Store, rows, columns int) ([]model.PathPoint, error) {
	path := make([]model.PathPoint, 0, rows+columns)
	row, column := rows, columns
	for row != 0 && column != 0 {
		path = append(path, model.PathPoint{Row: row - 1, Column: column - 1})
		switch costs.Action(row, column) {
		case store.ActionInserted:
			row--
		case store.ActionDeleted:
			column--
		case store.ActionMatched:
			row--
			column--
		default:
			return nil, ErrCorruptCostMatrix
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

func toFloat64[T Number](series []T) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = float64(v)
	}

	return out
}
