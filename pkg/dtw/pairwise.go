package dtw

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-dtw/pkg/dtw/model"
)

// Pairwise computes the symmetric matrix of distances between every pair
// of series. Each pair is computed once on its own goroutine, bounded by
// WithWorkers. WithAlgorithm selects exact or fast alignment for every
// pair.
func Pairwise[T Number](ctx context.Context, series [][]T, opts ...Option) ([][]float64, error) {
	cfg := newConfig(opts...)
	if cfg.resolutionFactor < 1 {
		return nil, ErrResolutionFactor
	}
	if cfg.searchRadius < 0 {
		return nil, ErrSearchRadius
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	converted := make([][]float64, len(series))
	for i := range series {
		converted[i] = toFloat64(series[i])
	}

	out := make([][]float64, len(series))
	for i := range out {
		out[i] = make([]float64, len(series))
	}

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(cfg.workers)
	for i := 0; i < len(series); i++ {
		for j := i + 1; j < len(series); j++ {
			localI, localJ := i, j
			errGrp.Go(func() error {
				select {
				case <-dCtx.Done():
					return errors.Wrapf(dCtx.Err(), "pair (%d, %d):", localI, localJ)
				default:
				}

				res, err := pairDistance(converted[localI], converted[localJ], cfg)
				if err != nil {
					return errors.Wrapf(err, "pair (%d, %d):", localI, localJ)
				}
				out[localI][localJ] = res.Distance
				out[localJ][localI] = res.Distance

				return nil
			})
		}
	}
	if err := errGrp.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func pairDistance(x, y []float64, cfg *config) (*model.Result, error) {
	if cfg.algorithm == model.Fast {
		return computeFast(x, y, cfg)
	}

	return computeWindow(x, y, NewFullWindow(len(y), len(x)), cfg)
}
