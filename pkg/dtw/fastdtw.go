package dtw

import "github.com/askiada/go-dtw/pkg/dtw/model"

// ComputeFast aligns x and y with the FastDTW approximation: the series
// are coarsened recursively, the coarse warp path is projected back onto
// the finer resolution, and the exact algorithm runs only inside a window
// around that projection. Defaults are a resolution factor of 2 and a
// search radius of 1; a larger radius trades speed for accuracy.
func ComputeFast[T Number](x, y []T, opts ...Option) (*model.Result, error) {
	cfg := newConfig(opts...)
	if cfg.resolutionFactor < 1 {
		return nil, ErrResolutionFactor
	}
	if cfg.searchRadius < 0 {
		return nil, ErrSearchRadius
	}
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrEmptySeries
	}

	return computeFast(toFloat64(x), toFloat64(y), cfg)
}

func computeFast(x, y []float64, cfg *config) (*model.Result, error) {
	minSize := cfg.searchRadius + 2
	if len(x) <= minSize || len(y) <= minSize {
		// base case: a series this small is cheaper to align exactly
		return computeWindow(x, y, NewFullWindow(len(y), len(x)), cfg)
	}

	/* recursive case:
	 * project the warp path from a coarser resolution onto the current resolution
	 * run dtw only along the projected path (and also searchRadius cells from the projected path)
	 */
	coarser := *cfg
	coarser.level = cfg.level + 1
	lowRes, err := computeFast(coarsen(x, cfg.resolutionFactor), coarsen(y, cfg.resolutionFactor), &coarser)
	if err != nil {
		return nil, err
	}

	window := NewConstrainedWindow(lowRes.Path, cfg.resolutionFactor, cfg.searchRadius, len(y), len(x))

	return computeWindow(x, y, window, cfg)
}

// coarsen halves (for a factor of 2) the resolution of a series by
// averaging factor samples into one. The last bucket averages only the
// samples that exist.
func coarsen(series []float64, factor int) []float64 {
	size := (len(series) + factor - 1) / factor
	out := make([]float64, size)
	for pos := 0; pos < size*factor; pos += factor {
		end := min(pos+factor, len(series))
		var sum float64
		for i := pos; i < end; i++ {
			sum += series[i]
		}
		out[pos/factor] = sum / float64(end-pos)
	}

	return out
}
