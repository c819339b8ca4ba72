package dtw

import (
	"github.com/askiada/go-dtw/internal/store"
	"github.com/askiada/go-dtw/pkg/dtw/measure"
	"github.com/askiada/go-dtw/pkg/dtw/model"
)

type config struct {
	metric           model.Metric
	algorithm        model.Algorithm
	resolutionFactor int
	searchRadius     int
	maxMatrixBytes   uint64
	workers          int
	measure          measure.Measure
	level            int
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		metric:           model.Euclidean,
		algorithm:        model.Exact,
		resolutionFactor: 2,
		searchRadius:     1,
		maxMatrixBytes:   store.DefaultMaxMatrixBytes,
		workers:          1,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

type Option func(cfg *config)

// WithMetric sets the point distance used to fill the cost matrix.
func WithMetric(metric model.Metric) Option {
	return func(cfg *config) {
		cfg.metric = metric
	}
}

// WithAlgorithm selects exact or fast alignment where both apply, such as
// the pairwise distance matrix.
func WithAlgorithm(algorithm model.Algorithm) Option {
	return func(cfg *config) {
		cfg.algorithm = algorithm
	}
}

// WithResolutionFactor sets how many samples are averaged into one when
// ComputeFast coarsens a series.
func WithResolutionFactor(factor int) Option {
	return func(cfg *config) {
		cfg.resolutionFactor = factor
	}
}

// WithSearchRadius widens the constrained window around the projected
// warp path by the given number of cells.
func WithSearchRadius(radius int) Option {
	return func(cfg *config) {
		cfg.searchRadius = radius
	}
}

// WithMaxMatrixBytes caps the dense cost matrix size. Computations that
// would exceed it switch to the sparse storage.
func WithMaxMatrixBytes(maxBytes uint64) Option {
	return func(cfg *config) {
		cfg.maxMatrixBytes = maxBytes
	}
}

// WithWorkers bounds the number of goroutines Pairwise runs concurrently.
func WithWorkers(workers int) Option {
	return func(cfg *config) {
		cfg.workers = workers
	}
}

// WithMeasure records one metric per resolution level of the computation.
func WithMeasure(msr measure.Measure) Option {
	return func(cfg *config) {
		cfg.measure = msr
	}
}
