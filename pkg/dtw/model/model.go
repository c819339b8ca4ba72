package model

import "github.com/pkg/errors"

var (
	ErrUnknownMetric    = errors.New("unknown metric")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Metric selects the point distance used when filling the cost matrix.
type Metric string

const (
	// Euclidean accumulates squared differences and takes the square root of the total.
	Euclidean Metric = "euclidean"
	// Manhattan accumulates absolute differences.
	Manhattan Metric = "manhattan"
)

// ParseMetric converts a metric name to a Metric.
func ParseMetric(name string) (Metric, error) {
	switch Metric(name) {
	case Euclidean:
		return Euclidean, nil
	case Manhattan:
		return Manhattan, nil
	}

	return "", errors.Wrap(ErrUnknownMetric, name)
}

// Algorithm selects between the exact and the approximate alignment.
type Algorithm string

const (
	Exact Algorithm = "exact"
	Fast  Algorithm = "fast"
)

// ParseAlgorithm converts an algorithm name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case Exact:
		return Exact, nil
	case Fast:
		return Fast, nil
	}

	return "", errors.Wrap(ErrUnknownAlgorithm, name)
}

// PathPoint is one cell of the warp path. Row indexes the y series and
// Column indexes the x series, both 0 based.
type PathPoint struct {
	Row    int
	Column int
}

// Result holds the outcome of an alignment.
type Result struct {
	Distance float64
	Path     []PathPoint
}
