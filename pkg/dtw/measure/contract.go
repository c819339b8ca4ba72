package measure

import "time"

// Measure collects one metric per resolution level of a computation.
// Level 0 is the requested resolution; higher levels are the coarsened
// recursions of ComputeFast.
type Measure interface {
	AddMetric(name string, rows, columns int) Metric
	AllMetrics() map[string]Metric
}

// Metric records what one cost matrix calculation did.
type Metric interface {
	AddCells(visited int64)
	Cells() int64
	Span() (rows, columns int)
	SetTotalDuration(elapsed time.Duration)
	GetTotalDuration() time.Duration
	AVGCellDuration() time.Duration
}
