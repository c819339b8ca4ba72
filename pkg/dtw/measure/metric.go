package measure

import (
	"sync"
	"time"
)

type DefaultMetric struct {
	mu          *sync.Mutex
	rows        int
	columns     int
	cells       int64
	EndDuration time.Duration
}

func (mt *DefaultMetric) AddCells(visited int64) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.cells += visited
}

func (mt *DefaultMetric) Cells() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.cells
}

func (mt *DefaultMetric) Span() (int, int) {
	return mt.rows, mt.columns
}

func (mt *DefaultMetric) SetTotalDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.EndDuration = elapsed
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.EndDuration
}

func (mt *DefaultMetric) AVGCellDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.cells == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.EndDuration) / float64(mt.cells)))
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

var _ Metric = (*DefaultMetric)(nil)
