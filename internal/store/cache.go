package store

import "math"

// CacheStore is the sparse cost storage used when the dense matrix would
// not fit in memory. Each row keeps only the columns that were visited,
// which is what a constrained window produces.
type CacheStore struct {
	costs   []map[int]float64
	actions []map[int]Action
}

func NewCacheStore(rows int) *CacheStore {
	return &CacheStore{
		costs:   make([]map[int]float64, rows),
		actions: make([]map[int]Action, rows),
	}
}

func (s *CacheStore) Cost(row, column int) float64 {
	if row == 0 && column == 0 {
		return 0
	}
	if row == 0 || column == 0 {
		return math.Inf(1)
	}
	cost, ok := s.costs[row-1][column-1]
	if !ok {
		return math.Inf(1)
	}

	return cost
}

func (s *CacheStore) SetCost(row, column int, cost float64) {
	if s.costs[row-1] == nil {
		s.costs[row-1] = make(map[int]float64)
	}
	s.costs[row-1][column-1] = cost
}

func (s *CacheStore) Action(row, column int) Action {
	return s.actions[row-1][column-1]
}

func (s *CacheStore) SetAction(row, column int, action Action) {
	if s.actions[row-1] == nil {
		s.actions[row-1] = make(map[int]Action)
	}
	s.actions[row-1][column-1] = action
}

var _ Store = (*CacheStore)(nil)
