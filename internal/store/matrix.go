package store

import "math"

// MatrixStore is the dense cost storage. Costs and actions live in two
// rows*columns slabs indexed row major.
type MatrixStore struct {
	costs   []float64
	actions []Action
	columns int
}

func NewMatrixStore(rows, columns int) *MatrixStore {
	costs := make([]float64, rows*columns)
	for i := range costs {
		costs[i] = math.Inf(1)
	}

	return &MatrixStore{
		costs:   costs,
		actions: make([]Action, rows*columns),
		columns: columns,
	}
}

func (s *MatrixStore) Cost(row, column int) float64 {
	if row == 0 && column == 0 {
		return 0
	}
	if row == 0 || column == 0 {
		return math.Inf(1)
	}

	return s.costs[(row-1)*s.columns+column-1]
}

func (s *MatrixStore) SetCost(row, column int, cost float64) {
	s.costs[(row-1)*s.columns+column-1] = cost
}

func (s *MatrixStore) Action(row, column int) Action {
	return s.actions[(row-1)*s.columns+column-1]
}

func (s *MatrixStore) SetAction(row, column int, action Action) {
	s.actions[(row-1)*s.columns+column-1] = action
}

var _ Store = (*MatrixStore)(nil)
