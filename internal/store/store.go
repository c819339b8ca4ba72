package store

// Action records how a cell of the cost matrix was reached, so the warp
// path can be rebuilt without comparing costs again.
type Action uint8

const (
	// ActionUnknown marks a cell that was never written.
	ActionUnknown Action = iota
	// ActionInserted means the cell above was the cheapest predecessor.
	ActionInserted
	// ActionDeleted means the cell to the left was the cheapest predecessor.
	ActionDeleted
	// ActionMatched means the diagonal cell was the cheapest predecessor.
	ActionMatched
)

// DefaultMaxMatrixBytes is the dense storage budget used when the caller
// does not provide one.
const DefaultMaxMatrixBytes uint64 = 32 << 30

// Store holds the accumulated costs and backtrack actions of the matrix
// calculation. Rows and columns are 1 based; row 0 and column 0 form a
// virtual border that is never written: cost(0,0) is 0 and every other
// border cell reads +Inf.
type Store interface {
	Cost(row, column int) float64
	SetCost(row, column int, cost float64)
	Action(row, column int) Action
	SetAction(row, column int, action Action)
}

const costSize = 8

// New picks a dense matrix when it fits in maxBytes and falls back to the
// sparse per-row cache otherwise. A maxBytes of 0 means the default budget.
func New(rows, columns int, maxBytes uint64) Store {
	if maxBytes == 0 {
		maxBytes = DefaultMaxMatrixBytes
	}
	if uint64(rows)*uint64(columns)*costSize < maxBytes {
		return NewMatrixStore(rows, columns)
	}

	return NewCacheStore(rows)
}
