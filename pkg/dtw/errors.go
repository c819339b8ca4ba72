package dtw

import "github.com/pkg/errors"

var (
	ErrEmptySeries       = errors.New("series must not be empty")
	ErrResolutionFactor  = errors.New("resolution factor must be greater than 0")
	ErrSearchRadius      = errors.New("search radius must not be negative")
	ErrWindowMustBeSet   = errors.New("window must be set")
	ErrCorruptCostMatrix = errors.New("backtrack reached a cell with no action")
)
