package dtw

import (
	"math"

	"github.com/askiada/go-dtw/pkg/dtw/model"
)

// Cell addresses one cell of the cost matrix. Rows and columns are 1
// based; row 0 and column 0 belong to the virtual border of the cost
// storage.
type Cell struct {
	Row    int
	Column int
}

// Window yields the cost matrix cells to visit, in the order the matrix
// calculation requires: row by row, left to right.
type Window interface {
	Next() (Cell, bool)
}

// FullWindow visits every cell of the cost matrix. It carries no
// constraint and turns ComputeWindow into the classical algorithm.
//
// The layout follows the usual depiction of dynamic time warping: the x
// series runs horizontally and the y series vertically, so len(y) is the
// number of rows and len(x) the number of columns.
type FullWindow struct {
	row       int
	column    int
	endRow    int
	endColumn int
}

func NewFullWindow(rows, columns int) *FullWindow {
	return &FullWindow{
		row:       1,
		column:    1,
		endRow:    rows + 1,
		endColumn: columns + 1,
	}
}

func (w *FullWindow) Next() (Cell, bool) {
	if w.column < w.endColumn {
		cell := Cell{Row: w.row, Column: w.column}
		w.column++

		return cell, true
	}
	if w.row < w.endRow-1 {
		w.row++
		w.column = 1
		cell := Cell{Row: w.row, Column: w.column}
		w.column++

		return cell, true
	}

	return Cell{}, false
}

type rowBounds struct {
	min int
	max int
}

// ConstrainedWindow visits only the cells around a warp path projected
// from a lower resolution. For each row it keeps the minimum and maximum
// column to scan; the number of bounds entries is the number of rows plus
// the virtual border row.
type ConstrainedWindow struct {
	bounds []rowBounds
	row    int
	column int
}

// NewConstrainedWindow projects a low resolution warp path onto a
// rows x columns matrix and expands it by searchRadius cells.
func NewConstrainedWindow(lowResPath []model.PathPoint, resolutionFactor, searchRadius, rows, columns int) *ConstrainedWindow {
	w := &ConstrainedWindow{
		bounds: make([]rowBounds, rows+1),
		row:    1,
		column: 1,
	}
	for i := range w.bounds {
		w.bounds[i] = rowBounds{min: math.MaxInt, max: 0}
	}

	prevRow := math.MaxInt
	prevColumn := math.MaxInt
	for _, point := range lowResPath {
		// convert the 0 based path indices to 1 based matrix cells
		lowResRow := point.Row + 1
		lowResColumn := point.Column + 1
		/* project the low resolution coordinates to the higher resolution
		 * one cell in the lower resolution matrix is mapped to (at most)
		 * resolutionFactor cells in the higher resolution matrix
		 */
		for row := 0; row < resolutionFactor; row++ {
			highResRow := (lowResRow-1)*resolutionFactor + 1 + row
			for column := 0; column < resolutionFactor; column++ {
				highResColumn := (lowResColumn-1)*resolutionFactor + 1 + column
				if highResRow < rows+1 && highResColumn < columns+1 {
					w.visit(highResRow, highResColumn)
				}
			}
		}
		/* if a diagonal move was performed, add two cells to the edges of the two blocks
		 * in the projected path to create a continuous path with even width
		 * avoid a path of boxes connected only at their corners
		 * example when the resolutionFactor is 2
		 *
		 *                        |_|_|x|x|     then mark      |_|_|x|x|
		 *        projected path: |_|_|x|x|  --2 more cells->  |_|X|x|x|
		 *                        |x|x|_|_|        (X's)       |x|x|X|_|
		 *                        |x|x|_|_|                    |x|x|_|_|
		 *
		 * to generalize, the idea is to add two blocks of width = resolutionFactor / 2
		 * on either side of the connected corners
		 */
		if prevRow < lowResRow && prevColumn < lowResColumn {
			cornerBottomLeftRow := (prevRow-1)*resolutionFactor + resolutionFactor
			cornerBottomLeftColumn := (prevColumn-1)*resolutionFactor + resolutionFactor

			cornerTopRightRow := cornerBottomLeftRow + 1
			cornerTopRightColumn := cornerBottomLeftColumn + 1

			halfResolutionFactor := (resolutionFactor + 1) / 2

			for row := 0; row < halfResolutionFactor; row++ {
				for column := 0; column < halfResolutionFactor; column++ {
					// first small block to the right of the bottom left block
					if cornerTopRightColumn+column < columns+1 {
						w.visit(cornerBottomLeftRow-row, cornerTopRightColumn+column)
					}
					// second small block to the left of the top right block
					if cornerTopRightRow+row < rows+1 {
						w.visit(cornerTopRightRow+row, cornerBottomLeftColumn-column)
					}
				}
			}
		}
		prevRow = lowResRow
		prevColumn = lowResColumn
	}
	/* the last step is to expand the high resolution warp path with the search radius
	 * for each minimum value we expand in the left, top and top left directions
	 * for each maximum value, we expand in the right, bottom and bottom right directions
	 *
	 * this is done in two steps:
	 * 1. first iterate each row and expand on right, bottom and bottom right directions
	 * 2. then iterate in reverse order and expand to the left, top and top left directions
	 */
	for row := 1; row < len(w.bounds); row++ {
		rowMax := w.bounds[row].max
		for i := 0; i <= searchRadius; i++ {
			expandedRowMax := min(rowMax+searchRadius, columns)
			if row > i && row-i >= 1 {
				w.visit(row-i, expandedRowMax)
			}
		}
	}
	for row := len(w.bounds) - 1; row >= 1; row-- {
		rowMin := w.bounds[row].min
		for i := 0; i <= searchRadius; i++ {
			expandedRowMin := 1
			if rowMin > searchRadius {
				expandedRowMin = rowMin - searchRadius
			}
			if row+i <= rows {
				w.visit(row+i, expandedRowMin)
			}
		}
	}

	return w
}

func (w *ConstrainedWindow) visit(row, column int) {
	if w.bounds[row].min > column {
		w.bounds[row].min = column
	}
	if w.bounds[row].max < column {
		w.bounds[row].max = column
	}
}

func (w *ConstrainedWindow) Next() (Cell, bool) {
	if w.column <= w.bounds[w.row].max {
		cell := Cell{Row: w.row, Column: w.column}
		w.column++

		return cell, true
	}
	if w.row < len(w.bounds)-1 {
		w.row++
		w.column = w.bounds[w.row].min
		cell := Cell{Row: w.row, Column: w.column}
		w.column++

		return cell, true
	}

	return Cell{}, false
}
