package drawer

import (
	"math"

	"github.com/pkg/errors"

	"github.com/askiada/go-dtw/pkg/dtw/model"
)

var ErrPathOutOfRange = errors.New("warp path points outside the series")

// Render draws the warp path of an alignment between x and y. Every path
// point becomes a vertex named "row,column" and consecutive points are
// linked by an edge carrying the local cost paid at the later point.
func Render(d Drawer, res *model.Result, x, y []float64, metric model.Metric) error {
	for i, point := range res.Path {
		if point.Row >= len(y) || point.Column >= len(x) {
			return errors.Wrapf(ErrPathOutOfRange, "point %d (%d,%d)", i, point.Row, point.Column)
		}

		err := d.AddPoint(pointName(point.Row, point.Column))
		if err != nil {
			return errors.Wrapf(err, "unable to add point %d", i)
		}
	}

	for i := 1; i < len(res.Path); i++ {
		parent := res.Path[i-1]
		child := res.Path[i]
		err := d.AddMove(
			pointName(parent.Row, parent.Column),
			pointName(child.Row, child.Column),
			localCost(x[child.Column], y[child.Row], metric),
		)
		if err != nil {
			return errors.Wrapf(err, "unable to add move %d", i)
		}
	}

	return d.Draw()
}

func localCost(xValue, yValue float64, metric model.Metric) float64 {
	if metric == model.Manhattan {
		return math.Abs(xValue - yValue)
	}
	difference := xValue - yValue

	return difference * difference
}
