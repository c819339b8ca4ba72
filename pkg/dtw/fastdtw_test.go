package dtw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dtw/pkg/dtw"
	"github.com/askiada/go-dtw/pkg/dtw/measure"
	"github.com/askiada/go-dtw/pkg/dtw/model"
)

func TestComputeFastFixtures(t *testing.T) {
	t.Parallel()

	for _, tc := range loadFixture[dtwTestCase](t, "dtw.yaml") {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			metric, err := model.ParseMetric(tc.Metric)
			require.NoError(t, err)

			// a radius this large keeps the approximation exact on short series
			res, err := dtw.ComputeFast(tc.A, tc.B, dtw.WithMetric(metric), dtw.WithSearchRadius(10))
			require.NoError(t, err)
			assert.Equal(t, tc.Distance, res.Distance)
			assert.Equal(t, toPath(tc.Path), res.Path)
		})
	}
}

func TestComputeFastIdenticalLongSeries(t *testing.T) {
	t.Parallel()

	series := make([]float64, 64)
	for i := range series {
		series[i] = float64(i % 7)
	}

	res, err := dtw.ComputeFast(series, series)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Distance)

	require.Len(t, res.Path, len(series))
	for i, point := range res.Path {
		assert.Equal(t, model.PathPoint{Row: i, Column: i}, point)
	}
}

func TestComputeFastBadArguments(t *testing.T) {
	t.Parallel()

	_, err := dtw.ComputeFast([]float64{1, 2}, []float64{1, 2}, dtw.WithResolutionFactor(0))
	require.ErrorIs(t, err, dtw.ErrResolutionFactor)

	_, err = dtw.ComputeFast([]float64{1, 2}, []float64{1, 2}, dtw.WithSearchRadius(-1))
	require.ErrorIs(t, err, dtw.ErrSearchRadius)

	_, err = dtw.ComputeFast([]float64{}, []float64{1, 2})
	require.ErrorIs(t, err, dtw.ErrEmptySeries)
}

func TestComputeFastMeasure(t *testing.T) {
	t.Parallel()

	x := make([]float64, 20)
	y := make([]float64, 20)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(i)
	}

	m := measure.NewDefaultMeasure()
	_, err := dtw.ComputeFast(x, y, dtw.WithMeasure(m))
	require.NoError(t, err)

	// 20 -> 10 -> 5 -> 3 samples, one metric per resolution level
	metrics := m.AllMetrics()
	require.Len(t, metrics, 4)
	for _, name := range []string{"level 0", "level 1", "level 2", "level 3"} {
		mt, ok := metrics[name]
		require.True(t, ok, name)
		assert.Positive(t, mt.Cells())
	}

	rows, columns := metrics["level 0"].Span()
	assert.Equal(t, 20, rows)
	assert.Equal(t, 20, columns)
}

func TestComputeFastVisitsFewerCells(t *testing.T) {
	t.Parallel()

	x := make([]float64, 128)
	y := make([]float64, 128)
	for i := range x {
		x[i] = float64(i % 11)
		y[i] = float64((i + 3) % 11)
	}

	fast := measure.NewDefaultMeasure()
	_, err := dtw.ComputeFast(x, y, dtw.WithMeasure(fast))
	require.NoError(t, err)

	exact := measure.NewDefaultMeasure()
	_, err = dtw.Compute(x, y, dtw.WithMeasure(exact))
	require.NoError(t, err)

	assert.Less(t, fast.GetMetric("level 0").Cells(), exact.GetMetric("level 0").Cells())
}
