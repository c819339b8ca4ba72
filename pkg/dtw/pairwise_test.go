package dtw_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dtw/pkg/dtw"
	"github.com/askiada/go-dtw/pkg/dtw/model"
)

func TestPairwise(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		workers   int
		algorithm model.Algorithm
	}{
		"sequential exact": {workers: 1, algorithm: model.Exact},
		"concurrent exact": {workers: 4, algorithm: model.Exact},
		"concurrent fast":  {workers: 4, algorithm: model.Fast},
		"default workers":  {workers: 0, algorithm: model.Exact},
	}

	series := [][]float64{
		{1, 2, 3},
		{1, 2, 3},
		{2, 2, 2},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			matrix, err := dtw.Pairwise(context.Background(), series,
				dtw.WithMetric(model.Manhattan),
				dtw.WithAlgorithm(tc.algorithm),
				dtw.WithWorkers(tc.workers),
				dtw.WithSearchRadius(10),
			)
			require.NoError(t, err)

			assert.Equal(t, [][]float64{
				{0, 0, 2},
				{0, 0, 2},
				{2, 2, 0},
			}, matrix)
		})
	}
}

func TestPairwiseBadArguments(t *testing.T) {
	t.Parallel()

	series := [][]float64{{1, 2, 3, 4}, {4, 3, 2, 1}}

	_, err := dtw.Pairwise(context.Background(), series,
		dtw.WithAlgorithm(model.Fast), dtw.WithResolutionFactor(0))
	require.ErrorIs(t, err, dtw.ErrResolutionFactor)

	_, err = dtw.Pairwise(context.Background(), series,
		dtw.WithAlgorithm(model.Fast), dtw.WithSearchRadius(-1))
	require.ErrorIs(t, err, dtw.ErrSearchRadius)
}

func TestPairwiseEmptySeries(t *testing.T) {
	t.Parallel()

	_, err := dtw.Pairwise(context.Background(), [][]float64{{1, 2}, {}})
	require.ErrorIs(t, err, dtw.ErrEmptySeries)
}

func TestPairwiseCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dtw.Pairwise(ctx, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Error(t, err)
}

func TestPairwiseNoSeries(t *testing.T) {
	t.Parallel()

	matrix, err := dtw.Pairwise(context.Background(), [][]float64{})
	require.NoError(t, err)
	assert.Empty(t, matrix)
}
