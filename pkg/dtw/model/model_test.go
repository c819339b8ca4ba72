package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dtw/pkg/dtw/model"
)

func TestParseMetric(t *testing.T) {
	t.Parallel()

	metric, err := model.ParseMetric("euclidean")
	require.NoError(t, err)
	assert.Equal(t, model.Euclidean, metric)

	metric, err = model.ParseMetric("manhattan")
	require.NoError(t, err)
	assert.Equal(t, model.Manhattan, metric)

	_, err = model.ParseMetric("chebyshev")
	require.ErrorIs(t, err, model.ErrUnknownMetric)
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	algorithm, err := model.ParseAlgorithm("exact")
	require.NoError(t, err)
	assert.Equal(t, model.Exact, algorithm)

	algorithm, err = model.ParseAlgorithm("fast")
	require.NoError(t, err)
	assert.Equal(t, model.Fast, algorithm)

	_, err = model.ParseAlgorithm("slow")
	require.ErrorIs(t, err, model.ErrUnknownAlgorithm)
}
