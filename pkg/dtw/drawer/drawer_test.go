package drawer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dtw/pkg/dtw"
	"github.com/askiada/go-dtw/pkg/dtw/drawer"
	"github.com/askiada/go-dtw/pkg/dtw/model"
)

func TestRender(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3, 4}
	y := []float64{1, 3, 4}

	res, err := dtw.Compute(x, y, dtw.WithMetric(model.Euclidean))
	require.NoError(t, err)

	fileName := filepath.Join(t.TempDir(), "path.gv")
	err = drawer.Render(drawer.NewDOTDrawer(fileName), res, x, y, model.Euclidean)
	require.NoError(t, err)

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "strict digraph")
	assert.Contains(t, string(content), `"0,0"`)
	assert.Contains(t, string(content), `"2,3"`)
	assert.Contains(t, string(content), "color=")
}

func TestRenderSinglePoint(t *testing.T) {
	t.Parallel()

	res := &model.Result{Path: []model.PathPoint{{Row: 0, Column: 0}}}

	fileName := filepath.Join(t.TempDir(), "single.gv")
	err := drawer.Render(drawer.NewDOTDrawer(fileName), res, []float64{1}, []float64{1}, model.Manhattan)
	require.NoError(t, err)

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"0,0"`)
}

func TestRenderPathOutOfRange(t *testing.T) {
	t.Parallel()

	res := &model.Result{Path: []model.PathPoint{{Row: 5, Column: 0}}}

	fileName := filepath.Join(t.TempDir(), "bad.gv")
	err := drawer.Render(drawer.NewDOTDrawer(fileName), res, []float64{1}, []float64{1}, model.Euclidean)
	require.ErrorIs(t, err, drawer.ErrPathOutOfRange)
}
