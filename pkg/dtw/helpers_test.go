package dtw_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-dtw/pkg/dtw/model"
)

type dtwTestCase struct {
	Name     string    `yaml:"name"`
	A        []float64 `yaml:"a"`
	B        []float64 `yaml:"b"`
	Metric   string    `yaml:"metric"`
	Distance float64   `yaml:"distance"`
	Path     [][2]int  `yaml:"path"`
}

type projectionTestCase struct {
	Name             string   `yaml:"name"`
	LowResPath       [][2]int `yaml:"low_res_path"`
	ResolutionFactor int      `yaml:"resolution_factor"`
	SearchRadius     int      `yaml:"search_radius"`
	Rows             int      `yaml:"rows"`
	Columns          int      `yaml:"columns"`
	Cells            [][2]int `yaml:"cells"`
}

func loadFixture[T any](t *testing.T, name string) []T {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	var out []T
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.NotEmpty(t, out)

	return out
}

func toPath(pairs [][2]int) []model.PathPoint {
	path := make([]model.PathPoint, len(pairs))
	for i, pair := range pairs {
		path[i] = model.PathPoint{Row: pair[0], Column: pair[1]}
	}

	return path
}
