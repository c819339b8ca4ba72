package server

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the server settings.
type Config struct {
	Addr             string `yaml:"addr"`
	DefaultMetric    string `yaml:"default_metric"`
	DefaultAlgorithm string `yaml:"default_algorithm"`
	ResolutionFactor int    `yaml:"resolution_factor"`
	SearchRadius     int    `yaml:"search_radius"`
	MaxMatrixBytes   uint64 `yaml:"max_matrix_bytes"`
	PairwiseWorkers  int    `yaml:"pairwise_workers"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Addr:             ":8080",
		DefaultMetric:    "euclidean",
		DefaultAlgorithm: "exact",
		ResolutionFactor: 2,
		SearchRadius:     1,
		PairwiseWorkers:  4,
	}
}

// ParseConfig parses YAML content into a Config. Missing fields keep
// their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to parse config")
	}

	return cfg, nil
}

// LoadConfig reads a YAML config file and returns a Config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to read config file %s", path)
	}

	return ParseConfig(data)
}
