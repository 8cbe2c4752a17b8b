// Package config holds the run configuration of the airpaths command.
//
// Values come from Default, optionally overlaid by a YAML file (Load) and
// then by command-line flags. Validate must pass before a run starts.
//
// Example file:
//
//	routes_file: data/routes.csv
//	start_airport: BBA
//	min_weight: 300
//	max_weight: 1000
//	seed: 42
//	strict: false
//	log_level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/airpaths/weight"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultRoutesFile   = "routes.csv"
	DefaultStartAirport = "BBA"
	DefaultLogLevel     = "info"
)

// Sentinel errors for configuration problems.
var (
	ErrEmptyRoutesFile = errors.New("config: routes_file is empty")
	ErrEmptyStart      = errors.New("config: start_airport is empty")
	ErrBadWeightRange  = errors.New("config: require 0 ≤ min_weight ≤ max_weight with a span below MaxInt64")
	ErrBadLogLevel     = errors.New("config: unknown log_level")
	ErrParse           = errors.New("config: cannot parse file")
)

// Config describes one shortest-path run.
type Config struct {
	// RoutesFile is the path of the delimited route file.
	RoutesFile string `yaml:"routes_file"`
	// StartAirport is the origin of every reported distance.
	StartAirport string `yaml:"start_airport"`
	// MinWeight and MaxWeight bound the random per-route distance.
	MinWeight int64 `yaml:"min_weight"`
	MaxWeight int64 `yaml:"max_weight"`
	// Seed fixes the weight generator; 0 means seed from the clock.
	Seed int64 `yaml:"seed"`
	// Strict turns a route-file read failure into a fatal error instead of
	// running on the partially loaded graph.
	Strict bool `yaml:"strict"`
	// LogLevel is any logrus level name.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RoutesFile:   DefaultRoutesFile,
		StartAirport: DefaultStartAirport,
		MinWeight:    weight.MinRouteDistance,
		MaxWeight:    weight.MaxRouteDistance,
		LogLevel:     DefaultLogLevel,
	}
}

// Load reads a YAML file and overlays it on Default. Unknown keys are rejected.
// The result is validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data over Default and validates the result.
// Empty input yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that cfg can drive a run.
func (c Config) Validate() error {
	if c.RoutesFile == "" {
		return ErrEmptyRoutesFile
	}
	if c.StartAirport == "" {
		return ErrEmptyStart
	}
	if c.MinWeight < 0 || c.MaxWeight < c.MinWeight || c.MaxWeight-c.MinWeight == math.MaxInt64 {
		return fmt.Errorf("%w: got %d..%d", ErrBadWeightRange, c.MinWeight, c.MaxWeight)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}

	return nil
}

// WeightFn returns the generator matching the configured range.
// Call Validate first; an invalid range panics.
func (c Config) WeightFn() weight.WeightFn {
	return weight.UniformWeightFn(c.MinWeight, c.MaxWeight)
}

// Level returns the parsed log level, falling back to Info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}
