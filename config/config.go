// SPDX-License-Identifier: MIT

// Package config holds the run configuration of ljbind: the Lennard-Jones
// parameters, the self-check reference point and the default input path.
//
// Values start from Default() and an optional YAML file overlays them:
//
//	potential:
//	  sigma: 3.41e-10
//	  epsilon: 1.65e-21
//	selfcheck:
//	  distance: 6.82e-10
//	  expected: -1.0e-22
//	  tolerance: 1.0e-23
//	input: distances.txt
//
// Keys that are absent keep their defaults. Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ljbind/potential"
	"github.com/katalvlaran/ljbind/selfcheck"
)

// DefaultInput is the distance file read when no path is given.
const DefaultInput = "distances.txt"

// ErrInvalidConfig marks a configuration that parsed but holds unusable values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SelfCheck is the regression reference point.
type SelfCheck struct {
	Distance  float64 `yaml:"distance"`
	Expected  float64 `yaml:"expected"`
	Tolerance float64 `yaml:"tolerance"`
}

// Config is the full run configuration.
type Config struct {
	Potential potential.Params `yaml:"potential"`
	SelfCheck SelfCheck        `yaml:"selfcheck"`
	Input     string           `yaml:"input"`
}

// Default returns the built-in argon configuration.
func Default() Config {
	return Config{
		Potential: potential.DefaultParams(),
		SelfCheck: SelfCheck{
			Distance:  selfcheck.DefaultDistance,
			Expected:  selfcheck.DefaultExpected,
			Tolerance: selfcheck.DefaultTolerance,
		},
		Input: DefaultInput,
	}
}

// Load reads path and overlays it on Default. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the potential parameters and the self-check reference.
func (c Config) Validate() error {
	if err := c.Potential.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	sc := c.SelfCheck
	if !(sc.Distance > 0) || math.IsInf(sc.Distance, 0) {
		return fmt.Errorf("%w: selfcheck.distance=%g must be finite and > 0", ErrInvalidConfig, sc.Distance)
	}
	if math.IsNaN(sc.Expected) || math.IsInf(sc.Expected, 0) {
		return fmt.Errorf("%w: selfcheck.expected=%g must be finite", ErrInvalidConfig, sc.Expected)
	}
	if !(sc.Tolerance > 0) || math.IsInf(sc.Tolerance, 0) {
		return fmt.Errorf("%w: selfcheck.tolerance=%g must be finite and > 0", ErrInvalidConfig, sc.Tolerance)
	}
	if c.Input == "" {
		return fmt.Errorf("%w: input must not be empty", ErrInvalidConfig)
	}

	return nil
}

// Params returns the potential parameters to inject into computations.
func (c Config) Params() potential.Params {
	return c.Potential
}

// SelfCheckOptions converts the reference point into selfcheck options.
// Call only on a validated Config; the option constructors panic otherwise.
func (c Config) SelfCheckOptions() []selfcheck.Option {
	return []selfcheck.Option{
		selfcheck.WithReference(c.SelfCheck.Distance, c.SelfCheck.Expected),
		selfcheck.WithTolerance(c.SelfCheck.Tolerance),
	}
}
