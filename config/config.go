// Package config loads solver and benchmark settings from a TOML file.
//
// Every field has a default (see Default), so a file only needs the keys it
// changes. Durations are written as strings ("300s", "1m30s"); a negative
// duration disables the corresponding time limit.
//
//	[exact]
//	time_limit = "300s"
//
//	[grasp]
//	time_limit     = "600s"
//	max_iterations = 20
//	alpha          = 0.3
//	seed           = 0
//
//	[local_search]
//	eps = 1e-9
//
//	[bench]
//	timeout       = "60s"
//	workers       = 4
//	algorithms    = ["exact", "constructive", "local_search", "grasp"]
//	max_instances = 0
//	output        = "results.csv"
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/tspsolve/tsp"
)

var (
	// ErrUnknownKey signals a key the schema does not define (usually a typo).
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid signals a value outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the decoded file.
type Config struct {
	Exact       Exact       `toml:"exact"`
	GRASP       GRASP       `toml:"grasp"`
	LocalSearch LocalSearch `toml:"local_search"`
	Bench       Bench       `toml:"bench"`
}

// Exact configures branch and bound.
type Exact struct {
	TimeLimit time.Duration `toml:"time_limit"`
}

// GRASP configures the randomized multi-start heuristic.
type GRASP struct {
	TimeLimit     time.Duration `toml:"time_limit"`
	MaxIterations int           `toml:"max_iterations"`
	Alpha         float64       `toml:"alpha"`
	Seed          int64         `toml:"seed"`
}

// LocalSearch configures 2-opt, wherever it runs.
type LocalSearch struct {
	Eps float64 `toml:"eps"`
}

// Bench configures the benchmark harness.
type Bench struct {
	Timeout      time.Duration `toml:"timeout"`
	Workers      int           `toml:"workers"`
	Algorithms   []string      `toml:"algorithms"`
	MaxInstances int           `toml:"max_instances"`
	Output       string        `toml:"output"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Exact: Exact{TimeLimit: tsp.DefaultExactTimeLimit},
		GRASP: GRASP{
			TimeLimit:     tsp.DefaultGRASPTimeLimit,
			MaxIterations: tsp.DefaultMaxIterations,
			Alpha:         tsp.DefaultAlpha,
		},
		LocalSearch: LocalSearch{Eps: tsp.DefaultEps},
		Bench: Bench{
			Timeout:    60 * time.Second,
			Workers:    1,
			Algorithms: []string{"exact", "constructive", "local_search", "grasp"},
			Output:     "results.csv",
		},
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err = checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes TOML text over the defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, err
	}
	if err = checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

// Validate checks ranges and algorithm names.
func (c Config) Validate() error {
	if math.IsNaN(c.GRASP.Alpha) || c.GRASP.Alpha < 0 || c.GRASP.Alpha > 1 {
		return fmt.Errorf("%w: grasp.alpha=%v not in [0, 1]", ErrInvalid, c.GRASP.Alpha)
	}
	if c.GRASP.MaxIterations < 0 {
		return fmt.Errorf("%w: grasp.max_iterations=%d", ErrInvalid, c.GRASP.MaxIterations)
	}
	if math.IsNaN(c.LocalSearch.Eps) || c.LocalSearch.Eps < 0 {
		return fmt.Errorf("%w: local_search.eps=%v", ErrInvalid, c.LocalSearch.Eps)
	}
	if c.Bench.Workers < 1 {
		return fmt.Errorf("%w: bench.workers=%d", ErrInvalid, c.Bench.Workers)
	}
	if c.Bench.MaxInstances < 0 {
		return fmt.Errorf("%w: bench.max_instances=%d", ErrInvalid, c.Bench.MaxInstances)
	}
	if _, err := c.BenchAlgorithms(); err != nil {
		return fmt.Errorf("%w: bench.algorithms: %w", ErrInvalid, err)
	}

	return nil
}

// BenchAlgorithms resolves Bench.Algorithms.
func (c Config) BenchAlgorithms() ([]tsp.Algorithm, error) {
	out := make([]tsp.Algorithm, 0, len(c.Bench.Algorithms))
	for _, name := range c.Bench.Algorithms {
		a, err := tsp.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

// Options returns solver options for algo. The time limit comes from the
// section of the algorithm that owns one; the other fields are shared.
func (c Config) Options(algo tsp.Algorithm) tsp.Options {
	opts := tsp.Options{
		Algo:          algo,
		TimeLimit:     tsp.NoTimeLimit,
		MaxIterations: c.GRASP.MaxIterations,
		Alpha:         c.GRASP.Alpha,
		Seed:          c.GRASP.Seed,
		Eps:           c.LocalSearch.Eps,
	}
	switch algo {
	case tsp.AlgoExact:
		opts.TimeLimit = c.Exact.TimeLimit
	case tsp.AlgoGRASP:
		opts.TimeLimit = c.GRASP.TimeLimit
	}

	return opts
}
