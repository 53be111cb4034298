// Package config provides the configuration of the demonstrations: rank and
// worker counts, vector and matrix sizes, and scheduling parameters. All
// counts are explicit configuration rather than environment-derived globals.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete demonstration configuration.
type Config struct {
	Cluster  ClusterConfig  `yaml:"cluster"`
	Team     TeamConfig     `yaml:"team"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Matrix   MatrixConfig   `yaml:"matrix"`
}

// ClusterConfig configures the process-parallel demonstrations.
type ClusterConfig struct {
	// Procs is the number of ranks to launch.
	Procs int `yaml:"procs"`
	// RequiredProcs is the rank count the fixed-size hello demonstration
	// insists on.
	RequiredProcs int `yaml:"required_procs"`
}

// TeamConfig configures the thread-team hello demonstrations.
type TeamConfig struct {
	// Threads is the number of workers in the team.
	Threads int `yaml:"threads"`
}

// ScheduleConfig configures the scheduling-policy demonstrations.
type ScheduleConfig struct {
	Threads      int `yaml:"threads"`
	Size         int `yaml:"size"`
	Value1       int `yaml:"value1"`
	Value2       int `yaml:"value2"`
	StaticChunk  int `yaml:"static_chunk"`
	DynamicChunk int `yaml:"dynamic_chunk"`

	// The performance sweep runs vector sizes StartSize, StartSize*SizeFactor,
	// … up to MaxSize, timing Runs repetitions of each.
	StartSize  int `yaml:"start_size"`
	MaxSize    int `yaml:"max_size"`
	SizeFactor int `yaml:"size_factor"`
	Runs       int `yaml:"runs"`
}

// MatrixConfig configures the matrix-multiplication demonstration.
type MatrixConfig struct {
	Sizes    []int `yaml:"sizes"`
	Teams    []int `yaml:"teams"`
	Runs     int   `yaml:"runs"`
	Seed     int64 `yaml:"seed"`
	MinValue int   `yaml:"min_value"`
	MaxValue int   `yaml:"max_value"`
}

// Default returns the configuration with the lesson defaults.
func Default() Config {
	return Config{
		Cluster: ClusterConfig{
			Procs:         4,
			RequiredProcs: 4,
		},
		Team: TeamConfig{
			Threads: 10,
		},
		Schedule: ScheduleConfig{
			Threads:      4,
			Size:         12,
			Value1:       10,
			Value2:       20,
			StaticChunk:  2,
			DynamicChunk: 2,
			StartSize:    10,
			MaxSize:      1000000,
			SizeFactor:   10,
			Runs:         100,
		},
		Matrix: MatrixConfig{
			Sizes:    []int{50, 500},
			Teams:    []int{1, 4, 8, 16},
			Runs:     10,
			Seed:     42,
			MinValue: 1,
			MaxValue: 100,
		},
	}
}

// Load returns the default configuration overlaid with the yaml file at
// path. An empty path returns the defaults unchanged. The result is
// validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid configuration value.
func (c Config) Validate() error {
	if err := c.Cluster.Validate(); err != nil {
		return err
	}
	if err := c.Team.Validate(); err != nil {
		return err
	}
	if err := c.Schedule.Validate(); err != nil {
		return err
	}
	return c.Matrix.Validate()
}

// Validate reports the first invalid cluster value.
func (c ClusterConfig) Validate() error {
	switch {
	case c.Procs < 1:
		return fmt.Errorf("cluster.procs must be positive, got %d", c.Procs)
	case c.RequiredProcs < 1:
		return fmt.Errorf("cluster.required_procs must be positive, got %d", c.RequiredProcs)
	}
	return nil
}

// Validate reports an invalid team size.
func (c TeamConfig) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("team.threads must be positive, got %d", c.Threads)
	}
	return nil
}

// Validate reports the first invalid scheduling value.
func (c ScheduleConfig) Validate() error {
	switch {
	case c.Threads < 1:
		return fmt.Errorf("schedule.threads must be positive, got %d", c.Threads)
	case c.Size < 1:
		return fmt.Errorf("schedule.size must be positive, got %d", c.Size)
	case c.StaticChunk < 1:
		return fmt.Errorf("schedule.static_chunk must be positive, got %d", c.StaticChunk)
	case c.DynamicChunk < 1:
		return fmt.Errorf("schedule.dynamic_chunk must be positive, got %d", c.DynamicChunk)
	case c.StartSize < 1:
		return fmt.Errorf("schedule.start_size must be positive, got %d", c.StartSize)
	case c.MaxSize < c.StartSize:
		return fmt.Errorf("schedule.max_size %d is below schedule.start_size %d",
			c.MaxSize, c.StartSize)
	case c.SizeFactor < 2:
		return fmt.Errorf("schedule.size_factor must be at least 2, got %d", c.SizeFactor)
	case c.Runs < 1:
		return fmt.Errorf("schedule.runs must be positive, got %d", c.Runs)
	}
	return nil
}

// Validate reports the first invalid matrix value.
func (c MatrixConfig) Validate() error {
	switch {
	case len(c.Sizes) == 0:
		return fmt.Errorf("matrix.sizes must not be empty")
	case len(c.Teams) == 0:
		return fmt.Errorf("matrix.teams must not be empty")
	case c.Runs < 1:
		return fmt.Errorf("matrix.runs must be positive, got %d", c.Runs)
	case c.MaxValue < c.MinValue:
		return fmt.Errorf("matrix.max_value %d is below matrix.min_value %d",
			c.MaxValue, c.MinValue)
	}
	for _, size := range c.Sizes {
		if size < 1 {
			return fmt.Errorf("matrix.sizes entries must be positive, got %d", size)
		}
	}
	for _, workers := range c.Teams {
		if workers < 1 {
			return fmt.Errorf("matrix.teams entries must be positive, got %d", workers)
		}
	}
	return nil
}
