package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parlab/parlab/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Cluster.Procs)
	assert.Equal(t, 10, cfg.Team.Threads)
	assert.Equal(t, 12, cfg.Schedule.Size)
	assert.Equal(t, []int{50, 500}, cfg.Matrix.Sizes)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parlab.yaml")
	data := `
cluster:
  procs: 6
team:
  threads: 3
matrix:
  sizes: [8]
  runs: 2
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Cluster.Procs)
	assert.Equal(t, 3, cfg.Team.Threads)
	assert.Equal(t, []int{8}, cfg.Matrix.Sizes)
	assert.Equal(t, 2, cfg.Matrix.Runs)
	// Untouched sections keep their defaults.
	assert.Equal(t, 4, cfg.Cluster.RequiredProcs)
	assert.Equal(t, 100, cfg.Schedule.Runs)
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("team:\n  threads: 0\n"), 0o644))

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "team.threads")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*config.Config)
		message string
	}{
		{"procs", func(c *config.Config) { c.Cluster.Procs = 0 }, "cluster.procs"},
		{"required", func(c *config.Config) { c.Cluster.RequiredProcs = -1 }, "cluster.required_procs"},
		{"schedule size", func(c *config.Config) { c.Schedule.Size = 0 }, "schedule.size"},
		{"size factor", func(c *config.Config) { c.Schedule.SizeFactor = 1 }, "schedule.size_factor"},
		{"max below start", func(c *config.Config) { c.Schedule.MaxSize = 1 }, "schedule.max_size"},
		{"empty teams", func(c *config.Config) { c.Matrix.Teams = nil }, "matrix.teams"},
		{"negative matrix size", func(c *config.Config) { c.Matrix.Sizes = []int{50, -1} }, "matrix.sizes"},
		{"value range", func(c *config.Config) { c.Matrix.MaxValue = 0 }, "matrix.max_value"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.message)
		})
	}
}
