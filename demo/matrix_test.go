package demo

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/parlab/parlab/config"
	"github.com/parlab/parlab/team"
)

func TestMultiplyStrategiesMatchReference(t *testing.T) {
	const size = 20
	rng := rand.New(rand.NewSource(42))
	a := randomMatrix(rng, size, 1, 100)
	b := randomMatrix(rng, size, 1, 100)
	var want mat.Dense
	want.Mul(a, b)

	strategies := map[string]func(*team.Team, *mat.Dense, *mat.Dense, *mat.Dense){
		"rows":  multiplyRows,
		"cols":  multiplyCols,
		"cells": multiplyCells,
	}
	for name, multiply := range strategies {
		for _, workers := range []int{1, 4, 16} {
			c := mat.NewDense(size, size, nil)
			multiply(team.New(workers), a, b, c)
			if !mat.EqualApprox(&want, c, 1e-9) {
				t.Errorf("%s with %d workers differs from the sequential product", name, workers)
			}
		}
	}
}

func TestRandomMatrixRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := randomMatrix(rng, 10, 3, 7)
	rows, cols := m.Dims()
	require.Equal(t, 10, rows)
	require.Equal(t, 10, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			assert.GreaterOrEqual(t, v, 3.0)
			assert.LessOrEqual(t, v, 7.0)
			assert.Equal(t, v, float64(int(v)), "values are whole numbers")
		}
	}
}

func TestMatrixCompareOutput(t *testing.T) {
	cfg := config.MatrixConfig{
		Sizes:    []int{8},
		Teams:    []int{1, 2},
		Runs:     1,
		Seed:     42,
		MinValue: 1,
		MaxValue: 100,
	}
	var b bytes.Buffer
	require.NoError(t, MatrixCompare(&b, cfg))
	out := b.String()
	assert.Contains(t, out, "Matrix Size Options: 8")
	assert.Contains(t, out, "Team Size Options: 1 2")
	assert.Contains(t, out, "[1] 8x8 Matrix Multiplication")
	assert.Contains(t, out, "Total Time (s)")
	assert.Contains(t, out, "NumThreads")
	// One timing row per team size.
	assert.Equal(t, 1, countRowsStarting(out, "1 "))
	assert.Equal(t, 1, countRowsStarting(out, "2 "))
}

func TestMatrixCompareInvalidConfig(t *testing.T) {
	var b bytes.Buffer
	err := MatrixCompare(&b, config.MatrixConfig{})
	require.Error(t, err)
	assert.Empty(t, b.String())
}

// countRowsStarting counts output lines whose first cell is the given
// prefix followed by column padding.
func countRowsStarting(out, prefix string) int {
	n := 0
	for _, line := range bytes.Split([]byte(out), []byte("\n")) {
		if bytes.HasPrefix(line, []byte(prefix)) {
			n++
		}
	}
	return n
}
