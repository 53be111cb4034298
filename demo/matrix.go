package demo

import (
	"fmt"
	"io"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/parlab/parlab/config"
	"github.com/parlab/parlab/report"
	"github.com/parlab/parlab/team"
)

// randomMatrix returns a size x size matrix of uniform pseudo-random integer
// values drawn from [min, max] with the given source.
func randomMatrix(rng *rand.Rand, size, min, max int) *mat.Dense {
	data := make([]float64, size*size)
	for i := range data {
		data[i] = float64(rng.Intn(max-min+1) + min)
	}
	return mat.NewDense(size, size, data)
}

// multiplyRows multiplies a and b into c, distributing the rows of the
// result across the team's workers.
func multiplyRows(tm *team.Team, a, b, c *mat.Dense) {
	size, _ := c.Dims()
	tm.For(0, size, team.Schedule{Policy: team.Static}, func(worker, i int) {
		aRow := a.RawRowView(i)
		cRow := c.RawRowView(i)
		for j := 0; j < size; j++ {
			sum := 0.0
			for k := 0; k < size; k++ {
				sum += aRow[k] * b.At(k, j)
			}
			cRow[j] = sum
		}
	})
}

// multiplyCols multiplies a and b into c, keeping the row loop sequential
// and distributing the columns of each row across the team's workers.
func multiplyCols(tm *team.Team, a, b, c *mat.Dense) {
	size, _ := c.Dims()
	for i := 0; i < size; i++ {
		aRow := a.RawRowView(i)
		cRow := c.RawRowView(i)
		tm.For(0, size, team.Schedule{Policy: team.Static}, func(worker, j int) {
			sum := 0.0
			for k := 0; k < size; k++ {
				sum += aRow[k] * b.At(k, j)
			}
			cRow[j] = sum
		})
	}
}

// multiplyCells multiplies a and b into c, collapsing the row and column
// loops into one iteration space distributed across the team's workers.
func multiplyCells(tm *team.Team, a, b, c *mat.Dense) {
	size, _ := c.Dims()
	tm.For(0, size*size, team.Schedule{Policy: team.Static}, func(worker, idx int) {
		i, j := idx/size, idx%size
		aRow := a.RawRowView(i)
		sum := 0.0
		for k := 0; k < size; k++ {
			sum += aRow[k] * b.At(k, j)
		}
		c.Set(i, j, sum)
	})
}

// MatrixCompare times the three loop-nest parallelization strategies of a
// square matrix multiplication, for every configured matrix size and team
// size, and reports total and mean times over repeated runs.
func MatrixCompare(w io.Writer, cfg config.MatrixConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	report.Section(w, matrixRule, "Configuration")
	fmt.Fprint(w, "Matrix Size Options:")
	writeInts(w, cfg.Sizes)
	fmt.Fprint(w, "\nTeam Size Options:")
	writeInts(w, cfg.Teams)
	fmt.Fprintf(w, "\nTest Runs per Team Size: %d\n", cfg.Runs)

	for n, size := range cfg.Sizes {
		a := randomMatrix(rng, size, cfg.MinValue, cfg.MaxValue)
		b := randomMatrix(rng, size, cfg.MinValue, cfg.MaxValue)

		fmt.Fprintf(w, "\n[%d] %dx%d Matrix Multiplication\n%s\n",
			n+1, size, size, report.Rule(matrixRule, '-'))
		tab := report.NewTable(w, 12, 12, 12, 12, 12, 12, 12)
		tab.GroupHeader([]int{12, 36, 36}, "", "Total Time (s)", "Average Time (s)")
		tab.Header("NumThreads", "Outer", "Inner", "Collapse", "Outer", "Inner", "Collapse")

		for _, workers := range cfg.Teams {
			tm := team.New(workers)
			outer := report.NewTimings()
			inner := report.NewTimings()
			collapse := report.NewTimings()
			for run := 0; run < cfg.Runs; run++ {
				c := mat.NewDense(size, size, nil)
				outer.Add(report.Time(func() { multiplyRows(tm, a, b, c) }))
				c = mat.NewDense(size, size, nil)
				inner.Add(report.Time(func() { multiplyCols(tm, a, b, c) }))
				c = mat.NewDense(size, size, nil)
				collapse.Add(report.Time(func() { multiplyCells(tm, a, b, c) }))
			}
			tab.Row(workers,
				fmt.Sprintf("%.6f", outer.TotalSeconds()),
				fmt.Sprintf("%.6f", inner.TotalSeconds()),
				fmt.Sprintf("%.6f", collapse.TotalSeconds()),
				fmt.Sprintf("%.6f", outer.MeanSeconds()),
				fmt.Sprintf("%.6f", inner.MeanSeconds()),
				fmt.Sprintf("%.6f", collapse.MeanSeconds()))
		}
	}
	return nil
}
