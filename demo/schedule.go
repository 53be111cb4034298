package demo

import (
	"fmt"
	"io"
	"time"

	"github.com/parlab/parlab/config"
	"github.com/parlab/parlab/report"
	"github.com/parlab/parlab/team"
)

// Every stallEvery-th iteration of the imbalanced workload stalls for
// stallFor, so that iterations no longer cost the same and the scheduling
// policies diverge.
const (
	stallEvery = 100
	stallFor   = time.Microsecond
)

// ScheduleBehaviour demonstrates how static and dynamic schedules, with
// default and explicit chunk sizes, assign the iterations of a small vector
// addition to the workers of a team. Each iteration prints one table row
// with the worker that ran it.
func ScheduleBehaviour(w io.Writer, cfg config.ScheduleConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	v1 := constantVector(cfg.Size, cfg.Value1)
	v2 := constantVector(cfg.Size, cfg.Value2)
	v3 := make([]int, cfg.Size)
	tm := team.New(cfg.Threads)

	fmt.Fprintln(w)
	report.Banner(w, narrowRule, "SCHEDULING BEHAVIOUR")
	report.Section(w, narrowRule, "Configuration")
	fmt.Fprintf(w, "Number of threads: %d\n", cfg.Threads)
	fmt.Fprintf(w, "Vector size: %d\n", cfg.Size)
	fmt.Fprintf(w, "Vector1 value: %d\n", cfg.Value1)
	fmt.Fprintf(w, "Vector2 value: %d\n", cfg.Value2)

	passes := []struct {
		title    string
		schedule team.Schedule
	}{
		{"[1.1] Static Scheduling - Default Chunk Size",
			team.Schedule{Policy: team.Static}},
		{fmt.Sprintf("[1.2] Static Scheduling - Specified Chunk Size (%d)", cfg.StaticChunk),
			team.Schedule{Policy: team.Static, Chunk: cfg.StaticChunk}},
		{"[2.1] Dynamic Scheduling - Default Chunk Size",
			team.Schedule{Policy: team.Dynamic}},
		{fmt.Sprintf("[2.2] Dynamic Scheduling - Specified Chunk Size (%d)", cfg.DynamicChunk),
			team.Schedule{Policy: team.Dynamic, Chunk: cfg.DynamicChunk}},
	}
	var crit team.Critical
	for _, pass := range passes {
		fmt.Fprintf(w, "\n%s\n%s\n", pass.title, report.Rule(narrowRule, '-'))
		tab := report.NewTable(w, 10, 15, 10)
		tab.Header("TID", "Iteration", "Result")
		tm.For(0, cfg.Size, pass.schedule, func(worker, i int) {
			v3[i] = v1[i] + v2[i]
			crit.Do(func() {
				tab.Row(worker, i, v3[i])
			})
		})
	}
	return nil
}

// SchedulePerformance compares static and dynamic scheduling over growing
// vector sizes, with a balanced workload and with an imbalanced one, timing
// repeated runs of the same vector addition and reporting the total, mean,
// and longest run per size.
func SchedulePerformance(w io.Writer, cfg config.ScheduleConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	tm := team.New(cfg.Threads)

	fmt.Fprintln(w)
	report.Banner(w, narrowRule, "PERFORMANCE COMPARISON")
	report.Section(w, narrowRule, "Configuration")
	fmt.Fprintf(w, "Number of threads: %d\n", cfg.Threads)
	fmt.Fprintf(w, "Vector1 value: %d\n", cfg.Value1)
	fmt.Fprintf(w, "Vector2 value: %d\n", cfg.Value2)
	fmt.Fprintf(w, "Runs per size: %d\n", cfg.Runs)

	sweeps := []struct {
		title    string
		balanced bool
	}{
		{"[1] Performance Over Increasing Iterations (Balanced)", true},
		{"[2] Performance Over Increasing Iterations (Imbalanced)", false},
	}
	for _, sweep := range sweeps {
		fmt.Fprintf(w, "\n%s\n%s\n", sweep.title, report.Rule(2*narrowRule, '-'))
		tab := report.NewTable(w, 10, 20, 20, 22, 22, 18, 18)
		tab.Header("Size", "Static Total (s)", "Dynamic Total (s)", "Static Average (s)", "Dynamic Average (s)",
			"Static Max (s)", "Dynamic Max (s)")

		for size := cfg.StartSize; size <= cfg.MaxSize; size *= cfg.SizeFactor {
			v1 := constantVector(size, cfg.Value1)
			v2 := constantVector(size, cfg.Value2)
			v3 := make([]int, size)

			static := report.NewTimings()
			dynamic := report.NewTimings()
			for run := 0; run < cfg.Runs; run++ {
				static.Add(timeVectorAdd(tm, team.Schedule{Policy: team.Static}, v1, v2, v3, sweep.balanced))
				dynamic.Add(timeVectorAdd(tm, team.Schedule{Policy: team.Dynamic}, v1, v2, v3, sweep.balanced))
			}
			tab.Row(size,
				fmt.Sprintf("%.6f", static.TotalSeconds()),
				fmt.Sprintf("%.6f", dynamic.TotalSeconds()),
				fmt.Sprintf("%.6f", static.MeanSeconds()),
				fmt.Sprintf("%.6f", dynamic.MeanSeconds()),
				fmt.Sprintf("%.6f", static.Max().Seconds()),
				fmt.Sprintf("%.6f", dynamic.Max().Seconds()))
		}
	}
	return nil
}

// timeVectorAdd measures one scheduled run of the vector addition. Nothing
// is printed from the loop body, so only the computation is timed.
func timeVectorAdd(tm *team.Team, s team.Schedule, v1, v2, v3 []int, balanced bool) time.Duration {
	if balanced {
		return report.Time(func() {
			tm.For(0, len(v1), s, func(worker, i int) {
				v3[i] = v1[i] + v2[i]
			})
		})
	}
	return report.Time(func() {
		tm.For(0, len(v1), s, func(worker, i int) {
			v3[i] = v1[i] + v2[i]
			if i%stallEvery == 0 {
				time.Sleep(stallFor)
			}
		})
	})
}
