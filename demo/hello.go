package demo

import (
	"fmt"
	"io"
	"runtime"

	"github.com/parlab/parlab/cluster"
	"github.com/parlab/parlab/config"
	"github.com/parlab/parlab/report"
	"github.com/parlab/parlab/team"
)

// Hello runs the fixed-size hello-world demonstration: every rank prints one
// greeting, and rank 0 aborts the run with code 1 before any work is done
// when the rank count is not the required one.
func Hello(w io.Writer, cfg config.ClusterConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var crit team.Critical
	return cluster.Run(cfg.Procs, func(p *cluster.Proc) error {
		if p.Rank() == masterRank {
			if p.Size() != cfg.RequiredProcs {
				return p.Abort(1, fmt.Sprintf(
					"this program must be run with %d processes", cfg.RequiredProcs))
			}
			report.Banner(w, narrowRule, "Task Distribution: Hello World (a)")
		}
		if err := p.Barrier(); err != nil {
			return err
		}
		crit.Do(func() {
			fmt.Fprintf(w, "[Process %d - %s] Hello world\n", p.Rank(), p.Host())
		})
		return nil
	})
}

// CoreCheck runs the hello-world demonstration that compares the rank count
// against the number of processor cores before greeting.
func CoreCheck(w io.Writer, cfg config.ClusterConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var crit team.Critical
	return cluster.Run(cfg.Procs, func(p *cluster.Proc) error {
		if p.Rank() == masterRank {
			cores := runtime.NumCPU()
			report.Banner(w, narrowRule, "Task Distribution: Hello World (b)")
			report.Section(w, narrowRule, "Configuration")
			fmt.Fprintf(w, "Number of cores: %d\n", cores)
			fmt.Fprintf(w, "Number of processes: %d\n", p.Size())
			if p.Size() > cores {
				fmt.Fprintf(w, "\n- - - Warning: More processes than cores - expect performance impacts due to context switching - - -\n\n")
			} else {
				fmt.Fprintf(w, "\n+ + + Good: Each process can independently run on a separate core + + +\n\n")
			}
		}
		if err := p.Barrier(); err != nil {
			return err
		}
		crit.Do(func() {
			fmt.Fprintf(w, "[Process %d - %s] Hello world\n", p.Rank(), p.Host())
		})
		return nil
	})
}
