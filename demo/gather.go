package demo

import (
	"fmt"
	"io"
	"runtime"

	"github.com/parlab/parlab/cluster"
	"github.com/parlab/parlab/config"
	"github.com/parlab/parlab/report"
)

// Tag under which workers report back to the master.
const reportTag = 0

// requireWorkers aborts the run when it has no worker ranks, that is fewer
// than two ranks in total. Only the master checks; the other ranks observe
// the abort through their next blocking call.
func requireWorkers(p *cluster.Proc) error {
	if p.Rank() == masterRank && p.Size() < 2 {
		return p.Abort(1, "this program must be run with at least 2 processes")
	}
	return nil
}

// masterPreamble writes the banner and configuration of the master-worker
// demonstrations.
func masterPreamble(w io.Writer, p *cluster.Proc, title string) {
	report.Banner(w, narrowRule, title)
	report.Section(w, narrowRule, "Configuration")
	fmt.Fprintf(w, "Number of cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "Number of processes: %d\n", p.Size())
	fmt.Fprintf(w, "\nMaster: Hello workers give me your messages\n%s\n", report.Rule(narrowRule, '-'))
}

// Gather runs the point-to-point demonstration in which every worker sends
// its rank to the master, which receives them in arrival order.
func Gather(w io.Writer, cfg config.ClusterConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return cluster.Run(cfg.Procs, func(p *cluster.Proc) error {
		if err := requireWorkers(p); err != nil {
			return err
		}
		if p.Rank() != masterRank {
			return p.Send(masterRank, reportTag, p.Rank())
		}
		masterPreamble(w, p, "Master-Worker Communication: Point-to-Point (a)")
		for i := 1; i < p.Size(); i++ {
			m, err := p.Recv(cluster.AnySource, reportTag)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Message received from process %d: Hello back\n", m.Payload.(int))
		}
		fmt.Fprintf(w, "%s\nMaster: All messages received from worker processes\n", report.Rule(narrowRule, '-'))
		return nil
	})
}

// Introduce runs the point-to-point demonstration in which every worker
// sends a short introduction, and the master reads the sender rank from the
// message itself rather than from the payload.
func Introduce(w io.Writer, cfg config.ClusterConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return cluster.Run(cfg.Procs, func(p *cluster.Proc) error {
		if err := requireWorkers(p); err != nil {
			return err
		}
		if p.Rank() != masterRank {
			return p.Send(masterRank, reportTag, "Hello, I am "+workerName(p.Rank()))
		}
		masterPreamble(w, p, "Master-Worker Communication: Point-to-Point (b)")
		for i := 1; i < p.Size(); i++ {
			m, err := p.Recv(cluster.AnySource, reportTag)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Message received from process %d: %s\n", m.Source, m.Payload.(string))
		}
		fmt.Fprintf(w, "%s\nMaster: All messages received from worker processes\n", report.Rule(narrowRule, '-'))
		return nil
	})
}
