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

// Tag the master greets the workers under.
const greetingTag = 100

// TaggedGreetings runs the tag demonstration: the master sends a personal
// greeting to every worker under the greeting tag, and each worker receives
// with the tag wildcard and reports the tag the message actually carried.
func TaggedGreetings(w io.Writer, cfg config.ClusterConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var crit team.Critical
	return cluster.Run(cfg.Procs, func(p *cluster.Proc) error {
		if err := requireWorkers(p); err != nil {
			return err
		}
		if p.Rank() == masterRank {
			crit.Do(func() {
				report.Banner(w, wideRule, "Master-Worker Communication: Tags")
				report.Section(w, wideRule, "Configuration")
				fmt.Fprintf(w, "Number of cores: %d\n", runtime.NumCPU())
				fmt.Fprintf(w, "Number of processes: %d\n", p.Size())
				fmt.Fprintf(w, "Greeting tag: %d\n\n", greetingTag)
			})
			for dest := 1; dest < p.Size(); dest++ {
				greeting := "Hello, " + workerName(dest)
				crit.Do(func() {
					fmt.Fprintf(w, "[Master] Sending to Process %d with tag %d: %s\n",
						dest, greetingTag, greeting)
				})
				if err := p.Send(dest, greetingTag, greeting); err != nil {
					return err
				}
			}
			return nil
		}
		crit.Do(func() {
			fmt.Fprintf(w, "[Process %d] Waiting to receive a message from the master...\n", p.Rank())
		})
		m, err := p.Recv(masterRank, cluster.AnyTag)
		if err != nil {
			return err
		}
		crit.Do(func() {
			fmt.Fprintf(w, "[Process %d] Received from master (actual tag %d): %s\n",
				p.Rank(), m.Tag, m.Payload.(string))
		})
		return nil
	})
}
