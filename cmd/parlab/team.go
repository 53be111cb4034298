package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/parlab/parlab/demo"
)

var (
	threads         int
	promptThreads   bool
	behaviourOnly   bool
	performanceOnly bool
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Loop-parallel demonstrations on the thread-team runtime",
}

var teamHelloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Hello world from every worker of a thread team",
	Long: `Every worker of the team prints one greeting inside a critical section.
The team size comes from the configuration, from --threads, or, with
--prompt, interactively from standard input with re-prompting on invalid
values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if promptThreads {
			return demo.TeamHelloPrompt(os.Stdin, os.Stdout)
		}
		n := cfg.Team.Threads
		if threads > 0 {
			n = threads
		}
		return demo.TeamHello(os.Stdout, n)
	},
}

var teamScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Static versus dynamic loop scheduling",
	Long: `Shows how static and dynamic schedules assign iterations to workers, and
compares their performance over growing vector sizes with balanced and
imbalanced per-iteration workloads. Runs both sections unless one of
--behaviour or --performance is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !performanceOnly {
			if err := demo.ScheduleBehaviour(os.Stdout, cfg.Schedule); err != nil {
				return err
			}
		}
		if !behaviourOnly {
			return demo.SchedulePerformance(os.Stdout, cfg.Schedule)
		}
		return nil
	},
}

var teamMatrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Matrix-multiplication loop-nest parallelization strategies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return demo.MatrixCompare(os.Stdout, cfg.Matrix)
	},
}

func init() {
	teamHelloCmd.Flags().IntVar(&threads, "threads", 0,
		"team size (overrides the configuration)")
	teamHelloCmd.Flags().BoolVar(&promptThreads, "prompt", false,
		"read the team size interactively")
	teamScheduleCmd.Flags().BoolVar(&behaviourOnly, "behaviour", false,
		"run only the scheduling-behaviour section")
	teamScheduleCmd.Flags().BoolVar(&performanceOnly, "performance", false,
		"run only the performance-comparison section")
	teamCmd.AddCommand(teamHelloCmd, teamScheduleCmd, teamMatrixCmd)
}
