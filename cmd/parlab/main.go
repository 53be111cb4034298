// Command parlab runs the parallel-programming demonstrations: a set of
// self-contained lessons on message passing between ranks and on loop-level
// parallelism with a thread team.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parlab/parlab/cluster"
	"github.com/parlab/parlab/config"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "parlab",
	Short: "Parallel-programming demonstrations",
	Long: `Parlab runs self-contained demonstrations of two parallel-programming
models: message passing across cooperating ranks (the cluster commands) and
shared-memory loop-level parallelism with a fixed team of workers (the team
commands). Every demonstration runs to completion in one pass, prints its
diagnostic output, and exits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a yaml configuration file")
	rootCmd.AddCommand(clusterCmd, teamCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var abort *cluster.AbortError
		if errors.As(err, &abort) && abort.Code != 0 {
			os.Exit(abort.Code)
		}
		os.Exit(1)
	}
}
