package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/parlab/parlab/config"
	"github.com/parlab/parlab/demo"
)

var procs int

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Message-passing demonstrations on the process-parallel runtime",
}

// clusterConfig returns the cluster configuration with the --procs flag
// applied on top.
func clusterConfig() config.ClusterConfig {
	c := cfg.Cluster
	if procs > 0 {
		c.Procs = procs
	}
	return c
}

var clusterHelloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Hello world from a fixed number of ranks",
	Long: `Every rank prints one greeting. The run aborts before any work is done
when the number of launched ranks differs from the required count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return demo.Hello(os.Stdout, clusterConfig())
	},
}

var clusterCoresCmd = &cobra.Command{
	Use:   "cores",
	Short: "Hello world with a rank count versus core count check",
	RunE: func(cmd *cobra.Command, args []string) error {
		return demo.CoreCheck(os.Stdout, clusterConfig())
	},
}

var clusterGatherCmd = &cobra.Command{
	Use:   "gather",
	Short: "Workers report their ranks to the master",
	RunE: func(cmd *cobra.Command, args []string) error {
		return demo.Gather(os.Stdout, clusterConfig())
	},
}

var clusterIntroduceCmd = &cobra.Command{
	Use:   "introduce",
	Short: "Workers send text introductions to the master",
	RunE: func(cmd *cobra.Command, args []string) error {
		return demo.Introduce(os.Stdout, clusterConfig())
	},
}

var clusterTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "The master greets every worker under a message tag",
	RunE: func(cmd *cobra.Command, args []string) error {
		return demo.TaggedGreetings(os.Stdout, clusterConfig())
	},
}

func init() {
	clusterCmd.PersistentFlags().IntVar(&procs, "procs", 0,
		"number of ranks to launch (overrides the configuration)")
	clusterCmd.AddCommand(clusterHelloCmd, clusterCoresCmd, clusterGatherCmd,
		clusterIntroduceCmd, clusterTagsCmd)
}
