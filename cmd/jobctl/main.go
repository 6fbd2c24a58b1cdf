// Command jobctl is the one-shot job runner: submit a job spec file and
// wait for it to finish, or inspect running jobs and agents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "jobctl",
	Short:   "Submit and inspect jobs on a grid coordinator",
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("jobctl %s (%s)\n", Version, Commit))
	rootCmd.PersistentFlags().String("coordinator-addr", "127.0.0.1:7770", "coordinator gRPC address")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(agentsCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status <job-id>",
	Short: "Print a non-grid job's current state",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List registered agents and their resource availability",
	RunE:  runAgents,
}
