package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	gridagent "github.com/cuemby/gridworks/pkg/agent"
	"github.com/cuemby/gridworks/pkg/log"
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
	Use:     "gridworks-agent",
	Short:   "Register with a coordinator, poll for jobs and run them",
	Version: Version,
	RunE:    run,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("gridworks-agent %s (%s)\n", Version, Commit))

	rootCmd.Flags().String("agent-id", "", "unique id for this agent (defaults to hostname)")
	rootCmd.Flags().String("coordinator-addr", "127.0.0.1:7770", "coordinator gRPC address")
	rootCmd.Flags().StringSlice("resources", []string{"cpu=4", "memory=8192"}, "name=amount resource totals this agent offers")
	rootCmd.Flags().String("job-affinity", "", "restrict delivered jobs to this affinity tag (empty accepts any)")
	rootCmd.Flags().String("containerd-socket", "", "containerd socket for container-backed jobs (empty disables that path)")
	rootCmd.Flags().Duration("poll-interval", 5*time.Second, "how often to poll the coordinator for work")
	rootCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().Bool("log-json", false, "emit logs as JSON")
}

func run(cmd *cobra.Command, args []string) error {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	log.Init(log.Config{Level: log.Level(logLevel), JSONOutput: logJSON})

	agentID, _ := cmd.Flags().GetString("agent-id")
	if agentID == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return fmt.Errorf("determining agent id: %w", err)
		}
		agentID = hostname
	}

	coordinatorAddr, _ := cmd.Flags().GetString("coordinator-addr")
	resourceFlags, _ := cmd.Flags().GetStringSlice("resources")
	jobAffinity, _ := cmd.Flags().GetString("job-affinity")
	containerdSocket, _ := cmd.Flags().GetString("containerd-socket")
	pollInterval, _ := cmd.Flags().GetDuration("poll-interval")

	totals, err := parseResources(resourceFlags)
	if err != nil {
		return err
	}

	a, err := gridagent.New(gridagent.Config{
		AgentID:          agentID,
		CoordinatorAddr:  coordinatorAddr,
		ResourceTotals:   totals,
		JobAffinity:      jobAffinity,
		ContainerdSocket: containerdSocket,
		PollInterval:     pollInterval,
	})
	if err != nil {
		return fmt.Errorf("initializing agent: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("starting agent: %w", err)
	}

	log.Logger.Info().Str("agent_id", agentID).Str("coordinator", coordinatorAddr).Msg("agent running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Logger.Info().Msg("shutting down")
	a.Stop()
	return nil
}

// parseResources turns "cpu=4,memory=8192" style flag values into a
// resource vector.
func parseResources(entries []string) (map[string]float64, error) {
	out := make(map[string]float64, len(entries))
	for _, entry := range entries {
		name, amountStr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid resource %q, expected name=amount", entry)
		}
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid resource amount in %q: %w", entry, err)
		}
		out[name] = amount
	}
	return out, nil
}
