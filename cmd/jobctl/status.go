package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cuemby/gridworks/pkg/client"
)

func runStatus(cmd *cobra.Command, args []string) error {
	coordinatorAddr, _ := cmd.Flags().GetString("coordinator-addr")
	jobID := args[0]

	c, err := client.New(coordinatorAddr)
	if err != nil {
		return fmt.Errorf("connecting to coordinator: %w", err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	states, err := c.GetSimpleJobStates(ctx, []string{jobID})
	if err != nil {
		return fmt.Errorf("fetching job state: %w", err)
	}
	state, ok := states[jobID]
	if !ok {
		return fmt.Errorf("job %s not found", jobID)
	}
	fmt.Printf("%s: %s\n", jobID, state)
	return nil
}

func runAgents(cmd *cobra.Command, args []string) error {
	coordinatorAddr, _ := cmd.Flags().GetString("coordinator-addr")

	c, err := client.New(coordinatorAddr)
	if err != nil {
		return fmt.Errorf("connecting to coordinator: %w", err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	agents, err := c.GetAgentStates(ctx)
	if err != nil {
		return fmt.Errorf("fetching agent states: %w", err)
	}
	if len(agents) == 0 {
		fmt.Println("no agents registered")
		return nil
	}
	for _, a := range agents {
		fmt.Printf("%s  totals=%v  available=%v\n", a.AgentId, a.Totals, a.Available)
	}
	return nil
}
