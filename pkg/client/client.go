// Package client provides a thin wrapper around the coordinator's gRPC
// client stubs for use by jobctl and by tests driving the coordinator
// end to end.
package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/cuemby/gridworks/api/proto"
)

const defaultTimeout = 10 * time.Second

// Client wraps the coordinator's client-facing gRPC service
// (GridCoordinator), which a CLI uses for submitting and inspecting jobs
// and reading agent state.
type Client struct {
	conn        *grpc.ClientConn
	coordinator proto.GridCoordinatorClient
}

// New dials the coordinator over plaintext gRPC. The protocol carries
// no peer authentication; job payloads carry their own credentials for
// pulling code and containers.
func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("client: dialing coordinator %s: %w", addr, err)
	}
	return &Client{
		conn:        conn,
		coordinator: proto.NewGridCoordinatorClient(conn),
	}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// AddJob submits a job and reports whether it was a duplicate of an
// already-registered job id.
func (c *Client) AddJob(ctx context.Context, job *proto.Job) (isDuplicate bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	resp, err := c.coordinator.AddJob(ctx, &proto.AddJobRequest{Job: job})
	if err != nil {
		return false, err
	}
	return resp.IsDuplicate, nil
}

// AddTasksToGridJob appends tasks to a grid job's queue, optionally
// closing it to further additions.
func (c *Client) AddTasksToGridJob(ctx context.Context, jobID string, tasks []*proto.GridTask, allTasksAdded bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := c.coordinator.AddTasksToGridJob(ctx, &proto.AddTasksToGridJobRequest{
		JobId:         jobID,
		Tasks:         tasks,
		AllTasksAdded: allTasksAdded,
	})
	return err
}

// GetSimpleJobStates returns the current process state of each requested
// non-grid job id.
func (c *Client) GetSimpleJobStates(ctx context.Context, jobIDs []string) (map[string]proto.ProcessState, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	resp, err := c.coordinator.GetSimpleJobStates(ctx, &proto.GetSimpleJobStatesRequest{JobIds: jobIDs})
	if err != nil {
		return nil, err
	}
	return resp.States, nil
}

// GetGridTaskStates returns one grid job's aggregate state plus the
// state of every task not present in ignoreTaskIDs, supporting
// incremental polling with a growing ignore set.
func (c *Client) GetGridTaskStates(ctx context.Context, jobID string, ignoreTaskIDs []int64) (*proto.GetGridTaskStatesResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return c.coordinator.GetGridTaskStates(ctx, &proto.GetGridTaskStatesRequest{JobId: jobID, IgnoreTaskIds: ignoreTaskIDs})
}

// AddCredentials registers deployment credentials with the coordinator.
func (c *Client) AddCredentials(ctx context.Context, entries []*proto.AddCredentialsRequest_Entry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := c.coordinator.AddCredentials(ctx, &proto.AddCredentialsRequest{Entries: entries})
	return err
}

// GetAgentStates returns a snapshot of every registered agent's
// resource totals and current availability.
func (c *Client) GetAgentStates(ctx context.Context) ([]*proto.AgentSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	resp, err := c.coordinator.GetAgentStates(ctx, &proto.Empty{})
	if err != nil {
		return nil, err
	}
	return resp.Agents, nil
}

// WaitForTerminal polls a non-grid job's state until it reaches a
// terminal value or ctx is cancelled.
func (c *Client) WaitForTerminal(ctx context.Context, jobID string, pollInterval time.Duration) (proto.ProcessState, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		states, err := c.GetSimpleJobStates(ctx, []string{jobID})
		if err != nil {
			return proto.ProcessState_UNKNOWN, err
		}
		if state, ok := states[jobID]; ok && isTerminal(state) {
			return state, nil
		}

		select {
		case <-ctx.Done():
			return proto.ProcessState_UNKNOWN, ctx.Err()
		case <-ticker.C:
		}
	}
}

func isTerminal(s proto.ProcessState) bool {
	switch s {
	case proto.ProcessState_SUCCEEDED, proto.ProcessState_RUN_REQUEST_FAILED,
		proto.ProcessState_PYTHON_EXCEPTION, proto.ProcessState_NON_ZERO_RETURN_CODE,
		proto.ProcessState_RESOURCES_NOT_AVAILABLE, proto.ProcessState_ERROR_GETTING_STATE,
		proto.ProcessState_CANCELLED:
		return true
	default:
		return false
	}
}
