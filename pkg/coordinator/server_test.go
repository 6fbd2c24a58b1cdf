package coordinator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/gridworks/api/proto"
	"github.com/cuemby/gridworks/pkg/credentials"
	"github.com/cuemby/gridworks/pkg/deploy"
	"github.com/cuemby/gridworks/pkg/ledger"
	"github.com/cuemby/gridworks/pkg/registry"
	"github.com/cuemby/gridworks/pkg/scheduler"
	"github.com/cuemby/gridworks/pkg/wakeup"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	jobs := registry.NewJobRegistry()
	gridTasks := registry.NewGridTaskRegistry()
	l := ledger.New()
	creds, err := credentials.NewStoreFromPassphrase("test-passphrase")
	require.NoError(t, err)
	resolver := deploy.NewResolver(time.Second)
	wake := wakeup.New()
	sched := scheduler.New(jobs, gridTasks, l, wake, rand.New(rand.NewSource(1)))

	sched.Start()
	t.Cleanup(sched.Stop)

	return New(jobs, gridTasks, l, creds, resolver, sched, wake)
}

func folderJob(id string, priority float64, cpu float64) *proto.Job {
	return &proto.Job{
		JobId:    id,
		Priority: priority,
		CodeDeployment: &proto.CodeDeployment{Variant: &proto.CodeDeployment_ServerAvailableFolder{
			ServerAvailableFolder: &proto.CodeDeployment_ServerAvailableFolderVariant{FolderPaths: []string{"/srv/code"}},
		}},
		InterpreterDeployment: &proto.InterpreterDeployment{Variant: &proto.InterpreterDeployment_ServerAvailableInterpreter{
			ServerAvailableInterpreter: &proto.InterpreterDeployment_ServerAvailableInterpreterVariant{InterpreterPath: "/usr/bin/python3"},
		}},
		ResourceRequirement: map[string]float64{"cpu": cpu},
		Spec:                &proto.JobSpec{Variant: &proto.JobSpec_Command{Command: &proto.JobSpec_CommandVariant{Args: []string{"run.py"}}}},
	}
}

func gridJob(id string, cpu float64) *proto.Job {
	j := folderJob(id, 1, cpu)
	j.Spec = &proto.JobSpec{Variant: &proto.JobSpec_Grid{Grid: &proto.JobSpec_GridVariant{}}}
	return j
}

func TestAddJobIsDuplicateOnSecondSubmission(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp1, err := s.AddJob(ctx, &proto.AddJobRequest{Job: folderJob("job-1", 1, 1)})
	require.NoError(t, err)
	assert.False(t, resp1.IsDuplicate)

	resp2, err := s.AddJob(ctx, &proto.AddJobRequest{Job: folderJob("job-1", 1, 1)})
	require.NoError(t, err)
	assert.True(t, resp2.IsDuplicate)
}

func TestScheduleDeliversJobToRegisteredAgent(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.RegisterAgent(ctx, &proto.RegisterAgentRequest{AgentId: "agent-1", ResourceTotals: map[string]float64{"cpu": 4}})
	require.NoError(t, err)

	_, err = s.AddJob(ctx, &proto.AddJobRequest{Job: folderJob("job-1", 1, 2)})
	require.NoError(t, err)

	var delivered *proto.JobToRun
	require.Eventually(t, func() bool {
		resp, err := s.GetNextJobs(ctx, &proto.GetNextJobsRequest{AgentId: "agent-1"})
		require.NoError(t, err)
		if len(resp.Jobs) == 1 {
			delivered = resp.Jobs[0]
			return true
		}
		return false
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, "job-1", delivered.Job.JobId)
	assert.Empty(t, delivered.GridWorkerId)
}

func TestUpdateJobStatesTerminalReleasesLedgerCapacity(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.RegisterAgent(ctx, &proto.RegisterAgentRequest{AgentId: "agent-1", ResourceTotals: map[string]float64{"cpu": 4}})
	require.NoError(t, err)
	_, err = s.AddJob(ctx, &proto.AddJobRequest{Job: folderJob("job-1", 1, 4)})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		resp, _ := s.GetNextJobs(ctx, &proto.GetNextJobsRequest{AgentId: "agent-1"})
		return len(resp.Jobs) == 1
	}, 3*time.Second, 10*time.Millisecond)

	_, err = s.UpdateJobStates(ctx, &proto.UpdateJobStatesRequest{
		AgentId: "agent-1",
		Updates: []*proto.JobStateUpdate{{JobId: "job-1", State: proto.ProcessState_SUCCEEDED}},
	})
	require.NoError(t, err)

	states, err := s.GetSimpleJobStates(ctx, &proto.GetSimpleJobStatesRequest{JobIds: []string{"job-1"}})
	require.NoError(t, err)
	assert.Equal(t, proto.ProcessState_SUCCEEDED, states.States["job-1"])

	agents, err := s.GetAgentStates(ctx, &proto.Empty{})
	require.NoError(t, err)
	require.Len(t, agents.Agents, 1)
	assert.Equal(t, float64(4), agents.Agents[0].Available["cpu"])
}

func TestOversizedJobIsMarkedResourcesNotAvailable(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.RegisterAgent(ctx, &proto.RegisterAgentRequest{AgentId: "agent-1", ResourceTotals: map[string]float64{"cpu": 2}})
	require.NoError(t, err)
	_, err = s.AddJob(ctx, &proto.AddJobRequest{Job: folderJob("job-huge", 1, 100)})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		states, err := s.GetSimpleJobStates(ctx, &proto.GetSimpleJobStatesRequest{JobIds: []string{"job-huge"}})
		require.NoError(t, err)
		return states.States["job-huge"] == proto.ProcessState_RESOURCES_NOT_AVAILABLE
	}, 3*time.Second, 10*time.Millisecond)
}

func TestGridJobLifecycleRunsToAggregateSuccess(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.RegisterAgent(ctx, &proto.RegisterAgentRequest{AgentId: "agent-1", ResourceTotals: map[string]float64{"cpu": 2}})
	require.NoError(t, err)
	_, err = s.AddJob(ctx, &proto.AddJobRequest{Job: gridJob("grid-1", 1)})
	require.NoError(t, err)

	_, err = s.AddTasksToGridJob(ctx, &proto.AddTasksToGridJobRequest{
		JobId: "grid-1",
		Tasks: []*proto.GridTask{
			{TaskId: 1, PickledFunctionArguments: []byte("a")},
			{TaskId: 2, PickledFunctionArguments: []byte("b")},
		},
		AllTasksAdded: true,
	})
	require.NoError(t, err)

	var workerID string
	require.Eventually(t, func() bool {
		resp, err := s.GetNextJobs(ctx, &proto.GetNextJobsRequest{AgentId: "agent-1"})
		require.NoError(t, err)
		if len(resp.Jobs) == 1 {
			workerID = resp.Jobs[0].GridWorkerId
			return true
		}
		return false
	}, 3*time.Second, 10*time.Millisecond)
	require.NotEmpty(t, workerID)

	var completed int64
	for {
		resp, err := s.UpdateGridTaskStateAndGetNext(ctx, &proto.UpdateGridTaskStateAndGetNextRequest{
			AgentId:         "agent-1",
			JobId:           "grid-1",
			GridWorkerId:    workerID,
			CompletedTaskId: completed,
			CompletedState:  proto.ProcessState_SUCCEEDED,
		})
		require.NoError(t, err)
		if resp.QueueClosed {
			break
		}
		require.NotNil(t, resp.NextTask)
		completed = resp.NextTask.TaskId
	}

	states, err := s.GetGridTaskStates(ctx, &proto.GetGridTaskStatesRequest{JobId: "grid-1"})
	require.NoError(t, err)
	assert.Equal(t, proto.ProcessState_SUCCEEDED, states.AggregateState)
	assert.Len(t, states.Tasks, 2)
}

func TestGridTaskReportsRunningBeforeTerminal(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.RegisterAgent(ctx, &proto.RegisterAgentRequest{AgentId: "agent-1", ResourceTotals: map[string]float64{"cpu": 2}})
	require.NoError(t, err)
	_, err = s.AddJob(ctx, &proto.AddJobRequest{Job: gridJob("grid-1", 1)})
	require.NoError(t, err)
	_, err = s.AddTasksToGridJob(ctx, &proto.AddTasksToGridJobRequest{
		JobId:         "grid-1",
		Tasks:         []*proto.GridTask{{TaskId: 1, PickledFunctionArguments: []byte("a")}},
		AllTasksAdded: true,
	})
	require.NoError(t, err)

	var workerID string
	require.Eventually(t, func() bool {
		resp, err := s.GetNextJobs(ctx, &proto.GetNextJobsRequest{AgentId: "agent-1"})
		require.NoError(t, err)
		if len(resp.Jobs) == 1 {
			workerID = resp.Jobs[0].GridWorkerId
			return true
		}
		return false
	}, 3*time.Second, 10*time.Millisecond)
	require.NotEmpty(t, workerID)

	// First round-trip dequeues task 1 (no completion to report yet).
	resp, err := s.UpdateGridTaskStateAndGetNext(ctx, &proto.UpdateGridTaskStateAndGetNextRequest{
		AgentId:         "agent-1",
		JobId:           "grid-1",
		GridWorkerId:    workerID,
		CompletedTaskId: -1,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.NextTask)
	taskID := resp.NextTask.TaskId

	// Mirrors pkg/agent's reportTaskRunning: report RUNNING without
	// consuming another queue slot.
	_, err = s.UpdateGridTaskStateAndGetNext(ctx, &proto.UpdateGridTaskStateAndGetNextRequest{
		AgentId:         "agent-1",
		JobId:           "grid-1",
		GridWorkerId:    workerID,
		CompletedTaskId: taskID,
		CompletedState:  proto.ProcessState_RUNNING,
		ReportOnly:      true,
	})
	require.NoError(t, err)

	states, err := s.GetGridTaskStates(ctx, &proto.GetGridTaskStatesRequest{JobId: "grid-1"})
	require.NoError(t, err)
	require.Len(t, states.Tasks, 1)
	assert.Equal(t, proto.ProcessState_RUNNING, states.Tasks[0].State)

	// Completion call both reports the terminal state and closes the queue.
	resp, err = s.UpdateGridTaskStateAndGetNext(ctx, &proto.UpdateGridTaskStateAndGetNextRequest{
		AgentId:         "agent-1",
		JobId:           "grid-1",
		GridWorkerId:    workerID,
		CompletedTaskId: taskID,
		CompletedState:  proto.ProcessState_SUCCEEDED,
	})
	require.NoError(t, err)
	assert.True(t, resp.QueueClosed)

	states, err = s.GetGridTaskStates(ctx, &proto.GetGridTaskStatesRequest{JobId: "grid-1"})
	require.NoError(t, err)
	assert.Equal(t, proto.ProcessState_SUCCEEDED, states.Tasks[0].State)
}

func TestRegisterAgentConflictFailsOutstandingWork(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.RegisterAgent(ctx, &proto.RegisterAgentRequest{AgentId: "agent-1", ResourceTotals: map[string]float64{"cpu": 4}})
	require.NoError(t, err)
	_, err = s.AddJob(ctx, &proto.AddJobRequest{Job: folderJob("job-1", 1, 4)})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		resp, _ := s.GetNextJobs(ctx, &proto.GetNextJobsRequest{AgentId: "agent-1"})
		return len(resp.Jobs) == 1
	}, 3*time.Second, 10*time.Millisecond)

	// Agent restarts with a different resource profile: a conflicting
	// re-registration under the same id.
	_, err = s.RegisterAgent(ctx, &proto.RegisterAgentRequest{AgentId: "agent-1", ResourceTotals: map[string]float64{"cpu": 8}})
	require.NoError(t, err)

	states, err := s.GetSimpleJobStates(ctx, &proto.GetSimpleJobStatesRequest{JobIds: []string{"job-1"}})
	require.NoError(t, err)
	assert.Equal(t, proto.ProcessState_ERROR_GETTING_STATE, states.States["job-1"])
}
