package agent

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/cuemby/gridworks/api/proto"
	"github.com/cuemby/gridworks/pkg/runtime"
	"github.com/cuemby/gridworks/pkg/types"
)

// recordingClient implements proto.GridAgentServiceClient, recording
// the ProcessState of every UpdateJobStates call it receives in order.
type recordingClient struct {
	proto.GridAgentServiceClient

	mu     sync.Mutex
	states []proto.ProcessState
}

func (c *recordingClient) UpdateJobStates(ctx context.Context, in *proto.UpdateJobStatesRequest, opts ...grpc.CallOption) (*proto.Ack, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, u := range in.Updates {
		c.states = append(c.states, u.State)
	}
	return &proto.Ack{Ok: true}, nil
}

func commandJob(interpreterPath string, args []string) types.Job {
	return types.Job{
		JobID:                 "job-1",
		CodeDeployment:        types.CodeDeployment{Kind: types.CodeDeploymentServerAvailableFolder, FolderPaths: []string{"."}},
		InterpreterDeployment: types.InterpreterDeployment{Kind: types.InterpreterServerAvailableInterpreter, InterpreterPath: interpreterPath},
		Spec:                  types.JobSpec{Kind: types.JobSpecCommand, CommandArgs: args},
	}
}

func TestBuildArgsCommandPassesThroughVerbatim(t *testing.T) {
	job := commandJob("/bin/sh", []string{"-c", "exit 0"})
	assert.Equal(t, []string{"-c", "exit 0"}, buildArgs(job, nil))
}

func TestBuildArgsFunctionAndGridUseFixedRunner(t *testing.T) {
	fn := types.Job{Spec: types.JobSpec{Kind: types.JobSpecFunction}}
	grid := types.Job{Spec: types.JobSpec{Kind: types.JobSpecGrid}}

	assert.Equal(t, buildArgs(fn, nil), buildArgs(grid, nil))
	assert.Contains(t, buildArgs(fn, nil), "gridworks.runner")
}

func TestExecuteProcessJobSucceeds(t *testing.T) {
	a := &Agent{processRuntime: runtime.NewProcessRuntime()}
	job := commandJob("/bin/sh", []string{"-c", "exit 0"})

	result, state := a.execute(job, nil)

	assert.Equal(t, types.ProcessStateSucceeded, state)
	assert.Equal(t, 0, result.ReturnCode)
	assert.NotZero(t, result.Pid)
}

func TestExecuteProcessJobNonZeroExit(t *testing.T) {
	a := &Agent{processRuntime: runtime.NewProcessRuntime()}
	job := commandJob("/bin/sh", []string{"-c", "exit 7"})

	result, state := a.execute(job, nil)

	assert.Equal(t, types.ProcessStateNonZeroReturnCode, state)
	assert.Equal(t, 7, result.ReturnCode)
}

func TestExecuteProcessLaunchFailureIsRunRequestFailed(t *testing.T) {
	a := &Agent{processRuntime: runtime.NewProcessRuntime()}
	job := commandJob("/nonexistent/interpreter/binary", []string{})

	_, state := a.execute(job, nil)

	assert.Equal(t, types.ProcessStateRunRequestFailed, state)
}

func TestExecuteContainerJobWithNoRuntimeConfiguredFails(t *testing.T) {
	a := &Agent{processRuntime: runtime.NewProcessRuntime()}
	job := types.Job{
		InterpreterDeployment: types.InterpreterDeployment{Kind: types.InterpreterServerAvailableContainer, ImageName: "python:3.11"},
		Spec:                  types.JobSpec{Kind: types.JobSpecCommand, CommandArgs: []string{"true"}},
	}

	_, state := a.execute(job, nil)

	assert.Equal(t, types.ProcessStateRunRequestFailed, state)
}

func TestRunNonGridJobReportsRunningBeforeTerminal(t *testing.T) {
	client := &recordingClient{}
	a := &Agent{processRuntime: runtime.NewProcessRuntime(), client: client}
	jtr := &proto.JobToRun{Job: &proto.Job{
		JobId: "job-1",
		CodeDeployment: &proto.CodeDeployment{Variant: &proto.CodeDeployment_ServerAvailableFolder{
			ServerAvailableFolder: &proto.CodeDeployment_ServerAvailableFolderVariant{FolderPaths: []string{"."}},
		}},
		InterpreterDeployment: &proto.InterpreterDeployment{Variant: &proto.InterpreterDeployment_ServerAvailableInterpreter{
			ServerAvailableInterpreter: &proto.InterpreterDeployment_ServerAvailableInterpreterVariant{InterpreterPath: "/bin/sh"},
		}},
		Spec: &proto.JobSpec{Variant: &proto.JobSpec_Command{Command: &proto.JobSpec_CommandVariant{Args: []string{"-c", "exit 0"}}}},
	}}

	a.runNonGridJob(jtr)

	require.Equal(t, []proto.ProcessState{proto.ProcessState_RUNNING, proto.ProcessState_SUCCEEDED}, client.states)
}

func TestStartGridWorkerIsIdempotentPerJob(t *testing.T) {
	a := &Agent{gridWorkers: map[string]bool{"grid-1": true}}

	// A worker for grid-1 is already running, so this delivery must return
	// without launching a second worker loop (which would call the nil
	// client and panic).
	a.startGridWorker(&proto.JobToRun{Job: &proto.Job{JobId: "grid-1"}, GridWorkerId: "worker-2"})

	a.mu.Lock()
	alreadyRunning := a.gridWorkers["grid-1"]
	workerCount := len(a.gridWorkers)
	a.mu.Unlock()

	assert.True(t, alreadyRunning)
	assert.Equal(t, 1, workerCount)
}
