// Package agent implements the agent side of the grid protocol:
// register once, then poll for work, launch it, and report state
// transitions back to the coordinator. One poll loop serves both as the
// work-delivery channel and as the liveness heartbeat the coordinator's
// reaper watches (§5).
package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/cuemby/gridworks/api/proto"
	"github.com/cuemby/gridworks/pkg/log"
	"github.com/cuemby/gridworks/pkg/runtime"
	"github.com/cuemby/gridworks/pkg/types"
)

const defaultPollInterval = 5 * time.Second

// Config configures one Agent.
type Config struct {
	AgentID          string
	CoordinatorAddr  string
	ResourceTotals   map[string]float64
	JobAffinity      string
	ContainerdSocket string // empty disables the container-backed launch path
	PollInterval     time.Duration
}

// Agent registers with the coordinator, polls for assigned work and
// drives it to completion, one goroutine per non-grid job and one
// goroutine per grid worker it is handed.
type Agent struct {
	cfg Config

	conn   *grpc.ClientConn
	client proto.GridAgentServiceClient

	containerRuntime *runtime.ContainerRuntime
	processRuntime   *runtime.ProcessRuntime

	logger zerolog.Logger

	mu          sync.Mutex
	gridWorkers map[string]bool // jobID -> worker goroutine running
	stopCh      chan struct{}
	doneCh      chan struct{}
}

// New dials the coordinator and prepares an Agent; it does not register
// or start polling until Start is called.
func New(cfg Config) (*Agent, error) {
	if cfg.PollInterval == 0 {
		cfg.PollInterval = defaultPollInterval
	}

	conn, err := grpc.NewClient(cfg.CoordinatorAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("agent: dialing coordinator %s: %w", cfg.CoordinatorAddr, err)
	}

	var containerRT *runtime.ContainerRuntime
	if cfg.ContainerdSocket != "" {
		containerRT, err = runtime.NewContainerRuntime(cfg.ContainerdSocket)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("agent: initializing containerd runtime: %w", err)
		}
	}

	return &Agent{
		cfg:              cfg,
		conn:             conn,
		client:           proto.NewGridAgentServiceClient(conn),
		containerRuntime: containerRT,
		processRuntime:   runtime.NewProcessRuntime(),
		logger:           log.WithAgentID(cfg.AgentID),
		gridWorkers:      make(map[string]bool),
		stopCh:           make(chan struct{}),
		doneCh:           make(chan struct{}),
	}, nil
}

// Start registers with the coordinator and launches the poll loop.
func (a *Agent) Start(ctx context.Context) error {
	if _, err := a.client.RegisterAgent(ctx, &proto.RegisterAgentRequest{
		AgentId:        a.cfg.AgentID,
		ResourceTotals: a.cfg.ResourceTotals,
		JobAffinity:    a.cfg.JobAffinity,
	}); err != nil {
		return fmt.Errorf("agent: registering with coordinator: %w", err)
	}
	a.logger.Info().Msg("registered with coordinator")

	go a.pollLoop()
	return nil
}

// Stop halts the poll loop and closes the coordinator connection.
func (a *Agent) Stop() {
	close(a.stopCh)
	<-a.doneCh
	if a.containerRuntime != nil {
		a.containerRuntime.Close()
	}
	a.conn.Close()
}

func (a *Agent) pollLoop() {
	defer close(a.doneCh)

	ticker := time.NewTicker(a.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			a.poll()
		}
	}
}

func (a *Agent) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.PollInterval)
	defer cancel()

	resp, err := a.client.GetNextJobs(ctx, &proto.GetNextJobsRequest{AgentId: a.cfg.AgentID})
	if err != nil {
		a.logger.Warn().Err(err).Msg("get_next_jobs failed")
		return
	}

	for _, jtr := range resp.Jobs {
		if jtr.GridWorkerId != "" {
			a.startGridWorker(jtr)
		} else {
			go a.runNonGridJob(jtr)
		}
	}
}

// runNonGridJob launches a command or function job, waits for it to
// exit, and reports exactly one terminal state transition.
func (a *Agent) runNonGridJob(jtr *proto.JobToRun) {
	job := jobFromProto(jtr.Job)
	logger := log.WithJobID(job.JobID)

	a.reportJobState(job.JobID, types.ProcessStateRunning, types.ExecutionResult{}, logger)

	result, state := a.execute(job, nil)
	a.reportJobState(job.JobID, state, result, logger)
}

// startGridWorker launches the per-(agent, grid job) worker loop the
// first time this job's worker id is seen; subsequent deliveries for a
// worker already running are a no-op (the coordinator only ever hands
// out one worker per agent per grid job, but redelivery is harmless to
// guard against regardless).
func (a *Agent) startGridWorker(jtr *proto.JobToRun) {
	a.mu.Lock()
	if a.gridWorkers[jtr.Job.JobId] {
		a.mu.Unlock()
		return
	}
	a.gridWorkers[jtr.Job.JobId] = true
	a.mu.Unlock()

	go a.gridWorkerLoop(jobFromProto(jtr.Job), jtr.GridWorkerId)
}

// gridWorkerLoop repeatedly dequeues one task at a time from the
// coordinator, executes it, and reports completion in the same RPC that
// asks for the next task, until the queue reports closed (§4.3, §6).
func (a *Agent) gridWorkerLoop(job types.Job, workerID string) {
	defer func() {
		a.mu.Lock()
		delete(a.gridWorkers, job.JobID)
		a.mu.Unlock()
	}()

	logger := log.WithGridWorkerID(workerID)
	ctx := context.Background()

	var completedTaskID int64
	var completedState types.ProcessState
	var completedResult types.ExecutionResult
	haveCompleted := false

	for {
		req := &proto.UpdateGridTaskStateAndGetNextRequest{
			AgentId:         a.cfg.AgentID,
			JobId:           job.JobID,
			GridWorkerId:    workerID,
			CompletedTaskId: -1,
		}
		if haveCompleted {
			req.CompletedTaskId = completedTaskID
			req.CompletedState = processStateToProto(completedState)
			req.CompletedResult = executionResultToProto(completedResult)
		}

		rpcCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		resp, err := a.client.UpdateGridTaskStateAndGetNext(rpcCtx, req)
		cancel()
		if err != nil {
			logger.Warn().Err(err).Msg("update_grid_task_state_and_get_next failed, retrying")
			time.Sleep(time.Second)
			continue
		}
		if resp.QueueClosed {
			logger.Info().Msg("grid task queue closed, worker exiting")
			return
		}
		if resp.NextTask == nil {
			time.Sleep(time.Second)
			haveCompleted = false
			continue
		}

		task := gridTaskFromProto(resp.NextTask)
		taskJob := job
		taskJob.Spec.PickledArguments = task.PickledFunctionArguments

		a.reportTaskRunning(job.JobID, workerID, task.TaskID, logger)

		result, state := a.execute(taskJob, &task)

		completedTaskID = task.TaskID
		completedState = state
		completedResult = result
		haveCompleted = true
	}
}

// execute launches job via the runtime appropriate to its interpreter
// deployment and blocks until it exits, translating launch/exit
// outcomes to the process-state rules in §4.1/§4.3: a launch failure is
// RUN_REQUEST_FAILED, a nonzero exit is NON_ZERO_RETURN_CODE, and a
// failure to observe the exit at all is ERROR_GETTING_STATE.
func (a *Agent) execute(job types.Job, task *types.GridTask) (types.ExecutionResult, types.ProcessState) {
	jtr := types.JobToRun{Job: job}
	args := buildArgs(job, task)

	if job.InterpreterDeployment.Kind == types.InterpreterServerAvailableInterpreter {
		handle, err := a.processRuntime.Launch(context.Background(), jtr, args)
		if err != nil {
			return types.ExecutionResult{SerializedError: []byte(err.Error())}, types.ProcessStateRunRequestFailed
		}
		code, err := a.processRuntime.Wait(handle)
		if err != nil {
			return types.ExecutionResult{Pid: handle.Pid, SerializedError: []byte(err.Error())}, types.ProcessStateErrorGettingState
		}
		if code != 0 {
			return types.ExecutionResult{Pid: handle.Pid, ReturnCode: code}, types.ProcessStateNonZeroReturnCode
		}
		return types.ExecutionResult{Pid: handle.Pid, ReturnCode: code}, types.ProcessStateSucceeded
	}

	if a.containerRuntime == nil {
		return types.ExecutionResult{SerializedError: []byte("agent: no containerd runtime configured")}, types.ProcessStateRunRequestFailed
	}

	ctx := context.Background()
	handle, err := a.containerRuntime.Launch(ctx, jtr, args)
	if err != nil {
		return types.ExecutionResult{SerializedError: []byte(err.Error())}, types.ProcessStateRunRequestFailed
	}
	defer a.containerRuntime.Remove(ctx, handle)

	code, err := a.containerRuntime.Wait(ctx, handle)
	if err != nil {
		return types.ExecutionResult{ContainerID: handle.ContainerID, Pid: int(handle.Pid), SerializedError: []byte(err.Error())}, types.ProcessStateErrorGettingState
	}
	if code != 0 {
		return types.ExecutionResult{ContainerID: handle.ContainerID, Pid: int(handle.Pid), ReturnCode: code}, types.ProcessStateNonZeroReturnCode
	}
	return types.ExecutionResult{ContainerID: handle.ContainerID, Pid: int(handle.Pid), ReturnCode: code}, types.ProcessStateSucceeded
}

// buildArgs derives the process argv for a job's spec variant. Command
// jobs pass their args through verbatim; function and grid jobs invoke
// a fixed runner entry point with "-" placeholders for the function and
// arguments pickles. Neither buildArgs nor the runtimes hand the pickled
// function or arguments to the launched process.
func buildArgs(job types.Job, task *types.GridTask) []string {
	switch job.Spec.Kind {
	case types.JobSpecCommand:
		return job.Spec.CommandArgs
	case types.JobSpecFunction, types.JobSpecGrid:
		return []string{"-m", "gridworks.runner", "--function-pickle", "-", "--arguments-pickle", "-"}
	default:
		return nil
	}
}

// reportTaskRunning posts a RUNNING transition for a task the worker
// just dequeued, without consuming another queue slot (§8 scenario 2/6
// require the RUNNING state to be observable while a task executes).
func (a *Agent) reportTaskRunning(jobID, workerID string, taskID int64, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := a.client.UpdateGridTaskStateAndGetNext(ctx, &proto.UpdateGridTaskStateAndGetNextRequest{
		AgentId:         a.cfg.AgentID,
		JobId:           jobID,
		GridWorkerId:    workerID,
		CompletedTaskId: taskID,
		CompletedState:  proto.ProcessState_RUNNING,
		ReportOnly:      true,
	})
	if err != nil {
		logger.Warn().Err(err).Int64("task_id", taskID).Msg("reporting RUNNING failed")
	}
}

func (a *Agent) reportJobState(jobID string, state types.ProcessState, result types.ExecutionResult, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := a.client.UpdateJobStates(ctx, &proto.UpdateJobStatesRequest{
		AgentId: a.cfg.AgentID,
		Updates: []*proto.JobStateUpdate{{
			JobId:  jobID,
			State:  processStateToProto(state),
			Result: executionResultToProto(result),
		}},
	})
	if err != nil {
		logger.Warn().Err(err).Str("state", string(state)).Msg("update_job_states failed")
	}
}
