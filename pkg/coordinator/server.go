// Package coordinator implements the coordinator's gRPC surface:
// job/credential submission from clients, and registration/work-polling/
// state-reporting from agents, wired onto the job registry, grid-task
// registry, ledger, credential store, deployment resolver and scheduler.
package coordinator

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cuemby/gridworks/api/proto"
	"github.com/cuemby/gridworks/pkg/credentials"
	"github.com/cuemby/gridworks/pkg/deploy"
	"github.com/cuemby/gridworks/pkg/ledger"
	"github.com/cuemby/gridworks/pkg/log"
	"github.com/cuemby/gridworks/pkg/metrics"
	"github.com/cuemby/gridworks/pkg/registry"
	"github.com/cuemby/gridworks/pkg/scheduler"
	"github.com/cuemby/gridworks/pkg/types"
	"github.com/cuemby/gridworks/pkg/wakeup"
)

// Server implements proto.GridCoordinatorServer and
// proto.GridAgentServiceServer over one shared in-memory state: there is
// no persisted state (§6), the coordinator's authority is exactly the
// process's own memory.
type Server struct {
	proto.UnimplementedGridCoordinatorServer
	proto.UnimplementedGridAgentServiceServer

	jobs      *registry.JobRegistry
	gridTasks *registry.GridTaskRegistry
	ledger    *ledger.Ledger
	creds     *credentials.Store
	resolver  *deploy.Resolver
	scheduler *scheduler.Scheduler
	wake      *wakeup.Signal

	logger zerolog.Logger
}

// New wires a Server onto the given components. It does not start the
// scheduler's background loop; callers call sched.Start themselves.
func New(jobs *registry.JobRegistry, gridTasks *registry.GridTaskRegistry, l *ledger.Ledger, creds *credentials.Store, resolver *deploy.Resolver, sched *scheduler.Scheduler, wake *wakeup.Signal) *Server {
	return &Server{
		jobs:      jobs,
		gridTasks: gridTasks,
		ledger:    l,
		creds:     creds,
		resolver:  resolver,
		scheduler: sched,
		wake:      wake,
		logger:    log.WithComponent("coordinator"),
	}
}

func (s *Server) AddJob(ctx context.Context, req *proto.AddJobRequest) (*proto.AddJobResponse, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.APIRequestDuration, "AddJob")

	job := jobFromProto(req.Job)
	if err := s.resolver.ResolveJob(ctx, &job); err != nil {
		metrics.APIRequestsTotal.WithLabelValues("AddJob", "error").Inc()
		return nil, status.Errorf(codes.FailedPrecondition, "resolving deployment: %v", err)
	}

	outcome, err := s.jobs.AddJob(job)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues("AddJob", "invalid").Inc()
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	metrics.APIRequestsTotal.WithLabelValues("AddJob", "ok").Inc()
	if outcome == registry.AddJobAdded {
		s.wake.Notify(wakeup.ReasonJobSubmitted)
	}
	return &proto.AddJobResponse{IsDuplicate: outcome == registry.AddJobIsDuplicate}, nil
}

func (s *Server) AddTasksToGridJob(ctx context.Context, req *proto.AddTasksToGridJobRequest) (*proto.Ack, error) {
	job, ok := s.jobs.Get(req.JobId)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "unknown job %q", req.JobId)
	}
	if !job.IsGrid() {
		return nil, status.Errorf(codes.FailedPrecondition, "job %q is not a grid job", req.JobId)
	}

	tasks := make([]types.GridTask, len(req.Tasks))
	for i, t := range req.Tasks {
		tasks[i] = gridTaskFromProto(t)
	}
	if !s.gridTasks.AppendTasks(req.JobId, tasks, req.AllTasksAdded) {
		return nil, status.Errorf(codes.FailedPrecondition, "grid job %q's task queue is already closed", req.JobId)
	}

	s.wake.Notify(wakeup.ReasonJobSubmitted)
	return &proto.Ack{Ok: true}, nil
}

func (s *Server) GetSimpleJobStates(ctx context.Context, req *proto.GetSimpleJobStatesRequest) (*proto.GetSimpleJobStatesResponse, error) {
	states := make(map[string]proto.ProcessState, len(req.JobIds))
	for _, id := range req.JobIds {
		job, ok := s.jobs.Get(id)
		if !ok {
			states[id] = proto.ProcessState_UNKNOWN
			continue
		}
		if job.IsGrid() {
			states[id] = processStateToProto(s.gridTasks.SyntheticState(id, s.scheduler.NoWorkersLeft(id)))
		} else {
			states[id] = processStateToProto(s.jobs.SimpleState(id))
		}
	}
	return &proto.GetSimpleJobStatesResponse{States: states}, nil
}

func (s *Server) GetGridTaskStates(ctx context.Context, req *proto.GetGridTaskStatesRequest) (*proto.GetGridTaskStatesResponse, error) {
	job, ok := s.jobs.Get(req.JobId)
	if !ok || !job.IsGrid() {
		return nil, status.Errorf(codes.NotFound, "no grid job %q", req.JobId)
	}

	var ignore map[int64]bool
	if len(req.IgnoreTaskIds) > 0 {
		ignore = make(map[int64]bool, len(req.IgnoreTaskIds))
		for _, id := range req.IgnoreTaskIds {
			ignore[id] = true
		}
	}
	tasks := s.gridTasks.States(req.JobId, ignore)
	out := make([]*proto.TaskIdState, len(tasks))
	for i, t := range tasks {
		out[i] = &proto.TaskIdState{TaskId: t.TaskID, State: processStateToProto(t.State), Result: executionResultToProto(t.Result)}
	}

	aggregate := s.gridTasks.SyntheticState(req.JobId, s.scheduler.NoWorkersLeft(req.JobId))
	return &proto.GetGridTaskStatesResponse{AggregateState: processStateToProto(aggregate), Tasks: out}, nil
}

func (s *Server) AddCredentials(ctx context.Context, req *proto.AddCredentialsRequest) (*proto.Ack, error) {
	for _, e := range req.Entries {
		s.creds.Add(types.CredentialServiceKind(e.Service), e.UrlPrefix, credentialSourceFromProto(e.Source))
	}
	return &proto.Ack{Ok: true}, nil
}

func (s *Server) GetAgentStates(ctx context.Context, _ *proto.Empty) (*proto.GetAgentStatesResponse, error) {
	snapshot := s.ledger.Snapshot()
	out := make([]*proto.AgentSnapshot, len(snapshot))
	for i, a := range snapshot {
		out[i] = agentSnapshotToProto(a)
	}
	return &proto.GetAgentStatesResponse{Agents: out}, nil
}

func (s *Server) RegisterAgent(ctx context.Context, req *proto.RegisterAgentRequest) (*proto.Ack, error) {
	wasReset := s.ledger.Register(req.AgentId, types.ResourceVector(req.ResourceTotals), req.JobAffinity)
	if wasReset {
		s.logger.Warn().Str("agent_id", req.AgentId).Msg("agent re-registered with changed identity, failing its outstanding work")
		s.scheduler.FailAgentWork(req.AgentId)
	}
	metrics.AgentsTotal.Inc()
	s.wake.Notify(wakeup.ReasonAgentRegistered)
	return &proto.Ack{Ok: true}, nil
}

func (s *Server) GetNextJobs(ctx context.Context, req *proto.GetNextJobsRequest) (*proto.GetNextJobsResponse, error) {
	s.ledger.Touch(req.AgentId)

	deliveries := s.scheduler.DrainDeliveries(req.AgentId)
	out := make([]*proto.JobToRun, len(deliveries))
	for i, jtr := range deliveries {
		s.attachCredentials(&jtr)
		out[i] = jobToRunToProto(jtr)
	}
	return &proto.GetNextJobsResponse{Jobs: out}, nil
}

// attachCredentials resolves any git/docker credentials the job's
// deployments need before it is handed to the agent (§4.6).
func (s *Server) attachCredentials(jtr *types.JobToRun) {
	if jtr.Job.CodeDeployment.RepoURL != "" {
		if cred, err := s.creds.Resolve(types.CredentialServiceGit, jtr.Job.CodeDeployment.RepoURL); err == nil && cred != nil {
			jtr.CodeCredentials = cred
		}
	}
	if jtr.Job.InterpreterDeployment.Repository != "" {
		if cred, err := s.creds.Resolve(types.CredentialServiceDocker, jtr.Job.InterpreterDeployment.Repository); err == nil && cred != nil {
			jtr.InterpreterCredentials = cred
		}
	}
}

func (s *Server) UpdateJobStates(ctx context.Context, req *proto.UpdateJobStatesRequest) (*proto.Ack, error) {
	s.ledger.Touch(req.AgentId)

	for _, u := range req.Updates {
		state := processStateFromProto(u.State)
		if !s.jobs.UpdateState(u.JobId, state, executionResultFromProto(u.Result)) {
			continue
		}
		if state.IsTerminal() {
			s.scheduler.ReleaseNonGridJob(u.JobId)
		}
	}
	return &proto.Ack{Ok: true}, nil
}

func (s *Server) UpdateGridTaskStateAndGetNext(ctx context.Context, req *proto.UpdateGridTaskStateAndGetNextRequest) (*proto.UpdateGridTaskStateAndGetNextResponse, error) {
	s.ledger.Touch(req.AgentId)

	if req.CompletedTaskId >= 0 {
		s.gridTasks.UpdateTask(req.JobId, req.CompletedTaskId, processStateFromProto(req.CompletedState), executionResultFromProto(req.CompletedResult))
		s.wake.Notify(wakeup.ReasonStateUpdated)
	}
	if req.ReportOnly {
		return &proto.UpdateGridTaskStateAndGetNextResponse{}, nil
	}

	task, closed := s.gridTasks.Dequeue(req.JobId, req.GridWorkerId)
	if closed {
		s.scheduler.ReleaseGridWorker(req.JobId, req.AgentId)
		return &proto.UpdateGridTaskStateAndGetNextResponse{QueueClosed: true}, nil
	}
	if task == nil {
		return &proto.UpdateGridTaskStateAndGetNextResponse{}, nil
	}
	return &proto.UpdateGridTaskStateAndGetNextResponse{NextTask: gridTaskToProto(*task)}, nil
}
