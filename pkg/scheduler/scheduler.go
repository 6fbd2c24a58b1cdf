// Package scheduler implements §4.4: priority-weighted fair-share
// matching of pending jobs to agent resources, and the grid-worker
// lifecycle (one worker per grid job per agent, not one per task).
package scheduler

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cuemby/gridworks/pkg/ledger"
	"github.com/cuemby/gridworks/pkg/log"
	"github.com/cuemby/gridworks/pkg/metrics"
	"github.com/cuemby/gridworks/pkg/registry"
	"github.com/cuemby/gridworks/pkg/types"
	"github.com/cuemby/gridworks/pkg/wakeup"
)

const (
	defaultTickInterval    = 2 * time.Second
	defaultReaperInterval  = 5 * time.Second
	defaultHeartbeatExpiry = 20 * time.Second
)

// Scheduler matches pending jobs against free agent capacity and owns
// the bookkeeping of which agent runs which non-grid job, and which
// agent hosts which grid worker.
type Scheduler struct {
	jobs      *registry.JobRegistry
	gridTasks *registry.GridTaskRegistry
	ledger    *ledger.Ledger
	wake      *wakeup.Signal

	logger          zerolog.Logger
	tickInterval    time.Duration
	reaperInterval  time.Duration
	heartbeatExpiry time.Duration

	mu                sync.Mutex
	nonGridAssignment map[string]string                       // jobID -> agentID
	gridWorkers       map[string]map[string]*types.GridWorker // jobID -> agentID -> worker

	deliveryMu      sync.Mutex
	pendingDelivery map[string][]types.JobToRun // agentID -> jobs not yet polled

	rng *rand.Rand

	stopCh chan struct{}
	doneCh chan struct{}
}

// New creates a Scheduler. Pass a seeded rand source in tests for
// deterministic weighted selection; production callers may pass nil to
// get a time-seeded one.
func New(jobs *registry.JobRegistry, gridTasks *registry.GridTaskRegistry, l *ledger.Ledger, wake *wakeup.Signal, rng *rand.Rand) *Scheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scheduler{
		jobs:              jobs,
		gridTasks:         gridTasks,
		ledger:            l,
		wake:              wake,
		logger:            log.WithComponent("scheduler"),
		tickInterval:      defaultTickInterval,
		reaperInterval:    defaultReaperInterval,
		heartbeatExpiry:   defaultHeartbeatExpiry,
		nonGridAssignment: make(map[string]string),
		gridWorkers:       make(map[string]map[string]*types.GridWorker),
		pendingDelivery:   make(map[string][]types.JobToRun),
		rng:               rng,
		stopCh:            make(chan struct{}),
		doneCh:            make(chan struct{}),
	}
}

// SetTickInterval overrides the scheduling pass cadence. Must be called
// before Start.
func (s *Scheduler) SetTickInterval(d time.Duration) { s.tickInterval = d }

// SetReaperInterval overrides the lost-agent sweep cadence. Must be
// called before Start.
func (s *Scheduler) SetReaperInterval(d time.Duration) { s.reaperInterval = d }

// SetHeartbeatExpiry overrides how long an agent may go unseen before
// the reaper considers it lost. Must be called before Start.
func (s *Scheduler) SetHeartbeatExpiry(d time.Duration) { s.heartbeatExpiry = d }

// Start launches the scheduler's background loop.
func (s *Scheduler) Start() {
	go s.run()
}

// Stop halts the background loop and waits for it to exit.
func (s *Scheduler) Stop() {
	close(s.stopCh)
	<-s.doneCh
}

func (s *Scheduler) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()
	reaper := time.NewTicker(s.reaperInterval)
	defer reaper.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.schedule()
		case <-s.wake.C():
			s.schedule()
		case <-reaper.C:
			s.reapLostAgents()
		}
	}
}

// schedule runs one pass of the algorithm in §4.4: build a candidate set
// per agent, weighted-select one job per agent with free capacity, emit
// the assignment, and detect demand that can never be satisfied.
func (s *Scheduler) schedule() {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.SchedulingLatency)

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.ledger.Snapshot()
	pendingNonGrid := s.jobs.PendingNonGrid(func(jobID string) bool {
		_, assigned := s.nonGridAssignment[jobID]
		return assigned
	})
	gridJobs := s.jobs.GridJobs()

	for _, agent := range snapshot {
		candidates := s.candidatesFor(agent, pendingNonGrid, gridJobs)
		if len(candidates) == 0 {
			continue
		}
		chosen := weightedPick(candidates, s.rng)
		s.assign(agent.AgentID, chosen)
	}

	s.detectUnsatisfiableDemand(pendingNonGrid, gridJobs)
}

type candidate struct {
	job    types.Job
	isGrid bool
}

func (s *Scheduler) candidatesFor(agent types.AgentSnapshot, pendingNonGrid []types.Job, gridJobs []types.Job) []candidate {
	var out []candidate

	for _, job := range pendingNonGrid {
		if !agent.Available.Fits(job.ResourceRequirement) {
			continue
		}
		out = append(out, candidate{job: job})
	}

	for _, job := range gridJobs {
		if !s.gridTasks.HasPendingTasks(job.JobID) {
			continue
		}
		if _, hasWorker := s.gridWorkers[job.JobID][agent.AgentID]; hasWorker {
			continue
		}
		if !agent.Available.Fits(job.ResourceRequirement) {
			continue
		}
		out = append(out, candidate{job: job, isGrid: true})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].job.SubmittedAt.Before(out[j].job.SubmittedAt)
	})
	return out
}

// weightedPick selects one candidate with probability proportional to
// its job's priority; ties in the random draw favor the earliest
// submission because candidates are pre-sorted by SubmittedAt.
func weightedPick(candidates []candidate, rng *rand.Rand) candidate {
	var total float64
	for _, c := range candidates {
		total += c.job.Priority
	}
	if total <= 0 {
		return candidates[0]
	}

	r := rng.Float64() * total
	var cumulative float64
	for _, c := range candidates {
		cumulative += c.job.Priority
		if r < cumulative {
			return c
		}
	}
	return candidates[len(candidates)-1]
}

func (s *Scheduler) assign(agentID string, c candidate) {
	jobID := c.job.JobID

	if c.isGrid {
		if !s.ledger.Reserve(agentID, c.job.ResourceRequirement, jobID) {
			return
		}
		workerID := uuid.NewString()
		if s.gridWorkers[jobID] == nil {
			s.gridWorkers[jobID] = make(map[string]*types.GridWorker)
		}
		s.gridWorkers[jobID][agentID] = &types.GridWorker{WorkerID: workerID, JobID: jobID, AgentID: agentID}

		s.logger.Info().Str("job_id", jobID).Str("agent_id", agentID).Str("grid_worker_id", workerID).Msg("grid worker assigned")
		s.enqueueDelivery(agentID, types.JobToRun{Job: c.job, GridWorkerID: workerID})
	} else {
		if !s.ledger.Reserve(agentID, c.job.ResourceRequirement, jobID) {
			return
		}
		s.nonGridAssignment[jobID] = agentID
		s.logger.Info().Str("job_id", jobID).Str("agent_id", agentID).Msg("job assigned")
		s.enqueueDelivery(agentID, types.JobToRun{Job: c.job})
	}

	metrics.JobsScheduled.Inc()
}

func (s *Scheduler) enqueueDelivery(agentID string, jtr types.JobToRun) {
	s.deliveryMu.Lock()
	defer s.deliveryMu.Unlock()
	s.pendingDelivery[agentID] = append(s.pendingDelivery[agentID], jtr)
}

// DrainDeliveries returns and clears the jobs newly assigned to agentID
// since its last poll — called from the coordinator's get_next_jobs
// handler.
func (s *Scheduler) DrainDeliveries(agentID string) []types.JobToRun {
	s.deliveryMu.Lock()
	defer s.deliveryMu.Unlock()
	out := s.pendingDelivery[agentID]
	delete(s.pendingDelivery, agentID)
	return out
}

// detectUnsatisfiableDemand marks a job RESOURCES_NOT_AVAILABLE once its
// requirement exceeds every known agent's totals — demand that can
// never be satisfied, not merely demand that is not satisfied right now.
func (s *Scheduler) detectUnsatisfiableDemand(pendingNonGrid []types.Job, gridJobs []types.Job) {
	check := func(job types.Job) {
		if s.ledger.FitsAny(job.ResourceRequirement) {
			return
		}
		if s.jobs.UpdateState(job.JobID, types.ProcessStateResourcesNotAvailable, types.ExecutionResult{}) {
			s.logger.Warn().Str("job_id", job.JobID).Msg("no agent can ever satisfy this job's resource requirement")
			metrics.JobsResourcesNotAvailable.Inc()
		}
	}
	for _, job := range pendingNonGrid {
		check(job)
	}
	for _, job := range gridJobs {
		if s.gridTasks.HasPendingTasks(job.JobID) {
			check(job)
		}
	}
}

// ReleaseNonGridJob releases agentID's reservation for a terminal
// non-grid job and clears the assignment bookkeeping.
func (s *Scheduler) ReleaseNonGridJob(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agentID, ok := s.nonGridAssignment[jobID]
	if !ok {
		return
	}
	if job, ok := s.jobs.Get(jobID); ok {
		s.ledger.Release(agentID, job.ResourceRequirement)
	}
	delete(s.nonGridAssignment, jobID)
	s.wake.Notify(wakeup.ReasonStateUpdated)
}

// ReleaseGridWorker releases agentID's reservation for a grid job once
// that worker's queue has closed (dequeue returned the closed signal).
func (s *Scheduler) ReleaseGridWorker(jobID, agentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workers := s.gridWorkers[jobID]
	if workers == nil {
		return
	}
	if _, ok := workers[agentID]; !ok {
		return
	}
	if job, ok := s.jobs.Get(jobID); ok {
		s.ledger.Release(agentID, job.ResourceRequirement)
	}
	delete(workers, agentID)
	s.wake.Notify(wakeup.ReasonStateUpdated)
}

// GridWorkerID returns the worker id minted for (jobID, agentID), if any.
func (s *Scheduler) GridWorkerID(jobID, agentID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.gridWorkers[jobID][agentID]
	if !ok {
		return "", false
	}
	return w.WorkerID, true
}

// NoWorkersLeft reports whether a grid job currently has zero assigned
// workers, used to gate the synthetic-failure aggregate state (§4.3).
func (s *Scheduler) NoWorkersLeft(jobID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.gridWorkers[jobID]) == 0
}

// reapLostAgents implements the agent-lost policy decided in
// DESIGN.md: agents not seen within heartbeatExpiry have all their
// outstanding work failed with ERROR_GETTING_STATE and are dropped from
// the ledger (literal scenario 6 in §8).
func (s *Scheduler) reapLostAgents() {
	stale := s.ledger.StaleAgents(time.Now().Add(-s.heartbeatExpiry))
	if len(stale) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, agentID := range stale {
		s.failAgentWorkLocked(agentID)
		s.ledger.Remove(agentID)

		s.logger.Warn().Str("agent_id", agentID).Msg("agent heartbeat timeout, work marked ERROR_GETTING_STATE")
		metrics.AgentsLost.Inc()
	}
}

// FailAgentWork fails every non-terminal job/task currently assigned to
// agentID without removing it from the ledger — used when register_agent
// observes a conflicting re-registration (§4.6: a restarted agent has
// lost all in-flight work, but keeps its ledger entry since it is
// registering again in the same call).
func (s *Scheduler) FailAgentWork(agentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAgentWorkLocked(agentID)
}

func (s *Scheduler) failAgentWorkLocked(agentID string) {
	for jobID, owner := range s.nonGridAssignment {
		if owner != agentID {
			continue
		}
		s.jobs.UpdateState(jobID, types.ProcessStateErrorGettingState, types.ExecutionResult{})
		delete(s.nonGridAssignment, jobID)
	}
	for jobID, workers := range s.gridWorkers {
		w, ok := workers[agentID]
		if !ok {
			continue
		}
		s.gridTasks.FailWorkerTasks(jobID, w.WorkerID)
		delete(workers, agentID)
	}
	s.deliveryMu.Lock()
	delete(s.pendingDelivery, agentID)
	s.deliveryMu.Unlock()
}
