// Package registry holds the two canonical, in-memory stores the
// coordinator serializes mutations through: the job registry (§4.1) and
// the grid-task registry (§4.3). Each job id / grid job id gets its own
// mutex rather than one global lock, per §4.5.
package registry

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cuemby/gridworks/pkg/log"
	"github.com/cuemby/gridworks/pkg/types"
)

// AddJobOutcome is the result of add_job.
type AddJobOutcome int

const (
	AddJobAdded AddJobOutcome = iota
	AddJobIsDuplicate
)

var jobIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateJobID enforces the restricted charset from §3: letters,
// digits, `.`, `-`, `_`.
func ValidateJobID(id string) error {
	if id == "" || !jobIDPattern.MatchString(id) {
		return fmt.Errorf("registry: invalid job id %q: must be nonempty and match [A-Za-z0-9._-]+", id)
	}
	return nil
}

type jobEntry struct {
	mu     sync.Mutex
	job    types.Job
	state  types.ProcessState
	result types.ExecutionResult
}

// JobRegistry is the canonical store of submitted jobs, keyed by job id.
type JobRegistry struct {
	mu   sync.RWMutex // guards the map itself, not individual entries
	jobs map[string]*jobEntry

	logger zerolog.Logger
}

// NewJobRegistry creates an empty job registry.
func NewJobRegistry() *JobRegistry {
	return &JobRegistry{
		jobs:   make(map[string]*jobEntry),
		logger: log.WithComponent("job-registry"),
	}
}

// AddJob validates and inserts job, or reports a duplicate. Per
// invariant 1, a job id collision never compares contents or alters
// state — it simply reports IS_DUPLICATE.
func (r *JobRegistry) AddJob(job types.Job) (AddJobOutcome, error) {
	if err := ValidateJobID(job.JobID); err != nil {
		return 0, err
	}
	if err := validateDeployments(job); err != nil {
		return 0, err
	}
	if err := validateResourceVector(job.ResourceRequirement); err != nil {
		return 0, err
	}

	r.mu.Lock()
	if _, exists := r.jobs[job.JobID]; exists {
		r.mu.Unlock()
		r.logger.Debug().Str("job_id", job.JobID).Msg("duplicate job submission")
		return AddJobIsDuplicate, nil
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	r.jobs[job.JobID] = &jobEntry{job: job, state: types.ProcessStateRunRequested}
	r.mu.Unlock()

	r.logger.Info().Str("job_id", job.JobID).Float64("priority", job.Priority).Msg("job added")
	return AddJobAdded, nil
}

// Get returns a copy of the stored job, if known.
func (r *JobRegistry) Get(jobID string) (types.Job, bool) {
	r.mu.RLock()
	e, ok := r.jobs[jobID]
	r.mu.RUnlock()
	if !ok {
		return types.Job{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.job, true
}

// SimpleState returns a non-grid job's own state, or types.ProcessStateUnknown
// if the id is not known. Grid job synthetic state is computed by the
// grid-task registry and layered on top by the coordinator.
func (r *JobRegistry) SimpleState(jobID string) types.ProcessState {
	r.mu.RLock()
	e, ok := r.jobs[jobID]
	r.mu.RUnlock()
	if !ok {
		return types.ProcessStateUnknown
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// UpdateState applies a state transition if the job is known and its
// current state is non-terminal or already equals newState (idempotent
// retry). Transitions out of a terminal state are ignored and logged,
// never erroring the caller (§4.1, §8 "terminal monotonicity").
func (r *JobRegistry) UpdateState(jobID string, newState types.ProcessState, result types.ExecutionResult) bool {
	r.mu.RLock()
	e, ok := r.jobs[jobID]
	r.mu.RUnlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.IsTerminal() && e.state != newState {
		r.logger.Warn().
			Str("job_id", jobID).
			Str("from", string(e.state)).
			Str("attempted", string(newState)).
			Msg("ignoring transition out of terminal state")
		return false
	}
	e.state = newState
	e.result = result
	return true
}

// PendingNonGrid returns jobs in RUN_REQUESTED that are not grid jobs —
// candidates for the scheduler's non-grid assignment pass. isAssigned
// reports whether a non-grid job already has an agent (invariant 7: at
// most one assignment).
func (r *JobRegistry) PendingNonGrid(isAssigned func(jobID string) bool) []types.Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pending []types.Job
	for id, e := range r.jobs {
		e.mu.Lock()
		state, job := e.state, e.job
		e.mu.Unlock()

		if job.IsGrid() || state != types.ProcessStateRunRequested {
			continue
		}
		if isAssigned(id) {
			continue
		}
		pending = append(pending, job)
	}
	return pending
}

// GridJobs returns every job whose spec is a grid job and whose state is
// not yet terminal.
func (r *JobRegistry) GridJobs() []types.Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []types.Job
	for _, e := range r.jobs {
		e.mu.Lock()
		job, state := e.job, e.state
		e.mu.Unlock()
		if job.IsGrid() && !state.IsTerminal() {
			out = append(out, job)
		}
	}
	return out
}

func validateDeployments(job types.Job) error {
	switch job.CodeDeployment.Kind {
	case types.CodeDeploymentServerAvailableFolder:
		if len(job.CodeDeployment.FolderPaths) == 0 {
			return fmt.Errorf("registry: job %s: server-available-folder deployment requires at least one path", job.JobID)
		}
	case types.CodeDeploymentGitRepoCommit, types.CodeDeploymentGitRepoBranch:
		if job.CodeDeployment.RepoURL == "" {
			return fmt.Errorf("registry: job %s: git deployment requires a repo url", job.JobID)
		}
	default:
		return fmt.Errorf("registry: job %s: unknown code deployment kind %d", job.JobID, job.CodeDeployment.Kind)
	}

	switch job.InterpreterDeployment.Kind {
	case types.InterpreterServerAvailableInterpreter:
		if job.InterpreterDeployment.InterpreterPath == "" {
			return fmt.Errorf("registry: job %s: server-available-interpreter requires a path", job.JobID)
		}
	case types.InterpreterContainerAtDigest, types.InterpreterContainerAtTag:
		if job.InterpreterDeployment.Repository == "" {
			return fmt.Errorf("registry: job %s: container interpreter deployment requires a repository", job.JobID)
		}
	case types.InterpreterServerAvailableContainer:
		if job.InterpreterDeployment.ImageName == "" {
			return fmt.Errorf("registry: job %s: server-available-container requires an image name", job.JobID)
		}
	default:
		return fmt.Errorf("registry: job %s: unknown interpreter deployment kind %d", job.JobID, job.InterpreterDeployment.Kind)
	}
	return nil
}

func validateResourceVector(v types.ResourceVector) error {
	for name, amount := range v {
		if amount < 0 {
			return fmt.Errorf("registry: negative resource requirement %s=%v", name, amount)
		}
	}
	return nil
}
