package registry

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/cuemby/gridworks/pkg/log"
	"github.com/cuemby/gridworks/pkg/types"
)

// gridQueue is one grid job's append-only task list plus per-task state.
type gridQueue struct {
	mu            sync.Mutex
	tasks         []*types.GridTask // arrival order; index is NOT task id
	byID          map[int64]*types.GridTask
	nextDequeue   int
	allTasksAdded bool
}

// GridTaskRegistry is the per-grid-job ordered task queue plus state
// record described in §4.3.
type GridTaskRegistry struct {
	mu     sync.RWMutex
	queues map[string]*gridQueue

	logger zerolog.Logger
}

// NewGridTaskRegistry creates an empty grid-task registry.
func NewGridTaskRegistry() *GridTaskRegistry {
	return &GridTaskRegistry{
		queues: make(map[string]*gridQueue),
		logger: log.WithComponent("grid-task-registry"),
	}
}

func (r *GridTaskRegistry) queueFor(jobID string) *gridQueue {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.queues[jobID]
	if !ok {
		q = &gridQueue{byID: make(map[int64]*types.GridTask)}
		r.queues[jobID] = q
	}
	return q
}

// AppendTasks appends tasks in arrival order and optionally closes the
// queue. Rejects (returns false) if the queue was already closed.
func (r *GridTaskRegistry) AppendTasks(jobID string, tasks []types.GridTask, allAdded bool) bool {
	q := r.queueFor(jobID)
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.allTasksAdded {
		r.logger.Warn().Str("job_id", jobID).Msg("rejecting tasks appended after queue closed")
		return false
	}

	for i := range tasks {
		t := tasks[i]
		if t.State == "" {
			t.State = types.ProcessStateRunRequested
		}
		stored := t
		q.tasks = append(q.tasks, &stored)
		q.byID[stored.TaskID] = &stored
	}
	if allAdded {
		q.allTasksAdded = true // monotonic false->true, invariant 4
	}
	return true
}

// Dequeue pops the next unclaimed task in arrival order for workerID,
// returning a copy of it with closed=false. With no task left it returns
// a nil task, and closed reports whether the queue is closed: true
// signals the worker should exit, false means "nothing right now, keep
// polling".
func (r *GridTaskRegistry) Dequeue(jobID, workerID string) (task *types.GridTask, closed bool) {
	q := r.queueFor(jobID)
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.nextDequeue < len(q.tasks) {
		t := q.tasks[q.nextDequeue]
		q.nextDequeue++
		t.State = types.ProcessStateRunRequested
		t.WorkerID = workerID
		out := *t
		return &out, false
	}
	return nil, q.allTasksAdded
}

// UpdateTask applies a state transition for one task; write-once for
// terminal states, otherwise overwrites (§4.3).
func (r *GridTaskRegistry) UpdateTask(jobID string, taskID int64, newState types.ProcessState, result types.ExecutionResult) bool {
	q := r.queueFor(jobID)
	q.mu.Lock()
	defer q.mu.Unlock()

	t, ok := q.byID[taskID]
	if !ok {
		return false
	}
	if t.State.IsTerminal() && t.State != newState {
		r.logger.Warn().
			Str("job_id", jobID).
			Int64("task_id", taskID).
			Str("from", string(t.State)).
			Str("attempted", string(newState)).
			Msg("ignoring transition out of terminal state")
		return false
	}
	t.State = newState
	t.Result = result
	return true
}

// States returns every task's (id, state) pair not present in ignore.
func (r *GridTaskRegistry) States(jobID string, ignore map[int64]bool) []types.GridTask {
	q := r.queueFor(jobID)
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]types.GridTask, 0, len(q.tasks))
	for _, t := range q.tasks {
		if ignore[t.TaskID] {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// AllTasksAdded reports whether the queue's latch has been closed.
func (r *GridTaskRegistry) AllTasksAdded(jobID string) bool {
	q := r.queueFor(jobID)
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.allTasksAdded
}

// HasPendingTasks reports whether any task in the queue has not yet been
// dequeued — the scheduler's signal that the grid job still needs
// worker capacity.
func (r *GridTaskRegistry) HasPendingTasks(jobID string) bool {
	q := r.queueFor(jobID)
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.nextDequeue < len(q.tasks)
}

// SyntheticState computes the grid job's aggregate state per §4.3:
// SUCCEEDED iff the queue is closed and every task terminated
// SUCCEEDED; RUNNING iff any task is non-terminal or the queue is still
// open; otherwise (closed, all terminal, at least one failure) the
// aggregate is still reported as RUNNING while any worker remains
// assigned, and only flips to a failure-reflecting terminal read once
// the caller confirms no workers are left (the coordinator passes
// scheduler.Scheduler.NoWorkersLeft, which tracks worker counts, as
// noWorkersLeft).
func (r *GridTaskRegistry) SyntheticState(jobID string, noWorkersLeft bool) types.ProcessState {
	q := r.queueFor(jobID)
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.allTasksAdded {
		return types.ProcessStateRunning
	}

	sawFailure := false
	for _, t := range q.tasks {
		if !t.State.IsTerminal() {
			return types.ProcessStateRunning
		}
		if t.State != types.ProcessStateSucceeded {
			sawFailure = true
		}
	}

	if !sawFailure {
		return types.ProcessStateSucceeded
	}
	if !noWorkersLeft {
		return types.ProcessStateRunning
	}
	// Aggregate "some tasks failed" with no single ProcessState of its
	// own in the enum; clients are expected to inspect per-task states
	// for specifics (§4.3), so the closest terminal value available is
	// surfaced here.
	return types.ProcessStateRunRequestFailed
}
