package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/gridworks/pkg/ledger"
	"github.com/cuemby/gridworks/pkg/registry"
	"github.com/cuemby/gridworks/pkg/types"
	"github.com/cuemby/gridworks/pkg/wakeup"
)

func newTestScheduler(seed int64) (*Scheduler, *registry.JobRegistry, *registry.GridTaskRegistry, *ledger.Ledger) {
	jobs := registry.NewJobRegistry()
	gridTasks := registry.NewGridTaskRegistry()
	l := ledger.New()
	wake := wakeup.New()
	s := New(jobs, gridTasks, l, wake, rand.New(rand.NewSource(seed)))
	return s, jobs, gridTasks, l
}

func simpleJob(id string, priority float64, cpu float64) types.Job {
	return types.Job{
		JobID:                 id,
		Priority:              priority,
		ResourceRequirement:   types.ResourceVector{"cpu": cpu},
		CodeDeployment:        types.CodeDeployment{Kind: types.CodeDeploymentServerAvailableFolder, FolderPaths: []string{"."}},
		InterpreterDeployment: types.InterpreterDeployment{Kind: types.InterpreterServerAvailableInterpreter, InterpreterPath: "/usr/bin/python3"},
		SubmittedAt:           time.Now(),
	}
}

// Literal scenario: two jobs of priority 1 and 3 competing for a single
// agent slot converge, over many weighted picks, to a dispatch ratio
// near 1:3.
func TestScheduleWeightedFairnessConvergesToPriorityRatio(t *testing.T) {
	s, jobs, _, l := newTestScheduler(42)
	l.Register("agent-1", types.ResourceVector{"cpu": 4}, "")

	low := simpleJob("low", 1, 4)
	high := simpleJob("high", 3, 4)
	_, err := jobs.AddJob(low)
	require.NoError(t, err)
	_, err = jobs.AddJob(high)
	require.NoError(t, err)

	counts := map[string]int{}
	const rounds = 4000
	for i := 0; i < rounds; i++ {
		s.mu.Lock()
		candidates := []candidate{{job: low}, {job: high}}
		chosen := weightedPick(candidates, s.rng)
		s.mu.Unlock()
		counts[chosen.job.JobID]++
	}

	ratio := float64(counts["high"]) / float64(counts["low"])
	assert.InDelta(t, 3.0, ratio, 0.5, "expected roughly 3:1 dispatch ratio, got %d high vs %d low", counts["high"], counts["low"])
}

// Literal scenario: an agent advertising {cpu:4} facing two {cpu:4} jobs
// never runs both at once — exactly one assignment holds the agent's
// full capacity until it is released.
func TestScheduleSerializesSingleAgentCapacity(t *testing.T) {
	s, jobs, _, l := newTestScheduler(1)
	l.Register("agent-1", types.ResourceVector{"cpu": 4}, "")

	jobA := simpleJob("a", 1, 4)
	jobB := simpleJob("b", 1, 4)
	_, err := jobs.AddJob(jobA)
	require.NoError(t, err)
	_, err = jobs.AddJob(jobB)
	require.NoError(t, err)

	s.schedule()

	assert.Len(t, s.nonGridAssignment, 1, "only one job should hold the agent's capacity at a time")

	var assignedJob string
	for jobID := range s.nonGridAssignment {
		assignedJob = jobID
	}

	delivered := s.DrainDeliveries("agent-1")
	require.Len(t, delivered, 1)
	assert.Equal(t, assignedJob, delivered[0].Job.JobID)

	snap, ok := l.Get("agent-1")
	require.True(t, ok)
	assert.Equal(t, float64(0), snap.Available["cpu"])

	// A second pass must not schedule the other job: no capacity left.
	s.schedule()
	assert.Len(t, s.nonGridAssignment, 1)

	// Releasing frees capacity for the other job to be picked up.
	s.ReleaseNonGridJob(assignedJob)
	snap, ok = l.Get("agent-1")
	require.True(t, ok)
	assert.Equal(t, float64(4), snap.Available["cpu"])
}

// Literal scenario: a job whose resource requirement exceeds every known
// agent's totals is marked RESOURCES_NOT_AVAILABLE, not merely left pending.
func TestScheduleDetectsUnsatisfiableDemand(t *testing.T) {
	s, jobs, _, l := newTestScheduler(1)
	l.Register("agent-1", types.ResourceVector{"cpu": 2}, "")

	tooBig := simpleJob("too-big", 1, 100)
	_, err := jobs.AddJob(tooBig)
	require.NoError(t, err)

	s.schedule()

	assert.Equal(t, types.ProcessStateResourcesNotAvailable, jobs.SimpleState("too-big"))
}

// Literal scenario: a grid job with pending tasks is assigned a worker on
// every agent with free capacity, not just one, since grid jobs run one
// worker per agent concurrently.
func TestScheduleAssignsGridWorkersAcrossAgents(t *testing.T) {
	s, jobs, gridTasks, l := newTestScheduler(7)
	l.Register("agent-1", types.ResourceVector{"cpu": 2}, "")
	l.Register("agent-2", types.ResourceVector{"cpu": 2}, "")

	job := simpleJob("grid-job", 1, 2)
	job.Spec = types.JobSpec{Kind: types.JobSpecGrid}
	_, err := jobs.AddJob(job)
	require.NoError(t, err)

	gridTasks.AppendTasks("grid-job", []types.GridTask{
		{TaskID: 1}, {TaskID: 2}, {TaskID: 3},
	}, true)

	s.schedule()

	assert.Len(t, s.gridWorkers["grid-job"], 2, "expected one worker per agent with capacity")

	for _, agentID := range []string{"agent-1", "agent-2"} {
		delivered := s.DrainDeliveries(agentID)
		require.Len(t, delivered, 1)
		assert.NotEmpty(t, delivered[0].GridWorkerID)
		assert.Equal(t, "grid-job", delivered[0].Job.JobID)
	}

	// A further pass must not assign a second worker per agent.
	s.schedule()
	assert.Len(t, s.gridWorkers["grid-job"], 2)
}

// Literal scenario: an agent that stops heartbeating is removed from the
// ledger and its outstanding work (non-grid job and grid worker's tasks)
// is failed with ERROR_GETTING_STATE.
func TestReapLostAgentsFailsOutstandingWork(t *testing.T) {
	s, jobs, gridTasks, l := newTestScheduler(1)
	l.Register("agent-1", types.ResourceVector{"cpu": 4}, "")

	nonGrid := simpleJob("solo", 1, 2)
	_, err := jobs.AddJob(nonGrid)
	require.NoError(t, err)

	gridJob := simpleJob("grid-job", 1, 2)
	gridJob.Spec = types.JobSpec{Kind: types.JobSpecGrid}
	_, err = jobs.AddJob(gridJob)
	require.NoError(t, err)
	gridTasks.AppendTasks("grid-job", []types.GridTask{{TaskID: 1}}, true)

	// One assignment per agent per pass: the second pass places whichever
	// of the two jobs the first pass did not pick.
	s.schedule()
	s.schedule()
	require.Contains(t, s.nonGridAssignment, "solo")
	require.Contains(t, s.gridWorkers, "grid-job")

	workerID, ok := s.GridWorkerID("grid-job", "agent-1")
	require.True(t, ok)
	task, closed := gridTasks.Dequeue("grid-job", workerID)
	require.NotNil(t, task)
	require.False(t, closed)

	s.heartbeatExpiry = time.Millisecond
	time.Sleep(2 * time.Millisecond)
	s.reapLostAgents()

	assert.Equal(t, types.ProcessStateErrorGettingState, jobs.SimpleState("solo"))

	states := gridTasks.States("grid-job", nil)
	require.Len(t, states, 1)
	assert.Equal(t, types.ProcessStateErrorGettingState, states[0].State)

	_, stillThere := l.Get("agent-1")
	assert.False(t, stillThere)
}
