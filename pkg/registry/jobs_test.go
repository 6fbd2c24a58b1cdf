package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/gridworks/pkg/types"
)

func validJob(id string) types.Job {
	return types.Job{
		JobID:                 id,
		Priority:              1,
		CodeDeployment:        types.CodeDeployment{Kind: types.CodeDeploymentServerAvailableFolder, FolderPaths: []string{"."}},
		InterpreterDeployment: types.InterpreterDeployment{Kind: types.InterpreterServerAvailableInterpreter, InterpreterPath: "/usr/bin/python3"},
		ResourceRequirement:   types.ResourceVector{"cpu": 1},
		Spec:                  types.JobSpec{Kind: types.JobSpecCommand, CommandArgs: []string{"true"}},
	}
}

func TestValidateJobID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "job1", false},
		{"dots dashes underscores", "job.1-run_2", false},
		{"empty", "", true},
		{"spaces", "job 1", true},
		{"slash", "job/1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJobID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddJobDuplicateDoesNotAlterState(t *testing.T) {
	r := NewJobRegistry()

	outcome, err := r.AddJob(validJob("j1"))
	require.NoError(t, err)
	assert.Equal(t, AddJobAdded, outcome)

	r.UpdateState("j1", types.ProcessStateSucceeded, types.ExecutionResult{})

	dup := validJob("j1")
	dup.Priority = 99 // different contents must not matter
	outcome, err = r.AddJob(dup)
	require.NoError(t, err)
	assert.Equal(t, AddJobIsDuplicate, outcome)

	job, _ := r.Get("j1")
	assert.Equal(t, float64(1), job.Priority)
	assert.Equal(t, types.ProcessStateSucceeded, r.SimpleState("j1"))
}

func TestAddJobRejectsInvalidResourceVector(t *testing.T) {
	r := NewJobRegistry()
	job := validJob("j1")
	job.ResourceRequirement = types.ResourceVector{"cpu": -1}

	_, err := r.AddJob(job)
	assert.Error(t, err)

	_, ok := r.Get("j1")
	assert.False(t, ok)
}

func TestUnknownJobStateIsUnknown(t *testing.T) {
	r := NewJobRegistry()
	assert.Equal(t, types.ProcessStateUnknown, r.SimpleState("nope"))
}

func TestUpdateStateIsWriteOnceTerminal(t *testing.T) {
	r := NewJobRegistry()
	_, err := r.AddJob(validJob("j1"))
	require.NoError(t, err)

	ok := r.UpdateState("j1", types.ProcessStateRunning, types.ExecutionResult{})
	assert.True(t, ok)

	ok = r.UpdateState("j1", types.ProcessStateSucceeded, types.ExecutionResult{})
	assert.True(t, ok)
	assert.Equal(t, types.ProcessStateSucceeded, r.SimpleState("j1"))

	ok = r.UpdateState("j1", types.ProcessStateRunning, types.ExecutionResult{})
	assert.False(t, ok)
	assert.Equal(t, types.ProcessStateSucceeded, r.SimpleState("j1"))
}

func TestUpdateStateIdempotentRetrySameTerminal(t *testing.T) {
	r := NewJobRegistry()
	_, err := r.AddJob(validJob("j1"))
	require.NoError(t, err)

	r.UpdateState("j1", types.ProcessStateSucceeded, types.ExecutionResult{ReturnCode: 0})
	ok := r.UpdateState("j1", types.ProcessStateSucceeded, types.ExecutionResult{ReturnCode: 0})
	assert.True(t, ok)
}

func TestPendingNonGridExcludesGridAndAssigned(t *testing.T) {
	r := NewJobRegistry()
	nonGrid := validJob("j1")
	grid := validJob("j2")
	grid.Spec = types.JobSpec{Kind: types.JobSpecGrid}

	_, err := r.AddJob(nonGrid)
	require.NoError(t, err)
	_, err = r.AddJob(grid)
	require.NoError(t, err)

	pending := r.PendingNonGrid(func(string) bool { return false })
	require.Len(t, pending, 1)
	assert.Equal(t, "j1", pending[0].JobID)

	pending = r.PendingNonGrid(func(id string) bool { return id == "j1" })
	assert.Empty(t, pending)
}

func TestGridJobsExcludesTerminal(t *testing.T) {
	r := NewJobRegistry()
	grid := validJob("g1")
	grid.Spec = types.JobSpec{Kind: types.JobSpecGrid}
	_, err := r.AddJob(grid)
	require.NoError(t, err)

	assert.Len(t, r.GridJobs(), 1)

	r.UpdateState("g1", types.ProcessStateSucceeded, types.ExecutionResult{})
	assert.Empty(t, r.GridJobs())
}
