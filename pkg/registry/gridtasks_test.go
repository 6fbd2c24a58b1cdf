package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cuemby/gridworks/pkg/types"
)

func TestAppendTasksRejectedAfterClose(t *testing.T) {
	r := NewGridTaskRegistry()

	ok := r.AppendTasks("g1", []types.GridTask{{TaskID: 0}}, true)
	assert.True(t, ok)

	ok = r.AppendTasks("g1", []types.GridTask{{TaskID: 1}}, false)
	assert.False(t, ok)
}

func TestDequeueOrderAndNoDoubleDelivery(t *testing.T) {
	r := NewGridTaskRegistry()
	r.AppendTasks("g1", []types.GridTask{{TaskID: 0}, {TaskID: 1}, {TaskID: 2}}, false)

	first, closed := r.Dequeue("g1", "w1")
	assert.False(t, closed)
	assert.Equal(t, int64(0), first.TaskID)

	second, closed := r.Dequeue("g1", "w2")
	assert.False(t, closed)
	assert.Equal(t, int64(1), second.TaskID)

	third, closed := r.Dequeue("g1", "w1")
	assert.False(t, closed)
	assert.Equal(t, int64(2), third.TaskID)

	fourth, closed := r.Dequeue("g1", "w1")
	assert.Nil(t, fourth)
	assert.False(t, closed) // queue empty but not yet closed
}

func TestDequeueSignalsClosedQueue(t *testing.T) {
	r := NewGridTaskRegistry()
	r.AppendTasks("g1", []types.GridTask{{TaskID: 0}}, true)

	_, closed := r.Dequeue("g1", "w1")
	assert.False(t, closed)

	task, closed := r.Dequeue("g1", "w1")
	assert.Nil(t, task)
	assert.True(t, closed)
}

func TestUpdateTaskWriteOnceTerminal(t *testing.T) {
	r := NewGridTaskRegistry()
	r.AppendTasks("g1", []types.GridTask{{TaskID: 0}}, false)
	r.Dequeue("g1", "w1")

	ok := r.UpdateTask("g1", 0, types.ProcessStateSucceeded, types.ExecutionResult{})
	assert.True(t, ok)

	ok = r.UpdateTask("g1", 0, types.ProcessStateRunning, types.ExecutionResult{})
	assert.False(t, ok)

	states := r.States("g1", nil)
	assert.Equal(t, types.ProcessStateSucceeded, states[0].State)
}

func TestStatesIgnoreSet(t *testing.T) {
	r := NewGridTaskRegistry()
	r.AppendTasks("g1", []types.GridTask{{TaskID: 0}, {TaskID: 1}}, true)

	states := r.States("g1", map[int64]bool{0: true})
	assert.Len(t, states, 1)
	assert.Equal(t, int64(1), states[0].TaskID)
}

func TestSyntheticStateSucceeded(t *testing.T) {
	r := NewGridTaskRegistry()
	r.AppendTasks("g1", []types.GridTask{{TaskID: 0}, {TaskID: 1}}, true)
	r.Dequeue("g1", "w1")
	r.Dequeue("g1", "w1")
	r.UpdateTask("g1", 0, types.ProcessStateSucceeded, types.ExecutionResult{})
	r.UpdateTask("g1", 1, types.ProcessStateSucceeded, types.ExecutionResult{})

	assert.Equal(t, types.ProcessStateSucceeded, r.SyntheticState("g1", true))
}

func TestSyntheticStateRunningWhileOpen(t *testing.T) {
	r := NewGridTaskRegistry()
	r.AppendTasks("g1", []types.GridTask{{TaskID: 0}}, false)

	assert.Equal(t, types.ProcessStateRunning, r.SyntheticState("g1", true))
}

func TestSyntheticStateRunningUntilWorkersGone(t *testing.T) {
	r := NewGridTaskRegistry()
	r.AppendTasks("g1", []types.GridTask{{TaskID: 0}}, true)
	r.Dequeue("g1", "w1")
	r.UpdateTask("g1", 0, types.ProcessStateNonZeroReturnCode, types.ExecutionResult{ReturnCode: 1})

	assert.Equal(t, types.ProcessStateRunning, r.SyntheticState("g1", false))
	assert.Equal(t, types.ProcessStateRunRequestFailed, r.SyntheticState("g1", true))
}

func TestAllTasksAddedMonotonic(t *testing.T) {
	r := NewGridTaskRegistry()
	assert.False(t, r.AllTasksAdded("g1"))
	r.AppendTasks("g1", nil, true)
	assert.True(t, r.AllTasksAdded("g1"))
}

func TestHasPendingTasks(t *testing.T) {
	r := NewGridTaskRegistry()
	r.AppendTasks("g1", []types.GridTask{{TaskID: 0}}, false)
	assert.True(t, r.HasPendingTasks("g1"))

	r.Dequeue("g1", "w1")
	assert.False(t, r.HasPendingTasks("g1"))
}
