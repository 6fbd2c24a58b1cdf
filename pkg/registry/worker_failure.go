package registry

import "github.com/cuemby/gridworks/pkg/types"

// FailWorkerTasks marks every non-terminal task currently owned by
// workerID as ERROR_GETTING_STATE — used when the coordinator declares
// workerID's agent lost (§5, §7 "liveness").
func (r *GridTaskRegistry) FailWorkerTasks(jobID, workerID string) {
	q := r.queueFor(jobID)
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, t := range q.tasks {
		if t.WorkerID == workerID && !t.State.IsTerminal() {
			t.State = types.ProcessStateErrorGettingState
		}
	}
}
