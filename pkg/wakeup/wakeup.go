// Package wakeup implements the non-blocking signal bus that wakes the
// scheduler on new job submission, agent (re)registration and
// resource-releasing state updates, per the concurrency model's
// "scheduler is a background task awakened by..." rule.
package wakeup

// Reason identifies what triggered a wakeup, for logging only — the
// scheduler always re-scans the full pending set regardless of reason.
type Reason string

const (
	ReasonJobSubmitted    Reason = "job_submitted"
	ReasonAgentRegistered Reason = "agent_registered"
	ReasonStateUpdated    Reason = "state_updated"
)

// Signal is a coalescing wakeup channel: repeated Notify calls between
// two receives collapse into a single pending wakeup, so a burst of
// submissions triggers one scheduling pass, not one per submission.
type Signal struct {
	ch chan Reason
}

// New creates a Signal with a buffer of one pending wakeup.
func New() *Signal {
	return &Signal{ch: make(chan Reason, 1)}
}

// Notify schedules a wakeup. Non-blocking: if one is already pending it
// is a no-op.
func (s *Signal) Notify(reason Reason) {
	select {
	case s.ch <- reason:
	default:
	}
}

// C returns the channel the scheduler's run loop selects on.
func (s *Signal) C() <-chan Reason {
	return s.ch
}
