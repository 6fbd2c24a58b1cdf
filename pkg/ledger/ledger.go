// Package ledger tracks agents and their free resource capacity: the
// only cross-agent shared mutable state in the coordinator (§5),
// serialized behind a single lock held only for the duration of the
// arithmetic.
package ledger

import (
	"sync"
	"time"

	"github.com/cuemby/gridworks/pkg/types"
)

// Ledger is an in-memory record of agents and their total/available
// resource vectors.
type Ledger struct {
	mu     sync.Mutex
	agents map[string]*types.Agent
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{agents: make(map[string]*types.Agent)}
}

// Register adds an agent or re-registers one with the same id.
// Idempotent on same id with same totals and job affinity (only the
// last-seen time is refreshed); a conflicting re-registration (different
// totals or a different job affinity) resets available back to totals
// and drops any prior reservations. A restart that re-registers with
// identical totals and affinity is not told apart from a retry and is
// not reset. After a reset, callers must treat that as
// "all of this agent's in-flight work is lost" and react accordingly
// (see coordinator.Server.RegisterAgent).
func (l *Ledger) Register(agentID string, totals types.ResourceVector, jobAffinity string) (wasReset bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	existing, ok := l.agents[agentID]
	if ok && sameVector(existing.Totals, totals) && existing.JobAffinity == jobAffinity {
		existing.LastSeen = time.Now()
		return false
	}

	l.agents[agentID] = &types.Agent{
		AgentID:     agentID,
		Totals:      totals.Clone(),
		Available:   totals.Clone(),
		JobAffinity: jobAffinity,
		LastSeen:    time.Now(),
	}
	return ok
}

// Touch refreshes an agent's last-seen timestamp without resetting its
// reservations, used on agent polls that are not full re-registrations.
func (l *Ledger) Touch(agentID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if a, ok := l.agents[agentID]; ok {
		a.LastSeen = time.Now()
	}
}

// Reserve atomically subtracts requirement from agentID's available
// vector iff every component of requirement fits, and iff the agent's
// job affinity (if any) is compatible with forJobID.
func (l *Ledger) Reserve(agentID string, requirement types.ResourceVector, forJobID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.agents[agentID]
	if !ok {
		return false
	}
	if a.JobAffinity != "" && a.JobAffinity != forJobID {
		return false
	}
	if !a.Available.Fits(requirement) {
		return false
	}
	for name, amount := range requirement {
		a.Available[name] -= amount
	}
	return true
}

// Release adds requirement back to agentID's available vector, capped
// at totals component-wise (exceeding totals is a caller bug, not a
// normal runtime condition, so it is clamped rather than propagated).
func (l *Ledger) Release(agentID string, requirement types.ResourceVector) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.agents[agentID]
	if !ok {
		return
	}
	for name, amount := range requirement {
		a.Available[name] += amount
		if total, ok := a.Totals[name]; ok && a.Available[name] > total {
			a.Available[name] = total
		}
	}
}

// Remove drops an agent entirely, e.g. on heartbeat timeout.
func (l *Ledger) Remove(agentID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.agents, agentID)
}

// Get returns a copy of one agent's record.
func (l *Ledger) Get(agentID string) (types.Agent, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.agents[agentID]
	if !ok {
		return types.Agent{}, false
	}
	return cloneAgent(a), true
}

// Snapshot returns a point-in-time copy of every agent's totals and
// availability.
func (l *Ledger) Snapshot() []types.AgentSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]types.AgentSnapshot, 0, len(l.agents))
	for _, a := range l.agents {
		out = append(out, types.AgentSnapshot{
			AgentID:   a.AgentID,
			Totals:    a.Totals.Clone(),
			Available: a.Available.Clone(),
		})
	}
	return out
}

// FitsAny reports whether requirement could ever fit some agent's
// totals, regardless of current availability — used to detect demand
// that can never be satisfied (RESOURCES_NOT_AVAILABLE, §4.4).
func (l *Ledger) FitsAny(requirement types.ResourceVector) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, a := range l.agents {
		if a.Totals.Fits(requirement) {
			return true
		}
	}
	return false
}

// AgentsWithCapacityFor returns ids of agents that currently fit
// requirement and are affinity-compatible with forJobID.
func (l *Ledger) AgentsWithCapacityFor(requirement types.ResourceVector, forJobID string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []string
	for id, a := range l.agents {
		if a.JobAffinity != "" && a.JobAffinity != forJobID {
			continue
		}
		if a.Available.Fits(requirement) {
			out = append(out, id)
		}
	}
	return out
}

// StaleAgents returns ids of agents not seen since the cutoff.
func (l *Ledger) StaleAgents(cutoff time.Time) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []string
	for id, a := range l.agents {
		if a.LastSeen.Before(cutoff) {
			out = append(out, id)
		}
	}
	return out
}

func sameVector(a, b types.ResourceVector) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func cloneAgent(a *types.Agent) types.Agent {
	return types.Agent{
		AgentID:     a.AgentID,
		Totals:      a.Totals.Clone(),
		Available:   a.Available.Clone(),
		JobAffinity: a.JobAffinity,
		LastSeen:    a.LastSeen,
	}
}
