// Package types defines the grid core's data model: jobs, tasks, agents,
// resources, deployments and credentials. Deployment, job-spec and
// credential-source variants are closed sums, modeled as a discriminator
// constant plus plain per-case fields rather than open interfaces, matching the
// shape of the wire messages in api/proto.
package types

import "time"

// ResourceVector is a named nonnegative scalar capacity or requirement,
// e.g. {"cpu": 2, "memory": 4096}.
type ResourceVector map[string]float64

// Fits reports whether every component of want is satisfied by have.
func (have ResourceVector) Fits(want ResourceVector) bool {
	for name, amount := range want {
		if have[name] < amount {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the vector.
func (v ResourceVector) Clone() ResourceVector {
	out := make(ResourceVector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// ProcessState is the lifecycle state of a job or grid task.
type ProcessState string

const (
	ProcessStateUnknown               ProcessState = "UNKNOWN"
	ProcessStateRunRequested          ProcessState = "RUN_REQUESTED"
	ProcessStateRunning               ProcessState = "RUNNING"
	ProcessStateSucceeded             ProcessState = "SUCCEEDED"
	ProcessStateRunRequestFailed      ProcessState = "RUN_REQUEST_FAILED"
	ProcessStatePythonException       ProcessState = "PYTHON_EXCEPTION"
	ProcessStateNonZeroReturnCode     ProcessState = "NON_ZERO_RETURN_CODE"
	ProcessStateResourcesNotAvailable ProcessState = "RESOURCES_NOT_AVAILABLE"
	ProcessStateErrorGettingState     ProcessState = "ERROR_GETTING_STATE"
	ProcessStateCancelled             ProcessState = "CANCELLED" // reserved, never produced
)

// IsTerminal reports whether a process in this state never transitions again.
func (s ProcessState) IsTerminal() bool {
	switch s {
	case ProcessStateSucceeded, ProcessStateRunRequestFailed, ProcessStatePythonException,
		ProcessStateNonZeroReturnCode, ProcessStateResourcesNotAvailable,
		ProcessStateErrorGettingState, ProcessStateCancelled:
		return true
	default:
		return false
	}
}

// ExecutionResult carries the terminal-state payload: pid, container id,
// log file name, serialized result blob and return code, populated per
// the state rules in the job registry.
type ExecutionResult struct {
	Pid             int
	ContainerID     string
	LogFileName     string
	SerializedError []byte // opaque (type name, message, traceback) triple
	SerializedValue []byte // opaque pickled return value
	ReturnCode      int
}

// CodeDeploymentKind discriminates the CodeDeployment closed sum.
type CodeDeploymentKind int

const (
	CodeDeploymentServerAvailableFolder CodeDeploymentKind = iota
	CodeDeploymentGitRepoCommit
	CodeDeploymentGitRepoBranch
)

// CodeDeployment is a tagged union: exactly one case applies, selected by Kind.
type CodeDeployment struct {
	Kind CodeDeploymentKind

	// ServerAvailableFolder: paths meaningful on the agent host. First
	// path is cwd; all paths join the interpreter search path.
	FolderPaths []string

	// GitRepoCommit / GitRepoBranch.
	RepoURL string
	Commit  string // set for GitRepoCommit, and for GitRepoBranch once resolved
	Branch  string // set only before resolution; cleared once Commit is filled in
	Subpath string
}

// InterpreterDeploymentKind discriminates the InterpreterDeployment closed sum.
type InterpreterDeploymentKind int

const (
	InterpreterServerAvailableInterpreter InterpreterDeploymentKind = iota
	InterpreterContainerAtDigest
	InterpreterContainerAtTag
	InterpreterServerAvailableContainer
)

// InterpreterDeployment is a tagged union: exactly one case applies,
// selected by Kind.
type InterpreterDeployment struct {
	Kind InterpreterDeploymentKind

	InterpreterPath string // ServerAvailableInterpreter

	Repository string // ContainerAtDigest / ContainerAtTag
	Digest     string // ContainerAtDigest, and ContainerAtTag once resolved
	Tag        string // ContainerAtTag before resolution; cleared once Digest is filled in

	ImageName string // ServerAvailableContainer (already present on the agent host)
}

// JobSpecKind discriminates the JobSpec closed sum.
type JobSpecKind int

const (
	JobSpecCommand JobSpecKind = iota
	JobSpecFunction
	JobSpecGrid
)

// JobSpec is a tagged union: exactly one case applies, selected by Kind.
type JobSpec struct {
	Kind JobSpecKind

	CommandArgs []string // JobSpecCommand

	PickledFunction  []byte // JobSpecFunction, and JobSpecGrid's shared per-task function
	PickledArguments []byte // JobSpecFunction

	// JobSpecGrid's per-task arguments are appended separately via the
	// grid-task registry; PickledFunction above is the one function
	// every task in the grid job invokes.
}

// Job is immutable after submission (§3 invariant 6: exactly one code
// deployment and one interpreter deployment).
type Job struct {
	JobID                            string
	FriendlyName                     string
	Priority                         float64
	InterruptionProbabilityThreshold float64
	CodeDeployment                   CodeDeployment
	InterpreterDeployment            InterpreterDeployment
	EnvironmentVariables             map[string]string
	ResourceRequirement              ResourceVector
	ResultHighestPickleProtocol      int
	Spec                             JobSpec

	SubmittedAt time.Time
}

// IsGrid reports whether this job's spec variant is a grid job.
func (j *Job) IsGrid() bool { return j.Spec.Kind == JobSpecGrid }

// GridTask is one unit of work within a grid job's task queue.
type GridTask struct {
	TaskID                   int64
	PickledFunctionArguments []byte
	State                    ProcessState
	Result                   ExecutionResult
	WorkerID                 string // grid worker that owns this task, once dequeued
}

// GridWorker is a coordinator-minted logical execution context for one
// agent working one grid job — not a host process id (§9).
type GridWorker struct {
	WorkerID string
	JobID    string
	AgentID  string
}

// CredentialServiceKind is the service a credential applies to.
type CredentialServiceKind int

const (
	CredentialServiceDocker CredentialServiceKind = iota
	CredentialServiceGit
)

// CredentialType tags the shape of resolved credential bytes.
type CredentialType int

const (
	CredentialTypeUsernamePassword CredentialType = iota
	CredentialTypeSSHKey
)

// CredentialSource points at secret material without holding it: either
// a secret name in an external manager, or a file path on the
// coordinator host.
type CredentialSource struct {
	SecretName          string // set if this source is an external secret manager reference
	CoordinatorFilePath string // set if this source is a coordinator-local file reference
}

// IsSecretManagerRef reports whether this source names an external secret
// rather than a coordinator-local file.
func (c CredentialSource) IsSecretManagerRef() bool { return c.SecretName != "" }

// CredentialEntry is a registered (service, url prefix) -> source mapping,
// kept in insertion order so equal-specificity ties break on it.
type CredentialEntry struct {
	Service    CredentialServiceKind
	URLPrefix  string
	Source     CredentialSource
	insertedAt int
}

// ResolvedCredential is the actual secret bytes, tagged with its shape,
// handed to an agent alongside a job.
type ResolvedCredential struct {
	Type CredentialType
	Data []byte
}

// Agent is a worker host registered with the coordinator.
type Agent struct {
	AgentID     string
	Totals      ResourceVector
	Available   ResourceVector
	JobAffinity string // empty means "general purpose"
	LastSeen    time.Time
}

// AgentSnapshot is the read-only view returned by get_agent_states.
type AgentSnapshot struct {
	AgentID   string
	Totals    ResourceVector
	Available ResourceVector
}

// JobToRun is what an agent receives from get_next_jobs: the job plus,
// for grid jobs, the grid worker id it should operate under, plus any
// resolved credentials it needs to pull code/containers.
type JobToRun struct {
	Job                    Job
	GridWorkerID           string // empty for non-grid jobs
	InterpreterCredentials *ResolvedCredential
	CodeCredentials        *ResolvedCredential
}

// JobStateUpdate is one entry in an agent's update_job_states batch.
type JobStateUpdate struct {
	JobID        string
	GridWorkerID string // empty for non-grid jobs
	State        ProcessState
	Result       ExecutionResult
}
