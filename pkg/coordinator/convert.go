package coordinator

// Helper functions to convert between internal types and protobuf wire
// messages, mirroring the conversion layer in the teacher's API server.

import (
	"github.com/cuemby/gridworks/api/proto"
	"github.com/cuemby/gridworks/pkg/types"
)

func processStateToProto(s types.ProcessState) proto.ProcessState {
	switch s {
	case types.ProcessStateRunRequested:
		return proto.ProcessState_RUN_REQUESTED
	case types.ProcessStateRunning:
		return proto.ProcessState_RUNNING
	case types.ProcessStateSucceeded:
		return proto.ProcessState_SUCCEEDED
	case types.ProcessStateRunRequestFailed:
		return proto.ProcessState_RUN_REQUEST_FAILED
	case types.ProcessStatePythonException:
		return proto.ProcessState_PYTHON_EXCEPTION
	case types.ProcessStateNonZeroReturnCode:
		return proto.ProcessState_NON_ZERO_RETURN_CODE
	case types.ProcessStateResourcesNotAvailable:
		return proto.ProcessState_RESOURCES_NOT_AVAILABLE
	case types.ProcessStateErrorGettingState:
		return proto.ProcessState_ERROR_GETTING_STATE
	case types.ProcessStateCancelled:
		return proto.ProcessState_CANCELLED
	default:
		return proto.ProcessState_UNKNOWN
	}
}

func processStateFromProto(s proto.ProcessState) types.ProcessState {
	switch s {
	case proto.ProcessState_RUN_REQUESTED:
		return types.ProcessStateRunRequested
	case proto.ProcessState_RUNNING:
		return types.ProcessStateRunning
	case proto.ProcessState_SUCCEEDED:
		return types.ProcessStateSucceeded
	case proto.ProcessState_RUN_REQUEST_FAILED:
		return types.ProcessStateRunRequestFailed
	case proto.ProcessState_PYTHON_EXCEPTION:
		return types.ProcessStatePythonException
	case proto.ProcessState_NON_ZERO_RETURN_CODE:
		return types.ProcessStateNonZeroReturnCode
	case proto.ProcessState_RESOURCES_NOT_AVAILABLE:
		return types.ProcessStateResourcesNotAvailable
	case proto.ProcessState_ERROR_GETTING_STATE:
		return types.ProcessStateErrorGettingState
	case proto.ProcessState_CANCELLED:
		return types.ProcessStateCancelled
	default:
		return types.ProcessStateUnknown
	}
}

func executionResultToProto(r types.ExecutionResult) *proto.ExecutionResult {
	return &proto.ExecutionResult{
		Pid:             int64(r.Pid),
		ContainerId:     r.ContainerID,
		LogFileName:     r.LogFileName,
		SerializedError: r.SerializedError,
		SerializedValue: r.SerializedValue,
		ReturnCode:      int32(r.ReturnCode),
	}
}

func executionResultFromProto(r *proto.ExecutionResult) types.ExecutionResult {
	if r == nil {
		return types.ExecutionResult{}
	}
	return types.ExecutionResult{
		Pid:             int(r.Pid),
		ContainerID:     r.ContainerId,
		LogFileName:     r.LogFileName,
		SerializedError: r.SerializedError,
		SerializedValue: r.SerializedValue,
		ReturnCode:      int(r.ReturnCode),
	}
}

func codeDeploymentToProto(d types.CodeDeployment) *proto.CodeDeployment {
	switch d.Kind {
	case types.CodeDeploymentServerAvailableFolder:
		return &proto.CodeDeployment{Variant: &proto.CodeDeployment_ServerAvailableFolder{
			ServerAvailableFolder: &proto.CodeDeployment_ServerAvailableFolderVariant{FolderPaths: d.FolderPaths},
		}}
	case types.CodeDeploymentGitRepoCommit:
		return &proto.CodeDeployment{Variant: &proto.CodeDeployment_GitRepoCommit{
			GitRepoCommit: &proto.CodeDeployment_GitRepoCommitVariant{RepoUrl: d.RepoURL, Commit: d.Commit, Subpath: d.Subpath},
		}}
	case types.CodeDeploymentGitRepoBranch:
		return &proto.CodeDeployment{Variant: &proto.CodeDeployment_GitRepoBranch{
			GitRepoBranch: &proto.CodeDeployment_GitRepoBranchVariant{RepoUrl: d.RepoURL, Branch: d.Branch, Subpath: d.Subpath},
		}}
	default:
		return &proto.CodeDeployment{}
	}
}

func codeDeploymentFromProto(p *proto.CodeDeployment) types.CodeDeployment {
	if p == nil {
		return types.CodeDeployment{}
	}
	switch v := p.Variant.(type) {
	case *proto.CodeDeployment_ServerAvailableFolder:
		return types.CodeDeployment{Kind: types.CodeDeploymentServerAvailableFolder, FolderPaths: v.ServerAvailableFolder.FolderPaths}
	case *proto.CodeDeployment_GitRepoCommit:
		return types.CodeDeployment{Kind: types.CodeDeploymentGitRepoCommit, RepoURL: v.GitRepoCommit.RepoUrl, Commit: v.GitRepoCommit.Commit, Subpath: v.GitRepoCommit.Subpath}
	case *proto.CodeDeployment_GitRepoBranch:
		return types.CodeDeployment{Kind: types.CodeDeploymentGitRepoBranch, RepoURL: v.GitRepoBranch.RepoUrl, Branch: v.GitRepoBranch.Branch, Subpath: v.GitRepoBranch.Subpath}
	default:
		return types.CodeDeployment{}
	}
}

func interpreterDeploymentToProto(d types.InterpreterDeployment) *proto.InterpreterDeployment {
	switch d.Kind {
	case types.InterpreterServerAvailableInterpreter:
		return &proto.InterpreterDeployment{Variant: &proto.InterpreterDeployment_ServerAvailableInterpreter{
			ServerAvailableInterpreter: &proto.InterpreterDeployment_ServerAvailableInterpreterVariant{InterpreterPath: d.InterpreterPath},
		}}
	case types.InterpreterContainerAtDigest:
		return &proto.InterpreterDeployment{Variant: &proto.InterpreterDeployment_ContainerAtDigest{
			ContainerAtDigest: &proto.InterpreterDeployment_ContainerAtDigestVariant{Repository: d.Repository, Digest: d.Digest},
		}}
	case types.InterpreterContainerAtTag:
		return &proto.InterpreterDeployment{Variant: &proto.InterpreterDeployment_ContainerAtTag{
			ContainerAtTag: &proto.InterpreterDeployment_ContainerAtTagVariant{Repository: d.Repository, Tag: d.Tag},
		}}
	case types.InterpreterServerAvailableContainer:
		return &proto.InterpreterDeployment{Variant: &proto.InterpreterDeployment_ServerAvailableContainer{
			ServerAvailableContainer: &proto.InterpreterDeployment_ServerAvailableContainerVariant{ImageName: d.ImageName},
		}}
	default:
		return &proto.InterpreterDeployment{}
	}
}

func interpreterDeploymentFromProto(p *proto.InterpreterDeployment) types.InterpreterDeployment {
	if p == nil {
		return types.InterpreterDeployment{}
	}
	switch v := p.Variant.(type) {
	case *proto.InterpreterDeployment_ServerAvailableInterpreter:
		return types.InterpreterDeployment{Kind: types.InterpreterServerAvailableInterpreter, InterpreterPath: v.ServerAvailableInterpreter.InterpreterPath}
	case *proto.InterpreterDeployment_ContainerAtDigest:
		return types.InterpreterDeployment{Kind: types.InterpreterContainerAtDigest, Repository: v.ContainerAtDigest.Repository, Digest: v.ContainerAtDigest.Digest}
	case *proto.InterpreterDeployment_ContainerAtTag:
		return types.InterpreterDeployment{Kind: types.InterpreterContainerAtTag, Repository: v.ContainerAtTag.Repository, Tag: v.ContainerAtTag.Tag}
	case *proto.InterpreterDeployment_ServerAvailableContainer:
		return types.InterpreterDeployment{Kind: types.InterpreterServerAvailableContainer, ImageName: v.ServerAvailableContainer.ImageName}
	default:
		return types.InterpreterDeployment{}
	}
}

func jobSpecToProto(s types.JobSpec) *proto.JobSpec {
	switch s.Kind {
	case types.JobSpecCommand:
		return &proto.JobSpec{Variant: &proto.JobSpec_Command{Command: &proto.JobSpec_CommandVariant{Args: s.CommandArgs}}}
	case types.JobSpecFunction:
		return &proto.JobSpec{Variant: &proto.JobSpec_Function{Function: &proto.JobSpec_FunctionVariant{
			PickledFunction: s.PickledFunction, PickledArguments: s.PickledArguments,
		}}}
	case types.JobSpecGrid:
		return &proto.JobSpec{Variant: &proto.JobSpec_Grid{Grid: &proto.JobSpec_GridVariant{PickledFunction: s.PickledFunction}}}
	default:
		return &proto.JobSpec{}
	}
}

func jobSpecFromProto(p *proto.JobSpec) types.JobSpec {
	if p == nil {
		return types.JobSpec{}
	}
	switch v := p.Variant.(type) {
	case *proto.JobSpec_Command:
		return types.JobSpec{Kind: types.JobSpecCommand, CommandArgs: v.Command.Args}
	case *proto.JobSpec_Function:
		return types.JobSpec{Kind: types.JobSpecFunction, PickledFunction: v.Function.PickledFunction, PickledArguments: v.Function.PickledArguments}
	case *proto.JobSpec_Grid:
		return types.JobSpec{Kind: types.JobSpecGrid, PickledFunction: v.Grid.PickledFunction}
	default:
		return types.JobSpec{}
	}
}

func credentialSourceToProto(s types.CredentialSource) *proto.CredentialSource {
	if s.IsSecretManagerRef() {
		return &proto.CredentialSource{Variant: &proto.CredentialSource_SecretName{SecretName: s.SecretName}}
	}
	return &proto.CredentialSource{Variant: &proto.CredentialSource_CoordinatorFilePath{CoordinatorFilePath: s.CoordinatorFilePath}}
}

func credentialSourceFromProto(p *proto.CredentialSource) types.CredentialSource {
	if p == nil {
		return types.CredentialSource{}
	}
	switch v := p.Variant.(type) {
	case *proto.CredentialSource_SecretName:
		return types.CredentialSource{SecretName: v.SecretName}
	case *proto.CredentialSource_CoordinatorFilePath:
		return types.CredentialSource{CoordinatorFilePath: v.CoordinatorFilePath}
	default:
		return types.CredentialSource{}
	}
}

func jobToProto(j types.Job) *proto.Job {
	return &proto.Job{
		JobId:                            j.JobID,
		FriendlyName:                     j.FriendlyName,
		Priority:                         j.Priority,
		InterruptionProbabilityThreshold: j.InterruptionProbabilityThreshold,
		CodeDeployment:                   codeDeploymentToProto(j.CodeDeployment),
		InterpreterDeployment:            interpreterDeploymentToProto(j.InterpreterDeployment),
		EnvironmentVariables:             j.EnvironmentVariables,
		ResourceRequirement:              j.ResourceRequirement,
		ResultHighestPickleProtocol:      int32(j.ResultHighestPickleProtocol),
		Spec:                             jobSpecToProto(j.Spec),
	}
}

func jobFromProto(p *proto.Job) types.Job {
	if p == nil {
		return types.Job{}
	}
	return types.Job{
		JobID:                            p.JobId,
		FriendlyName:                     p.FriendlyName,
		Priority:                         p.Priority,
		InterruptionProbabilityThreshold: p.InterruptionProbabilityThreshold,
		CodeDeployment:                   codeDeploymentFromProto(p.CodeDeployment),
		InterpreterDeployment:            interpreterDeploymentFromProto(p.InterpreterDeployment),
		EnvironmentVariables:             p.EnvironmentVariables,
		ResourceRequirement:              types.ResourceVector(p.ResourceRequirement),
		ResultHighestPickleProtocol:      int(p.ResultHighestPickleProtocol),
		Spec:                             jobSpecFromProto(p.Spec),
	}
}

func gridTaskToProto(t types.GridTask) *proto.GridTask {
	return &proto.GridTask{
		TaskId:                   t.TaskID,
		PickledFunctionArguments: t.PickledFunctionArguments,
		State:                    processStateToProto(t.State),
		Result:                   executionResultToProto(t.Result),
		WorkerId:                 t.WorkerID,
	}
}

func gridTaskFromProto(p *proto.GridTask) types.GridTask {
	if p == nil {
		return types.GridTask{}
	}
	return types.GridTask{
		TaskID:                   p.TaskId,
		PickledFunctionArguments: p.PickledFunctionArguments,
		State:                    processStateFromProto(p.State),
		Result:                   executionResultFromProto(p.Result),
		WorkerID:                 p.WorkerId,
	}
}

func jobToRunToProto(j types.JobToRun) *proto.JobToRun {
	out := &proto.JobToRun{
		Job:          jobToProto(j.Job),
		GridWorkerId: j.GridWorkerID,
	}
	if j.InterpreterCredentials != nil {
		out.InterpreterCredentials = &proto.ResolvedCredential{Type: int32(j.InterpreterCredentials.Type), Data: j.InterpreterCredentials.Data}
	}
	if j.CodeCredentials != nil {
		out.CodeCredentials = &proto.ResolvedCredential{Type: int32(j.CodeCredentials.Type), Data: j.CodeCredentials.Data}
	}
	return out
}

func agentSnapshotToProto(a types.AgentSnapshot) *proto.AgentSnapshot {
	return &proto.AgentSnapshot{
		AgentId:   a.AgentID,
		Totals:    a.Totals,
		Available: a.Available,
	}
}
