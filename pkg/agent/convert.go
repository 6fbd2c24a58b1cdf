package agent

// Wire conversions for the subset of messages the agent sends and
// receives, mirroring the coordinator's own conversion layer.

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

func gridTaskFromProto(p *proto.GridTask) types.GridTask {
	if p == nil {
		return types.GridTask{}
	}
	return types.GridTask{
		TaskID:                   p.TaskId,
		PickledFunctionArguments: p.PickledFunctionArguments,
		State:                    processStateFromProto(p.State),
		WorkerID:                 p.WorkerId,
	}
}
