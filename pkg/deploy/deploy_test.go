package deploy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/gridworks/pkg/types"
)

func TestResolveInterpreterTagToDigest(t *testing.T) {
	r := NewResolver(time.Second)
	r.digestLookup = func(ctx context.Context, repository, tag string) (string, error) {
		assert.Equal(t, "example/worker", repository)
		assert.Equal(t, "latest", tag)
		return "sha256:deadbeef", nil
	}

	job := types.Job{
		JobID: "j1",
		InterpreterDeployment: types.InterpreterDeployment{
			Kind:       types.InterpreterContainerAtTag,
			Repository: "example/worker",
			Tag:        "latest",
		},
		CodeDeployment: types.CodeDeployment{Kind: types.CodeDeploymentServerAvailableFolder, FolderPaths: []string{"."}},
	}

	require.NoError(t, r.ResolveJob(context.Background(), &job))
	assert.Equal(t, types.InterpreterContainerAtDigest, job.InterpreterDeployment.Kind)
	assert.Equal(t, "sha256:deadbeef", job.InterpreterDeployment.Digest)
	assert.Empty(t, job.InterpreterDeployment.Tag)
}

func TestResolveLeavesAlreadyResolvedDeploymentsUntouched(t *testing.T) {
	r := NewResolver(time.Second)
	r.digestLookup = func(context.Context, string, string) (string, error) {
		t.Fatal("digestLookup should not be called for an already-pinned deployment")
		return "", nil
	}

	job := types.Job{
		JobID: "j1",
		InterpreterDeployment: types.InterpreterDeployment{
			Kind:       types.InterpreterContainerAtDigest,
			Repository: "example/worker",
			Digest:     "sha256:already",
		},
		CodeDeployment: types.CodeDeployment{
			Kind:    types.CodeDeploymentGitRepoCommit,
			RepoURL: "https://example.com/repo.git",
			Commit:  "abc123",
		},
	}

	require.NoError(t, r.ResolveJob(context.Background(), &job))
	assert.Equal(t, "sha256:already", job.InterpreterDeployment.Digest)
	assert.Equal(t, "abc123", job.CodeDeployment.Commit)
}

func TestResolveDigestLookupFailurePropagates(t *testing.T) {
	r := NewResolver(time.Second)
	r.digestLookup = func(context.Context, string, string) (string, error) {
		return "", assert.AnError
	}

	job := types.Job{
		JobID: "j1",
		InterpreterDeployment: types.InterpreterDeployment{
			Kind:       types.InterpreterContainerAtTag,
			Repository: "example/worker",
			Tag:        "latest",
		},
		CodeDeployment: types.CodeDeployment{Kind: types.CodeDeploymentServerAvailableFolder, FolderPaths: []string{"."}},
	}

	err := r.ResolveJob(context.Background(), &job)
	assert.Error(t, err)
}
