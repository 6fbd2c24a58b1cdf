// Package deploy resolves a job's code and interpreter deployment
// variants to concrete, immutable references at add_job time — per the
// resolved Open Question in DESIGN.md, branches become commits and tags
// become digests before the job ever reaches the registry, so reruns of
// the stored job are deterministic.
package deploy

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cuemby/gridworks/pkg/log"
	"github.com/cuemby/gridworks/pkg/types"
)

// Resolver resolves mutable deployment references (git branches,
// container tags) to immutable ones (commits, digests).
type Resolver struct {
	logger  zerolog.Logger
	timeout time.Duration

	// digestLookup is swappable in tests; production wiring points it at
	// a real registry client.
	digestLookup func(ctx context.Context, repository, tag string) (string, error)
}

// NewResolver creates a Resolver. timeout bounds a single git/registry
// round trip (the agent separately bounds deployment pulls, per §5).
func NewResolver(timeout time.Duration) *Resolver {
	return &Resolver{
		logger:       log.WithComponent("deploy-resolver"),
		timeout:      timeout,
		digestLookup: skopeoDigest,
	}
}

// ResolveJob mutates job in place, resolving its code and interpreter
// deployments to immutable references. It is idempotent: a job whose
// deployments are already resolved is returned unchanged.
func (r *Resolver) ResolveJob(ctx context.Context, job *types.Job) error {
	if err := r.resolveCode(ctx, &job.CodeDeployment); err != nil {
		return fmt.Errorf("deploy: resolving code deployment for %s: %w", job.JobID, err)
	}
	if err := r.resolveInterpreter(ctx, &job.InterpreterDeployment); err != nil {
		return fmt.Errorf("deploy: resolving interpreter deployment for %s: %w", job.JobID, err)
	}
	return nil
}

func (r *Resolver) resolveCode(ctx context.Context, d *types.CodeDeployment) error {
	if d.Kind != types.CodeDeploymentGitRepoBranch || d.Branch == "" {
		return nil
	}

	commit, err := r.resolveBranch(ctx, d.RepoURL, d.Branch)
	if err != nil {
		return err
	}

	r.logger.Info().Str("repo", d.RepoURL).Str("branch", d.Branch).Str("commit", commit).Msg("resolved git branch to commit")
	d.Kind = types.CodeDeploymentGitRepoCommit
	d.Commit = commit
	d.Branch = ""
	return nil
}

func (r *Resolver) resolveInterpreter(ctx context.Context, d *types.InterpreterDeployment) error {
	if d.Kind != types.InterpreterContainerAtTag || d.Tag == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	digest, err := r.digestLookup(ctx, d.Repository, d.Tag)
	if err != nil {
		return err
	}

	r.logger.Info().Str("repository", d.Repository).Str("tag", d.Tag).Str("digest", digest).Msg("resolved container tag to digest")
	d.Kind = types.InterpreterContainerAtDigest
	d.Digest = digest
	d.Tag = ""
	return nil
}

// resolveBranch shells out to `git ls-remote`, the same "rely on the
// system git binary rather than link an in-process git client" approach
// used for the rest of this family's external-tool integrations.
func (r *Resolver) resolveBranch(ctx context.Context, repoURL, branch string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "ls-remote", repoURL, "refs/heads/"+branch)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git ls-remote %s %s: %w", repoURL, branch, err)
	}

	line := strings.TrimSpace(stdout.String())
	if line == "" {
		return "", fmt.Errorf("branch %q not found in %s", branch, repoURL)
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("unexpected git ls-remote output for %s: %q", repoURL, line)
	}
	return fields[0], nil
}

// skopeoDigest resolves a tag to a digest via `skopeo inspect`, a common
// registry-introspection CLI; swapped out in tests.
func skopeoDigest(ctx context.Context, repository, tag string) (string, error) {
	cmd := exec.CommandContext(ctx, "skopeo", "inspect", "--format", "{{.Digest}}", fmt.Sprintf("docker://%s:%s", repository, tag))
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("skopeo inspect %s:%s: %w", repository, tag, err)
	}
	digest := strings.TrimSpace(stdout.String())
	if digest == "" {
		return "", fmt.Errorf("empty digest for %s:%s", repository, tag)
	}
	return digest, nil
}
