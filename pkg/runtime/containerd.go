// Package runtime launches a job's interpreter process on the agent
// host, either inside a containerd-managed container or as a bare
// subprocess, depending on the job's interpreter deployment variant.
package runtime

import (
	"context"
	"fmt"

	"github.com/containerd/containerd"
	"github.com/containerd/containerd/cio"
	"github.com/containerd/containerd/namespaces"
	"github.com/containerd/containerd/oci"
	specs "github.com/opencontainers/runtime-spec/specs-go"

	"github.com/cuemby/gridworks/pkg/log"
	"github.com/cuemby/gridworks/pkg/types"
)

const (
	// Namespace is the containerd namespace grid containers run under.
	Namespace = "gridworks"

	// DefaultSocketPath is the default containerd socket.
	DefaultSocketPath = "/run/containerd/containerd.sock"

	// codeMountPrefix is the path under which resolved code deployments
	// are bind-mounted inside a container, one per FolderPaths entry
	// (§6): /meadowgrid/code0, /meadowgrid/code1, ...
	codeMountPrefix = "/meadowgrid/code"
)

// Handle identifies one launched container across the Start/Wait/Remove
// lifecycle.
type Handle struct {
	ContainerID string
	Pid         uint32
}

// ContainerRuntime launches jobs whose interpreter deployment resolves
// to a container image (by digest or by an already-present local image).
type ContainerRuntime struct {
	client *containerd.Client
}

// NewContainerRuntime dials the local containerd socket.
func NewContainerRuntime(socketPath string) (*ContainerRuntime, error) {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	client, err := containerd.New(socketPath)
	if err != nil {
		return nil, fmt.Errorf("runtime: connecting to containerd: %w", err)
	}
	return &ContainerRuntime{client: client}, nil
}

// Close releases the containerd client.
func (r *ContainerRuntime) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

// imageRef resolves a job's interpreter deployment to a pullable image
// reference. Only digest and already-present-image variants reach here;
// tag variants are resolved to digests before the job is ever scheduled.
func imageRef(d types.InterpreterDeployment) (string, error) {
	switch d.Kind {
	case types.InterpreterContainerAtDigest:
		return fmt.Sprintf("%s@%s", d.Repository, d.Digest), nil
	case types.InterpreterServerAvailableContainer:
		return d.ImageName, nil
	default:
		return "", fmt.Errorf("runtime: interpreter deployment kind %d is not container-backed", d.Kind)
	}
}

// codeMounts builds the bind mounts exposing a resolved code deployment
// inside the container at /meadowgrid/codeN.
func codeMounts(d types.CodeDeployment) []specs.Mount {
	if d.Kind != types.CodeDeploymentServerAvailableFolder {
		return nil
	}
	mounts := make([]specs.Mount, 0, len(d.FolderPaths))
	for i, path := range d.FolderPaths {
		mounts = append(mounts, specs.Mount{
			Source:      path,
			Destination: fmt.Sprintf("%s%d", codeMountPrefix, i),
			Type:        "bind",
			Options:     []string{"rbind", "ro"},
		})
	}
	return mounts
}

func envSlice(vars map[string]string) []string {
	out := make([]string, 0, len(vars))
	for k, v := range vars {
		out = append(out, k+"="+v)
	}
	return out
}

// Launch pulls the job's image if needed, creates a container, and
// starts its task. It returns a Handle used to Wait on completion.
func (r *ContainerRuntime) Launch(ctx context.Context, jtr types.JobToRun, args []string) (Handle, error) {
	logger := log.WithComponent("runtime-containerd")
	ctx = namespaces.WithNamespace(ctx, Namespace)

	ref, err := imageRef(jtr.Job.InterpreterDeployment)
	if err != nil {
		return Handle{}, err
	}

	image, err := r.client.GetImage(ctx, ref)
	if err != nil {
		logger.Info().Str("image", ref).Msg("image not present locally, pulling")
		image, err = r.client.Pull(ctx, ref, containerd.WithPullUnpack)
		if err != nil {
			return Handle{}, fmt.Errorf("runtime: pulling image %s: %w", ref, err)
		}
	}

	opts := []oci.SpecOpts{
		oci.WithImageConfig(image),
		oci.WithEnv(envSlice(jtr.Job.EnvironmentVariables)),
		oci.WithProcessArgs(args...),
	}
	if mounts := codeMounts(jtr.Job.CodeDeployment); len(mounts) > 0 {
		opts = append(opts, oci.WithMounts(mounts))
	}
	if cpu, ok := jtr.Job.ResourceRequirement["cpu"]; ok && cpu > 0 {
		opts = append(opts, oci.WithCPUShares(uint64(cpu*1024)), oci.WithCPUCFS(int64(cpu*100000), 100000))
	}
	if mem, ok := jtr.Job.ResourceRequirement["memory"]; ok && mem > 0 {
		opts = append(opts, oci.WithMemoryLimit(uint64(mem)))
	}

	containerID := fmt.Sprintf("gridworks-%s", jtr.Job.JobID)
	if jtr.GridWorkerID != "" {
		containerID = fmt.Sprintf("gridworks-%s-%s", jtr.Job.JobID, jtr.GridWorkerID)
	}

	container, err := r.client.NewContainer(
		ctx,
		containerID,
		containerd.WithImage(image),
		containerd.WithNewSnapshot(containerID+"-snapshot", image),
		containerd.WithNewSpec(opts...),
	)
	if err != nil {
		return Handle{}, fmt.Errorf("runtime: creating container: %w", err)
	}

	task, err := container.NewTask(ctx, cio.NullIO)
	if err != nil {
		return Handle{}, fmt.Errorf("runtime: creating task: %w", err)
	}
	if err := task.Start(ctx); err != nil {
		return Handle{}, fmt.Errorf("runtime: starting task: %w", err)
	}

	return Handle{ContainerID: containerID, Pid: task.Pid()}, nil
}

// Wait blocks until the container's task exits and returns its exit code.
func (r *ContainerRuntime) Wait(ctx context.Context, h Handle) (int, error) {
	ctx = namespaces.WithNamespace(ctx, Namespace)

	container, err := r.client.LoadContainer(ctx, h.ContainerID)
	if err != nil {
		return 0, fmt.Errorf("runtime: loading container %s: %w", h.ContainerID, err)
	}
	task, err := container.Task(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("runtime: loading task for %s: %w", h.ContainerID, err)
	}

	statusC, err := task.Wait(ctx)
	if err != nil {
		return 0, fmt.Errorf("runtime: waiting on task %s: %w", h.ContainerID, err)
	}
	status := <-statusC
	return int(status.ExitCode()), status.Error()
}

// Remove deletes a finished container's task and snapshot.
func (r *ContainerRuntime) Remove(ctx context.Context, h Handle) error {
	ctx = namespaces.WithNamespace(ctx, Namespace)

	container, err := r.client.LoadContainer(ctx, h.ContainerID)
	if err != nil {
		return nil
	}
	if task, err := container.Task(ctx, nil); err == nil {
		if _, err := task.Delete(ctx, containerd.WithProcessKill); err != nil {
			return fmt.Errorf("runtime: deleting task %s: %w", h.ContainerID, err)
		}
	}
	if err := container.Delete(ctx, containerd.WithSnapshotCleanup); err != nil {
		return fmt.Errorf("runtime: deleting container %s: %w", h.ContainerID, err)
	}
	return nil
}
