package runtime

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cuemby/gridworks/pkg/types"
)

// ProcessHandle identifies one launched subprocess across the
// Start/Wait lifecycle.
type ProcessHandle struct {
	Pid int
	cmd *exec.Cmd
}

// ProcessRuntime launches jobs whose interpreter deployment is already
// present on the agent host (no container boundary).
type ProcessRuntime struct{}

// NewProcessRuntime returns a ProcessRuntime. It holds no state; its
// methods are concurrency-safe by virtue of each launching an
// independent os/exec.Cmd.
func NewProcessRuntime() *ProcessRuntime { return &ProcessRuntime{} }

// Launch starts the interpreter as a direct child process. For a
// "server available folder" code deployment the first folder is the cwd
// and every folder is joined onto PYTHONPATH; git deployments get
// neither, since nothing here clones a repository.
func (r *ProcessRuntime) Launch(ctx context.Context, jtr types.JobToRun, args []string) (ProcessHandle, error) {
	d := jtr.Job.InterpreterDeployment
	if d.Kind != types.InterpreterServerAvailableInterpreter {
		return ProcessHandle{}, fmt.Errorf("runtime: interpreter deployment kind %d requires a container", d.Kind)
	}

	cmd := exec.CommandContext(ctx, d.InterpreterPath, args...)
	cmd.Env = os.Environ()
	for k, v := range jtr.Job.EnvironmentVariables {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	if cwd, pythonPath := workingDirAndPath(jtr.Job.CodeDeployment); cwd != "" {
		cmd.Dir = cwd
		cmd.Env = append(cmd.Env, "PYTHONPATH="+pythonPath)
	}

	if err := cmd.Start(); err != nil {
		return ProcessHandle{}, fmt.Errorf("runtime: starting %s: %w", d.InterpreterPath, err)
	}
	return ProcessHandle{Pid: cmd.Process.Pid, cmd: cmd}, nil
}

// Wait blocks until the subprocess exits and returns its exit code.
func (r *ProcessRuntime) Wait(h ProcessHandle) (int, error) {
	err := h.cmd.Wait()
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// workingDirAndPath derives the process cwd (first folder path) and a
// ":"-joined PYTHONPATH covering every folder path, per §6's "first path
// is cwd; all paths join the interpreter search path".
func workingDirAndPath(d types.CodeDeployment) (cwd, pythonPath string) {
	if d.Kind != types.CodeDeploymentServerAvailableFolder || len(d.FolderPaths) == 0 {
		return "", ""
	}
	cwd = d.FolderPaths[0]
	for i, p := range d.FolderPaths {
		if i > 0 {
			pythonPath += string(filepath.ListSeparator)
		}
		pythonPath += p
	}
	return cwd, pythonPath
}
