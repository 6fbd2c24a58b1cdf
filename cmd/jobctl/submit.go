package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cuemby/gridworks/api/proto"
	"github.com/cuemby/gridworks/pkg/client"
)

var submitCmd = &cobra.Command{
	Use:   "submit <job.yaml>",
	Short: "Submit a job from a YAML spec file and wait for it to finish",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubmit,
}

func init() {
	submitCmd.Flags().Duration("poll-interval", 2*time.Second, "how often to poll for terminal state")
	submitCmd.Flags().Duration("timeout", 0, "give up waiting after this long (0 waits forever)")
	submitCmd.Flags().Bool("no-wait", false, "submit and return immediately without waiting for a terminal state")
}

// jobSpecFile is the YAML shape a one-shot job is described in.
type jobSpecFile struct {
	JobID                            string               `yaml:"jobId"`
	FriendlyName                     string               `yaml:"friendlyName"`
	Priority                         float64              `yaml:"priority"`
	InterruptionProbabilityThreshold float64              `yaml:"interruptionProbabilityThreshold"`
	Command                          []string             `yaml:"command"`
	EnvironmentVariables             map[string]string    `yaml:"env"`
	Resources                        map[string]float64   `yaml:"resources"`
	CodeDeployment                   codeDeploymentFile   `yaml:"codeDeployment"`
	InterpreterDeployment            interpDeploymentFile `yaml:"interpreterDeployment"`
}

type codeDeploymentFile struct {
	FolderPaths []string `yaml:"folderPaths"`
	RepoURL     string   `yaml:"repoUrl"`
	Commit      string   `yaml:"commit"`
	Branch      string   `yaml:"branch"`
	Subpath     string   `yaml:"subpath"`
}

type interpDeploymentFile struct {
	InterpreterPath string `yaml:"interpreterPath"`
	Repository      string `yaml:"repository"`
	Digest          string `yaml:"digest"`
	Tag             string `yaml:"tag"`
	ImageName       string `yaml:"imageName"`
}

func runSubmit(cmd *cobra.Command, args []string) error {
	coordinatorAddr, _ := cmd.Flags().GetString("coordinator-addr")
	pollInterval, _ := cmd.Flags().GetDuration("poll-interval")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	noWait, _ := cmd.Flags().GetBool("no-wait")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	var spec jobSpecFile
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}
	if spec.JobID == "" {
		spec.JobID = uuid.NewString()
	}

	job := &proto.Job{
		JobId:                            spec.JobID,
		FriendlyName:                     spec.FriendlyName,
		Priority:                         spec.Priority,
		InterruptionProbabilityThreshold: spec.InterruptionProbabilityThreshold,
		EnvironmentVariables:             spec.EnvironmentVariables,
		ResourceRequirement:              spec.Resources,
		CodeDeployment:                   codeDeploymentToProto(spec.CodeDeployment),
		InterpreterDeployment:            interpDeploymentToProto(spec.InterpreterDeployment),
		Spec: &proto.JobSpec{Variant: &proto.JobSpec_Command{
			Command: &proto.JobSpec_CommandVariant{Args: spec.Command},
		}},
	}

	c, err := client.New(coordinatorAddr)
	if err != nil {
		return fmt.Errorf("connecting to coordinator: %w", err)
	}
	defer c.Close()

	ctx := context.Background()
	isDuplicate, err := c.AddJob(ctx, job)
	if err != nil {
		return fmt.Errorf("submitting job: %w", err)
	}
	if isDuplicate {
		fmt.Printf("job %s already submitted\n", spec.JobID)
	} else {
		fmt.Printf("job %s submitted\n", spec.JobID)
	}

	if noWait {
		return nil
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	state, err := c.WaitForTerminal(ctx, spec.JobID, pollInterval)
	if err != nil {
		return fmt.Errorf("waiting for job %s: %w", spec.JobID, err)
	}
	fmt.Printf("job %s finished: %s\n", spec.JobID, state)
	if state != proto.ProcessState_SUCCEEDED {
		os.Exit(1)
	}
	return nil
}

func codeDeploymentToProto(f codeDeploymentFile) *proto.CodeDeployment {
	switch {
	case f.Commit != "":
		return &proto.CodeDeployment{Variant: &proto.CodeDeployment_GitRepoCommit{
			GitRepoCommit: &proto.CodeDeployment_GitRepoCommitVariant{RepoUrl: f.RepoURL, Commit: f.Commit, Subpath: f.Subpath},
		}}
	case f.Branch != "":
		return &proto.CodeDeployment{Variant: &proto.CodeDeployment_GitRepoBranch{
			GitRepoBranch: &proto.CodeDeployment_GitRepoBranchVariant{RepoUrl: f.RepoURL, Branch: f.Branch, Subpath: f.Subpath},
		}}
	default:
		return &proto.CodeDeployment{Variant: &proto.CodeDeployment_ServerAvailableFolder{
			ServerAvailableFolder: &proto.CodeDeployment_ServerAvailableFolderVariant{FolderPaths: f.FolderPaths},
		}}
	}
}

func interpDeploymentToProto(f interpDeploymentFile) *proto.InterpreterDeployment {
	switch {
	case f.Digest != "":
		return &proto.InterpreterDeployment{Variant: &proto.InterpreterDeployment_ContainerAtDigest{
			ContainerAtDigest: &proto.InterpreterDeployment_ContainerAtDigestVariant{Repository: f.Repository, Digest: f.Digest},
		}}
	case f.Tag != "":
		return &proto.InterpreterDeployment{Variant: &proto.InterpreterDeployment_ContainerAtTag{
			ContainerAtTag: &proto.InterpreterDeployment_ContainerAtTagVariant{Repository: f.Repository, Tag: f.Tag},
		}}
	case f.ImageName != "":
		return &proto.InterpreterDeployment{Variant: &proto.InterpreterDeployment_ServerAvailableContainer{
			ServerAvailableContainer: &proto.InterpreterDeployment_ServerAvailableContainerVariant{ImageName: f.ImageName},
		}}
	default:
		return &proto.InterpreterDeployment{Variant: &proto.InterpreterDeployment_ServerAvailableInterpreter{
			ServerAvailableInterpreter: &proto.InterpreterDeployment_ServerAvailableInterpreterVariant{InterpreterPath: f.InterpreterPath},
		}}
	}
}
