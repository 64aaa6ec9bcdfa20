package docker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/devkit-build/devkit/pkg/docker/command"
	"github.com/devkit-build/devkit/pkg/util/console"
)

// DockerCommand implements command.Client by shelling out to the docker CLI.
type DockerCommand struct{}

func NewDockerCommand() *DockerCommand {
	return &DockerCommand{}
}

func (c *DockerCommand) ImageExists(ctx context.Context, tag string) (bool, error) {
	cmd := exec.CommandContext(ctx, "docker", "image", "inspect", tag)
	var out strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &out

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// assume all non-zero exits mean the image doesn't exist
		return false, nil
	}
	return false, wrapDockerErr(err)
}

func (c *DockerCommand) ManifestExists(ctx context.Context, tag string) (bool, error) {
	cmd := exec.CommandContext(ctx, "docker", "manifest", "inspect", tag)
	var out strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &out

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, wrapDockerErr(err)
}

func (c *DockerCommand) Pull(ctx context.Context, tag string) error {
	cmd := exec.CommandContext(ctx, "docker", "pull", tag)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("Failed to pull %s: %w", tag, wrapDockerErr(err))
	}
	return nil
}

func (c *DockerCommand) Build(ctx context.Context, options command.BuildOptions) error {
	args := []string{
		"buildx", "build",
		"--tag", options.ImageName,
		"--file", options.DockerfilePath,
	}
	for _, buildArg := range options.BuildArgs {
		args = append(args, "--build-arg", buildArg.Pair())
	}
	args = append(args, options.ContextDir)

	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Stdout = os.Stderr // build output is all messaging
	cmd.Stderr = os.Stderr

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("Failed to build %s: %w", options.ImageName, wrapDockerErr(err))
	}
	return nil
}

func (c *DockerCommand) Push(ctx context.Context, tag string) error {
	cmd := exec.CommandContext(ctx, "docker", "push", tag)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("Failed to push %s: %w", tag, wrapDockerErr(err))
	}
	return nil
}
