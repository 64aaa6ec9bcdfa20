package docker

import (
	"errors"
	"fmt"
	"os/exec"
)

// wrapDockerErr gives exec.ErrNotFound a user-facing message. Every other
// error passes through untouched so exit statuses stay recoverable.
func wrapDockerErr(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("docker command not found. Please ensure Docker is installed and in PATH: %w", err)
	}
	return err
}

// ExitCode extracts the exit status carried by err, for propagating a failed
// docker command's status as our own. Errors that carry no status, or a zero
// status, map to 1.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
