package docker

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCodePropagatesStatus(t *testing.T) {
	err := exec.Command("sh", "-c", "exit 3").Run()
	require.Error(t, err)
	require.Equal(t, 3, ExitCode(err))
}

func TestExitCodeSurvivesWrapping(t *testing.T) {
	err := exec.Command("sh", "-c", "exit 7").Run()
	require.Error(t, err)
	wrapped := fmt.Errorf("Failed to pull image: %w", err)
	require.Equal(t, 7, ExitCode(wrapped))
}

func TestExitCodeDefaultsToOne(t *testing.T) {
	require.Equal(t, 1, ExitCode(errors.New("no status here")))
}

func TestWrapDockerErrNotFound(t *testing.T) {
	err := wrapDockerErr(exec.ErrNotFound)
	require.ErrorIs(t, err, exec.ErrNotFound)
	require.Contains(t, err.Error(), "Docker is installed")
}
