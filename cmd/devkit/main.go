package main

import (
	"os"

	"github.com/devkit-build/devkit/pkg/cli"
	"github.com/devkit-build/devkit/pkg/docker"
	"github.com/devkit-build/devkit/pkg/util/console"
)

func main() {
	cmd, err := cli.NewRootCommand()
	if err != nil {
		console.Fatalf("%s", err)
	}

	if err := cmd.Execute(); err != nil {
		console.Errorf("%s", err)
		// A failing docker command's exit status becomes ours; everything
		// else is a plain 1.
		os.Exit(docker.ExitCode(err))
	}
}
