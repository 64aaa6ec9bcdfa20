package cli

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/devkit-build/devkit/pkg/docker"
	"github.com/devkit-build/devkit/pkg/image"
	"github.com/devkit-build/devkit/pkg/recipe"
	"github.com/devkit-build/devkit/pkg/settings"
)

var buildSearchPaths []string
var buildConfigPath string
var buildArch string
var buildPrintTag bool
var buildLocalOnly bool

func newBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [target]",
		Short: "Build images and their dependencies, reusing content-addressed tags",
		Long: `Build Docker images declared in deps.json files, in dependency order.

Each image's tag is derived from its Dockerfile contents and the tags of its
dependencies, so an image is only built when its content or any dependency
actually changed. Images already present locally are skipped, images present
in the remote registry are pulled.

With a target argument, only that image and its transitive dependencies are
processed; otherwise every declared image is.`,
		Args: cobra.MaximumNArgs(1),
		RunE: buildCommand,
	}
	cmd.Flags().StringArrayVar(&buildSearchPaths, "search-path", []string{}, "Search path for deps.json and Dockerfiles (repeatable)")
	_ = cmd.MarkFlagRequired("search-path")
	cmd.Flags().StringVar(&buildConfigPath, "config", "devkit.json", "Path to the devkit.json settings file")
	cmd.Flags().StringVar(&buildArch, "arch", "amd64", "Architecture segment of the generated tags")
	cmd.Flags().BoolVar(&buildPrintTag, "print-tag", false, "Print the generated tag for the target image and exit. Requires a target")
	cmd.Flags().BoolVar(&buildLocalOnly, "local", false, "Local-only mode: never push built images to the remote registry")
	return cmd
}

func buildCommand(cmd *cobra.Command, args []string) error {
	configPath, err := homedir.Expand(buildConfigPath)
	if err != nil {
		return err
	}
	searchPaths := make([]string, 0, len(buildSearchPaths))
	for _, path := range buildSearchPaths {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return err
		}
		searchPaths = append(searchPaths, expanded)
	}

	conf, err := settings.Load(configPath)
	if err != nil {
		return err
	}
	store, err := recipe.Load(searchPaths)
	if err != nil {
		return err
	}

	builder := &image.Builder{
		Store:     store,
		Client:    docker.NewDockerCommand(),
		Registry:  conf.Docker.Registry,
		Arch:      buildArch,
		LocalOnly: buildLocalOnly,
	}

	var target string
	if len(args) > 0 {
		target = args[0]
	}
	return builder.Run(cmd.Context(), image.RunOptions{
		Target:   target,
		PrintTag: buildPrintTag,
	})
}
