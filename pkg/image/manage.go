package image

import (
	"context"

	"github.com/devkit-build/devkit/pkg/docker/command"
	"github.com/devkit-build/devkit/pkg/recipe"
	"github.com/devkit-build/devkit/pkg/util/console"
)

// Outcome is the terminal state an image reaches.
type Outcome int

const (
	// Skipped: the tag already existed in the local store.
	Skipped Outcome = iota
	// Pulled: the tag existed in the remote registry and was pulled.
	Pulled
	// Published: built locally and pushed to the remote registry.
	Published
	// BuiltLocalOnly: built locally; the push was skipped or failed.
	BuiltLocalOnly
)

var outcomeNames = [...]string{
	Skipped:        "skipped",
	Pulled:         "pulled",
	Published:      "published",
	BuiltLocalOnly: "built-local-only",
}

func (o Outcome) String() string {
	return outcomeNames[o]
}

// Builder drives one image at a time through the local-cache / remote-cache /
// build-and-publish decision.
type Builder struct {
	Store    *recipe.Store
	Client   command.Client
	Registry string
	Arch     string
	// LocalOnly skips publishing entirely.
	LocalOnly bool
}

// manage takes a planned image to a terminal state. The tag is already
// recorded by the caller; the steps here only materialize the artifact.
func (b *Builder) manage(ctx context.Context, plan *Plan) (Outcome, error) {
	console.Infof("Checking for local image: %s", plan.Tag)
	exists, err := b.Client.ImageExists(ctx, plan.Tag)
	if err != nil {
		return 0, err
	}
	if exists {
		console.Infof("Image %s already exists locally. Skipping build/pull.", plan.Tag)
		return Skipped, nil
	}

	console.Infof("Checking for remote image manifest: %s", plan.Tag)
	remote, err := b.Client.ManifestExists(ctx, plan.Tag)
	if err != nil {
		return 0, err
	}
	if remote {
		console.Infof("Image %s found in remote registry. Pulling...", plan.Tag)
		if err := b.Client.Pull(ctx, plan.Tag); err != nil {
			return 0, err
		}
		console.Infof("Image %s pulled successfully.", plan.Tag)
		return Pulled, nil
	}

	console.Infof("Image %s not found locally or in remote registry. Building...", plan.Tag)
	options := command.BuildOptions{
		ImageName:      plan.Tag,
		DockerfilePath: plan.DockerfilePath,
		ContextDir:     plan.ContextDir,
		BuildArgs:      plan.BuildArgs,
	}
	if err := b.Client.Build(ctx, options); err != nil {
		return 0, err
	}
	console.Infof("Image %s built successfully.", plan.Tag)

	if b.LocalOnly {
		return BuiltLocalOnly, nil
	}

	console.Infof("Pushing image %s...", plan.Tag)
	if err := b.Client.Push(ctx, plan.Tag); err != nil {
		// The local image stays valid and usable for dependents.
		console.Warnf("Failed to push image %s. Continuing with local image. Details: %s", plan.Tag, err)
		return BuiltLocalOnly, nil
	}
	console.Infof("Image %s pushed successfully.", plan.Tag)
	return Published, nil
}
