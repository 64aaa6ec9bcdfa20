// Package command defines the container runtime capabilities the build
// orchestrator consumes, so tests can substitute fakes for the docker CLI.
package command

import "context"

// LocalExistenceChecker reports whether an image tag exists in the local store.
type LocalExistenceChecker interface {
	ImageExists(ctx context.Context, tag string) (bool, error)
}

// RemoteExistenceChecker reports whether the remote registry holds a manifest
// for a tag.
type RemoteExistenceChecker interface {
	ManifestExists(ctx context.Context, tag string) (bool, error)
}

// Puller pulls an image from the remote registry.
type Puller interface {
	Pull(ctx context.Context, tag string) error
}

// Builder builds an image from a Dockerfile.
type Builder interface {
	Build(ctx context.Context, options BuildOptions) error
}

// Pusher pushes an image to the remote registry.
type Pusher interface {
	Push(ctx context.Context, tag string) error
}

// Client is the full runtime surface the orchestrator needs.
type Client interface {
	LocalExistenceChecker
	RemoteExistenceChecker
	Puller
	Builder
	Pusher
}

type BuildArg struct {
	Name  string
	Value string
}

// Pair returns the arg formatted as NAME=VALUE.
func (a BuildArg) Pair() string {
	return a.Name + "=" + a.Value
}

type BuildOptions struct {
	ImageName      string
	DockerfilePath string
	ContextDir     string
	BuildArgs      []BuildArg
}
