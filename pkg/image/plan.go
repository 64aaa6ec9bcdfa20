package image

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/devkit-build/devkit/pkg/docker/command"
	"github.com/devkit-build/devkit/pkg/recipe"
	"github.com/devkit-build/devkit/pkg/util/console"
)

// Plan is everything needed to materialize one image. It is created per
// orchestration step and discarded afterwards.
type Plan struct {
	Name           string
	DockerfilePath string
	ContextDir     string
	// BuildArgs is sorted by its NAME=VALUE form, matching the digest input.
	BuildArgs []command.BuildArg
	Digest    string
	Tag       string
}

// plan resolves an image's Dockerfile, binds its build args from the tags of
// already-processed dependencies, and computes its content-addressed tag.
func (b *Builder) plan(desc recipe.Descriptor, resolved map[string]string) (*Plan, error) {
	dockerfilePath, err := b.Store.FindDockerfile(desc.Name)
	if err != nil {
		return nil, err
	}

	argNames := make([]string, 0, len(desc.Dependencies))
	for argName := range desc.Dependencies {
		argNames = append(argNames, argName)
	}
	sort.Strings(argNames)

	buildArgs := make([]command.BuildArg, 0, len(argNames))
	for _, argName := range argNames {
		depName := desc.Dependencies[argName]
		depTag, ok := resolved[depName]
		if !ok {
			return nil, fmt.Errorf("Dependency tag for %q (needed by %q as build arg %q) not found. Ensure images are in the correct build order and all dependencies are defined correctly", depName, desc.Name, argName)
		}
		buildArgs = append(buildArgs, command.BuildArg{Name: argName, Value: depTag})
		console.Infof("Build arg for %s: %s=%s (Tag: %s)", desc.Name, argName, depName, depTag)
	}

	sort.Slice(buildArgs, func(i, j int) bool {
		return buildArgs[i].Pair() < buildArgs[j].Pair()
	})
	pairs := make([]string, len(buildArgs))
	for i, buildArg := range buildArgs {
		pairs[i] = buildArg.Pair()
	}

	digest, err := ContentDigest(dockerfilePath, pairs)
	if err != nil {
		return nil, fmt.Errorf("Failed to hash %s for image %q: %w", dockerfilePath, desc.Name, err)
	}
	console.Debugf("SHA for %s (Content + Sorted Build Args [%s]): %s", dockerfilePath, strings.Join(pairs, ", "), digest)

	tag := FormatTag(b.Registry, b.Arch, desc.Name, digest)
	console.Infof("Tag for %s: %s", desc.Name, tag)

	return &Plan{
		Name:           desc.Name,
		DockerfilePath: dockerfilePath,
		ContextDir:     filepath.Dir(dockerfilePath),
		BuildArgs:      buildArgs,
		Digest:         digest,
		Tag:            tag,
	}, nil
}
