// Package recipe loads image declarations and locates Dockerfiles.
//
// Each search path may carry a deps.json file declaring images:
//
//	{"<image>": {"deps": {"<BUILD_ARG>": "<dependency image>"}}}
//
// and a <image>.Dockerfile per declared image.
package recipe

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/devkit-build/devkit/pkg/util/console"
	"github.com/devkit-build/devkit/pkg/util/files"
)

const declarationFilename = "deps.json"

// Descriptor declares one image: its name and the build args that are bound
// to the tags of other images. A dependency name may refer to an image that
// is never declared; that is caught at build time, not load time.
type Descriptor struct {
	Name string
	// Dependencies maps a build arg name to the image whose resolved tag
	// becomes the arg's value.
	Dependencies map[string]string
}

// Store holds every declared image, merged across search paths.
type Store struct {
	images      map[string]Descriptor
	searchPaths []string
}

type declaredImage struct {
	Deps map[string]string `json:"deps"`
}

// Load reads deps.json from each search path in order and merges the
// declarations. A later declaration for the same image name wins. A file
// whose top level is not an object is skipped with a warning; any other
// malformed document is an error.
func Load(searchPaths []string) (*Store, error) {
	store := &Store{
		images:      map[string]Descriptor{},
		searchPaths: searchPaths,
	}

	for _, path := range searchPaths {
		declPath := filepath.Join(path, declarationFilename)
		exists, err := files.Exists(declPath)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}
		console.Infof("Loading image configs from %s", declPath)

		text, err := os.ReadFile(declPath)
		if err != nil {
			return nil, fmt.Errorf("Failed to read %s: %w", declPath, err)
		}

		var raw map[string]json.RawMessage
		if err := json.Unmarshal(text, &raw); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				console.Warnf("%s does not contain a dict of configs.", declPath)
				continue
			}
			return nil, fmt.Errorf("Could not decode %s: %w", declPath, err)
		}

		for name, entry := range raw {
			var decl declaredImage
			if err := json.Unmarshal(entry, &decl); err != nil {
				return nil, fmt.Errorf("Malformed declaration for image %q in %s: %w", name, declPath, err)
			}
			store.images[name] = Descriptor{
				Name:         name,
				Dependencies: decl.Deps,
			}
		}
	}

	return store, nil
}

// Get returns the descriptor for name.
func (s *Store) Get(name string) (Descriptor, bool) {
	d, ok := s.images[name]
	return d, ok
}

// Names returns every declared image name, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.images))
	for name := range s.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of declared images.
func (s *Store) Len() int {
	return len(s.images)
}

// FindDockerfile locates <name>.Dockerfile in the search paths, first match
// wins, and resolves it to an absolute path with symlinks evaluated.
func (s *Store) FindDockerfile(name string) (string, error) {
	filename := name + ".Dockerfile"
	for _, path := range s.searchPaths {
		candidate := filepath.Join(path, filename)
		exists, err := files.Exists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			continue
		}
		resolved, err := filepath.EvalSymlinks(candidate)
		if err != nil {
			return "", fmt.Errorf("Failed to resolve %s: %w", candidate, err)
		}
		return filepath.Abs(resolved)
	}
	return "", fmt.Errorf("Dockerfile %s not found for image %q in any of the search paths: %v", filename, name, s.searchPaths)
}
