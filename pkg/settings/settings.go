// Package settings loads the devkit.json settings document.
package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/devkit-build/devkit/pkg/util/console"
	"github.com/devkit-build/devkit/pkg/util/files"
)

// Settings is the decoded devkit.json document.
type Settings struct {
	Docker DockerSettings `json:"docker"`
}

type DockerSettings struct {
	// Registry is the prefix prepended to every image tag, e.g.
	// "gcr.io/my-project". Empty means images are tagged without a registry.
	Registry string `json:"registry"`
}

// Load reads the settings document at path. A missing file is not an error
// and yields zero-value settings; a file that exists but cannot be read or
// decoded is.
func Load(path string) (*Settings, error) {
	s := &Settings{}

	exists, err := files.Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		console.Debugf("No settings file at %s", path)
		return s, nil
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(text, s); err != nil {
		return nil, fmt.Errorf("Could not decode %s: %w", path, err)
	}
	return s, nil
}
