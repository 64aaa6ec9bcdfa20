package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devkit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"docker": {"registry": "my-repo"}}`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "my-repo", s.Docker.Registry)
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "devkit.json"))
	require.NoError(t, err)
	require.Equal(t, "", s.Docker.Registry)
}

func TestLoadNoRegistryKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devkit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"docker": {}}`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "", s.Docker.Registry)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devkit.json")
	require.NoError(t, os.WriteFile(path, []byte(`invalid json`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Could not decode")
}
