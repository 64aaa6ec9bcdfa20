package recipe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDeclarations(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deps.json"), []byte(contents), 0o644))
}

func TestLoadSingleSearchPath(t *testing.T) {
	dir := t.TempDir()
	writeDeclarations(t, dir, `{"base": {"deps": {}}, "app": {"deps": {"BASE_IMAGE": "base"}}}`)

	store, err := Load([]string{dir})
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	require.Equal(t, []string{"app", "base"}, store.Names())

	app, ok := store.Get("app")
	require.True(t, ok)
	require.Equal(t, map[string]string{"BASE_IMAGE": "base"}, app.Dependencies)
}

func TestLoadLaterPathOverwrites(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeDeclarations(t, first, `{"app": {"deps": {"A": "one"}}}`)
	writeDeclarations(t, second, `{"app": {"deps": {"B": "two"}}}`)

	store, err := Load([]string{first, second})
	require.NoError(t, err)
	app, ok := store.Get("app")
	require.True(t, ok)
	require.Equal(t, map[string]string{"B": "two"}, app.Dependencies)
}

func TestLoadMissingDeclarationFile(t *testing.T) {
	store, err := Load([]string{t.TempDir()})
	require.NoError(t, err)
	require.Equal(t, 0, store.Len())
}

func TestLoadTopLevelNotAnObject(t *testing.T) {
	dir := t.TempDir()
	writeDeclarations(t, dir, `[1, 2, 3]`)

	store, err := Load([]string{dir})
	require.NoError(t, err)
	require.Equal(t, 0, store.Len())
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeDeclarations(t, dir, `invalid json`)

	_, err := Load([]string{dir})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Could not decode")
}

func TestLoadMalformedEntry(t *testing.T) {
	dir := t.TempDir()
	writeDeclarations(t, dir, `{"app": {"deps": "not-a-mapping"}}`)

	_, err := Load([]string{dir})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Malformed declaration")
}

func TestFindDockerfileFirstMatchWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(first, "app.Dockerfile"), []byte("FROM scratch\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(second, "app.Dockerfile"), []byte("FROM alpine\n"), 0o644))
	writeDeclarations(t, first, `{"app": {"deps": {}}}`)

	store, err := Load([]string{first, second})
	require.NoError(t, err)

	path, err := store.FindDockerfile("app")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(path))
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "FROM scratch\n", string(contents))
}

func TestFindDockerfileNotFound(t *testing.T) {
	dir := t.TempDir()
	writeDeclarations(t, dir, `{"app": {"deps": {}}}`)

	store, err := Load([]string{dir})
	require.NoError(t, err)

	_, err = store.FindDockerfile("app")
	require.Error(t, err)
	require.Contains(t, err.Error(), "app.Dockerfile")
}
