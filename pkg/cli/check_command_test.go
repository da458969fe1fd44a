//go:build !integration

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refdocs/refcheck/pkg/checker"
	"github.com/refdocs/refcheck/pkg/schemas"
)

func TestNewRootCommandWiring(t *testing.T) {
	root := NewRootCommand("1.2.3")
	assert.Equal(t, "1.2.3", root.Version)

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "check")
	assert.Contains(t, names, "schemas")
}

func TestNewCheckCommandFlags(t *testing.T) {
	cmd := NewCheckCommand()
	for _, flag := range []string{"repo-root", "post-comments", "fail-fast", "json", "jobs", "watch", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestCollectFiles(t *testing.T) {
	tmpDir := t.TempDir()
	sub := filepath.Join(tmpDir, "reference", "engine", "enums")
	require.NoError(t, os.MkdirAll(sub, 0755))

	yamlFile := filepath.Join(sub, "Foo.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("values: [A]\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644))

	t.Run("directory is scanned recursively", func(t *testing.T) {
		files, err := collectFiles([]string{tmpDir})
		require.NoError(t, err)
		assert.Equal(t, []string{yamlFile}, files)
	})

	t.Run("explicit file is included as-is", func(t *testing.T) {
		files, err := collectFiles([]string{yamlFile})
		require.NoError(t, err)
		assert.Equal(t, []string{yamlFile}, files)
	})

	t.Run("missing path errors", func(t *testing.T) {
		_, err := collectFiles([]string{filepath.Join(tmpDir, "nope")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no such file or directory")
	})
}

func TestCheckFilesConcurrent(t *testing.T) {
	root := t.TempDir()
	schemaDir := filepath.Join(root, "tools", "schemas", "engine")
	require.NoError(t, os.MkdirAll(schemaDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(schemaDir, "enums.json"), []byte(`{
		"type": "object",
		"properties": {"values": {"type": "array", "minItems": 1}},
		"required": ["values"]
	}`), 0644))

	docsDir := filepath.Join(root, "reference", "engine", "enums")
	require.NoError(t, os.MkdirAll(docsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "Good.yaml"), []byte("values: [A]\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "Bad.yaml"), []byte("values: []\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "Broken.yaml"), []byte("values: \"x\n"), 0644))

	registry := schemas.NewRegistry(root)
	check := checker.New(registry, schemas.NewStore(registry))

	files, err := collectFiles([]string{docsDir})
	require.NoError(t, err)
	require.Len(t, files, 3)

	outcomes, err := checkFiles(check, files, checkOptions{jobs: 4})
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	// Sorted by path: Bad, Broken, Good.
	assert.Equal(t, checker.StatusInvalid, outcomes[0].Status)
	assert.Equal(t, checker.StatusParseFailed, outcomes[1].Status)
	assert.Equal(t, checker.StatusValid, outcomes[2].Status)
}

func TestCheckFilesFailFastStops(t *testing.T) {
	root := t.TempDir()
	schemaDir := filepath.Join(root, "tools", "schemas", "engine")
	require.NoError(t, os.MkdirAll(schemaDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(schemaDir, "enums.json"), []byte(`{"type": "object"}`), 0644))

	docsDir := filepath.Join(root, "reference", "engine", "enums")
	require.NoError(t, os.MkdirAll(docsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "Broken.yaml"), []byte("a: \"x\n"), 0644))

	registry := schemas.NewRegistry(root)
	check := checker.New(registry, schemas.NewStore(registry))

	outcomes, err := checkFiles(check, []string{filepath.Join(docsDir, "Broken.yaml")}, checkOptions{jobs: 1, failFast: true})
	require.NoError(t, err, "a fail-fast stop is not a fatal error")
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Failed())
}
