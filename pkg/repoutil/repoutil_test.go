//go:build !integration

package repoutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRepoSlug(t *testing.T) {
	tests := []struct {
		name      string
		slug      string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"valid slug", "acme/creator-docs", "acme", "creator-docs", false},
		{"missing repo", "acme/", "", "", true},
		{"missing owner", "/creator-docs", "", "", true},
		{"no separator", "acme", "", "", true},
		{"too many parts", "a/b/c", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := SplitRepoSlug(tt.slug)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}

func TestFindRepoRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "content", "reference", "engine")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".git"), 0755))

	root, err := FindRepoRoot(nested)
	require.NoError(t, err)
	// Resolve symlinks so the comparison survives /tmp -> /private/tmp setups.
	wantRoot, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
}

func TestRelativeToRoot(t *testing.T) {
	tests := []struct {
		name string
		root string
		path string
		want string
	}{
		{
			name: "schema path under root",
			root: "/work/creator-docs",
			path: "/work/creator-docs/tools/schemas/engine/classes.json",
			want: "tools/schemas/engine/classes.json",
		},
		{
			name: "root with trailing separator",
			root: "/work/creator-docs/",
			path: "/work/creator-docs/tools/schemas/engine/enums.json",
			want: "tools/schemas/engine/enums.json",
		},
		{
			name: "path outside root is unchanged",
			root: "/work/creator-docs",
			path: "/elsewhere/schema.json",
			want: "/elsewhere/schema.json",
		},
		{
			name: "empty root is unchanged",
			root: "",
			path: "/work/schema.json",
			want: "/work/schema.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeToRoot(tt.root, tt.path))
		})
	}
}
