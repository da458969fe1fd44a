package schemas

import (
	"path/filepath"

	"github.com/refdocs/refcheck/pkg/constants"
)

// Registry is an immutable mapping from ApiType to the schema file for
// that type. It is built once at startup from the repository root and
// passed by reference into the components that need it.
type Registry struct {
	repoRoot string
	paths    map[ApiType]string
}

// NewRegistry builds the registry for a repository root. One schema file
// per known ApiType is expected under tools/schemas/engine/.
func NewRegistry(repoRoot string) *Registry {
	paths := make(map[ApiType]string, len(constants.APITypes))
	for _, t := range constants.APITypes {
		paths[ApiType(t)] = filepath.Join(repoRoot, filepath.FromSlash(constants.SchemaDir), t+".json")
	}
	return &Registry{repoRoot: repoRoot, paths: paths}
}

// RepoRoot returns the repository root the registry was built for.
func (r *Registry) RepoRoot() string {
	return r.repoRoot
}

// SchemaPath returns the schema file location for an ApiType. The second
// return value is false for types outside the known set; that is a skip
// condition, not an error.
func (r *Registry) SchemaPath(t ApiType) (string, bool) {
	path, ok := r.paths[t]
	return path, ok
}

// Types returns the known ApiTypes in stable order.
func (r *Registry) Types() []ApiType {
	types := make([]ApiType, 0, len(constants.APITypes))
	for _, t := range constants.APITypes {
		types = append(types, ApiType(t))
	}
	return types
}
