package schemas

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/refdocs/refcheck/pkg/logger"
)

var storeLog = logger.New("schemas:store")

// Store compiles schemas lazily and caches the compiled validator per
// ApiType for the process lifetime. The first caller for a type compiles;
// concurrent callers block on the same sync.Once and reuse the result.
//
// A missing, unreadable or invalid schema file is a broken installation,
// not a bad input document: ValidatorFor returns the error on every call
// for that type rather than masking it.
type Store struct {
	registry *Registry

	mu      sync.Mutex
	entries map[ApiType]*storeEntry
}

type storeEntry struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// NewStore creates a validator store backed by the given registry.
func NewStore(registry *Registry) *Store {
	return &Store{
		registry: registry,
		entries:  make(map[ApiType]*storeEntry),
	}
}

// ErrNoSchema reports that an ApiType has no schema mapping. Callers treat
// it as a skip condition.
var ErrNoSchema = fmt.Errorf("no schema registered for type")

// ValidatorFor returns the compiled validator for an ApiType, compiling
// the schema on first use. Returns ErrNoSchema for types outside the
// known set.
func (s *Store) ValidatorFor(t ApiType) (*jsonschema.Schema, error) {
	path, ok := s.registry.SchemaPath(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSchema, t)
	}

	s.mu.Lock()
	entry, ok := s.entries[t]
	if !ok {
		entry = &storeEntry{}
		s.entries[t] = entry
	}
	s.mu.Unlock()

	entry.once.Do(func() {
		entry.schema, entry.err = compileSchema(path)
	})
	return entry.schema, entry.err
}

// compileSchema loads and compiles one schema file. Compilation is
// deterministic for a given schema content.
func compileSchema(path string) (*jsonschema.Schema, error) {
	storeLog.Printf("Compiling schema: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", path, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(path, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource %s: %w", path, err)
	}
	schema, err := compiler.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", path, err)
	}

	storeLog.Printf("Schema compiled: %s", path)
	return schema, nil
}
