package checker

import (
	"errors"
	"fmt"
	"os"

	"github.com/refdocs/refcheck/pkg/logger"
	"github.com/refdocs/refcheck/pkg/parser"
	"github.com/refdocs/refcheck/pkg/schemas"
)

var log = logger.New("checker:checker")

// Checker validates engine reference documents against their schemas. It
// is safe for concurrent use: the only shared state is the validator
// store, which is once-guarded per type.
type Checker struct {
	registry *schemas.Registry
	store    *schemas.Store
}

// New creates a Checker over the given registry and validator store.
func New(registry *schemas.Registry, store *schemas.Store) *Checker {
	return &Checker{registry: registry, store: store}
}

// CheckFile runs the full pipeline for one file:
//
//	parse -> type lookup -> schema lookup -> validate
//
// Expected per-document conditions (YAML syntax errors, files outside the
// reference tree, unknown types, schema violations) are returned inside
// the Outcome with a nil error. A non-nil error means the run itself is
// broken: the file is unreadable, or a registered schema is missing or
// does not compile.
func (c *Checker) CheckFile(path string) (Outcome, error) {
	outcome := Outcome{FilePath: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return outcome, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := parser.Parse(data)
	if err != nil {
		var parseErr *parser.ParseError
		if !errors.As(err, &parseErr) {
			return outcome, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		log.Printf("Parse failed: path=%s, line=%d: %s", path, parseErr.Line, parseErr.Message)
		outcome.Status = StatusParseFailed
		outcome.ParseErr = parseErr
		return outcome, nil
	}

	apiType, ok := schemas.ApiTypeFromPath(path)
	if !ok {
		log.Printf("Skipping %s: not an engine reference document", path)
		outcome.Status = StatusSkipped
		outcome.Skip = SkipNoAPIType
		return outcome, nil
	}
	outcome.ApiType = apiType

	schemaPath, ok := c.registry.SchemaPath(apiType)
	if !ok {
		log.Printf("Skipping %s: no schema for type %q", path, apiType)
		outcome.Status = StatusSkipped
		outcome.Skip = SkipNoSchema
		return outcome, nil
	}
	outcome.SchemaPath = schemaPath

	validator, err := c.store.ValidatorFor(apiType)
	if err != nil {
		// A registered schema that cannot be loaded or compiled is a broken
		// installation; skipping would mask every document of this type.
		return outcome, err
	}

	if violations := schemas.Validate(validator, doc); len(violations) > 0 {
		log.Printf("Validation failed: path=%s, violations=%d", path, len(violations))
		outcome.Status = StatusInvalid
		outcome.Violations = violations
		return outcome, nil
	}

	log.Printf("Valid: %s", path)
	outcome.Status = StatusValid
	return outcome, nil
}
