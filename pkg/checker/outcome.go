// Package checker runs the per-file validation pipeline: parse the YAML
// document, locate its schema by path convention, validate, and return a
// plain outcome value. Reporting is a separate, effectful stage.
package checker

import (
	"github.com/refdocs/refcheck/pkg/parser"
	"github.com/refdocs/refcheck/pkg/schemas"
)

// Status classifies the result of checking one file.
type Status string

const (
	// StatusValid means the document parsed and satisfied its schema.
	StatusValid Status = "valid"
	// StatusSkipped means the file is outside this check's jurisdiction.
	StatusSkipped Status = "skipped"
	// StatusParseFailed means the document is not syntactically valid YAML.
	StatusParseFailed Status = "parse-failed"
	// StatusInvalid means the document violates its schema.
	StatusInvalid Status = "invalid"
)

// SkipReason says why a file was skipped.
type SkipReason string

const (
	// SkipNoAPIType: the path does not match reference/engine/<type>/<name>.
	SkipNoAPIType SkipReason = "no-api-type"
	// SkipNoSchema: the path segment names a type with no schema mapping.
	SkipNoSchema SkipReason = "no-schema"
)

// Outcome is the result of checking one file. Expected per-document
// conditions (syntax errors, skips, violations) are encoded here; only
// fatal conditions surface as errors from CheckFile.
type Outcome struct {
	FilePath string          `json:"filePath"`
	Status   Status          `json:"status"`
	ApiType  schemas.ApiType `json:"apiType,omitempty"`
	// SchemaPath is the schema the document was validated against,
	// set for StatusValid and StatusInvalid.
	SchemaPath string `json:"schemaPath,omitempty"`
	// Skip is set for StatusSkipped.
	Skip SkipReason `json:"skipReason,omitempty"`
	// ParseErr is set for StatusParseFailed.
	ParseErr *parser.ParseError `json:"parseError,omitempty"`
	// Violations is the ordered violation list for StatusInvalid.
	Violations []schemas.Violation `json:"violations,omitempty"`
}

// Failed reports whether the outcome counts as a failing file. Skips and
// clean validations are not failures.
func (o Outcome) Failed() bool {
	return o.Status == StatusParseFailed || o.Status == StatusInvalid
}
