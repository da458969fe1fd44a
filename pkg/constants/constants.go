// Package constants holds fixed values shared across the refcheck packages.
package constants

// CLIName is the binary name used in help text and examples.
const CLIName = "refcheck"

// EngineReferenceSegment is the path segment that marks engine reference
// documents. Only files under reference/engine/<type>/ are checked.
const EngineReferenceSegment = "reference/engine"

// SchemaDir is the directory, relative to the repository root, holding one
// JSON Schema per API type.
const SchemaDir = "tools/schemas/engine"

// APITypes are the recognized engine API surface categories. The set is
// fixed: a file whose path names any other segment is skipped.
var APITypes = []string{"classes", "datatypes", "enums", "globals", "libraries"}

// RequirementLabel is the literal word prefixed to every reported message.
const RequirementLabel = "Requirement"

// RequiredCheckNotice is appended to review comments so authors know the
// check gates the merge.
const RequiredCheckNotice = "This check is required to pass before the pull request can be merged."

// SubjectTypeFile marks a review comment as file-level rather than
// anchored to a specific line.
const SubjectTypeFile = "file"

// Message glyphs for console output.
const (
	ErrorGlyph   = "✖"
	WarningGlyph = "⚠"
	SuccessGlyph = "✓"
	InfoGlyph    = "ℹ"
)
