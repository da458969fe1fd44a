package schemas

import (
	"errors"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Violation is one structural constraint failure from a validation run.
type Violation struct {
	// InstancePath is the JSON pointer to the offending value in the
	// document ("" for the document root).
	InstancePath string `json:"instancePath"`
	// KeywordPath names the schema keyword that was violated.
	KeywordPath string `json:"keywordPath"`
	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

func (v Violation) String() string {
	location := v.InstancePath
	if location == "" {
		location = "(root)"
	}
	return location + ": " + v.Message
}

// Validate runs a compiled validator against a parsed document and returns
// the ordered list of violations, or nil when the document is valid. The
// result is deterministic for a given (schema, document) pair: ordering
// follows the underlying library's evaluation order.
func Validate(schema *jsonschema.Schema, doc any) []Violation {
	err := schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		// Not a structural violation; surface it as a single opaque record.
		return []Violation{{Message: err.Error()}}
	}

	var violations []Violation
	for _, leaf := range flattenCauses(ve) {
		violations = append(violations, Violation{
			InstancePath: pointerString(leaf.InstanceLocation),
			KeywordPath:  strings.Join(leaf.ErrorKind.KeywordPath(), "/"),
			Message:      leaf.ErrorKind.LocalizedString(printer),
		})
	}
	return violations
}

// flattenCauses walks the validation error tree depth-first and returns
// the leaf causes in evaluation order.
func flattenCauses(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range ve.Causes {
		leaves = append(leaves, flattenCauses(cause)...)
	}
	return leaves
}

func pointerString(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	return "/" + strings.Join(segments, "/")
}
