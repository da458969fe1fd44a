// Package parser turns raw YAML documents into trees and maps schema
// violation pointers back to source positions.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/refdocs/refcheck/pkg/logger"
)

var parseLog = logger.New("parser:parse")

// ParseError describes a YAML syntax failure in a document. Malformed
// input is an expected, recoverable condition: Parse reports it as a
// value, never panics.
type ParseError struct {
	// Message is the parser's description of the failure.
	Message string
	// Line and Column are 1-based when known, 0 otherwise.
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%d:%d] %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

// positionPattern matches the "[line:column]" prefix goccy puts on syntax
// error messages.
var positionPattern = regexp.MustCompile(`^\[(\d+):(\d+)\]\s*`)

// Parse parses raw YAML text into a tree of maps, slices and scalars.
// Syntax failures return a *ParseError carrying the parser message and,
// when the parser reports one, a 1-based source position.
func Parse(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		parseLog.Printf("YAML parse failed: %v", err)
		return nil, newParseError(err)
	}
	return doc, nil
}

// newParseError extracts the position prefix from a goccy error. The
// error string may carry an annotated source excerpt after the first
// line; only the first line is kept as the message.
func newParseError(err error) *ParseError {
	text := err.Error()
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}

	parseErr := &ParseError{Message: text}
	if m := positionPattern.FindStringSubmatch(text); m != nil {
		parseErr.Line, _ = strconv.Atoi(m[1])
		parseErr.Column, _ = strconv.Atoi(m[2])
		parseErr.Message = text[len(m[0]):]
	}
	return parseErr
}
