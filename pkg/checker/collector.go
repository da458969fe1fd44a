package checker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCollector aggregates errors across a multi-file run so users see
// every failure in one pass instead of one at a time. When failFast is
// set, Add returns the error immediately instead of collecting it.
type ErrorCollector struct {
	errors   []error
	failFast bool
}

// NewErrorCollector creates a collector. failFast makes Add return the
// first error instead of accumulating.
func NewErrorCollector(failFast bool) *ErrorCollector {
	return &ErrorCollector{failFast: failFast}
}

// Add records an error. In fail-fast mode the error is returned to the
// caller for immediate propagation; otherwise Add returns nil.
func (c *ErrorCollector) Add(err error) error {
	if err == nil {
		return nil
	}
	if c.failFast {
		return err
	}
	c.errors = append(c.errors, err)
	return nil
}

// HasErrors returns true if any errors have been collected.
func (c *ErrorCollector) HasErrors() bool {
	return len(c.errors) > 0
}

// Count returns the number of errors collected.
func (c *ErrorCollector) Count() int {
	return len(c.errors)
}

// Error returns the collected errors joined, or nil when none were added.
func (c *ErrorCollector) Error() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

// FormattedError returns the collected errors under a count header naming
// the category, or nil when none were added.
func (c *ErrorCollector) FormattedError(category string) error {
	if len(c.errors) == 0 {
		return nil
	}
	if len(c.errors) == 1 {
		return c.errors[0]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d %s errors:", len(c.errors), category)
	for _, err := range c.errors {
		sb.WriteString("\n  • ")
		sb.WriteString(err.Error())
	}
	return errors.New(sb.String())
}
