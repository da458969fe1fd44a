//go:build !integration

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		pattern   string
		want      bool
	}{
		{"wildcard all", "schemas:store", "*", true},
		{"exact match", "schemas:store", "schemas:store", true},
		{"exact mismatch", "schemas:store", "schemas:registry", false},
		{"prefix wildcard", "schemas:store", "schemas:*", true},
		{"prefix wildcard mismatch", "parser:parse", "schemas:*", false},
		{"suffix wildcard", "checker:store", "*:store", true},
		{"middle wildcard", "schemas:store", "schemas*store", true},
		{"middle wildcard mismatch", "schemas:store", "parser*store", false},
		{"no wildcard no match", "schemas:store", "schemas", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchPattern(tt.namespace, tt.pattern))
		})
	}
}

func TestNewDisabledByDefault(t *testing.T) {
	// DEBUG is unset in tests, so loggers are disabled and printing is a no-op.
	log := New("test:namespace")
	assert.False(t, log.Enabled())
	log.Print("should not panic")
	log.Printf("should not panic: %d", 42)
}
