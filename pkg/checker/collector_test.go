//go:build !integration

package checker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCollectorCollects(t *testing.T) {
	collector := NewErrorCollector(false)

	assert.NoError(t, collector.Add(nil))
	assert.NoError(t, collector.Add(errors.New("first")))
	assert.NoError(t, collector.Add(errors.New("second")))

	assert.True(t, collector.HasErrors())
	assert.Equal(t, 2, collector.Count())

	err := collector.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
}

func TestErrorCollectorFailFast(t *testing.T) {
	collector := NewErrorCollector(true)

	first := errors.New("boom")
	assert.Same(t, first, collector.Add(first))
	assert.False(t, collector.HasErrors(), "fail-fast errors are returned, not stored")
}

func TestErrorCollectorEmpty(t *testing.T) {
	collector := NewErrorCollector(false)
	assert.False(t, collector.HasErrors())
	assert.NoError(t, collector.Error())
	assert.NoError(t, collector.FormattedError("validation"))
}

func TestErrorCollectorSingleErrorUnwrapped(t *testing.T) {
	collector := NewErrorCollector(false)
	only := errors.New("solo")
	require.NoError(t, collector.Add(only))

	assert.Same(t, only, collector.Error())
	assert.Same(t, only, collector.FormattedError("validation"))
}

func TestErrorCollectorFormattedError(t *testing.T) {
	collector := NewErrorCollector(false)
	require.NoError(t, collector.Add(errors.New("first")))
	require.NoError(t, collector.Add(errors.New("second")))

	err := collector.FormattedError("validation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Found 2 validation errors:")
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
}
