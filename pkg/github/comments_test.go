//go:build !integration

package github

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRequestSerialization(t *testing.T) {
	t.Run("line-anchored comment omits subject_type", func(t *testing.T) {
		req := CommentRequest{
			Body:     "message",
			CommitID: "abc123",
			Path:     "content/reference/engine/enums/Foo.yaml",
			Line:     7,
		}
		payload, err := json.Marshal(req)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, float64(7), decoded["line"])
		assert.NotContains(t, decoded, "subject_type")
	})

	t.Run("file-level comment carries subject_type", func(t *testing.T) {
		req := CommentRequest{
			Body:        "message",
			CommitID:    "abc123",
			Path:        "content/reference/engine/enums/Foo.yaml",
			Line:        1,
			SubjectType: "file",
		}
		payload, err := json.Marshal(req)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, "file", decoded["subject_type"])
	})
}

func TestCreatePullRequestCommentRejectsBadSlug(t *testing.T) {
	client := &Client{}
	err := client.CreatePullRequestComment("not-a-slug", 1, CommentRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid repo format")
}
