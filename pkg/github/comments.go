// Package github wraps the GitHub REST calls refcheck makes for review comments.
package github

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cli/go-gh/v2/pkg/api"

	"github.com/refdocs/refcheck/pkg/logger"
	"github.com/refdocs/refcheck/pkg/repoutil"
)

var log = logger.New("github:comments")

// CommentRequest is the payload for an inline pull request review comment.
// SubjectType is empty for line-anchored comments and "file" for comments
// that apply to the whole file.
type CommentRequest struct {
	Body        string `json:"body"`
	CommitID    string `json:"commit_id"`
	Path        string `json:"path"`
	Line        int    `json:"line,omitempty"`
	SubjectType string `json:"subject_type,omitempty"`
}

// CommentService files review comments on a pull request. The reporter
// depends on this interface so tests can observe calls without a network.
type CommentService interface {
	CreatePullRequestComment(repository string, pullNumber int, req CommentRequest) error
}

// Client is the go-gh backed implementation of CommentService. It uses the
// ambient gh authentication (GH_TOKEN or the gh CLI keyring).
type Client struct {
	rest *api.RESTClient
}

// NewClient creates an authenticated REST client.
func NewClient() (*Client, error) {
	rest, err := api.DefaultRESTClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub API client: %w", err)
	}
	return &Client{rest: rest}, nil
}

// CreatePullRequestComment files one review comment on the pull request.
func (c *Client) CreatePullRequestComment(repository string, pullNumber int, req CommentRequest) error {
	owner, name, err := repoutil.SplitRepoSlug(repository)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode review comment: %w", err)
	}

	endpoint := fmt.Sprintf("repos/%s/%s/pulls/%d/comments", owner, name, pullNumber)
	log.Printf("Posting review comment: endpoint=%s, path=%s, line=%d, subject_type=%q", endpoint, req.Path, req.Line, req.SubjectType)

	response := map[string]any{}
	if err := c.rest.Post(endpoint, bytes.NewReader(payload), &response); err != nil {
		return fmt.Errorf("failed to create review comment on %s#%d: %w", repository, pullNumber, err)
	}
	return nil
}
