// Package reporter turns check outcomes into console lines, summary
// entries and, when configured, pull request review comments.
package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/refdocs/refcheck/pkg/checker"
	"github.com/refdocs/refcheck/pkg/config"
	"github.com/refdocs/refcheck/pkg/console"
	"github.com/refdocs/refcheck/pkg/constants"
	"github.com/refdocs/refcheck/pkg/github"
	"github.com/refdocs/refcheck/pkg/logger"
	"github.com/refdocs/refcheck/pkg/parser"
	"github.com/refdocs/refcheck/pkg/repoutil"
)

var log = logger.New("reporter:reporter")

// Reporter performs the effectful half of a check: it never decides
// whether a file passed, only how each outcome is surfaced.
type Reporter struct {
	cfg      config.Config
	summary  SummarySink
	comments github.CommentService
	out      io.Writer
}

// New creates a Reporter. comments may be nil when review comments are
// disabled; the flag in cfg is still honored independently.
func New(cfg config.Config, summary SummarySink, comments github.CommentService) *Reporter {
	return &Reporter{cfg: cfg, summary: summary, comments: comments, out: os.Stderr}
}

// SetOutput redirects console output, primarily for tests.
func (r *Reporter) SetOutput(w io.Writer) {
	r.out = w
}

// Report surfaces one outcome. Valid and skipped files produce debug
// logging only. Parse failures and schema violations always produce a
// console line and a summary entry, and additionally a review comment
// when posting is enabled and configured. The returned error is non-nil
// only when filing the review comment failed.
func (r *Reporter) Report(outcome checker.Outcome) error {
	switch outcome.Status {
	case checker.StatusValid:
		log.Printf("Valid: %s", outcome.FilePath)
		return nil
	case checker.StatusSkipped:
		log.Printf("Skipped %s: %s", outcome.FilePath, outcome.Skip)
		return nil
	case checker.StatusParseFailed:
		return r.reportParseFailure(outcome)
	case checker.StatusInvalid:
		return r.reportViolations(outcome)
	default:
		return fmt.Errorf("unknown outcome status %q for %s", outcome.Status, outcome.FilePath)
	}
}

func (r *Reporter) reportParseFailure(outcome checker.Outcome) error {
	message := r.formatRequirement(fmt.Sprintf("%s is not valid YAML: %s", outcome.FilePath, outcome.ParseErr.Error()))
	r.emit(message)

	if !r.canComment() {
		return nil
	}

	// Anchor at the parser-reported line when it has one.
	line := outcome.ParseErr.Line
	if line < 1 {
		line = 1
	}
	return r.comments.CreatePullRequestComment(r.cfg.Repository, r.cfg.PullRequestNumber, github.CommentRequest{
		Body:     message + "\n\n" + constants.RequiredCheckNotice,
		CommitID: r.cfg.CommitHash,
		Path:     outcome.FilePath,
		Line:     line,
	})
}

func (r *Reporter) reportViolations(outcome checker.Outcome) error {
	schemaRef := repoutil.RelativeToRoot(r.cfg.RepoRoot, outcome.SchemaPath)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s does not satisfy %s:", outcome.FilePath, schemaRef)
	for _, violation := range r.decorate(outcome) {
		sb.WriteString("\n  - ")
		sb.WriteString(violation)
	}
	message := r.formatRequirement(sb.String())
	r.emit(message)

	if !r.canComment() {
		return nil
	}

	// Violations reference the whole document, so the comment is
	// file-level and anchored at line 1.
	return r.comments.CreatePullRequestComment(r.cfg.Repository, r.cfg.PullRequestNumber, github.CommentRequest{
		Body:        message + "\n\n" + constants.RequiredCheckNotice,
		CommitID:    r.cfg.CommitHash,
		Path:        outcome.FilePath,
		Line:        1,
		SubjectType: constants.SubjectTypeFile,
	})
}

// decorate renders each violation, appending the YAML source position
// when the instance path resolves against the document. Decoration is
// best effort: an unreadable file leaves the violations bare.
func (r *Reporter) decorate(outcome checker.Outcome) []string {
	rendered := make([]string, 0, len(outcome.Violations))
	content, err := os.ReadFile(outcome.FilePath)
	for _, violation := range outcome.Violations {
		text := violation.String()
		if err == nil {
			if loc := parser.LocateInstancePath(content, violation.InstancePath); loc.Found {
				text = fmt.Sprintf("%s (line %d)", text, loc.Line)
			}
		}
		rendered = append(rendered, text)
	}
	return rendered
}

// formatRequirement builds the fixed message shape: error glyph, the word
// Requirement, then the detail.
func (r *Reporter) formatRequirement(detail string) string {
	return fmt.Sprintf("%s %s: %s", constants.ErrorGlyph, constants.RequirementLabel, detail)
}

// emit writes the message to the console stream and the summary sink.
func (r *Reporter) emit(message string) {
	fmt.Fprintln(r.out, console.StyleError(message))
	if r.summary != nil {
		r.summary.AddToSummaryOfRequirements(message)
	}
}

func (r *Reporter) canComment() bool {
	if !r.cfg.PostPullRequestComments {
		return false
	}
	if r.comments == nil {
		log.Print("Comment posting enabled but no comment service configured")
		return false
	}
	if !r.cfg.CanPostComments() {
		log.Print("Comment posting enabled but repository, commit or pull request number missing")
		return false
	}
	return true
}
