package reporter

import (
	"strings"
	"sync"
)

// SummarySink accumulates requirement messages across files. The check
// run owns one sink; every non-success outcome appends to it.
type SummarySink interface {
	AddToSummaryOfRequirements(message string)
}

// Summary is the in-process SummarySink. Safe for concurrent appends.
type Summary struct {
	mu       sync.Mutex
	messages []string
}

// NewSummary creates an empty summary.
func NewSummary() *Summary {
	return &Summary{}
}

// AddToSummaryOfRequirements appends one message to the summary.
func (s *Summary) AddToSummaryOfRequirements(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

// Messages returns a copy of the accumulated messages in append order.
func (s *Summary) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

// Count returns the number of accumulated messages.
func (s *Summary) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// String renders the summary as one message per block, separated by blank
// lines.
func (s *Summary) String() string {
	return strings.Join(s.Messages(), "\n\n")
}
