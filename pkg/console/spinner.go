package console

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/refdocs/refcheck/pkg/tty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows an animated progress indicator on stderr while a slow
// operation (typically a network call) is in flight. It is disabled when
// stderr is not a terminal or when the ACCESSIBLE environment variable is
// set, in which case Start and Stop are no-ops.
type Spinner struct {
	mu      sync.Mutex
	message string
	enabled bool
	running bool
	done    chan struct{}
}

// NewSpinner creates a spinner with the given message.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		enabled: tty.IsStderrTerminal() && os.Getenv("ACCESSIBLE") == "",
	}
}

// IsEnabled reports whether the spinner will render anything.
func (s *Spinner) IsEnabled() bool {
	return s.enabled
}

// UpdateMessage changes the message shown next to the spinner.
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Start begins the animation. Calling Start on a running or disabled
// spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled || s.running {
		return
	}
	s.running = true
	s.done = make(chan struct{})

	go func(done chan struct{}) {
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		frame := 0
		for {
			select {
			case <-done:
				fmt.Fprint(os.Stderr, "\r\033[K")
				return
			case <-ticker.C:
				s.mu.Lock()
				message := s.message
				s.mu.Unlock()
				fmt.Fprintf(os.Stderr, "\r%s %s", progressStyle.Render(spinnerFrames[frame]), message)
				frame = (frame + 1) % len(spinnerFrames)
			}
		}
	}(s.done)
}

// Stop halts the animation and clears the spinner line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.done)
}
