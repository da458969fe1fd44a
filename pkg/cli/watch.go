package cli

import (
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"github.com/refdocs/refcheck/pkg/checker"
	"github.com/refdocs/refcheck/pkg/console"
	"github.com/refdocs/refcheck/pkg/fileutil"
	"github.com/refdocs/refcheck/pkg/logger"
	"github.com/refdocs/refcheck/pkg/reporter"
)

var watchLog = logger.New("cli:watch")

// watchAndCheck re-checks YAML files as they change under the given
// paths. It blocks until interrupted. Each change is a fresh single-file
// check with the same semantics as a batch run; the compiled validator
// cache is shared across re-checks.
func watchAndCheck(paths []string, check *checker.Checker, report *reporter.Reporter, verbose bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watchRecursively(watcher, path); err != nil {
			return err
		}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Watching for changes (Ctrl+C to stop)"))

	for {
		select {
		case <-interrupt:
			fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Stopping watch"))
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			watchLog.Printf("Watcher error: %v", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			watchLog.Printf("Event: %s", event)

			// New directories need to be picked up for future events.
			if event.Op.Has(fsnotify.Create) && fileutil.DirExists(event.Name) {
				if err := watchRecursively(watcher, event.Name); err != nil {
					watchLog.Printf("Failed to watch new directory %s: %v", event.Name, err)
				}
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !fileutil.IsYAMLFile(event.Name) || !fileutil.FileExists(event.Name) {
				continue
			}

			outcome, err := check.CheckFile(event.Name)
			if err != nil {
				fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
				continue
			}
			if outcome.Failed() {
				if err := report.Report(outcome); err != nil {
					fmt.Fprintln(os.Stderr, console.FormatWarningMessage(err.Error()))
				}
			} else if verbose {
				fmt.Fprintln(os.Stderr, console.FormatVerboseMessage(fmt.Sprintf("%s: %s", outcome.FilePath, outcome.Status)))
			}
		}
	}
}

// watchRecursively adds a path and, for directories, every visible
// subdirectory to the watcher.
func watchRecursively(watcher *fsnotify.Watcher, path string) error {
	if !fileutil.DirExists(path) {
		return watcher.Add(filepath.Dir(path))
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(p)
	})
}
