package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/refdocs/refcheck/pkg/checker"
	"github.com/refdocs/refcheck/pkg/config"
	"github.com/refdocs/refcheck/pkg/console"
	"github.com/refdocs/refcheck/pkg/constants"
	"github.com/refdocs/refcheck/pkg/fileutil"
	"github.com/refdocs/refcheck/pkg/github"
	"github.com/refdocs/refcheck/pkg/logger"
	"github.com/refdocs/refcheck/pkg/reporter"
	"github.com/refdocs/refcheck/pkg/repoutil"
	"github.com/refdocs/refcheck/pkg/schemas"
)

var checkLog = logger.New("cli:check_command")

// checkOptions holds the resolved settings for one check run.
type checkOptions struct {
	cfg      config.Config
	paths    []string
	failFast bool
	jsonOut  bool
	jobs     int
	watch    bool
	verbose  bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path]...",
		Short: "Check engine reference YAML files against their schemas",
		Long: `Check one or more YAML files, or all YAML files under the given
directories, against the JSON Schema for their API type. Files outside
reference/engine/<type>/ are skipped.

With no paths, the current directory is checked recursively.

Review comments are posted only with --post-comments (or
` + config.EnvPostComments + `=true) and a complete GitHub context
(` + config.EnvRepository + `, ` + config.EnvCommitHash + `, ` + config.EnvPullRequest + `).

Examples:
  ` + constants.CLIName + ` check                                  # Check the whole working tree
  ` + constants.CLIName + ` check content/reference/engine         # Check one directory
  ` + constants.CLIName + ` check reference/engine/enums/Foo.yaml  # Check a single file
  ` + constants.CLIName + ` check --json                           # Machine-readable outcomes
  ` + constants.CLIName + ` check --fail-fast                      # Stop at the first failure
  ` + constants.CLIName + ` check --watch                          # Re-check files as they change`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveCheckOptions(cmd, args)
			if err != nil {
				return err
			}
			checkLog.Printf("Running check: paths=%v, jobs=%d, watch=%v", opts.paths, opts.jobs, opts.watch)
			return runCheck(opts)
		},
	}

	cmd.Flags().String("repo-root", "", "Repository root (default: discovered from the working directory)")
	cmd.Flags().Bool("post-comments", false, "Post review comments for failures ("+config.EnvPostComments+")")
	cmd.Flags().Bool("fail-fast", false, "Stop at the first failing file instead of collecting all failures")
	cmd.Flags().BoolP("json", "j", false, "Output outcomes in JSON format")
	cmd.Flags().IntP("jobs", "n", runtime.NumCPU(), "Number of files checked concurrently")
	cmd.Flags().BoolP("watch", "w", false, "Watch the given paths and re-check files on change")
	cmd.Flags().BoolP("verbose", "v", false, "Print progress for every file, including valid and skipped ones")

	return cmd
}

func resolveCheckOptions(cmd *cobra.Command, args []string) (checkOptions, error) {
	cfg := config.FromEnvironment()

	if post, _ := cmd.Flags().GetBool("post-comments"); post {
		cfg.PostPullRequestComments = true
	}
	if root, _ := cmd.Flags().GetString("repo-root"); root != "" {
		cfg.RepoRoot = root
	}
	if cfg.RepoRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return checkOptions{}, err
		}
		if root, err := repoutil.FindRepoRoot(cwd); err == nil {
			cfg.RepoRoot = root
		} else {
			cfg.RepoRoot = cwd
		}
	}

	failFast, _ := cmd.Flags().GetBool("fail-fast")
	jsonOut, _ := cmd.Flags().GetBool("json")
	jobs, _ := cmd.Flags().GetInt("jobs")
	watch, _ := cmd.Flags().GetBool("watch")
	verbose, _ := cmd.Flags().GetBool("verbose")
	if jobs < 1 {
		jobs = 1
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	return checkOptions{
		cfg:      cfg,
		paths:    paths,
		failFast: failFast,
		jsonOut:  jsonOut,
		jobs:     jobs,
		watch:    watch,
		verbose:  verbose,
	}, nil
}

// collectFiles expands the given paths into the list of YAML files to check.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		switch {
		case fileutil.DirExists(path):
			found, err := fileutil.FindYAMLFiles(path)
			if err != nil {
				return nil, fmt.Errorf("failed to scan %s: %w", path, err)
			}
			files = append(files, found...)
		case fileutil.FileExists(path):
			files = append(files, path)
		default:
			return nil, fmt.Errorf("no such file or directory: %s", path)
		}
	}
	return files, nil
}

func runCheck(opts checkOptions) error {
	files, err := collectFiles(opts.paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage("No YAML files found"))
		return nil
	}

	registry := schemas.NewRegistry(opts.cfg.RepoRoot)
	check := checker.New(registry, schemas.NewStore(registry))
	summary := reporter.NewSummary()

	var comments github.CommentService
	if opts.cfg.CanPostComments() {
		client, err := github.NewClient()
		if err != nil {
			return err
		}
		comments = client
	}
	report := reporter.New(opts.cfg, summary, comments)

	spinner := console.NewSpinner(fmt.Sprintf("Checking %d files", len(files)))
	spinner.Start()
	outcomes, err := checkFiles(check, files, opts)
	spinner.Stop()
	if err != nil {
		return err
	}

	reportErrors := checker.NewErrorCollector(false)
	failed := 0
	for _, outcome := range outcomes {
		if outcome.Failed() {
			failed++
		} else if opts.verbose {
			fmt.Fprintln(os.Stderr, console.FormatVerboseMessage(fmt.Sprintf("%s: %s", outcome.FilePath, outcome.Status)))
		}
		if err := report.Report(outcome); err != nil {
			_ = reportErrors.Add(err)
		}
	}

	if opts.jsonOut {
		encoded, err := json.MarshalIndent(outcomes, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(encoded))
	}

	if err := reportErrors.FormattedError("review comment"); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatWarningMessage(err.Error()))
	}

	if opts.watch {
		return watchAndCheck(opts.paths, check, report, opts.verbose)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(files))
	}
	if !opts.jsonOut {
		fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(fmt.Sprintf("%d files checked", len(files))))
	}
	return nil
}

// errFailFastStop aborts the pool after the first failing file without
// being mistaken for a fatal error.
var errFailFastStop = errors.New("stopping at first failing file")

// checkFiles runs the checker over the files with bounded concurrency.
// This is safe because the validator cache is once-guarded per type; the
// outcomes are sorted by path so reporting order is deterministic.
func checkFiles(check *checker.Checker, files []string, opts checkOptions) ([]checker.Outcome, error) {
	var mu sync.Mutex
	outcomes := make([]checker.Outcome, 0, len(files))

	p := pool.New().WithErrors().WithMaxGoroutines(opts.jobs)
	if opts.failFast {
		p = p.WithFirstError()
	}
	for _, file := range files {
		file := file
		p.Go(func() error {
			outcome, err := check.CheckFile(file)
			if err != nil {
				return err
			}
			mu.Lock()
			outcomes = append(outcomes, outcome)
			mu.Unlock()
			if opts.failFast && outcome.Failed() {
				return errFailFastStop
			}
			return nil
		})
	}
	err := p.Wait()

	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].FilePath < outcomes[j].FilePath })

	if err != nil && !errors.Is(err, errFailFastStop) {
		return outcomes, err
	}
	// A fail-fast stop is not fatal: the collected outcomes are reported
	// and the failure surfaces through the exit status.
	return outcomes, nil
}
