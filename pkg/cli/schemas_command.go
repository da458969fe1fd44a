package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/refdocs/refcheck/pkg/config"
	"github.com/refdocs/refcheck/pkg/console"
	"github.com/refdocs/refcheck/pkg/fileutil"
	"github.com/refdocs/refcheck/pkg/repoutil"
	"github.com/refdocs/refcheck/pkg/schemas"
)

// NewSchemasCommand creates the schemas command, which lists the known
// API types and their schema files.
func NewSchemasCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "List the known API types and their schema files",
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, _ := cmd.Flags().GetString("repo-root")
			if repoRoot == "" {
				repoRoot = config.FromEnvironment().RepoRoot
			}
			if repoRoot == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				if root, err := repoutil.FindRepoRoot(cwd); err == nil {
					repoRoot = root
				} else {
					repoRoot = cwd
				}
			}

			registry := schemas.NewRegistry(repoRoot)
			missing := 0
			for _, apiType := range registry.Types() {
				path, _ := registry.SchemaPath(apiType)
				ref := repoutil.RelativeToRoot(repoRoot, path)
				if fileutil.FileExists(path) {
					fmt.Fprintln(os.Stdout, console.FormatSuccessMessage(fmt.Sprintf("%-10s %s", apiType, ref)))
				} else {
					missing++
					fmt.Fprintln(os.Stdout, console.FormatWarningMessage(fmt.Sprintf("%-10s %s (missing)", apiType, ref)))
				}
			}
			if missing > 0 {
				return fmt.Errorf("%d schema files missing under %s", missing, repoRoot)
			}
			return nil
		},
	}

	cmd.Flags().String("repo-root", "", "Repository root (default: discovered from the working directory)")

	return cmd
}
