// Package cli assembles the refcheck command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/refdocs/refcheck/pkg/constants"
)

// NewRootCommand builds the root command with all subcommands attached.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     constants.CLIName,
		Short:   "Validate engine reference YAML documents against their JSON Schemas",
		Version: version,
		Long: `refcheck validates documentation-as-data files describing an engine's API
surface (classes, datatypes, enums, globals, libraries) against the JSON
Schemas shipped in the repository, and reports violations to the console
and, optionally, as inline pull request review comments.

Files are matched by the path convention reference/engine/<type>/<name>.yaml;
anything else is skipped. Schemas are loaded from tools/schemas/engine/
under the repository root.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewSchemasCommand())

	return cmd
}
