package main

import (
	"fmt"
	"os"

	"github.com/refdocs/refcheck/pkg/cli"
	"github.com/refdocs/refcheck/pkg/console"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
