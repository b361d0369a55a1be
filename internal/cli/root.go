// Package cli implements the needle command-line interface.
//
// The CLI is a thin driver over the library packages: it samples initialized
// weight matrices and runs augmentation pipelines on synthetic images,
// reporting summaries through charmbracelet/log.
//
// # Commands
//
//   - init: sample one weight matrix with a named initializer
//   - augment: run flip and crop on a synthetic ramp image
//   - run: do both from a TOML run description
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  string  // git commit SHA
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the needle CLI with args and returns an error if any command fails.
func Execute(ctx context.Context, args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "needle",
		Short:         "Weight initialization and image augmentation utilities",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("needle %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInitCmd())
	root.AddCommand(newAugmentCmd())
	root.AddCommand(newRunCmd())

	return root
}
