// Package cli implements the cratepack command-line interface: reading
// item, order, and container inputs, running the packing engine per
// order, and writing CSV/Excel/PDF outputs.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cratepack/internal/logging"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// Called by main during initialization with values injected via ldflags
// at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the cratepack CLI and returns an error if any command
// fails.
func Execute() error {
	var logLevel string

	root := &cobra.Command{
		Use:          "cratepack",
		Short:        "cratepack packs warehouse orders into shipping containers",
		Long:         `cratepack reads item catalogues, order rows, and container catalogues and runs a 3D bin-packing engine to decide which container each order ships in and where every item sits inside it.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logLevel)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("cratepack %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newPackCmd())
	root.AddCommand(newCatalogueCmd())

	return root.ExecuteContext(context.Background())
}
