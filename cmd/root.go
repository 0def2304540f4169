package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snipview",
		Short: "Local viewer for language/region snippet datasets",
		Long: `Snipview browses a directory tree of OCR snippet samples organized as
<root>/<language>/<region>/{images,jsons}, pairing each image with its JSON
annotation sidecar by filename stem.

It serves a local web interface for side-by-side viewing and offers CLI
commands for listing and inspecting samples.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}
