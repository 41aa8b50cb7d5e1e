package system

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func NewGenDocsCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:    "gendocs",
		Short:  "Generate markdown docs for the CLI",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output dir: %w", err)
			}
			if err := doc.GenMarkdownTree(cmd.Root(), outDir); err != nil {
				return fmt.Errorf("failed to generate docs: %w", err)
			}
			fmt.Printf("docs written to %s\n", outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "./docs/cli", "output directory")

	return cmd
}
