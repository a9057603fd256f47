package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steppi/scribe/internal/build"
)

var validateCmd = &cobra.Command{
	Use:   "validate [source-dir]",
	Short: "Check a documentation source tree without writing output",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srcDir := "."
		if len(args) == 1 {
			srcDir = args[0]
		}

		result, err := build.New().Check(srcDir)
		if err != nil {
			return err
		}

		reportWarnings(result.Warnings)
		if len(result.Warnings) > 0 {
			return fmt.Errorf("%d warning(s)", len(result.Warnings))
		}
		fmt.Fprintf(os.Stderr, "✓ %q is valid: %d pages, %d objects\n",
			result.SiteName, result.Pages, result.Objects)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
