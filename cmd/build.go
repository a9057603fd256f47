package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steppi/scribe/internal/build"
	"github.com/steppi/scribe/internal/config"
)

var buildCmd = &cobra.Command{
	Use:   "build [source-dir]",
	Short: "Build the documentation site",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		srcDir := "."
		if len(args) == 1 {
			srcDir = args[0]
		}

		result, err := build.New().Build(srcDir, cfg.OutDir)
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}

		reportWarnings(result.Warnings)
		fmt.Fprintf(os.Stderr, "✓ built %q: %d pages, %d objects → %s\n",
			result.SiteName, result.Pages, result.Objects, cfg.OutDir)

		if cfg.Strict && len(result.Warnings) > 0 {
			return fmt.Errorf("strict mode: build produced %d warning(s)", len(result.Warnings))
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().String("out", "_build", "output directory")
	buildCmd.Flags().Bool("strict", false, "treat warnings as errors")
	_ = viper.BindPFlag("out_dir", buildCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("strict", buildCmd.Flags().Lookup("strict"))

	rootCmd.AddCommand(buildCmd)
}

func reportWarnings(warnings []build.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "✗ %s\n", w)
	}
}
