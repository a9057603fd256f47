package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/steppi/scribe/internal/build"
	"github.com/steppi/scribe/internal/config"
	"github.com/steppi/scribe/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [source-dir]",
	Short: "Rebuild the site whenever a source file changes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		srcDir := "."
		if len(args) == 1 {
			srcDir = args[0]
		}

		builder := build.New()
		rebuild := func() {
			result, err := builder.Build(srcDir, cfg.OutDir)
			if err != nil {
				fmt.Fprintf(os.Stderr, "✗ build failed: %v\n", err)
				return
			}
			reportWarnings(result.Warnings)
			fmt.Fprintf(os.Stderr, "✓ rebuilt: %d pages, %d objects\n", result.Pages, result.Objects)
		}
		rebuild()

		watcher, err := watch.NewWatcher(srcDir)
		if err != nil {
			return err
		}
		if err := watcher.Start(); err != nil {
			return err
		}
		defer watcher.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		fmt.Fprintf(os.Stderr, "watching %s (ctrl-c to stop)\n", srcDir)
		for {
			select {
			case change, ok := <-watcher.Changes:
				if !ok {
					return nil
				}
				fmt.Fprintf(os.Stderr, "changed: %s\n", change.File)
				rebuild()
			case <-sig:
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
