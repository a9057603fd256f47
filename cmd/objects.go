package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/steppi/scribe/internal/config"
	"github.com/steppi/scribe/internal/inventory"
)

var objectsCmd = &cobra.Command{
	Use:   "objects [build-dir]",
	Short: "List the object inventory of a built site",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.Load().OutDir
		if len(args) == 1 {
			dir = args[0]
		}

		path := filepath.Join(dir, inventory.Filename)
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("no object inventory at %s; run `scribe build` first", path)
		}

		store, err := inventory.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("(no objects registered)")
			return nil
		}
		for _, r := range records {
			fmt.Println(inventory.FormatRecord(r))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(objectsCmd)
}
