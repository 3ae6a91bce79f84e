package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/filekit/internal/collection"
	"github.com/GriffinCanCode/filekit/internal/shared/format"
)

var bigCmd = &cobra.Command{
	Use:   "big <root>",
	Short: "Show files at or above a size threshold, largest last",
	Args:  cobra.ExactArgs(1),
	RunE:  runBig,
}

func init() {
	bigCmd.Flags().Int64("threshold", 100*1024*1024, "minimum size in bytes")
	rootCmd.AddCommand(bigCmd)
}

func runBig(cmd *cobra.Command, args []string) error {
	threshold, _ := cmd.Flags().GetInt64("threshold")

	fc, err := collection.FromTreesBySize(collection.Options{}, threshold, 0, args[0])
	if err != nil {
		return err
	}
	if err := fc.SortBy("size_on_disk", false); err != nil {
		return err
	}

	for f := range fc.Files() {
		fmt.Printf("  %s - %s\n", format.Size(f.Size), f.AbsPath)
	}
	fmt.Printf("%d files at or above %s\n", fc.Len(), format.Size(threshold))
	return nil
}
