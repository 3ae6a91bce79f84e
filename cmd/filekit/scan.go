package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/filekit/internal/collection"
	"github.com/GriffinCanCode/filekit/internal/filter"
	"github.com/GriffinCanCode/filekit/internal/infrastructure/config"
	"github.com/GriffinCanCode/filekit/internal/shared/format"
)

var scanCmd = &cobra.Command{
	Use:   "scan <root>...",
	Short: "List every file under the given roots",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().String("sort", "abspath", "sort attribute "+
		"(abspath, dirname, basename, fname, ext, size_on_disk, atime, ctime, mtime)")
	scanCmd.Flags().Bool("reverse", false, "sort in descending order")
	scanCmd.Flags().String("category", "",
		"keep only one category (image, audio, video, pdf, word, excel, ppt, archive)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault()
	tier, err := tierFlag(cmd, cfg)
	if err != nil {
		return err
	}

	fc, err := collection.FromTrees(collection.Options{Tier: tier}, args...)
	if err != nil {
		return err
	}

	if category, _ := cmd.Flags().GetString("category"); category != "" {
		pred := filter.ByName(category)
		if pred == nil {
			return fmt.Errorf("unknown category %q", category)
		}
		fc = fc.Select(pred)
	}

	attr, _ := cmd.Flags().GetString("sort")
	reverse, _ := cmd.Flags().GetBool("reverse")
	if err := fc.SortBy(attr, reverse); err != nil {
		return err
	}

	var total int64
	for f := range fc.Files() {
		fmt.Printf("%10s  %s\n", format.Size(f.Size), f.AbsPath)
		total += f.Size
	}
	fmt.Printf("%d files, %s total\n", fc.Len(), format.Size(total))
	return nil
}
