package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/filekit/internal/collection"
	"github.com/GriffinCanCode/filekit/internal/filter"
	"github.com/GriffinCanCode/filekit/internal/infrastructure/config"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <root>...",
	Short: "Count files per category",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().Bool("sniff", false,
		"detect the category of extensionless files from content")
	rootCmd.AddCommand(classifyCmd)
}

var categories = []string{"image", "audio", "video", "pdf", "word", "excel", "ppt", "archive"}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault()
	tier, err := tierFlag(cmd, cfg)
	if err != nil {
		return err
	}
	sniff, _ := cmd.Flags().GetBool("sniff")

	fc, err := collection.FromTrees(collection.Options{Tier: tier}, args...)
	if err != nil {
		return err
	}

	counts := make(map[string]int, len(categories))
	other := 0
	for f := range fc.Files() {
		category := ""
		for _, name := range categories {
			if filter.ByName(name)(f) {
				category = name
				break
			}
		}
		if category == "" && sniff && f.Ext == "" {
			if detected, err := filter.Detect(f.AbsPath); err == nil {
				category = detected
			}
		}
		if category == "" {
			other++
			continue
		}
		counts[category]++
	}

	for _, name := range categories {
		if counts[name] > 0 {
			fmt.Printf("%-8s %d\n", name, counts[name])
		}
	}
	fmt.Printf("%-8s %d\n", "other", other)
	return nil
}
