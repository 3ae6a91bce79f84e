package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/filekit/internal/collection"
	"github.com/GriffinCanCode/filekit/internal/entity"
)

var dupesCmd = &cobra.Command{
	Use:   "dupes <root>...",
	Short: "Group files with identical content",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDupes,
}

func init() {
	rootCmd.AddCommand(dupesCmd)
}

func runDupes(cmd *cobra.Command, args []string) error {
	// content identity needs the hash, so this walk is always slow tier
	fc, err := collection.FromTrees(collection.Options{Tier: entity.TierSlow}, args...)
	if err != nil {
		return err
	}

	groups := make(map[string][]string)
	var order []string
	for f := range fc.Files() {
		if _, ok := groups[f.Hash]; !ok {
			order = append(order, f.Hash)
		}
		groups[f.Hash] = append(groups[f.Hash], f.AbsPath)
	}

	found := 0
	for _, hash := range order {
		paths := groups[hash]
		if len(paths) < 2 {
			continue
		}
		found++
		fmt.Printf("%s:\n", hash)
		for _, p := range paths {
			fmt.Printf("  %s\n", p)
		}
	}
	fmt.Printf("%d duplicate groups in %d files\n", found, fc.Len())
	return nil
}
