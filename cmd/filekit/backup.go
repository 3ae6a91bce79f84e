package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/filekit/internal/backup"
	"github.com/GriffinCanCode/filekit/internal/collection"
	"github.com/GriffinCanCode/filekit/internal/infrastructure/config"
	"github.com/GriffinCanCode/filekit/internal/shared/format"
)

var backupCmd = &cobra.Command{
	Use:   "backup <root>",
	Short: "Write the files under a root into a timestamped zip archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackup,
}

func init() {
	backupCmd.Flags().String("name", "", "archive base name (default: root directory name)")
	backupCmd.Flags().String("out", "", "output directory (default from FILEKIT_BACKUP_DIR)")
	backupCmd.Flags().StringSlice("ignore", nil, "relative path prefixes to exclude")
	backupCmd.Flags().StringSlice("ignore-ext", nil, "extensions to exclude, e.g. .log")
	backupCmd.Flags().StringSlice("ignore-pattern", nil, "relative path substrings to exclude")
	rootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault()

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = filepath.Base(args[0])
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = cfg.Backup.Dir
	}
	prefixes, _ := cmd.Flags().GetStringSlice("ignore")
	exts, _ := cmd.Flags().GetStringSlice("ignore-ext")
	substrings, _ := cmd.Flags().GetStringSlice("ignore-pattern")

	result, err := backup.Run(backup.Options{
		Name:      name,
		Root:      args[0],
		OutputDir: out,
		Ignore: collection.ExceptRules{
			Prefixes:   prefixes,
			Exts:       exts,
			Substrings: substrings,
		},
		Logger: newLogger(cfg),
	})
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d files, %s)\n",
		result.Archive, result.Files, format.Size(result.TotalSize))
	return nil
}
