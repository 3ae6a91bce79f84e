package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/filekit/internal/entity"
	"github.com/GriffinCanCode/filekit/internal/infrastructure/config"
	"github.com/GriffinCanCode/filekit/internal/infrastructure/logging"
)

var rootCmd = &cobra.Command{
	Use:   "filekit",
	Short: "Programmatic explorer for filesystem trees",
	Long: `filekit builds collections of file metadata from directory trees and
lets you filter, sort, combine and back them up without writing
path-walking code.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("tier", "",
		"metadata tier: fast, regular or slow (default from FILEKIT_TIER)")
}

// newLogger builds the CLI logger from environment configuration.
func newLogger(cfg *config.Config) *logging.Logger {
	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return logging.NewDefault()
	}
	return log
}

// tierFlag resolves the metadata tier from the flag or environment config.
func tierFlag(cmd *cobra.Command, cfg *config.Config) (entity.Tier, error) {
	name, err := cmd.Flags().GetString("tier")
	if err != nil || name == "" {
		name = cfg.Scan.Tier
	}
	return entity.ParseTier(name)
}
