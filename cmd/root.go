/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from flags.go to isolate cobra setup from flag state.
//
// Design: PersistentPreRunE loads configuration and builds the filesystem
// the path operations run against. Every command goes through the same
// osfs.FS value, so tests can swap in an in-memory filesystem and the serve
// command can hand the identical backend to MCP clients.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/pathfs/internal/config"
	"github.com/jpl-au/pathfs/internal/log"
	"github.com/jpl-au/pathfs/internal/osfs"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathfs",
	Short: "Typed POSIX path model with cross-filesystem-safe name validation",
	Long:  `Validates file and directory names against the rules shared by POSIX and FAT32/exFAT/NTFS, and performs filesystem operations (exists, mkdir, read, write) with precise, structured outcomes instead of generic errors.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Detect author if not explicitly set
		if author == "" {
			author = detectAuthor()
		}

		cfg, err := config.Load()
		if err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return fmt.Errorf("load config: %w", err)
		}
		conf = cfg

		// Swap in the configured modes unless a test already replaced the
		// filesystem.
		if !fsysFixed {
			fsys = osfs.New(osfs.Options{DirMode: cfg.DirMode(), FileMode: cfg.FileMode()})
		}

		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and ensures the logger is
// flushed before exit. Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.AddCommand(
		newCheckCmd(),
		newResolveCmd(),
		newExistsCmd(),
		newMkdirCmd(),
		newReadCmd(),
		newWriteCmd(),
		newConfigCmd(),
		newGuideCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
}
