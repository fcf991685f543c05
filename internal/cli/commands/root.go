package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dirFlag    string
	checkMode  bool
	dryRun     bool
	write      bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "toolindex",
	Short: "Generate index.html for a directory of HTML tool pages",
	Long: `toolindex scans a directory of standalone HTML utility pages, extracts a
title and description from each, and renders a sorted listing into
index.template.html to produce index.html.

Every page must carry a <meta name="description"> tag (or an entry in
tools.toml); a missing <title> falls back to a name derived from the
filename.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runGenerate())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "directory to scan (default $TOOLINDEX_DIR, then the executable's directory)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.Flags().BoolVar(&checkMode, "check", false, "only check if index.html needs updating (exit 1 if out of date)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would change without writing files")
	rootCmd.Flags().BoolVar(&write, "write", true, "write index.html (default behavior, use with --dry-run to preview)")
}
