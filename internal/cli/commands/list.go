package commands

import (
	"fmt"
	"os"

	"github.com/html-tools/toolindex/internal/cli/errors"
	"github.com/html-tools/toolindex/internal/cli/output"
	"github.com/html-tools/toolindex/internal/config"
	"github.com/html-tools/toolindex/internal/domain/scanner"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tool pages that would appear in the index",
	Run: func(cmd *cobra.Command, args []string) {
		var fmtMode output.OutputFormat = output.FormatText
		if jsonOutput {
			fmtMode = output.FormatJSON
		}
		formatter := output.NewFormatter(fmtMode, true)

		dir, err := config.ResolveDir(dirFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		cfg, err := config.Load(dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		tools, err := scanner.Scan(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatter.FormatError(errors.Classify(err)))
			os.Exit(1)
		}

		if out := formatter.FormatTools(tools); out != "" {
			fmt.Println(out)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
