package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/html-tools/toolindex/internal/cli/errors"
	"github.com/html-tools/toolindex/internal/cli/output"
	"github.com/html-tools/toolindex/internal/config"
	"github.com/html-tools/toolindex/internal/domain/scanner"
	"github.com/spf13/cobra"
)

var (
	validateStrict bool
	validateQuiet  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate metadata in every tool page without writing the index",
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runValidate())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "treat warnings as errors")
	validateCmd.Flags().BoolVar(&validateQuiet, "quiet", false, "only output errors")
}

func runValidate() int {
	formatter := output.NewFormatter(output.FormatText, true)

	dir, err := config.ResolveDir(dirFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatter.FormatError(errors.Classify(err)))
		return 1
	}

	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatter.FormatError(errors.Classify(err)))
		return 1
	}

	results, err := scanner.ValidateDir(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatter.FormatError(errors.Classify(err)))
		return 1
	}

	if jsonOutput {
		outputValidationJSON(results)
	} else {
		outputValidationText(results, validateQuiet, validateStrict)
	}

	exitCode := 0
	for _, result := range results {
		if !result.Valid {
			exitCode = 1
		}
		if validateStrict && len(result.Warnings) > 0 {
			exitCode = 1
		}
	}
	return exitCode
}

func outputValidationJSON(results map[string]*scanner.ValidationResult) {
	out := struct {
		Results map[string]*scanner.ValidationResult `json:"results"`
		Summary struct {
			Total   int `json:"total"`
			Valid   int `json:"valid"`
			Invalid int `json:"invalid"`
		} `json:"summary"`
	}{
		Results: results,
	}

	for _, r := range results {
		out.Summary.Total++
		if r.Valid {
			out.Summary.Valid++
		} else {
			out.Summary.Invalid++
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

func outputValidationText(results map[string]*scanner.ValidationResult, quiet, strict bool) {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	validCount := 0
	invalidCount := 0

	for _, name := range names {
		result := results[name]

		if result.Valid && len(result.Warnings) == 0 && quiet {
			validCount++
			continue
		}

		if result.Valid {
			validCount++
			if !quiet {
				fmt.Printf("✓ %s\n", name)
			}
		} else {
			invalidCount++
			fmt.Printf("✗ %s\n", name)
		}

		for _, e := range result.Errors {
			fmt.Printf("  ERROR: %s: %s\n", e.Field, e.Message)
		}

		if !quiet || strict {
			for _, warn := range result.Warnings {
				fmt.Printf("  WARN:  %s: %s\n", warn.Field, warn.Message)
			}
		}
	}

	if !quiet {
		fmt.Println()
		fmt.Printf("Summary: %d valid, %d invalid\n", validCount, invalidCount)
	}
}
