package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/html-tools/toolindex/internal/cli/errors"
	"github.com/html-tools/toolindex/internal/cli/output"
	"github.com/html-tools/toolindex/internal/config"
	"github.com/html-tools/toolindex/internal/domain/index"
	"github.com/html-tools/toolindex/internal/domain/scanner"
)

const separatorWidth = 60

// runGenerate is the default pipeline: scan, render, compare, write.
// Returns the process exit code.
func runGenerate() int {
	formatter := output.NewFormatter(output.FormatText, true)

	if dryRun {
		write = false
	}

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

	tools, err := scanner.Scan(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatter.FormatError(errors.Classify(err)))
		return 1
	}

	newContent, err := index.Generate(tools, cfg.TemplatePath())
	if err != nil {
		fmt.Fprintln(os.Stderr, formatter.FormatError(errors.Classify(err)))
		return 1
	}

	if existing, err := os.ReadFile(cfg.IndexPath()); err == nil && string(existing) == newContent {
		if checkMode || dryRun {
			fmt.Printf("%s is up to date.\n", cfg.IndexFile)
		}
		return 0
	}

	if checkMode {
		fmt.Fprintf(os.Stderr, "%s is out of date.\n", cfg.IndexFile)
		return 1
	}

	if dryRun {
		sep := strings.Repeat("=", separatorWidth)
		fmt.Printf("%s would be updated:\n", cfg.IndexFile)
		fmt.Println(sep)
		fmt.Println(newContent)
		fmt.Println(sep)
		return 0
	}

	if !write {
		fmt.Printf("%s is out of date; skipping write (--write=false).\n", cfg.IndexFile)
		return 0
	}

	if err := os.WriteFile(cfg.IndexPath(), []byte(newContent), 0644); err != nil {
		fmt.Fprintln(os.Stderr, formatter.FormatError(errors.Classify(err)))
		return 1
	}

	fmt.Printf("Generated %s with %d tool(s).\n", cfg.IndexFile, len(tools))
	return 0
}
