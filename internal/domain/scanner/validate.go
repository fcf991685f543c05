package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/html-tools/toolindex/internal/config"
	"github.com/html-tools/toolindex/internal/domain/metadata"
)

// ValidationIssue is a single problem found in one tool page.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the outcome of validating one tool page.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationIssue `json:"errors,omitempty"`
	Warnings []ValidationIssue `json:"warnings,omitempty"`
}

// ValidateDir checks every tool page in cfg.Dir. Unlike Scan it does not
// stop at the first problem: every file gets a result, keyed by filename.
// A missing description or an unreadable file is an error; a missing
// <title> (the filename fallback would be used) is a warning. Override
// entries in the sidecar file satisfy the corresponding requirement.
func ValidateDir(cfg config.Config) (map[string]*ValidationResult, error) {
	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", cfg.Dir, err)
	}

	overrides, err := loadOverrides(cfg.OverridesPath())
	if err != nil {
		return nil, err
	}

	exclude := cfg.ExcludeSet()

	results := make(map[string]*ValidationResult)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		lower := strings.ToLower(name)
		if !strings.HasSuffix(lower, ".html") || exclude[lower] {
			continue
		}

		result := &ValidationResult{Valid: true}
		results[name] = result

		data, err := os.ReadFile(filepath.Join(cfg.Dir, name))
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationIssue{"file", err.Error()})
			continue
		}
		content := string(data)
		ov := overrides[name]

		if ov.Title == "" {
			if _, ok := metadata.Title(content); !ok {
				result.Warnings = append(result.Warnings, ValidationIssue{
					"title", fmt.Sprintf("no <title> element; index would fall back to %q", humanize(name)),
				})
			}
		}

		if ov.Description == "" {
			if _, ok := metadata.Description(content); !ok {
				result.Errors = append(result.Errors, ValidationIssue{
					"description", `missing required <meta name="description"> tag`,
				})
			}
		}

		result.Valid = len(result.Errors) == 0
	}
	return results, nil
}
