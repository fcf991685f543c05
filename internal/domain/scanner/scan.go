package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/html-tools/toolindex/internal/config"
	"github.com/html-tools/toolindex/internal/domain/metadata"
)

// Scan enumerates *.html files directly in cfg.Dir (non-recursive) and
// extracts metadata for each. Files in the exclude set are skipped; an
// unreadable file is downgraded to a stderr warning and skipped; a file
// without a description aborts the scan with MissingDescriptionError.
// The result is sorted by filename, case-insensitive.
func Scan(cfg config.Config) ([]ToolInfo, error) {
	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", cfg.Dir, err)
	}

	overrides, err := loadOverrides(cfg.OverridesPath())
	if err != nil {
		return nil, err
	}

	exclude := cfg.ExcludeSet()

	var tools []ToolInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		lower := strings.ToLower(name)
		if !strings.HasSuffix(lower, ".html") || exclude[lower] {
			continue
		}

		data, err := os.ReadFile(filepath.Join(cfg.Dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", name, err)
			continue
		}
		content := string(data)
		ov := overrides[name]

		title := ov.Title
		if title == "" {
			if t, ok := metadata.Title(content); ok {
				title = t
			} else {
				title = humanize(name)
			}
		}

		desc := ov.Description
		if desc == "" {
			d, ok := metadata.Description(content)
			if !ok {
				return nil, &MissingDescriptionError{Filename: name}
			}
			desc = d
		}

		tools = append(tools, ToolInfo{Filename: name, Title: title, Description: desc})
	}

	sort.SliceStable(tools, func(i, j int) bool {
		return strings.ToLower(tools[i].Filename) < strings.ToLower(tools[j].Filename)
	})
	return tools, nil
}

// humanize derives a display title from a filename: the extension is
// stripped, hyphens and underscores become word breaks, and each word is
// title-cased ("json-viewer.html" -> "Json Viewer").
func humanize(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	stem = strings.NewReplacer("-", " ", "_", " ").Replace(stem)

	words := strings.Fields(stem)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
