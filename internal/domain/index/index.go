// Package index renders the tool listing and produces the final document.
package index

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/html-tools/toolindex/internal/domain/scanner"
)

// Placeholder is the marker in the template where the listing is inserted.
const Placeholder = "<!-- TOOLS_LIST -->"

// TemplateNotFoundError reports a missing template file.
type TemplateNotFoundError struct {
	Path string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template file not found: %s", e.Path)
}

// Render converts tools into the list-item fragment. Filename, title, and
// description are HTML-escaped so markup in a tool page stays inert in
// the index.
func Render(tools []scanner.ToolInfo) string {
	items := make([]string, 0, len(tools))
	for _, t := range tools {
		items = append(items, fmt.Sprintf(`        <li class="tool-item">
            <a href="%s" class="tool-link">
                <span class="tool-title">%s</span>
            </a><p>%s</p>
        </li>`,
			html.EscapeString(t.Filename),
			html.EscapeString(t.Title),
			html.EscapeString(t.Description)))
	}
	return strings.Join(items, "\n")
}

// Generate reads the template and substitutes the rendered listing for the
// first occurrence of the placeholder. The template is opaque text, never
// parsed as a DOM.
func Generate(tools []scanner.ToolInfo, templatePath string) (string, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateNotFoundError{Path: templatePath}
		}
		return "", fmt.Errorf("read template: %w", err)
	}
	return strings.Replace(string(data), Placeholder, Render(tools), 1), nil
}
