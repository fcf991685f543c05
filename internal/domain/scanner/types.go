// Package scanner enumerates HTML tool pages in a directory and builds the
// metadata records the index is rendered from.
package scanner

import "fmt"

// ToolInfo holds the metadata for a single tool page. Values are final:
// overrides and filename fallbacks have already been applied.
type ToolInfo struct {
	Filename    string `json:"filename"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MissingDescriptionError reports a tool page without the required meta
// description. It aborts the whole scan.
type MissingDescriptionError struct {
	Filename string
}

func (e *MissingDescriptionError) Error() string {
	return fmt.Sprintf("tool %q is missing required <meta name=\"description\"> tag", e.Filename)
}
