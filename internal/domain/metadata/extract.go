// Package metadata extracts display metadata from raw HTML text.
//
// Extraction is deliberately pattern-based rather than DOM-based: tool
// pages are local, trusted files and the contract is "first matching tag
// wins". Malformed or duplicate tags are not diagnosed.
package metadata

import (
	"regexp"
	"strings"
)

var (
	titleRe = regexp.MustCompile(`(?is)<title>(.*?)</title>`)
	descRe  = regexp.MustCompile(`(?i)<meta\s+name=["']description["']\s+content=["'](.*?)["']`)
)

// Title returns the trimmed inner text of the first <title> element.
// The match is case-insensitive and may span multiple lines.
func Title(content string) (string, bool) {
	m := titleRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// Description returns the trimmed content value of the first
// <meta name="description"> tag. Either quote style is accepted, but the
// name attribute must precede content.
func Description(content string) (string, bool) {
	m := descRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
