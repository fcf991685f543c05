// Package errors classifies domain failures for user-facing reporting.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/html-tools/toolindex/internal/domain/index"
	"github.com/html-tools/toolindex/internal/domain/scanner"
)

type ErrorKind string

const (
	ErrorKindMissingDescription ErrorKind = "missing-description"
	ErrorKindTemplate           ErrorKind = "template-not-found"
	ErrorKindConfig             ErrorKind = "config"
	ErrorKindOther              ErrorKind = "other"
)

// ClassifiedError pairs an error with a kind and a user-friendly hint.
type ClassifiedError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Hint    string    `json:"hint,omitempty"`
	Raw     error     `json:"-"`
}

func (e ClassifiedError) Error() string {
	return e.Message
}

func Classify(err error) ClassifiedError {
	if err == nil {
		return ClassifiedError{}
	}

	var missing *scanner.MissingDescriptionError
	var notFound *index.TemplateNotFoundError

	switch {
	case stderrors.As(err, &missing):
		return ClassifiedError{
			Kind:    ErrorKindMissingDescription,
			Message: err.Error(),
			Hint:    fmt.Sprintf("Add a <meta name=\"description\"> tag to %s, or an entry for it in tools.toml.", missing.Filename),
			Raw:     err,
		}
	case stderrors.As(err, &notFound):
		return ClassifiedError{
			Kind:    ErrorKindTemplate,
			Message: err.Error(),
			Hint:    "Create the template with a <!-- TOOLS_LIST --> placeholder where the listing should go.",
			Raw:     err,
		}
	case strings.Contains(err.Error(), "parse "):
		return ClassifiedError{
			Kind:    ErrorKindConfig,
			Message: err.Error(),
			Hint:    "Check the syntax of .toolindex.yaml and tools.toml.",
			Raw:     err,
		}
	default:
		return ClassifiedError{
			Kind:    ErrorKindOther,
			Message: err.Error(),
			Raw:     err,
		}
	}
}
