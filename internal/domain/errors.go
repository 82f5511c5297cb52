// Package domain defines the core types shared across LinkSight.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure by who has to act on it.
type Kind string

const (
	// KindValidation means the caller sent something unusable.
	KindValidation Kind = "VALIDATION_ERROR"
	// KindNotFound means the addressed dataset or resource does not exist.
	KindNotFound Kind = "NOT_FOUND_ERROR"
	// KindConflict means the request clashes with existing state.
	KindConflict Kind = "CONFLICT_ERROR"
	// KindInternal means LinkSight itself failed.
	KindInternal Kind = "INTERNAL_ERROR"
)

// Code names a failure as "<area>.<reason>", where area is the part of
// LinkSight that raises it.
type Code string

// Dataset entity codes.
const (
	CodeDatasetIDRequired Code = "dataset.id_required"
	CodeDatasetIDInvalid  Code = "dataset.id_invalid"
)

// Catalog codes.
const (
	CodeCatalogEntryMissing Code = "catalog.entry_missing"
	CodeCatalogDuplicate    Code = "catalog.duplicate_dataset"
	CodeCatalogNotFound     Code = "catalog.dataset_not_found"
	CodeCatalogUnreadable   Code = "catalog.unreadable"
	CodeCatalogMalformed    Code = "catalog.malformed"
)

// Dataset card codes.
const (
	CodeCardIconURL   Code = "card.icon_url"
	CodeCardClassName Code = "card.class_name"
	CodeCardRender    Code = "card.render_failed"
)

// Uploaded file codes.
const (
	CodeUploadMissing     Code = "upload.missing_file"
	CodeUploadEmpty       Code = "upload.empty"
	CodeUploadTooLarge    Code = "upload.too_large"
	CodeUploadType        Code = "upload.unsupported_type"
	CodeUploadTooManyRows Code = "upload.too_many_rows"
	CodeUploadMalformed   Code = "upload.malformed_csv"
	CodeUploadUnreadable  Code = "upload.unreadable"
	CodeUploadPreviewRows Code = "upload.preview_rows"
)

// Address matching codes.
const (
	CodeMatchReference Code = "match.invalid_reference"
	CodeMatchColumn    Code = "match.missing_column"
)

// CodeUnexpected marks failures that carry no LinkSight error at all.
const CodeUnexpected Code = "internal.unexpected"

var codeKinds = map[Code]Kind{
	CodeDatasetIDRequired:   KindValidation,
	CodeDatasetIDInvalid:    KindValidation,
	CodeCatalogEntryMissing: KindValidation,
	CodeCatalogDuplicate:    KindConflict,
	CodeCatalogNotFound:     KindNotFound,
	CodeCatalogUnreadable:   KindInternal,
	CodeCatalogMalformed:    KindValidation,
	CodeCardIconURL:         KindValidation,
	CodeCardClassName:       KindValidation,
	CodeCardRender:          KindInternal,
	CodeUploadMissing:       KindValidation,
	CodeUploadEmpty:         KindValidation,
	CodeUploadTooLarge:      KindValidation,
	CodeUploadType:          KindValidation,
	CodeUploadTooManyRows:   KindValidation,
	CodeUploadMalformed:     KindValidation,
	CodeUploadUnreadable:    KindInternal,
	CodeUploadPreviewRows:   KindValidation,
	CodeMatchReference:      KindValidation,
	CodeMatchColumn:         KindValidation,
	CodeUnexpected:          KindInternal,
}

// Area returns the namespace of the code, the part before the first dot.
func (c Code) Area() string {
	area, _, _ := strings.Cut(string(c), ".")
	return area
}

// Kind returns the kind registered for the code. Unregistered codes are
// internal.
func (c Code) Kind() Kind {
	if kind, ok := codeKinds[c]; ok {
		return kind
	}
	return KindInternal
}

// Error is a LinkSight failure. Message is safe to show for validation
// errors; Details and Cause are for logs only.
type Error struct {
	Code    Code
	Message string
	Field   string
	Details map[string]any
	Cause   error
}

// New builds an Error for code.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithField names the input field at fault.
func (e *Error) WithField(field string) *Error {
	e.Field = field
	return e
}

// WithDetail attaches a key/value pair for logging.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause records the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// Kind returns the kind of the error's code.
func (e *Error) Kind() Kind {
	return e.Code.Kind()
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var linkErr *Error
	if errors.As(err, &linkErr) {
		return linkErr.Kind()
	}
	return KindInternal
}

// HasCode reports whether err's chain holds an *Error with the given code.
func HasCode(err error, code Code) bool {
	var linkErr *Error
	for err != nil {
		if !errors.As(err, &linkErr) {
			return false
		}
		if linkErr.Code == code {
			return true
		}
		err = linkErr.Cause
	}
	return false
}
