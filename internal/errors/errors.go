// Package errors defines SitemapError, the classified error returned by every
// stage of a sitemap run, and the adapter that maps it to CLI exit codes.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory names the stage or concern an error belongs to.
type ErrorCategory string

const (
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Stages of a generation run.
	CategoryScan       ErrorCategory = "scan"
	CategoryRender     ErrorCategory = "render"
	CategoryFileSystem ErrorCategory = "filesystem"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity tells the caller whether the run can continue.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"
	SeverityWarning ErrorSeverity = "warning" // run continues with fewer pages
)

type SitemapError struct {
	Category ErrorCategory
	Severity ErrorSeverity
	Message  string
	Cause    error
	Context  ContextFields
}

// ContextFields are emitted as log attributes when the error is reported.
type ContextFields map[string]any

func (e *SitemapError) Error() string {
	head := fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
	if e.Cause == nil {
		return head
	}
	return head + ": " + e.Cause.Error()
}

func (e *SitemapError) Unwrap() error { return e.Cause }

// WithContext attaches key=value to the error and returns it for chaining.
func (e *SitemapError) WithContext(key string, value any) *SitemapError {
	if e.Context == nil {
		e.Context = ContextFields{}
	}
	e.Context[key] = value
	return e
}

func New(category ErrorCategory, severity ErrorSeverity, message string) *SitemapError {
	return &SitemapError{Category: category, Severity: severity, Message: message}
}

// Wrap classifies err. A nil err produces a SitemapError without a cause.
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *SitemapError {
	se := New(category, severity, message)
	se.Cause = err
	return se
}

// As finds the first SitemapError in err's chain.
func As(err error) (*SitemapError, bool) {
	var se *SitemapError
	if stdErrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func IsCategory(err error, category ErrorCategory) bool {
	se, ok := As(err)
	return ok && se.Category == category
}
