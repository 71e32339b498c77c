package errors

import "fmt"

// Config errors

func ConfigInvalid(path string, cause error) *SitemapError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file could not be parsed").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SitemapError {
	return New(CategoryValidation, SeverityFatal, fmt.Sprintf("invalid %s: %s", field, reason)).
		WithContext("field", field).
		WithContext("reason", reason)
}

// Generation errors

func ScanFailed(dir string, cause error) *SitemapError {
	return Wrap(cause, CategoryScan, SeverityWarning, "posts directory could not be read").
		WithContext("dir", dir)
}

func RenderFailed(document string, cause error) *SitemapError {
	return Wrap(cause, CategoryRender, SeverityFatal, "document rendering failed").
		WithContext("document", document)
}

func OutputDirFailed(dir string, cause error) *SitemapError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output directory could not be created").
		WithContext("dir", dir)
}

func WriteFailed(path string, cause error) *SitemapError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output file could not be written").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *SitemapError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
