package md2html

import "errors"

// Sentinel errors for library operations. The compiler core itself never
// errors: Compile is total. Only the document service surface (input
// validation, asset loading) can fail.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Asset loading errors.
	ErrStyleNotFound = errors.New("style not found")
)
