// Package logging provides a structured logging wrapper around
// charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldFiles = "files"

	// Scan fields.
	FieldAddress    = "address"
	FieldURL        = "url"
	FieldLine       = "line"
	FieldColumn     = "column"
	FieldLinksFound = "links_found"

	// Configuration fields.
	FieldPreviousChars   = "previous_chars"
	FieldExpandAutolinks = "expand_autolinks"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
