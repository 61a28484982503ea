package distmeta

import (
	"fmt"
	"strings"
)

// ValidationError reports a document that failed schema validation. It
// preserves the validator's ordered message list; each message embeds the
// path to the offending field and the schema version.
type ValidationError struct {
	SpecVersion string
	Errors      []string
}

// Error implements the error interface with a short summary; the full
// detail stays in Errors.
func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "metadata validation failed"
	case 1:
		return "metadata validation failed: " + e.Errors[0]
	default:
		return fmt.Sprintf("metadata validation failed: %s (and %d more problems)",
			e.Errors[0], len(e.Errors)-1)
	}
}

// Has reports whether any message mentions the given field name.
func (e *ValidationError) Has(field string) bool {
	for _, msg := range e.Errors {
		if strings.Contains(msg, "'"+field+"'") || strings.Contains(msg, "("+field) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the error carries no messages.
func (e *ValidationError) IsEmpty() bool {
	return len(e.Errors) == 0
}
