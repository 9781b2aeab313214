package domain

import (
	"fmt"
	"strings"
)

// Severity grades a validation issue.
type Severity string

// Recognised severities.
const (
	// SeverityError marks a violation that rejects the record.
	SeverityError Severity = "error"

	// SeverityWarning marks a convention violation that is reported but
	// does not reject the record (e.g. the bilingual separator rule).
	SeverityWarning Severity = "warning"
)

// ValidationIssue is one field-level problem found while validating a
// candidate record. Issues are collected exhaustively, never thrown.
type ValidationIssue struct {
	// RecordID identifies the offending record, when known.
	RecordID string `json:"recordId,omitempty"`

	// Path locates the offending field (e.g. "levels.3.summary").
	Path string `json:"path"`

	// Severity is error or warning.
	Severity Severity `json:"severity"`

	// Message explains the violation.
	Message string `json:"message"`
}

// String formats the issue for a lint report line.
func (i ValidationIssue) String() string {
	id := i.RecordID
	if id == "" {
		id = "<unknown>"
	}
	return fmt.Sprintf("%s: %s: %s: %s", i.Severity, id, i.Path, i.Message)
}

// CountErrors returns the number of error-severity issues in a slice.
func CountErrors(issues []ValidationIssue) int {
	n := 0
	for _, i := range issues {
		if i.Severity == SeverityError {
			n++
		}
	}
	return n
}

// IntegrityIssue is a cross-reference whose target id does not exist in
// the loaded corpus. Advisory: it never blocks loading or querying.
type IntegrityIssue struct {
	// RecordID is the record owning the dangling reference.
	RecordID string `json:"recordId"`

	// TargetID is the id that failed to resolve.
	TargetID string `json:"targetId"`

	// Relationship is the declared relationship kind.
	Relationship Relationship `json:"relationship"`

	// Label is the link text on the dangling reference.
	Label string `json:"label,omitempty"`
}

// String formats the issue for a lint report line.
func (i IntegrityIssue) String() string {
	return fmt.Sprintf("%s: cross-reference %q (%s) does not resolve", i.RecordID, i.TargetID, i.Relationship)
}

// DuplicateIDError reports an id shared by two or more records in one
// load batch. All colliding records are excluded from the store so no
// record silently shadows another.
type DuplicateIDError struct {
	// ID is the colliding identifier.
	ID string `json:"id"`

	// Names lists the display names of every colliding record.
	Names []string `json:"names,omitempty"`
}

// Error implements the error interface.
func (e *DuplicateIDError) Error() string {
	if len(e.Names) == 0 {
		return fmt.Sprintf("duplicate record id %q", e.ID)
	}
	return fmt.Sprintf("duplicate record id %q shared by: %s", e.ID, strings.Join(e.Names, ", "))
}
