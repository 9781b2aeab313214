package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Data problems in authored
// content are never modelled as errors; they surface as ValidationIssue and
// IntegrityIssue values so a full report can be produced in one pass.
var (
	// ErrNotFound indicates a requested record does not exist in the corpus.
	// It is an expected result value for lookups, never a panic.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed caller input (programmer misuse),
	// such as an unrecognised tag dimension.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoRecords indicates a record source produced nothing to load.
	ErrNoRecords = errors.New("no records found")
)
