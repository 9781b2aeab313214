package driving

import (
	"context"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
)

// LoadReport summarises one corpus load for CI and lint output.
// All problems are collected as data so a single pass can print the
// complete report.
type LoadReport struct {
	// Candidates is the number of raw records the source produced.
	Candidates int `json:"candidates"`

	// Loaded is the number of records admitted to the store.
	Loaded int `json:"loaded"`

	// SourceErrors lists units the source could not decode.
	SourceErrors []string `json:"sourceErrors,omitempty"`

	// Issues lists every validation issue found, errors and warnings.
	Issues []domain.ValidationIssue `json:"issues,omitempty"`

	// Duplicates lists id collisions; colliding records were excluded.
	Duplicates []*domain.DuplicateIDError `json:"duplicates,omitempty"`

	// Integrity lists dangling cross-references in the admitted corpus.
	Integrity []domain.IntegrityIssue `json:"integrity,omitempty"`
}

// ErrorCount returns the number of load problems that should fail a build:
// validation errors, undecodable units and duplicate ids. Warnings and
// integrity issues are excluded; integrity severity is a policy decision
// taken by the caller.
func (r *LoadReport) ErrorCount() int {
	return domain.CountErrors(r.Issues) + len(r.SourceErrors) + len(r.Duplicates)
}

// WarningCount returns the number of warning-severity validation issues.
func (r *LoadReport) WarningCount() int {
	return len(r.Issues) - domain.CountErrors(r.Issues)
}

// Clean returns true when the load produced no errors at all.
func (r *LoadReport) Clean() bool {
	return r.ErrorCount() == 0
}

// Loader ingests a record source into a queryable library.
type Loader interface {
	// Load discovers, validates and stores the corpus. A bad record is
	// reported in the returned LoadReport and skipped; the batch
	// continues. The returned Library serves the admitted records.
	Load(ctx context.Context) (Library, *LoadReport, error)
}
