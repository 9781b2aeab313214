package driving

import (
	"iter"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
)

// ResolvedReference pairs a cross-reference with its resolution outcome.
type ResolvedReference struct {
	// Reference is the cross-reference being resolved.
	Reference domain.CrossReference

	// Target is the referenced record, nil when unresolved.
	Target *domain.EducationalContent
}

// Resolved returns true when the target record exists in the corpus.
func (r ResolvedReference) Resolved() bool {
	return r.Target != nil
}

// Library answers queries against a loaded corpus. This is the only
// contract a rendering or API layer should depend on. Every operation is a
// pure function of the immutable loaded store.
type Library interface {
	// Get retrieves a record by id.
	// Returns domain.ErrNotFound when the id is unknown.
	Get(id string) (*domain.EducationalContent, error)

	// All iterates over the corpus in id order. Restartable.
	All() iter.Seq[*domain.EducationalContent]

	// ByType returns all records of the given type.
	ByType(t domain.ContentType) []*domain.EducationalContent

	// FindByTag returns records carrying the tag value in the given
	// dimension. Matching is case-insensitive.
	// Returns domain.ErrInvalidInput for an unrecognised dimension.
	FindByTag(dimension domain.TagDimension, value string) ([]*domain.EducationalContent, error)

	// SearchByAlternateName matches text case-insensitively against names
	// and alternate names, exact matches ranked before substring matches.
	SearchByAlternateName(text string) []*domain.EducationalContent

	// ResolveCrossReferences resolves every cross-reference on the record.
	// Unresolved targets are reported in the result, never as an error.
	ResolveCrossReferences(record *domain.EducationalContent) []ResolvedReference

	// CheckIntegrity scans the whole corpus for dangling cross-references.
	// An empty result means the corpus is referentially closed.
	CheckIntegrity() []domain.IntegrityIssue

	// Len returns the number of records in the corpus.
	Len() int
}
