package driven

import (
	"iter"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
)

// ContentStore holds a validated corpus keyed by record id.
// A store is built once per load and is immutable afterwards, so it is safe
// to share across goroutines without locking. Hot reload is done by building
// a fresh store and swapping the reference, never by mutating in place.
type ContentStore interface {
	// Get retrieves a record by id.
	// Returns domain.ErrNotFound when the id is not in the corpus.
	Get(id string) (*domain.EducationalContent, error)

	// All iterates over every record in the corpus. The sequence is
	// restartable and yields records in stable (id-sorted) order.
	All() iter.Seq[*domain.EducationalContent]

	// ByType returns all records of the given type, in id order.
	ByType(t domain.ContentType) []*domain.EducationalContent

	// Len returns the number of records admitted to the store.
	Len() int
}

// ContentStoreFactory builds a ContentStore from validated records.
// Colliding ids are reported per id and every colliding record is excluded
// from the returned store, so nothing is silently shadowed.
type ContentStoreFactory func(records []domain.EducationalContent) (ContentStore, []*domain.DuplicateIDError)
