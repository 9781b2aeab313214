package memory

import (
	"iter"
	"sort"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driven"
)

// Ensure ContentStore implements the interface.
var _ driven.ContentStore = (*ContentStore)(nil)

// Ensure the constructor satisfies the factory signature.
var _ driven.ContentStoreFactory = NewContentStore

// ContentStore is the in-memory implementation of driven.ContentStore.
// It is immutable after construction, so no locking is needed even when
// shared across goroutines.
type ContentStore struct {
	records map[string]*domain.EducationalContent
	ids     []string
}

// NewContentStore builds a store from validated records. Ids shared by two
// or more records are reported as DuplicateIDErrors and every colliding
// record is excluded, so no record silently shadows another.
func NewContentStore(records []domain.EducationalContent) (driven.ContentStore, []*domain.DuplicateIDError) {
	byID := make(map[string][]*domain.EducationalContent, len(records))
	for i := range records {
		record := &records[i]
		byID[record.ID] = append(byID[record.ID], record)
	}

	s := &ContentStore{records: make(map[string]*domain.EducationalContent, len(byID))}
	var duplicates []*domain.DuplicateIDError
	for id, group := range byID {
		if len(group) > 1 {
			dup := &domain.DuplicateIDError{ID: id}
			for _, record := range group {
				dup.Names = append(dup.Names, record.Name)
			}
			sort.Strings(dup.Names)
			duplicates = append(duplicates, dup)
			continue
		}
		s.records[id] = group[0]
		s.ids = append(s.ids, id)
	}
	sort.Strings(s.ids)
	sort.Slice(duplicates, func(i, j int) bool { return duplicates[i].ID < duplicates[j].ID })

	return s, duplicates
}

// Get retrieves a record by id.
func (s *ContentStore) Get(id string) (*domain.EducationalContent, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

// All iterates over the corpus in id order. The sequence is restartable;
// each range starts from the first record again.
func (s *ContentStore) All() iter.Seq[*domain.EducationalContent] {
	return func(yield func(*domain.EducationalContent) bool) {
		for _, id := range s.ids {
			if !yield(s.records[id]) {
				return
			}
		}
	}
}

// ByType returns all records of the given type, in id order.
func (s *ContentStore) ByType(t domain.ContentType) []*domain.EducationalContent {
	var out []*domain.EducationalContent
	for _, id := range s.ids {
		if s.records[id].Type == t {
			out = append(out, s.records[id])
		}
	}
	return out
}

// Len returns the number of records admitted to the store.
func (s *ContentStore) Len() int {
	return len(s.records)
}
