package services

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driven"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driving"
	"github.com/medbank-labs/medbank-cli/internal/logger"
)

// Ensure LibraryService implements the interface.
var _ driving.Library = (*LibraryService)(nil)

// nameEntry is one row of the alternate-name search table.
type nameEntry struct {
	lower string
	id    string
}

// LibraryService answers corpus queries that the raw store cannot answer
// in O(1). The corpus is static per load and query volume is read-heavy,
// so every index is built eagerly at construction time.
type LibraryService struct {
	store    driven.ContentStore
	tagIndex map[domain.TagDimension]map[string][]string
	names    []nameEntry
}

// NewLibraryService builds a library over a loaded store, including the
// tag and name indexes.
func NewLibraryService(store driven.ContentStore) *LibraryService {
	s := &LibraryService{
		store: store,
		tagIndex: map[domain.TagDimension]map[string][]string{
			domain.TagSystem:  {},
			domain.TagTopic:   {},
			domain.TagKeyword: {},
		},
	}

	for record := range store.All() {
		s.indexTags(domain.TagSystem, record.ID, record.Tags.Systems)
		s.indexTags(domain.TagTopic, record.ID, record.Tags.Topics)
		s.indexTags(domain.TagKeyword, record.ID, record.Tags.Keywords)

		s.names = append(s.names, nameEntry{lower: strings.ToLower(record.Name), id: record.ID})
		if record.NameES != "" {
			s.names = append(s.names, nameEntry{lower: strings.ToLower(record.NameES), id: record.ID})
		}
		for _, alt := range record.AlternateNames {
			s.names = append(s.names, nameEntry{lower: strings.ToLower(alt), id: record.ID})
		}
	}

	logger.Debug("Library indexes built: %d records, %d name entries", store.Len(), len(s.names))
	return s
}

func (s *LibraryService) indexTags(dim domain.TagDimension, id string, values []string) {
	index := s.tagIndex[dim]
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		index[key] = append(index[key], id)
	}
}

// Get retrieves a record by id.
func (s *LibraryService) Get(id string) (*domain.EducationalContent, error) {
	return s.store.Get(id)
}

// All iterates over the corpus in id order.
func (s *LibraryService) All() iter.Seq[*domain.EducationalContent] {
	return s.store.All()
}

// ByType returns all records of the given type.
func (s *LibraryService) ByType(t domain.ContentType) []*domain.EducationalContent {
	return s.store.ByType(t)
}

// Len returns the number of records in the corpus.
func (s *LibraryService) Len() int {
	return s.store.Len()
}

// FindByTag returns records carrying the tag value in the given dimension.
func (s *LibraryService) FindByTag(dimension domain.TagDimension, value string) ([]*domain.EducationalContent, error) {
	if !dimension.IsValid() {
		return nil, fmt.Errorf("tag dimension %q: %w", dimension, domain.ErrInvalidInput)
	}

	ids := s.tagIndex[dimension][strings.ToLower(strings.TrimSpace(value))]
	return s.hydrate(ids), nil
}

// SearchByAlternateName matches text case-insensitively against names and
// alternate names. Exact matches rank before substring matches; each record
// appears at most once.
func (s *LibraryService) SearchByAlternateName(text string) []*domain.EducationalContent {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}

	var exact, partial []string
	for _, entry := range s.names {
		switch {
		case entry.lower == needle:
			exact = append(exact, entry.id)
		case strings.Contains(entry.lower, needle):
			partial = append(partial, entry.id)
		}
	}
	return s.hydrate(append(exact, partial...))
}

// ResolveCrossReferences resolves every cross-reference on the record.
// Unresolved targets come back with a nil Target, never as an error.
func (s *LibraryService) ResolveCrossReferences(record *domain.EducationalContent) []driving.ResolvedReference {
	if record == nil || len(record.CrossReferences) == 0 {
		return nil
	}

	resolved := make([]driving.ResolvedReference, 0, len(record.CrossReferences))
	for _, ref := range record.CrossReferences {
		target, err := s.store.Get(ref.TargetID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Resolving %q from %q: %v", ref.TargetID, record.ID, err)
		}
		resolved = append(resolved, driving.ResolvedReference{Reference: ref, Target: target})
	}
	return resolved
}

// CheckIntegrity scans every record's cross-references and reports each
// target id not present in the store. Issues are ordered by record id.
func (s *LibraryService) CheckIntegrity() []domain.IntegrityIssue {
	var issues []domain.IntegrityIssue
	for record := range s.store.All() {
		for _, ref := range record.CrossReferences {
			if _, err := s.store.Get(ref.TargetID); errors.Is(err, domain.ErrNotFound) {
				issues = append(issues, domain.IntegrityIssue{
					RecordID:     record.ID,
					TargetID:     ref.TargetID,
					Relationship: ref.Relationship,
					Label:        ref.Label,
				})
			}
		}
	}
	return issues
}

// hydrate turns an id list into records, deduplicated, preserving order.
func (s *LibraryService) hydrate(ids []string) []*domain.EducationalContent {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	records := make([]*domain.EducationalContent, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		record, err := s.store.Get(id)
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	return records
}
