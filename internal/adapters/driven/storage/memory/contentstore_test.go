package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
)

func record(id, name string, t domain.ContentType) domain.EducationalContent {
	return domain.EducationalContent{
		ID:     id,
		Name:   name,
		Type:   t,
		Status: domain.StatusPublished,
	}
}

func TestNewContentStore(t *testing.T) {
	t.Run("admits unique records", func(t *testing.T) {
		store, dups := NewContentStore([]domain.EducationalContent{
			record("a", "Alpha", domain.ContentTypeCondition),
			record("b", "Beta", domain.ContentTypeTopic),
		})

		require.Empty(t, dups)
		assert.Equal(t, 2, store.Len())
	})

	t.Run("excludes every colliding record", func(t *testing.T) {
		store, dups := NewContentStore([]domain.EducationalContent{
			record("dup", "First", domain.ContentTypeCondition),
			record("dup", "Second", domain.ContentTypeCondition),
			record("ok", "Kept", domain.ContentTypeTopic),
		})

		require.Len(t, dups, 1)
		assert.Equal(t, "dup", dups[0].ID)
		assert.Equal(t, []string{"First", "Second"}, dups[0].Names)
		assert.Contains(t, dups[0].Error(), `"dup"`)

		// Neither duplicate is admitted; the unrelated record is.
		_, err := store.Get("dup")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("empty input yields empty store", func(t *testing.T) {
		store, dups := NewContentStore(nil)

		assert.Empty(t, dups)
		assert.Equal(t, 0, store.Len())
	})
}

func TestContentStore_Get(t *testing.T) {
	store, _ := NewContentStore([]domain.EducationalContent{
		record("condition-tb", "Tuberculosis", domain.ContentTypeCondition),
	})

	t.Run("returns the stored record unmodified", func(t *testing.T) {
		got, err := store.Get("condition-tb")

		require.NoError(t, err)
		assert.Equal(t, "condition-tb", got.ID)
		assert.Equal(t, "Tuberculosis", got.Name)
	})

	t.Run("unknown id is ErrNotFound", func(t *testing.T) {
		_, err := store.Get("condition-missing")

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestContentStore_All(t *testing.T) {
	store, _ := NewContentStore([]domain.EducationalContent{
		record("c", "C", domain.ContentTypeTopic),
		record("a", "A", domain.ContentTypeCondition),
		record("b", "B", domain.ContentTypeTopic),
	})

	t.Run("yields records in id order", func(t *testing.T) {
		var ids []string
		for r := range store.All() {
			ids = append(ids, r.ID)
		}

		assert.Equal(t, []string{"a", "b", "c"}, ids)
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		first := 0
		for range store.All() {
			first++
		}
		second := 0
		for range store.All() {
			second++
		}

		assert.Equal(t, first, second)
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		count := 0
		for range store.All() {
			count++
			break
		}

		assert.Equal(t, 1, count)
	})
}

func TestContentStore_ByType(t *testing.T) {
	store, _ := NewContentStore([]domain.EducationalContent{
		record("a", "A", domain.ContentTypeCondition),
		record("b", "B", domain.ContentTypeTopic),
		record("c", "C", domain.ContentTypeCondition),
	})

	conditions := store.ByType(domain.ContentTypeCondition)

	require.Len(t, conditions, 2)
	assert.Equal(t, "a", conditions[0].ID)
	assert.Equal(t, "c", conditions[1].ID)
	assert.Empty(t, store.ByType(domain.ContentTypePathway))
}
