package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbank-labs/medbank-cli/internal/core/ports/driving"
)

func TestLibraryHolder_Swap(t *testing.T) {
	first := newTestLibrary(t, testRecord("condition-old", "Old"))
	holder := NewLibraryHolder(first, &driving.LoadReport{Loaded: 1})

	record, err := holder.Library().Get("condition-old")
	require.NoError(t, err)
	assert.Equal(t, "Old", record.Name)
	assert.Equal(t, 1, holder.Report().Loaded)

	second := newTestLibrary(t,
		testRecord("condition-new", "New"),
		testRecord("condition-newer", "Newer"),
	)
	holder.Swap(second, &driving.LoadReport{Loaded: 2})

	_, err = holder.Library().Get("condition-old")
	assert.Error(t, err)
	_, err = holder.Library().Get("condition-new")
	assert.NoError(t, err)
	assert.Equal(t, 2, holder.Report().Loaded)
}

func TestLibraryHolder_ConcurrentReaders(t *testing.T) {
	holder := NewLibraryHolder(newTestLibrary(t, testRecord("concept-a", "Alpha")), &driving.LoadReport{Loaded: 1})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				library := holder.Library()
				// A reader always sees a complete corpus.
				assert.Equal(t, 1, holder.Report().Loaded)
				assert.Equal(t, 1, library.Len())
			}
		}()
	}
	for i := 0; i < 100; i++ {
		holder.Swap(newTestLibrary(t, testRecord("concept-a", "Alpha")), &driving.LoadReport{Loaded: 1})
	}
	wg.Wait()
}
