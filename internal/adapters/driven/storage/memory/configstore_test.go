package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_GetSet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("content.dir", "/srv/content"))

	val, ok := store.Get("content.dir")
	assert.True(t, ok)
	assert.Equal(t, "/srv/content", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("validation.bilingual_policy", "reject")
	_ = store.Set("not-a-string", 42)

	assert.Equal(t, "reject", store.GetString("validation.bilingual_policy"))
	assert.Equal(t, "", store.GetString("not-a-string"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("validation.require_all_levels", false)

	assert.False(t, store.GetBool("validation.require_all_levels", true))
	assert.True(t, store.GetBool("missing", true))
	assert.False(t, store.GetBool("missing", false))
}

func TestConfigStore_LoadAndPath(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}
