package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBilingual(t *testing.T) {
	t.Run("splits on first separator", func(t *testing.T) {
		b, ok := ParseBilingual("La diálisis limpia la sangre. | Dialysis cleans the blood.")

		assert.True(t, ok)
		assert.Equal(t, "La diálisis limpia la sangre.", b.ES)
		assert.Equal(t, "Dialysis cleans the blood.", b.EN)
	})

	t.Run("keeps later separators in the english half", func(t *testing.T) {
		b, ok := ParseBilingual("a | b | c")

		assert.True(t, ok)
		assert.Equal(t, "a", b.ES)
		assert.Equal(t, "b | c", b.EN)
	})

	t.Run("missing separator keeps raw text in ES", func(t *testing.T) {
		b, ok := ParseBilingual("solo español")

		assert.False(t, ok)
		assert.Equal(t, "solo español", b.ES)
		assert.Empty(t, b.EN)
	})

	t.Run("bare pipe without spacing is not a separator", func(t *testing.T) {
		b, ok := ParseBilingual("a|b")

		assert.False(t, ok)
		assert.Equal(t, "a|b", b.ES)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		b, ok := ParseBilingual("  hola  |  hello  ")

		assert.True(t, ok)
		assert.Equal(t, "hola", b.ES)
		assert.Equal(t, "hello", b.EN)
	})
}

func TestBilingualText_IsComplete(t *testing.T) {
	assert.True(t, BilingualText{ES: "hola", EN: "hello"}.IsComplete())
	assert.False(t, BilingualText{ES: "hola"}.IsComplete())
	assert.False(t, BilingualText{EN: "hello"}.IsComplete())
	assert.False(t, BilingualText{ES: "   ", EN: "hello"}.IsComplete())
}

func TestBilingualText_Legacy(t *testing.T) {
	t.Run("round-trips through the authoring convention", func(t *testing.T) {
		b, ok := ParseBilingual("hola | hello")

		assert.True(t, ok)
		assert.Equal(t, "hola | hello", b.Legacy())
	})

	t.Run("omits separator when english is empty", func(t *testing.T) {
		assert.Equal(t, "hola", BilingualText{ES: "hola"}.Legacy())
	})
}
