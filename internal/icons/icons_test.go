package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyph_Fallback(t *testing.T) {
	assert.Equal(t, Glyph(FallbackKey), Glyph("no-such-icon"))
	assert.NotEmpty(t, Glyph("utensils"))
	assert.NotEqual(t, Glyph(FallbackKey), Glyph("utensils"))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("utensils"))
	assert.True(t, Valid(FallbackKey))
	assert.False(t, Valid(""))
	assert.False(t, Valid("no-such-icon"))
}

func TestNames_CoversSeedIcons(t *testing.T) {
	names := Names()
	assert.Len(t, names, 35)

	// Icons referenced by the seeded default categories must exist.
	for _, key := range []string{"utensils", "film", "plane", "shopping-bag", "file-text", "activity"} {
		assert.Contains(t, names, key)
	}
}
