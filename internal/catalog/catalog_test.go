package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knightandthey/knightshade-email-service/internal/catalog"
)

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("known entry", func(t *testing.T) {
		t.Parallel()

		entry, ok := catalog.Get("heading")
		require.True(t, ok)
		assert.Equal(t, "heading", entry.ID)
		assert.Equal(t, "content", entry.Category)
		assert.NotEmpty(t, entry.Template)
		assert.NotEmpty(t, entry.Props)
	})

	t.Run("unknown entry", func(t *testing.T) {
		t.Parallel()

		_, ok := catalog.Get("nope")
		assert.False(t, ok)
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	all := catalog.List()
	require.NotEmpty(t, all)

	seen := make(map[string]bool, len(all))
	for _, e := range all {
		assert.False(t, seen[e.ID], "duplicate entry id %q", e.ID)
		seen[e.ID] = true
		assert.NotEmpty(t, e.Category, "entry %q has no category", e.ID)
		assert.NotEmpty(t, e.Template, "entry %q has no template", e.ID)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := catalog.List()
	first[0] = catalog.Entry{ID: "mutated"}

	again := catalog.List()
	assert.NotEqual(t, "mutated", again[0].ID)
}

func TestListCategory(t *testing.T) {
	t.Parallel()

	layout := catalog.ListCategory("layout")
	require.NotEmpty(t, layout)
	for _, e := range layout {
		assert.Equal(t, "layout", e.Category)
	}

	assert.Empty(t, catalog.ListCategory("nope"))
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	entry, ok := catalog.Get("button")
	require.True(t, ok)

	defaults := entry.Defaults()
	assert.Equal(t, "Click me", defaults["label"])
	assert.Equal(t, "https://example.com", defaults["url"])
	assert.Len(t, defaults, len(entry.Props))

	// Each call returns a fresh map.
	defaults["label"] = "changed"
	assert.Equal(t, "Click me", entry.Defaults()["label"])
}

func TestEveryTemplatePlaceholderHasAProp(t *testing.T) {
	t.Parallel()

	for _, e := range catalog.List() {
		for _, p := range e.Props {
			assert.Contains(t, e.Template, "{"+p.Name+"}", "entry %q never uses prop %q", e.ID, p.Name)
		}
	}
}
