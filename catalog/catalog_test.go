package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecraft-api/models"
)

func idsOf(articles []models.Article) []string {
	ids := make([]string, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestGetByIDReturnsEveryArticle(t *testing.T) {
	for _, want := range All() {
		got, ok := GetByID(want.ID)
		require.True(t, ok, "article %s should be found", want.ID)
		assert.Equal(t, want, got)
	}
}

func TestGetByIDMissingIsNotAnError(t *testing.T) {
	_, ok := GetByID("does-not-exist")
	assert.False(t, ok)
}

func TestGetByCategoryExactMatch(t *testing.T) {
	for _, category := range Categories {
		result := GetByCategory(category)
		for _, a := range result {
			assert.Equal(t, category, a.Category)
		}

		// no article with this category may be excluded
		want := 0
		for _, a := range All() {
			if a.Category == category {
				want++
			}
		}
		assert.Len(t, result, want, "category %s", category)
	}
}

func TestGetByCategoryIsCaseSensitive(t *testing.T) {
	assert.NotEmpty(t, GetByCategory("JavaScript"))
	assert.Empty(t, GetByCategory("javascript"))
}

func TestGetByCategoryUnknownReturnsEmpty(t *testing.T) {
	assert.Empty(t, GetByCategory("Blockchain"))
}

func TestSearchTitleExcerptAndTags(t *testing.T) {
	// title match
	ids := idsOf(Search("Flexbox"))
	assert.Contains(t, ids, "css-flexbox")

	// excerpt match
	ids = idsOf(Search("RESTful API"))
	assert.Contains(t, ids, "nodejs-express")

	// tag-only match
	ids = idsOf(Search("useEffect"))
	assert.Equal(t, []string{"react-hooks"}, ids)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, idsOf(Search("flexbox")), idsOf(Search("FLEXBOX")))
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	// every string contains the empty substring, so this is the whole catalog
	assert.Len(t, Search(""), len(All()))
}

func TestSearchPreservesCollectionOrder(t *testing.T) {
	results := Search("javascript")
	require.NotEmpty(t, results)

	pos := map[string]int{}
	for i, a := range All() {
		pos[a.ID] = i
	}
	for i := 1; i < len(results); i++ {
		assert.Less(t, pos[results[i-1].ID], pos[results[i].ID])
	}
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	assert.Empty(t, Search("quantum computing"))
}

func TestCategorySlugsAreBijective(t *testing.T) {
	seen := map[string]bool{}
	for _, label := range Categories {
		slug, ok := SlugForCategory(label)
		require.True(t, ok, "label %s has no slug", label)
		assert.False(t, seen[slug], "slug %s mapped twice", slug)
		seen[slug] = true

		back, ok := CategoryBySlug(slug)
		require.True(t, ok)
		assert.Equal(t, label, back)
	}
}

func TestCategoryBySlugMultiWord(t *testing.T) {
	label, ok := CategoryBySlug("web-development")
	require.True(t, ok)
	assert.Equal(t, "Web Development", label)
}

func TestCategoryBySlugUnknown(t *testing.T) {
	_, ok := CategoryBySlug("machine-learning")
	assert.False(t, ok)
}

func TestArticleIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range All() {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
}
