package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"codecraft-api/storage"
)

func newTestFeedbackService() (*FeedbackService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewFeedbackService(store, zap.NewNop()), store
}

func TestCommentsEmptyForUnknownArticle(t *testing.T) {
	svc, _ := newTestFeedbackService()

	comments, err := svc.Comments("js-basics-1")
	require.NoError(t, err)
	assert.Empty(t, comments)
	assert.NotNil(t, comments)
}

func TestAddCommentPrependsNewestFirst(t *testing.T) {
	svc, _ := newTestFeedbackService()

	first, err := svc.AddComment("js-basics-1", "Budi", "Artikel yang bagus!")
	require.NoError(t, err)
	second, err := svc.AddComment("js-basics-1", "Siti", "Sangat membantu.")
	require.NoError(t, err)

	comments, err := svc.Comments("js-basics-1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, second, comments[0])
	assert.Equal(t, first, comments[1])
}

func TestAddCommentStoresUnderArticleKey(t *testing.T) {
	svc, store := newTestFeedbackService()

	_, err := svc.AddComment("react-intro", "Budi", "Mantap")
	require.NoError(t, err)

	raw, found, err := store.Get("comments_react-intro")
	require.NoError(t, err)
	require.True(t, found)

	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Budi", list[0]["author"])
	assert.Equal(t, "Mantap", list[0]["content"])
}

func TestAddCommentValidation(t *testing.T) {
	svc, store := newTestFeedbackService()

	cases := []struct{ author, content string }{
		{"", "text"},
		{"Budi", ""},
		{"   ", "text"},
		{"Budi", "  \t "},
	}
	for _, tc := range cases {
		_, err := svc.AddComment("js-basics-1", tc.author, tc.content)
		assert.ErrorIs(t, err, ErrCommentInvalid, "author=%q content=%q", tc.author, tc.content)
	}

	// rejected input must not touch the store
	_, found, err := store.Get("comments_js-basics-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCommentsIsolatedPerArticle(t *testing.T) {
	svc, _ := newTestFeedbackService()

	_, err := svc.AddComment("js-basics-1", "Budi", "Halo")
	require.NoError(t, err)

	other, err := svc.Comments("react-intro")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAddRatingAndAverage(t *testing.T) {
	svc, _ := newTestFeedbackService()

	for _, score := range []int{5, 4, 3} {
		_, err := svc.AddRating("js-basics-1", "Budi", score, "Oke")
		require.NoError(t, err)
	}

	avg, err := svc.AverageRating("js-basics-1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)

	ratings, err := svc.Ratings("js-basics-1")
	require.NoError(t, err)
	require.Len(t, ratings, 3)
	// newest first
	assert.Equal(t, 3, ratings[0].Rating)
	assert.Equal(t, 5, ratings[2].Rating)
}

func TestAverageRatingWithoutRatings(t *testing.T) {
	svc, _ := newTestFeedbackService()

	avg, err := svc.AverageRating("js-basics-1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
}

func TestAddRatingValidation(t *testing.T) {
	svc, store := newTestFeedbackService()

	cases := []struct {
		author, comment string
		score           int
	}{
		{"", "Oke", 3},
		{"Budi", "", 3},
		{"Budi", "Oke", 0},
		{"Budi", "Oke", 6},
		{"Budi", "Oke", -1},
	}
	for _, tc := range cases {
		_, err := svc.AddRating("js-basics-1", tc.author, tc.score, tc.comment)
		assert.ErrorIs(t, err, ErrRatingInvalid, "author=%q score=%d comment=%q", tc.author, tc.score, tc.comment)
	}

	_, found, err := store.Get("ratings_js-basics-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCommentsCorruptEntry(t *testing.T) {
	svc, store := newTestFeedbackService()

	require.NoError(t, store.Set("comments_js-basics-1", "{not json"))

	_, err := svc.Comments("js-basics-1")
	assert.Error(t, err)
}
