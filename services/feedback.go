package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"codecraft-api/models"
	"codecraft-api/storage"
)

// Validierungsfehler mit den Meldungen, die dem Nutzer angezeigt werden.
var (
	ErrCommentInvalid = errors.New("nama dan komentar harus diisi")
	ErrRatingInvalid  = errors.New("nama, rating, dan komentar harus diisi")
)

// FeedbackService verwaltet Kommentare und Bewertungen pro Artikel. Die Daten
// liegen als vollständige JSON-Listen im Key-Value-Store; jeder Schreibvorgang
// ist ein read-modify-write des gesamten Eintrags. Gleichzeitige Schreiber auf
// demselben Key sind last-write-wins (bekannte, akzeptierte Race-Condition).
type FeedbackService struct {
	store  storage.Store
	logger *zap.Logger
}

// NewFeedbackService erstellt einen neuen FeedbackService.
func NewFeedbackService(store storage.Store, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{store: store, logger: logger}
}

func commentsKey(articleID string) string { return "comments_" + articleID }
func ratingsKey(articleID string) string  { return "ratings_" + articleID }

// Comments liefert alle Kommentare eines Artikels, neueste zuerst. Ein Artikel
// ohne Kommentare liefert eine leere Liste, keinen Fehler.
func (s *FeedbackService) Comments(articleID string) ([]models.Comment, error) {
	value, found, err := s.store.Get(commentsKey(articleID))
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Comment{}, nil
	}
	var comments []models.Comment
	if err := json.Unmarshal([]byte(value), &comments); err != nil {
		return nil, fmt.Errorf("corrupt comment list for %s: %w", articleID, err)
	}
	return comments, nil
}

// AddComment validiert und speichert einen neuen Kommentar. Bei leerem Namen
// oder leerem Text wird nichts geschrieben.
func (s *FeedbackService) AddComment(articleID, author, content string) (models.Comment, error) {
	if isBlank(author) || isBlank(content) {
		return models.Comment{}, ErrCommentInvalid
	}

	comments, err := s.Comments(articleID)
	if err != nil {
		return models.Comment{}, err
	}

	now := time.Now()
	comment := models.Comment{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Author:    author,
		Content:   content,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	updated := append([]models.Comment{comment}, comments...)

	if err := s.writeJSON(commentsKey(articleID), updated); err != nil {
		return models.Comment{}, err
	}
	s.logger.Info("Comment added",
		zap.String("article_id", articleID),
		zap.Int("total_comments", len(updated)))
	return comment, nil
}

// Ratings liefert alle Bewertungen eines Artikels, neueste zuerst.
func (s *FeedbackService) Ratings(articleID string) ([]models.Rating, error) {
	value, found, err := s.store.Get(ratingsKey(articleID))
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Rating{}, nil
	}
	var ratings []models.Rating
	if err := json.Unmarshal([]byte(value), &ratings); err != nil {
		return nil, fmt.Errorf("corrupt rating list for %s: %w", articleID, err)
	}
	return ratings, nil
}

// AddRating validiert und speichert eine neue Bewertung (1-5 Sterne plus
// Rezensionstext).
func (s *FeedbackService) AddRating(articleID, author string, score int, comment string) (models.Rating, error) {
	if isBlank(author) || isBlank(comment) || score < 1 || score > 5 {
		return models.Rating{}, ErrRatingInvalid
	}

	ratings, err := s.Ratings(articleID)
	if err != nil {
		return models.Rating{}, err
	}

	now := time.Now()
	rating := models.Rating{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Author:    author,
		Rating:    score,
		Comment:   comment,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	updated := append([]models.Rating{rating}, ratings...)

	if err := s.writeJSON(ratingsKey(articleID), updated); err != nil {
		return models.Rating{}, err
	}
	s.logger.Info("Rating added",
		zap.String("article_id", articleID),
		zap.Int("score", score),
		zap.Int("total_ratings", len(updated)))
	return rating, nil
}

// AverageRating berechnet das arithmetische Mittel aller gespeicherten Scores.
// Ohne Bewertungen ist der Durchschnitt 0, kein Fehler.
func (s *FeedbackService) AverageRating(articleID string) (float64, error) {
	ratings, err := s.Ratings(articleID)
	if err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(ratings)), nil
}

func (s *FeedbackService) writeJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Set(key, string(data))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
