package catalog

import (
	"strings"

	"codecraft-api/models"
)

// Categories sind die deklarierten Kategorie-Labels der Plattform. Das
// Category-Feld eines Artikels ist freier Text und wird nur informell gegen
// diese Liste geprüft.
var Categories = []string{
	"JavaScript",
	"React",
	"Python",
	"Web Development",
	"Database",
	"Backend",
	"Frontend",
	"Mobile Development",
	"DevOps",
	"Data Science",
}

// categorySlugs is the explicit slug-to-label mapping used by the routing
// surface. A derived lowercase/replace transform is lossy for multi-word
// labels, so the table is maintained by hand and kept bijective.
var categorySlugs = map[string]string{
	"javascript":         "JavaScript",
	"react":              "React",
	"python":             "Python",
	"web-development":    "Web Development",
	"database":           "Database",
	"backend":            "Backend",
	"frontend":           "Frontend",
	"mobile-development": "Mobile Development",
	"devops":             "DevOps",
	"data-science":       "Data Science",
}

var slugByCategory = func() map[string]string {
	m := make(map[string]string, len(categorySlugs))
	for slug, label := range categorySlugs {
		m[label] = slug
	}
	return m
}()

// All gibt die vollständige Artikelsammlung in Originalreihenfolge zurück.
func All() []models.Article {
	return articles
}

// GetByID returns the article with the given identifier. A missing id is a
// normal outcome, signalled by the second return value, never an error.
func GetByID(id string) (models.Article, bool) {
	for _, a := range articles {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// GetByCategory returns every article whose category equals the given label
// exactly (case-sensitive), preserving collection order.
func GetByCategory(category string) []models.Article {
	result := []models.Article{}
	for _, a := range articles {
		if a.Category == category {
			result = append(result, a)
		}
	}
	return result
}

// Search returns all articles whose title, excerpt, or any tag contains the
// query as a case-insensitive substring, in collection order. There is no
// relevance ranking. An empty query matches every article, since every string
// contains the empty substring.
func Search(query string) []models.Article {
	q := strings.ToLower(query)
	result := []models.Article{}
	for _, a := range articles {
		if matches(a, q) {
			result = append(result, a)
		}
	}
	return result
}

func matches(a models.Article, q string) bool {
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Excerpt), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// CategoryBySlug resolves a route slug to its category label.
func CategoryBySlug(slug string) (string, bool) {
	label, ok := categorySlugs[slug]
	return label, ok
}

// SlugForCategory resolves a category label to its route slug.
func SlugForCategory(label string) (string, bool) {
	slug, ok := slugByCategory[label]
	return slug, ok
}
