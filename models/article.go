package models

// Article repräsentiert einen statischen Lernartikel. Die Sammlung wird beim
// Kompilieren eingebettet und ist zur Laufzeit unveränderlich.
type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	PublishDate string   `json:"publish_date"`
	ReadTime    int      `json:"read_time"`
	Difficulty  string   `json:"difficulty"`
}

// Schwierigkeitsgrade der Artikel (feste Labels).
const (
	DifficultyBeginner     = "Pemula"
	DifficultyIntermediate = "Menengah"
	DifficultyAdvanced     = "Lanjutan"
)
