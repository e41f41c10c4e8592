package models

// Comment ist ein Leserkommentar zu einem Artikel. Kommentare werden als
// vollständige Liste pro Artikel im Key-Value-Store abgelegt.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Rating ist eine Leserbewertung (1-5 Sterne) mit Rezensionstext.
type Rating struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Timestamp string `json:"timestamp"`
}
