package models

import "time"

// StorageEntry ist ein Eintrag im Key-Value-Store. Der Value enthält die
// vollständige serialisierte Liste (Kommentare bzw. Bewertungen) eines Artikels
// und wird bei jedem Schreibvorgang komplett ersetzt (read-modify-write).
type StorageEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Key   string `json:"key" gorm:"uniqueIndex;size:255;not null"`
	Value string `json:"value" gorm:"type:text"`
}

// TableName gibt explizit den Tabellennamen an.
func (StorageEntry) TableName() string {
	return "storage_entries"
}
