package storage

import (
	"errors"
	"sort"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"codecraft-api/models"
)

// Store ist die injizierbare Key-Value-Persistenz für Feedback-Daten
// (Kommentare/Bewertungen). Die Schnittstelle spiegelt den Vertrag eines
// Browser-localStorage: Werte sind vollständige serialisierte Listen und
// werden bei jedem Schreibvorgang komplett ersetzt.
type Store interface {
	// Get liefert den Wert zu einem Key. Ein fehlender Key ist kein Fehler,
	// sondern wird über das zweite Rückgabeflag signalisiert.
	Get(key string) (string, bool, error)

	// Set schreibt den Wert zu einem Key (insert oder overwrite).
	Set(key, value string) error
}

// EntryLister liefert alle gespeicherten Einträge, z.B. für Backups.
type EntryLister interface {
	Entries() ([]models.StorageEntry, error)
}

// GormStore persistiert Einträge in der storage_entries-Tabelle.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore erstellt einen neuen GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) (string, bool, error) {
	var entry models.StorageEntry
	if err := s.db.Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(key, value string) error {
	entry := models.StorageEntry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Entries gibt alle gespeicherten Einträge zurück.
func (s *GormStore) Entries() ([]models.StorageEntry, error) {
	var entries []models.StorageEntry
	if err := s.db.Order("key").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// MemoryStore ist ein In-Memory-Store für Tests und lokale Entwicklung.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore erstellt einen leeren MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Entries gibt alle Einträge sortiert nach Key zurück.
func (s *MemoryStore) Entries() ([]models.StorageEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]models.StorageEntry, 0, len(s.values))
	for k, v := range s.values {
		entries = append(entries, models.StorageEntry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}
