package services

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"codecraft-api/config"
	"codecraft-api/storage"
)

// BackupService sichert den kompletten Feedback-Store (alle Kommentar- und
// Bewertungslisten) als komprimiertes JSON nach S3.
type BackupService struct {
	Config   *config.Config
	S3Client *s3.Client
	Lister   storage.EntryLister
	Logger   *zap.Logger
}

// NewBackupService erstellt einen neuen BackupService.
func NewBackupService(cfg *config.Config, client *s3.Client, lister storage.EntryLister, logger *zap.Logger) *BackupService {
	return &BackupService{Config: cfg, S3Client: client, Lister: lister, Logger: logger}
}

// Run erstellt einen Snapshot aller Store-Einträge und lädt ihn hoch. Gibt den
// S3-Link des Backups zurück.
func (b *BackupService) Run(ctx context.Context) (string, error) {
	entries, err := b.Lister.Entries()
	if err != nil {
		return "", fmt.Errorf("snapshot failed: %w", err)
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(payload); err != nil {
		return "", err
	}
	if err := gz.Close(); err != nil {
		return "", err
	}

	key := fmt.Sprintf("feedback-%s.json.gz", time.Now().UTC().Format("2006-01-02T15-04-05Z"))
	link, err := storage.UploadFile(b.S3Client, b.Config.StratoS3Bucket, key, buf.Bytes(), b.Config)
	if err != nil {
		return "", err
	}

	b.Logger.Info("Feedback backup uploaded",
		zap.String("s3_link", link),
		zap.Int("entries", len(entries)),
		zap.Int("compressed_bytes", buf.Len()))
	return link, nil
}
