package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"codecraft-api/models"
)

// ErrEmptyMessage wird vor jedem Netzwerkaufruf geprüft: leere Nachrichten
// verlassen den Prozess nie.
var ErrEmptyMessage = errors.New("pesan tidak boleh kosong")

// FallbackReply ist die Meldung, die der Aufrufer bei einem fehlgeschlagenen
// Remote-Aufruf anzeigen kann.
const FallbackReply = "Maaf, saya mengalami kesulitan teknis. Silakan coba lagi dalam beberapa saat."

// TextGenerator abstracts the remote generative-text provider.
type TextGenerator interface {
	GenerateText(ctx context.Context, message string) (string, error)
}

// ChatService proxies one user message at a time to the generative-text
// provider and normalizes the reply to plain text. Calls are stateless: no
// conversation history is kept or sent.
type ChatService struct {
	provider   TextGenerator
	normalizer *MarkdownNormalizer
	logger     *zap.Logger
}

// NewChatService erstellt einen neuen ChatService. Antworten werden mit der
// Response-Variante des Normalizers bereinigt.
func NewChatService(provider TextGenerator, logger *zap.Logger) *ChatService {
	return &ChatService{
		provider:   provider,
		normalizer: NewResponseNormalizer(logger),
		logger:     logger,
	}
}

// Send schickt eine Nutzernachricht an den Provider und gibt die bereinigte
// Antwort als Assistant-Nachricht zurück. Jeder Fehler des Remote-Aufrufs wird
// als ein einziger generischer Fehlzustand nach oben gereicht; es gibt keinen
// Retry und keinen zweiten Versuch.
func (s *ChatService) Send(ctx context.Context, message string) (models.ChatMessage, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	raw, err := s.provider.GenerateText(ctx, trimmed)
	if err != nil {
		s.logger.Error("Generative-text call failed", zap.Error(err))
		return models.ChatMessage{}, fmt.Errorf("chat request failed: %w", err)
	}

	now := time.Now()
	reply := models.ChatMessage{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Content:   s.normalizer.Clean(raw),
		Sender:    models.SenderAssistant,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	return reply, nil
}
