package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"codecraft-api/config"
)

var httpClient = &http.Client{Timeout: 60 * time.Second}

// promptPrefix ist die feste Instruktions-Präambel. Sie legt Persona und
// Zielsprache fest und verbietet Markdown in der Antwort; die Frage des
// Nutzers wird direkt angehängt.
const promptPrefix = "Kamu adalah Idin Code AI Assistant untuk website CodeCraft Academia. " +
	"Jawab dalam bahasa Indonesia yang profesional dan jelas. " +
	"Jangan gunakan format markdown, asterisk (*), atau karakter khusus lainnya. " +
	"Berikan jawaban yang clean dan mudah dibaca tanpa formatting khusus. Pertanyaan: "

// Fetcher kapselt den Aufruf des Generative-Text-Dienstes.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen Gemini-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// GenerateText sendet eine einzelne Nutzernachricht an den Dienst und gibt den
// rohen Antworttext des ersten Kandidaten zurück. Ein Versuch, kein Retry,
// kein Verlauf: jeder Aufruf ist zustandslos.
func (f *Fetcher) GenerateText(ctx context.Context, message string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		f.Config.GeminiBaseURL, f.Config.GeminiModel, f.Config.GeminiAPIKey)

	reqBody := GenerateRequest{
		Contents: []Content{{
			Parts: []Part{{Text: promptPrefix + message}},
		}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	log := f.Logger.With(zap.String("model", f.Config.GeminiModel))
	log.Debug("Rufe Generative-Text-API auf", zap.Int("message_length", len(message)))

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate request failed with status: %d", resp.StatusCode)
	}

	var gr GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", err
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	text := gr.Candidates[0].Content.Parts[0].Text
	log.Debug("Antwort erhalten", zap.Int("response_length", len(text)))
	return text, nil
}
