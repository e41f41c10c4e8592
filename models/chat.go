package models

// Absender-Tags für Chat-Nachrichten.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ChatMessage ist eine einzelne Chat-Nachricht. Nachrichten leben nur für die
// Dauer einer Sitzung im Speicher des Aufrufers und werden nie persistiert.
type ChatMessage struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp"`
}
