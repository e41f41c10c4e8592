package gemini

// GenerateRequest ist der Request-Body für den generateContent-Endpunkt.
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// Content bündelt die Text-Parts einer Nachricht.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part ist ein einzelner Text-Abschnitt.
type Part struct {
	Text string `json:"text"`
}

// GenerateResponse ist die Antwort des Dienstes. Verwendet wird ausschließlich
// der Text des ersten Kandidaten.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate ist eine einzelne Antwort-Variante des Modells.
type Candidate struct {
	Content Content `json:"content"`
}
