package briefing

import "github.com/granitechief/avybrief/internal/domain/forecast"

// Request carries the cleaned forecast a client echoes back for briefing
// generation.
type Request struct {
	CleanedData *forecast.CleanedForecast `json:"cleanedData"`
}

// Response is serialized back to API consumers. LLMSummary holds either the
// generated briefing or a descriptive failure string; clients render both the
// same way.
type Response struct {
	LLMSummary string `json:"llmSummary"`
}

// PromptPair is the instruction pair sent to the generative API.
type PromptPair struct {
	SystemInstruction string
	UserQuery         string
}
