package metrics

// TokenUsage captures the token counts an LLM reports for a generation call.
// Field tags follow the Gemini usageMetadata wire names.
type TokenUsage struct {
	PromptTokens    int `json:"promptTokenCount"`
	CandidateTokens int `json:"candidatesTokenCount,omitempty"`
	TotalTokens     int `json:"totalTokenCount"`
}

// IsZero reports whether usage data is absent.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CandidateTokens == 0 && u.TotalTokens == 0
}
