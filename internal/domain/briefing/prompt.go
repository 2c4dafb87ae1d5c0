package briefing

import (
	"encoding/json"
	"fmt"

	"github.com/granitechief/avybrief/internal/domain/forecast"
)

// systemInstruction pins the persona and output rules for every briefing.
const systemInstruction = "Act as a highly experienced, safety-focused mountain guide and avalanche forecaster. Your response must be authoritative, easy to understand, and contain only the generated briefing text, no introductions or concluding remarks. Use markdown formatting for emphasis (e.g., **HIGH**)."

// userQueryTemplate requests exactly three paragraphs and embeds the full
// cleaned forecast as JSON so the model sees every field.
const userQueryTemplate = `You are a professional avalanche forecaster. Provide a concise, three-paragraph safety briefing for the forecast area.
1. The first paragraph must summarize the overall **current** risk and mention the **Forecaster** and their **Confidence**.
2. The second paragraph must recommend specific travel safety measures based on the danger levels for the **first day**.
3. The third paragraph must comment on the outlook or change in danger for the **subsequent days**, mentioning the primary dangers for days 2 and 3 if they differ significantly from day 1.

Here is the cleaned, multi-day data: %s`

// BuildPrompt produces the deterministic prompt pair for a cleaned forecast.
// The whole record is serialized; nothing is summarized or truncated.
func BuildPrompt(cleaned *forecast.CleanedForecast) PromptPair {
	payload := "{}"
	if data, err := json.Marshal(cleaned); err == nil {
		payload = string(data)
	}
	return PromptPair{
		SystemInstruction: systemInstruction,
		UserQuery:         fmt.Sprintf(userQueryTemplate, payload),
	}
}
