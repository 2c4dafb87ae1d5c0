package forecast

import (
	"regexp"
	"strings"
)

// htmlTagPattern matches one tag-like span at a time: a "<" followed by
// anything up to the next ">", with no nested "<" inside. It is a best-effort
// sanitizer, not an HTML parser; entities pass through untouched.
var htmlTagPattern = regexp.MustCompile(`<[^<]+?>`)

// Normalize converts a raw upstream payload into the CleanedForecast shape.
// It accepts either a single product object or a non-empty array whose first
// element is the product. It returns nil when the payload carries no usable
// report; callers must treat nil as a distinct no-data condition, not an
// error. The input is never mutated.
func Normalize(raw any) *CleanedForecast {
	product := selectProduct(raw)
	if product == nil {
		return nil
	}

	// The report must be a JSON object; a missing key, null, or any
	// non-object value means no usable data. An empty object still passes
	// and defaults every field.
	report, ok := product["report"].(map[string]any)
	if !ok {
		return nil
	}

	cleaned := &CleanedForecast{
		ReportMetadata: ReportMetadata{
			Forecaster: stringAt(report, "N/A", "forecaster"),
			DateIssued: optionalString(report, "dateIssued"),
			ValidUntil: optionalString(report, "validUntil"),
			Confidence: stringAt(report, "N/A", "confidence", "rating", "display"),
		},
		Summary:      stripHTML(stringAt(report, "No summary provided.", "highlights")),
		AreaName:     stringAt(product, "Avalanche Area", "area", "name"),
		DailyRatings: make([]DailyRating, 0, 3),
	}

	ratings, _ := report["dangerRatings"].([]any)
	for _, entry := range ratings {
		day, _ := entry.(map[string]any)
		cleaned.DailyRatings = append(cleaned.DailyRatings, DailyRating{
			DateDisplay:         stringAt(day, "N/A", "date", "display"),
			DangerAlpine:        stringAt(day, "N/A", "ratings", "alp", "rating", "display"),
			DangerTreeline:      stringAt(day, "N/A", "ratings", "tln", "rating", "display"),
			DangerBelowTreeline: stringAt(day, "N/A", "ratings", "btl", "rating", "display"),
		})
	}

	return cleaned
}

// selectProduct unwraps the two payload shapes the upstream is known to
// return. Empty arrays and non-object values yield nil.
func selectProduct(raw any) map[string]any {
	switch v := raw.(type) {
	case map[string]any:
		return v
	case []any:
		if len(v) == 0 {
			return nil
		}
		product, _ := v[0].(map[string]any)
		return product
	default:
		return nil
	}
}

// stringAt walks path through nested objects and returns the string found at
// the final key, or def when any link is missing or holds a non-string value.
func stringAt(obj map[string]any, def string, path ...string) string {
	current := obj
	for i, key := range path {
		if current == nil {
			return def
		}
		value, ok := current[key]
		if !ok {
			return def
		}
		if i == len(path)-1 {
			if s, ok := value.(string); ok {
				return s
			}
			return def
		}
		next, ok := value.(map[string]any)
		if !ok {
			return def
		}
		current = next
	}
	return def
}

// optionalString returns the string stored at key, or nil when the key is
// absent or holds a non-string value. Nil serializes as JSON null.
func optionalString(obj map[string]any, key string) *string {
	if obj == nil {
		return nil
	}
	if s, ok := obj[key].(string); ok {
		return &s
	}
	return nil
}

// stripHTML removes each tag-like span left to right and trims the result.
func stripHTML(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}
