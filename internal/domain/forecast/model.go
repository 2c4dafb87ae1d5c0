package forecast

// CleanedForecast is the stable, null-safe shape returned to API consumers
// and echoed back by them as the context for briefing generation.
type CleanedForecast struct {
	ReportMetadata ReportMetadata `json:"reportMetadata"`
	Summary        string         `json:"summary"`
	AreaName       string         `json:"areaName"`
	DailyRatings   []DailyRating  `json:"dailyRatings"`
}

// ReportMetadata describes the provenance of a forecast report. DateIssued
// and ValidUntil stay null when upstream omits them; the other fields fall
// back to "N/A".
type ReportMetadata struct {
	Forecaster string  `json:"forecaster"`
	DateIssued *string `json:"dateIssued"`
	ValidUntil *string `json:"validUntil"`
	Confidence string  `json:"confidence"`
}

// DailyRating carries the danger level per elevation band for a single day.
type DailyRating struct {
	DateDisplay         string `json:"dateDisplay"`
	DangerAlpine        string `json:"dangerAlpine"`
	DangerTreeline      string `json:"dangerTreeline"`
	DangerBelowTreeline string `json:"dangerBelowTreeline"`
}
