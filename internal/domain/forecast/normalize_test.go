package forecast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const fullPayload = `{
	"report": {
		"forecaster": "J. Smith",
		"dateIssued": "2026-02-10T16:00:00Z",
		"validUntil": "2026-02-11T16:00:00Z",
		"confidence": {"rating": {"display": "High"}},
		"highlights": "<p>Be <b>careful</b> out there.</p>",
		"dangerRatings": [
			{
				"date": {"display": "Feb 10"},
				"ratings": {
					"alp": {"rating": {"display": "Considerable"}},
					"tln": {"rating": {"display": "Moderate"}},
					"btl": {"rating": {"display": "Low"}}
				}
			},
			{
				"date": {"display": "Feb 11"},
				"ratings": {
					"alp": {"rating": {"display": "High"}},
					"tln": {"rating": {"display": "Considerable"}},
					"btl": {"rating": {"display": "Moderate"}}
				}
			}
		]
	},
	"area": {"name": "Sea to Sky"}
}`

func decodePayload(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestNormalizeFullPayload(t *testing.T) {
	cleaned := Normalize(decodePayload(t, fullPayload))
	require.NotNil(t, cleaned)

	require.Equal(t, "J. Smith", cleaned.ReportMetadata.Forecaster)
	require.NotNil(t, cleaned.ReportMetadata.DateIssued)
	require.Equal(t, "2026-02-10T16:00:00Z", *cleaned.ReportMetadata.DateIssued)
	require.NotNil(t, cleaned.ReportMetadata.ValidUntil)
	require.Equal(t, "2026-02-11T16:00:00Z", *cleaned.ReportMetadata.ValidUntil)
	require.Equal(t, "High", cleaned.ReportMetadata.Confidence)
	require.Equal(t, "Be careful out there.", cleaned.Summary)
	require.Equal(t, "Sea to Sky", cleaned.AreaName)

	require.Len(t, cleaned.DailyRatings, 2)
	require.Equal(t, DailyRating{
		DateDisplay:         "Feb 10",
		DangerAlpine:        "Considerable",
		DangerTreeline:      "Moderate",
		DangerBelowTreeline: "Low",
	}, cleaned.DailyRatings[0])
	require.Equal(t, "Feb 11", cleaned.DailyRatings[1].DateDisplay)
}

func TestNormalizeArrayPayloadUsesFirstElement(t *testing.T) {
	raw := decodePayload(t, `[`+fullPayload+`, {"report": null}]`)

	cleaned := Normalize(raw)
	require.NotNil(t, cleaned)
	require.Equal(t, "Sea to Sky", cleaned.AreaName)
}

func TestNormalizeReturnsNilWithoutUsableReport(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "missing report key", raw: `{"area": {"name": "Sea to Sky"}}`},
		{name: "null report", raw: `{"report": null}`},
		{name: "false report", raw: `{"report": false}`},
		{name: "empty string report", raw: `{"report": ""}`},
		{name: "zero report", raw: `{"report": 0}`},
		{name: "empty array report", raw: `{"report": []}`},
		{name: "array report", raw: `{"report": [{"forecaster": "J. Smith"}]}`},
		{name: "string report", raw: `{"report": "present"}`},
		{name: "numeric report", raw: `{"report": 7}`},
		{name: "true report", raw: `{"report": true}`},
		{name: "missing report in array head", raw: `[{"area": {"name": "Sea to Sky"}}]`},
		{name: "empty array payload", raw: `[]`},
		{name: "scalar payload", raw: `"nothing here"`},
		{name: "null payload", raw: `null`},
		{name: "array of scalars", raw: `[42]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Nil(t, Normalize(decodePayload(t, tt.raw)))
		})
	}
}

func TestNormalizeEmptyReportYieldsDefaults(t *testing.T) {
	cleaned := Normalize(decodePayload(t, `{"report": {}}`))
	require.NotNil(t, cleaned)

	require.Equal(t, "N/A", cleaned.ReportMetadata.Forecaster)
	require.Nil(t, cleaned.ReportMetadata.DateIssued)
	require.Nil(t, cleaned.ReportMetadata.ValidUntil)
	require.Equal(t, "N/A", cleaned.ReportMetadata.Confidence)
	require.Equal(t, "No summary provided.", cleaned.Summary)
	require.Equal(t, "Avalanche Area", cleaned.AreaName)
	require.NotNil(t, cleaned.DailyRatings)
	require.Empty(t, cleaned.DailyRatings)
}

func TestNormalizeDefaultsEachFieldIndependently(t *testing.T) {
	raw := decodePayload(t, `{
		"report": {
			"forecaster": 42,
			"dateIssued": 99,
			"confidence": "High",
			"highlights": 7,
			"dangerRatings": [
				{"ratings": {"alp": {"rating": {"display": "Low"}}}},
				"not an object"
			]
		},
		"area": "broken"
	}`)

	cleaned := Normalize(raw)
	require.NotNil(t, cleaned)

	require.Equal(t, "N/A", cleaned.ReportMetadata.Forecaster)
	require.Nil(t, cleaned.ReportMetadata.DateIssued)
	require.Nil(t, cleaned.ReportMetadata.ValidUntil)
	require.Equal(t, "N/A", cleaned.ReportMetadata.Confidence)
	require.Equal(t, "No summary provided.", cleaned.Summary)
	require.Equal(t, "Avalanche Area", cleaned.AreaName)

	require.Len(t, cleaned.DailyRatings, 2)
	require.Equal(t, DailyRating{
		DateDisplay:         "N/A",
		DangerAlpine:        "Low",
		DangerTreeline:      "N/A",
		DangerBelowTreeline: "N/A",
	}, cleaned.DailyRatings[0])
	require.Equal(t, DailyRating{
		DateDisplay:         "N/A",
		DangerAlpine:        "N/A",
		DangerTreeline:      "N/A",
		DangerBelowTreeline: "N/A",
	}, cleaned.DailyRatings[1])
}

func TestNormalizeStripsHTMLSequentially(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "nested tags", in: "<p>Be <b>careful</b> out there.</p>", out: "Be careful out there."},
		{name: "trims whitespace", in: "  <em>Watch wind slabs</em>\n", out: "Watch wind slabs"},
		{name: "entities pass through", in: "Snow &amp; wind", out: "Snow &amp; wind"},
		{name: "dangling open bracket survives", in: "a < b and <i>more</i>", out: "a < b and more"},
		{name: "plain text untouched", in: "No markup at all", out: "No markup at all"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.out, stripHTML(tt.in))
		})
	}
}

func TestNormalizeKeepsRatingOrderWithoutPadding(t *testing.T) {
	raw := decodePayload(t, `{
		"report": {
			"dangerRatings": [
				{"date": {"display": "Day 1"}},
				{"date": {"display": "Day 2"}}
			]
		}
	}`)

	cleaned := Normalize(raw)
	require.NotNil(t, cleaned)
	require.Len(t, cleaned.DailyRatings, 2)
	require.Equal(t, "Day 1", cleaned.DailyRatings[0].DateDisplay)
	require.Equal(t, "Day 2", cleaned.DailyRatings[1].DateDisplay)
}

func TestNormalizeIsPureAndIdempotent(t *testing.T) {
	raw := decodePayload(t, fullPayload)

	before, err := json.Marshal(raw)
	require.NoError(t, err)

	first := Normalize(raw)
	second := Normalize(raw)
	require.Equal(t, first, second)

	after, err := json.Marshal(raw)
	require.NoError(t, err)
	require.JSONEq(t, string(before), string(after))
}

func TestCleanedForecastSerializesNullsAndEmptyRatings(t *testing.T) {
	cleaned := Normalize(decodePayload(t, `{"report": {}}`))
	require.NotNil(t, cleaned)

	data, err := json.Marshal(cleaned)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"reportMetadata": {"forecaster": "N/A", "dateIssued": null, "validUntil": null, "confidence": "N/A"},
		"summary": "No summary provided.",
		"areaName": "Avalanche Area",
		"dailyRatings": []
	}`, string(data))
}
