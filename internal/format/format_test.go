package format

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

// --- Alert ---

func TestAlert_AllFields(t *testing.T) {
	feature := gjson.Parse(`{"properties":{
		"event":"Flood Warning",
		"areaDesc":"Kings County",
		"severity":"Severe",
		"status":"Actual",
		"headline":"Flood Warning issued"
	}}`)

	got := Alert(feature)
	want := "Event: Flood Warning\n" +
		"Area: Kings County\n" +
		"Severity: Severe\n" +
		"Status: Actual\n" +
		"Headline: Flood Warning issued\n" +
		"---"
	if got != want {
		t.Errorf("Alert() =\n%s\nwant\n%s", got, want)
	}
}

func TestAlert_MissingFieldsUsePlaceholders(t *testing.T) {
	got := Alert(gjson.Parse(`{"properties":{"event":null}}`))

	for _, line := range []string{
		"Event: Unknown",
		"Area: Unknown",
		"Severity: Unknown",
		"Status: Unknown",
		"Headline: No headline",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("Alert() missing %q in:\n%s", line, got)
		}
	}
	if !strings.HasSuffix(got, Divider) {
		t.Errorf("Alert() should end with divider, got:\n%s", got)
	}
}

// --- Period ---

func TestPeriod_AllFields(t *testing.T) {
	period := gjson.Parse(`{
		"name":"Tonight",
		"temperature":54,
		"temperatureUnit":"F",
		"windSpeed":"5 to 10 mph",
		"windDirection":"NW",
		"shortForecast":"Mostly Clear"
	}`)

	got := Period(period)
	want := "Tonight:\n" +
		"Temperature: 54°F\n" +
		"Wind: 5 to 10 mph NW\n" +
		"Mostly Clear\n" +
		"---"
	if got != want {
		t.Errorf("Period() =\n%s\nwant\n%s", got, want)
	}
}

func TestPeriod_Defaults(t *testing.T) {
	got := Period(gjson.Parse(`{}`))
	want := "Unknown:\n" +
		"Temperature: Unknown°F\n" +
		"Wind: Unknown \n" +
		"No forecast available\n" +
		"---"
	if got != want {
		t.Errorf("Period() =\n%q\nwant\n%q", got, want)
	}
}

// --- Coordinate ---

func TestCoordinate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{40.7, "40.7"},
		{-74.0, "-74.0"},
		{0, "0.0"},
		{90, "90.0"},
		{-122.4194, "-122.4194"},
	}
	for _, tt := range tests {
		if got := Coordinate(tt.in); got != tt.want {
			t.Errorf("Coordinate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// --- TopicPrompt ---

func TestTopicPrompt_EmbedsHistory(t *testing.T) {
	got := TopicPrompt("=== New Memory ===\nTalked about sailing")

	if !strings.HasPrefix(got, "Based on the conversation history below") {
		t.Errorf("prompt should start with the instructions, got:\n%s", got[:60])
	}
	if !strings.Contains(got, "5. POTENTIAL INSIGHTS") {
		t.Error("prompt should contain all five sections")
	}
	idx := strings.Index(got, "CONVERSATION HISTORY:\n")
	if idx < 0 {
		t.Fatal("prompt missing CONVERSATION HISTORY header")
	}
	if !strings.Contains(got[idx:], "Talked about sailing") {
		t.Error("history should follow the header")
	}
}
