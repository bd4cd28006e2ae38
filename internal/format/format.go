// Package format turns raw weather records and memory document text into
// the human-readable strings returned by the tools.
//
// Every function here is pure: no I/O, no errors. Missing fields fall back
// to placeholder text instead of failing.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/tidwall/gjson"
)

// Divider closes every alert and forecast period block.
const Divider = "---"

// Alert formats one alert feature from the alerts endpoint.
func Alert(feature gjson.Result) string {
	props := feature.Get("properties")
	return fmt.Sprintf(
		"Event: %s\nArea: %s\nSeverity: %s\nStatus: %s\nHeadline: %s\n%s",
		field(props, "event", "Unknown"),
		field(props, "areaDesc", "Unknown"),
		field(props, "severity", "Unknown"),
		field(props, "status", "Unknown"),
		field(props, "headline", "No headline"),
		Divider,
	)
}

// Period formats one forecast period.
func Period(period gjson.Result) string {
	return fmt.Sprintf(
		"%s:\nTemperature: %s°%s\nWind: %s %s\n%s\n%s",
		field(period, "name", "Unknown"),
		field(period, "temperature", "Unknown"),
		field(period, "temperatureUnit", "F"),
		field(period, "windSpeed", "Unknown"),
		field(period, "windDirection", ""),
		field(period, "shortForecast", "No forecast available"),
		Divider,
	)
}

// Coordinate renders a latitude or longitude with at least one decimal
// place, so -74 prints as "-74.0" and 40.7 stays "40.7".
func Coordinate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

var topicInstructions = heredoc.Doc(`
	Based on the conversation history below, please provide a thoughtful analysis and topic suggestion:

	ANALYSIS INSTRUCTIONS:

	1. PRIMARY TOPIC SUGGESTION
	- Identify the most compelling topic for our next conversation
	- Explain why this topic would be particularly meaningful now
	- Consider the user's emotional state, interests, and current circumstances

	2. SUPPORTING EVIDENCE
	- Include 2-3 relevant quotes from previous conversations
	- Highlight specific moments that make this topic timely
	- Show how this builds on previous discussions

	3. CONTEXTUAL CONNECTIONS
	- Note any time-sensitive aspects (e.g., upcoming events, seasonal relevance)
	- Connect to ongoing themes or unresolved questions
	- Consider recent developments that might affect this topic

	4. CONVERSATION APPROACHES
	- Suggest 2-3 specific angles to explore this topic
	- Frame potential questions to deepen the discussion
	- Consider both practical and emotional dimensions

	5. POTENTIAL INSIGHTS
	- Outline what new understanding might emerge
	- Identify how this could help with previous challenges
	- Suggest possible actionable outcomes

	Please provide a natural, flowing response that incorporates all these elements while maintaining a conversational tone.
`)

// TopicPrompt wraps the memory document text in the analysis instructions
// used by suggest_topic.
func TopicPrompt(docText string) string {
	var b strings.Builder
	b.WriteString(topicInstructions)
	b.WriteString("\nCONVERSATION HISTORY:\n")
	b.WriteString(docText)
	b.WriteString("\n\n")
	return b.String()
}

// field returns the string form of key, or fallback when it is absent or null.
func field(obj gjson.Result, key, fallback string) string {
	v := obj.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return fallback
	}
	return v.String()
}
