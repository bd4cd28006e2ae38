package weather

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/HendryAvila/memdoc/internal/format"
)

// Alerts returns the active alerts for a two-letter state code, already
// formatted for the assistant. At most 20 alerts are included.
func (c *Client) Alerts(ctx context.Context, state string) string {
	u := fmt.Sprintf("%s/alerts?area=%s", c.baseURL, url.QueryEscape(state))

	data, ok := c.fetch(ctx, u)
	if !ok {
		return "Failed to retrieve alerts data"
	}

	features := data.Get("features").Array()
	if len(features) == 0 {
		return fmt.Sprintf("No active alerts for %s", state)
	}

	if len(features) > maxAlerts {
		features = features[:maxAlerts]
	}
	formatted := make([]string, 0, len(features))
	for _, f := range features {
		formatted = append(formatted, format.Alert(f))
	}

	return fmt.Sprintf("Active alerts for %s:\n\n", state) + strings.Join(formatted, "\n")
}

// Forecast resolves the coordinates to a grid point, follows its forecast
// URL and formats every period. Coordinates must already be validated.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) string {
	latS, lonS := format.Coordinate(lat), format.Coordinate(lon)

	points, ok := c.fetch(ctx, fmt.Sprintf("%s/points/%s,%s", c.baseURL, latS, lonS))
	if !ok {
		return fmt.Sprintf("Failed to retrieve grid point data for coordinates: %s, %s.", latS, lonS)
	}

	forecastURL := points.Get("properties.forecast").String()
	if forecastURL == "" {
		return "Failed to get forecast URL from grid point data"
	}

	forecast, ok := c.fetch(ctx, forecastURL)
	if !ok {
		return "Failed to retrieve forecast data"
	}

	periods := forecast.Get("properties.periods").Array()
	if len(periods) == 0 {
		return "No forecast periods available"
	}

	formatted := make([]string, 0, len(periods))
	for _, p := range periods {
		formatted = append(formatted, format.Period(p))
	}

	return fmt.Sprintf("Forecast for %s, %s:\n\n", latS, lonS) + strings.Join(formatted, "\n")
}
