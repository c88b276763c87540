// Package weather renders a human-readable current-weather line from the
// Open-Meteo API, behind a TTL- and location-keyed on-disk cache. Every
// failure path degrades to "no result"; the caller keeps showing whatever
// text it already had.
package weather

import (
	"fmt"
	"net/url"

	"github.com/mkryukov/personal-site-content/internal/coerce"
)

const openMeteoURL = "https://api.open-meteo.com/v1/forecast"

// Location identifies one weather query. Cached entries match on the whole
// tuple: name and timezone exactly, coordinates within a small epsilon.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
	Timezone  string
}

// buildRequestURL assembles the Open-Meteo current-conditions query.
func buildRequestURL(loc Location) string {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
	values.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
	values.Set("current", "temperature_2m,apparent_temperature,weather_code,wind_speed_10m")
	values.Set("timezone", loc.Timezone)
	return fmt.Sprintf("%s?%s", openMeteoURL, values.Encode())
}

// currentBlock extracts the "current" object from a decoded payload of any
// shape; ok is false when the structure is not what the API promises.
func currentBlock(payload any) (map[string]any, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, false
	}
	current, ok := obj["current"].(map[string]any)
	if !ok {
		return nil, false
	}
	return current, true
}

// numericField formats a numeric payload field compactly; empty when the
// field is absent or not a number.
func numericField(current map[string]any, key string) string {
	v, usedFallback := coerce.Float(current[key], 0)
	if usedFallback {
		return ""
	}
	return coerce.FormatCompact(v)
}
