package weather

import (
	"context"
	"strings"
	"time"

	"github.com/mkryukov/personal-site-content/internal/content"
)

// placeholderText marks a weather field that was never filled in.
const placeholderText = "не указано"

// Resolve returns the weather text to render for a profile. The manager is
// consulted only when the stored text is empty, is the placeholder, or is
// older than the profile's refresh interval; on any failure the stored
// (possibly stale) text is kept, so the page never shows an empty field.
func (m *Manager) Resolve(ctx context.Context, p content.Profile) string {
	if !p.WeatherAutoEnabled {
		return p.WeatherText
	}
	if !needsRefresh(p, m.now()) {
		return p.WeatherText
	}

	loc := Location{
		Name:      p.WeatherLocationName,
		Latitude:  p.WeatherLatitude,
		Longitude: p.WeatherLongitude,
		Timezone:  p.WeatherTimezone,
	}
	ttl := time.Duration(p.WeatherRefreshMinutes) * time.Minute

	text, ok := m.Text(ctx, loc, ttl)
	if !ok {
		return p.WeatherText
	}
	return text
}

// needsRefresh implements the staleness rule for the stored profile text.
func needsRefresh(p content.Profile, now time.Time) bool {
	text := strings.TrimSpace(p.WeatherText)
	if text == "" || strings.EqualFold(text, placeholderText) {
		return true
	}
	updated, ok := parseISOTime(p.WeatherUpdatedAt)
	if !ok {
		return true
	}
	return now.Sub(updated) >= time.Duration(p.WeatherRefreshMinutes)*time.Minute
}

// parseISOTime accepts RFC3339 (with Z or offset) and bare local datetimes,
// which are taken as UTC.
func parseISOTime(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t, true
	}
	for _, layout := range []string{"2006-01-02T15:04:05.999999", "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
