package content

import (
	"github.com/mkryukov/personal-site-content/internal/coerce"
	"github.com/mkryukov/personal-site-content/internal/common"
)

// listSeparators accepts comma-, semicolon- and whitespace-delimited input
// where a list is expected.
const listSeparators = ",; \t\n"

// NormalizeProfile maps one raw JSON-decoded value to a fully-typed Profile.
// It is total: any input shape, including nil or a scalar, yields a complete
// profile with every field defined.
func NormalizeProfile(raw any) Profile {
	p := baselineProfile()
	obj, ok := raw.(map[string]any)
	if !ok {
		return p
	}

	p.Name, _ = coerce.Text(obj["name"], p.Name)
	p.Title, _ = coerce.Text(obj["title"], p.Title)
	p.Bio, _ = coerce.Text(obj["bio"], p.Bio)
	p.Username, _ = coerce.Text(obj["username"], p.Username)
	p.TelegramURL = normalizeHTTPURL(obj["telegram_url"], p.TelegramURL)
	p.Quote, _ = coerce.Text(obj["quote"], p.Quote)

	p.NowListeningText, _ = coerce.Text(obj["now_listening_text"], p.NowListeningText)
	p.NowListeningAutoEnabled, _ = coerce.Bool(obj["now_listening_auto_enabled"], p.NowListeningAutoEnabled)
	p.NowListeningUpdatedAt, _ = coerce.Text(obj["now_listening_updated_at"], p.NowListeningUpdatedAt)

	p.WeatherText, _ = coerce.Text(obj["weather_text"], p.WeatherText)
	p.WeatherAutoEnabled, _ = coerce.Bool(obj["weather_auto_enabled"], p.WeatherAutoEnabled)
	p.WeatherLocationName, _ = coerce.Text(obj["weather_location_name"], p.WeatherLocationName)
	p.WeatherLatitude, _ = coerce.Float(obj["weather_latitude"], p.WeatherLatitude)
	p.WeatherLongitude, _ = coerce.Float(obj["weather_longitude"], p.WeatherLongitude)
	p.WeatherTimezone, _ = coerce.Text(obj["weather_timezone"], p.WeatherTimezone)
	p.WeatherRefreshMinutes, _ = coerce.Int(obj["weather_refresh_minutes"], p.WeatherRefreshMinutes, 10, 720)
	p.WeatherUpdatedAt, _ = coerce.Text(obj["weather_updated_at"], p.WeatherUpdatedAt)

	p.AvatarURL, _ = coerce.Text(obj["avatar_url"], "")

	if _, present := obj["links"]; present {
		p.Links = normalizeLinks(obj["links"], p.Links)
	}
	if _, present := obj["stack"]; present {
		p.Stack = normalizeStack(obj["stack"], p.Stack)
	}
	return p
}

// normalizeLinks keeps insertion order and drops entries missing a label or
// a URL. A value that is not a list falls back entirely.
func normalizeLinks(raw any, fallback []Link) []Link {
	list, ok := raw.([]any)
	if !ok {
		return fallback
	}
	links := make([]Link, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		label, _ := coerce.Text(obj["label"], "")
		url, _ := coerce.Text(obj["url"], "")
		if label == "" || url == "" {
			continue
		}
		links = append(links, Link{Label: label, URL: url})
	}
	return links
}

// normalizeStack accepts either a list or a delimited string of tags.
func normalizeStack(raw any, fallback []string) []string {
	items, ok := stringItems(raw)
	if !ok {
		return fallback
	}
	stack := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			stack = append(stack, item)
		}
	}
	return stack
}

// stringItems turns a list or delimited string into cleaned string items.
func stringItems(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case string:
		return common.SplitClean(v, listSeparators), true
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			text, _ := coerce.Text(item, "")
			if text != "" {
				items = append(items, text)
			}
		}
		return items, true
	default:
		return nil, false
	}
}

// normalizeHTTPURL keeps a value only when it is an http(s) URL; anything
// else becomes the fallback, or empty when the fallback itself is not one.
// The renderer treats an empty URL as "link unavailable", never as a broken
// link.
func normalizeHTTPURL(raw any, fallback string) string {
	text, _ := coerce.Text(raw, fallback)
	if common.HasAnyPrefix(text, "http://", "https://") {
		return text
	}
	return ""
}
