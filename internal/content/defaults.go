package content

import "time"

// baselineProfile is the documented default for every profile field. The
// normalizer starts from this value and overlays whatever the raw input
// provides, so fallback content and real content go through one code path.
func baselineProfile() Profile {
	return Profile{
		Name:        "Ваше имя",
		Title:       "Full-stack разработчик",
		Bio:         "Коротко о себе",
		Username:    "username",
		TelegramURL: "https://t.me/username",
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/username"},
		},
		Stack: []string{"Python", "FastAPI", "PostgreSQL"},
		Quote: "Делаем просто, надежно и без магии.",

		NowListeningText:        "Не указано",
		NowListeningAutoEnabled: true,
		NowListeningUpdatedAt:   "",

		WeatherText:           "Не указано",
		WeatherAutoEnabled:    true,
		WeatherLocationName:   "Москва",
		WeatherLatitude:       55.7558,
		WeatherLongitude:      37.6176,
		WeatherTimezone:       "Europe/Moscow",
		WeatherRefreshMinutes: 60,
		WeatherUpdatedAt:      "",

		AvatarURL: "",
	}
}

// defaultProjectsRaw is the demo project shown until real content exists.
// It is data-only and runs through the same normalization as file content.
func defaultProjectsRaw() []any {
	year := time.Now().UTC().Year()
	return []any{
		map[string]any{
			"id":          "demo-project",
			"title":       "Demo Project",
			"subtitle":    "Example",
			"description": "Заполните проекты через Telegram-бота.",
			"url":         "",
			"status":      "dev",
			"years":       map[string]any{"from": year, "to": year},
			"tags":        []any{"python", "fastapi"},
			"featured":    true,
			"cover":       map[string]any{"type": "image", "src": ""},
			"sort":        100,
		},
	}
}

// defaultSiteConfigRaw mirrors the site config shipped with a fresh install.
func defaultSiteConfigRaw() map[string]any {
	return map[string]any{
		"projects_background": map[string]any{"type": "image", "src": ""},
	}
}
