package weather

import (
	"strings"
	"time"

	"github.com/mkryukov/personal-site-content/internal/coerce"
)

// conditionRU maps Open-Meteo weather codes to short Russian descriptions.
var conditionRU = map[int]string{
	0:  "Ясно",
	1:  "Малооблачно",
	2:  "Переменная облачность",
	3:  "Пасмурно",
	45: "Туман",
	48: "Туман",
	51: "Морось",
	53: "Морось",
	55: "Морось",
	56: "Ледяная морось",
	57: "Ледяная морось",
	61: "Дождь",
	63: "Дождь",
	65: "Дождь",
	66: "Ледяной дождь",
	67: "Ледяной дождь",
	71: "Снег",
	73: "Снег",
	75: "Снег",
	77: "Снежная крупа",
	80: "Ливень",
	81: "Ливень",
	82: "Ливень",
	85: "Снегопад",
	86: "Снегопад",
	95: "Гроза",
	96: "Гроза с градом",
	99: "Гроза с градом",
}

// Condition returns the Russian description for a weather code.
func Condition(code int) string {
	if text, ok := conditionRU[code]; ok {
		return text
	}
	return "Без уточнения"
}

// renderText builds the rendered weather line from the API's "current"
// block, or "" when the block lacks a temperature reading.
func renderText(loc Location, current map[string]any) string {
	temperature := numericField(current, "temperature_2m")
	if temperature == "" {
		return ""
	}

	code := -1
	if v, usedFallback := coerce.Float(current["weather_code"], 0); !usedFallback {
		code = int(v)
	}

	parts := []string{
		loc.Name + ": " + temperature + "°C",
		Condition(code),
	}
	if apparent := numericField(current, "apparent_temperature"); apparent != "" {
		parts = append(parts, "ощущается как "+apparent+"°C")
	}
	if wind := numericField(current, "wind_speed_10m"); wind != "" {
		parts = append(parts, "ветер "+wind+" м/с")
	}
	if updated := formatUpdatedTime(current["time"], loadZone(loc.Timezone)); updated != "" {
		parts = append(parts, "обновлено "+updated)
	}
	return strings.Join(parts, ", ")
}

// loadZone resolves an IANA zone name, falling back to UTC when the zone
// is unknown on this host.
func loadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// formatUpdatedTime renders the upstream observation time as "HH:MM ABBR"
// in the target zone. Open-Meteo reports the time without an offset, local
// to the requested timezone; an offset is honored when present anyway.
func formatUpdatedTime(raw any, zone *time.Location) string {
	text, _ := coerce.Text(raw, "")
	if text == "" {
		return ""
	}

	var t time.Time
	if parsed, err := time.Parse(time.RFC3339, text); err == nil {
		t = parsed.In(zone)
	} else {
		var ok bool
		for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
			if parsed, err := time.ParseInLocation(layout, text, zone); err == nil {
				t, ok = parsed, true
				break
			}
		}
		if !ok {
			return ""
		}
	}

	abbrev, _ := t.Zone()
	if abbrev == "" {
		abbrev = zone.String()
	}
	return t.Format("15:04") + " " + abbrev
}
