// Package coerce converts untyped JSON-decoded values into well-typed ones.
// Every function is total: it never fails, it falls back to the provided
// default instead. The second return value reports whether the fallback was
// used, so callers can log or test defaulting without changing the contract.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Text returns the trimmed string form of a scalar value.
// Non-scalars and values that trim to empty yield the fallback.
func Text(value any, fallback string) (string, bool) {
	switch v := value.(type) {
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return fallback, true
		}
		return text, false
	case bool:
		if v {
			return "true", false
		}
		return "false", false
	case float64:
		return formatCompact(v, -1), false
	case int:
		return strconv.Itoa(v), false
	case int64:
		return strconv.FormatInt(v, 10), false
	case json.Number:
		return v.String(), false
	default:
		return fallback, true
	}
}

// Bool interprets booleans, numbers (nonzero is true) and a fixed set of
// string spellings. Anything else yields the fallback.
func Bool(value any, fallback bool) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, false
	case float64:
		return v != 0, false
	case int:
		return v != 0, false
	case int64:
		return v != 0, false
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true, false
		case "0", "false", "no", "off":
			return false, false
		}
		return fallback, true
	default:
		return fallback, true
	}
}

// Float accepts numeric types as-is and parses numeric strings, with a comma
// decimal separator normalized to a dot. Booleans are deliberately not
// numbers here.
func Float(value any, fallback float64) (float64, bool) {
	switch v := value.(type) {
	case bool:
		return fallback, true
	case float64:
		return v, false
	case int:
		return float64(v), false
	case int64:
		return float64(v), false
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, false
		}
		return fallback, true
	case string:
		raw := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		if raw == "" {
			return fallback, true
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fallback, true
		}
		return f, false
	default:
		return fallback, true
	}
}

// Int is Float truncated toward zero and clamped into [min, max].
// The fallback is returned unclamped; callers provide fallbacks that already
// satisfy their own constraints.
func Int(value any, fallback, min, max int) (int, bool) {
	if _, isBool := value.(bool); isBool {
		return fallback, true
	}
	f, usedFallback := Float(value, math.NaN())
	if usedFallback || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback, true
	}
	// Clamp before converting: an out-of-range float→int conversion is not
	// defined to saturate.
	f = math.Trunc(f)
	if f <= float64(min) {
		return min, false
	}
	if f >= float64(max) {
		return max, false
	}
	return int(f), false
}

// formatCompact renders a float with the given precision and strips trailing
// zeros and a trailing decimal point ("20.0" becomes "20").
func formatCompact(v float64, precision int) string {
	text := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(text, ".") {
		text = strings.TrimRight(text, "0")
		text = strings.TrimRight(text, ".")
	}
	return text
}

// FormatCompact renders a float with one decimal place, trailing zeros and
// decimal point stripped.
func FormatCompact(v float64) string {
	return formatCompact(v, 1)
}
