package coerce

import "testing"

// TestTextFallback verifies that non-scalars and empty strings yield the
// fallback and report it.
func TestTextFallback(t *testing.T) {
	cases := []any{nil, map[string]any{}, []any{"x"}, "", "   "}
	for _, input := range cases {
		got, usedFallback := Text(input, "default")
		if got != "default" || !usedFallback {
			t.Fatalf("Text(%#v) = (%q, %v), want (\"default\", true)", input, got, usedFallback)
		}
	}

	got, usedFallback := Text("  hello  ", "default")
	if got != "hello" || usedFallback {
		t.Fatalf("Text trimmed = (%q, %v), want (\"hello\", false)", got, usedFallback)
	}
}

func TestBoolSpellings(t *testing.T) {
	truthy := []any{true, 1.0, "1", "TRUE", "Yes", " on "}
	for _, input := range truthy {
		got, usedFallback := Bool(input, false)
		if !got || usedFallback {
			t.Fatalf("Bool(%#v) = (%v, %v), want (true, false)", input, got, usedFallback)
		}
	}

	falsy := []any{false, 0.0, "0", "False", "no", "OFF"}
	for _, input := range falsy {
		got, usedFallback := Bool(input, true)
		if got || usedFallback {
			t.Fatalf("Bool(%#v) = (%v, %v), want (false, false)", input, got, usedFallback)
		}
	}

	got, usedFallback := Bool("maybe", true)
	if !got || !usedFallback {
		t.Fatalf("Bool(maybe) = (%v, %v), want fallback", got, usedFallback)
	}
}

func TestFloatCommaDecimal(t *testing.T) {
	got, usedFallback := Float("55,7558", 0)
	if usedFallback || got != 55.7558 {
		t.Fatalf("Float(55,7558) = (%v, %v)", got, usedFallback)
	}

	if got, usedFallback := Float("not a number", 1.5); got != 1.5 || !usedFallback {
		t.Fatalf("Float(garbage) = (%v, %v), want fallback", got, usedFallback)
	}
	if got, usedFallback := Float(true, 1.5); got != 1.5 || !usedFallback {
		t.Fatalf("Float(true) = (%v, %v), want fallback", got, usedFallback)
	}
}

// TestIntClampsAndExcludesBool verifies clamping and that a bare true does
// not silently become 1.
func TestIntClampsAndExcludesBool(t *testing.T) {
	if got, _ := Int(5000.0, 60, 10, 720); got != 720 {
		t.Fatalf("Int above max = %d, want 720", got)
	}
	if got, _ := Int(-3.0, 60, 10, 720); got != 10 {
		t.Fatalf("Int below min = %d, want 10", got)
	}
	if got, _ := Int("42.9", 0, 0, 100); got != 42 {
		t.Fatalf("Int truncation = %d, want 42", got)
	}
	if got, usedFallback := Int(true, 60, 10, 720); got != 60 || !usedFallback {
		t.Fatalf("Int(true) = (%d, %v), want fallback", got, usedFallback)
	}
}

// TestIntHugeValuesClamp verifies that values beyond the int range still
// clamp to the nearest bound instead of wrapping through the conversion.
func TestIntHugeValuesClamp(t *testing.T) {
	if got, usedFallback := Int(1e19, 60, 10, 720); got != 720 || usedFallback {
		t.Fatalf("Int(1e19) = (%d, %v), want (720, false)", got, usedFallback)
	}
	if got, usedFallback := Int(-1e19, 60, 10, 720); got != 10 || usedFallback {
		t.Fatalf("Int(-1e19) = (%d, %v), want (10, false)", got, usedFallback)
	}
	if got, usedFallback := Int("99999999999999999999", 60, 10, 720); got != 720 || usedFallback {
		t.Fatalf("Int(huge string) = (%d, %v), want (720, false)", got, usedFallback)
	}
}

func TestFormatCompact(t *testing.T) {
	cases := map[float64]string{
		20.0:  "20",
		20.5:  "20.5",
		20.56: "20.6",
		-3.0:  "-3",
	}
	for input, want := range cases {
		if got := FormatCompact(input); got != want {
			t.Fatalf("FormatCompact(%v) = %q, want %q", input, got, want)
		}
	}
}
