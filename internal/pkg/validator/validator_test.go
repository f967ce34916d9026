package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-01-31", "2024-02-29"}
	invalid := []string{"2026-13-01", "2026-02-30", "31-01-2026", "2026/01/31", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if _, ok := IsValidMonth("2026-08"); !ok {
		t.Error("IsValidMonth(\"2026-08\") = false, want true")
	}
	for _, m := range []string{"2026-13", "2026-8", "08-2026", ""} {
		if _, ok := IsValidMonth(m); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	invalid := []string{"24:00", "9:30:00", "0930", ""}
	for _, c := range valid {
		if !IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = true, want false", c)
		}
	}
}

func TestIsValidLatitudeLongitude(t *testing.T) {
	if !IsValidLatitude(13.7563) || !IsValidLongitude(100.5018) {
		t.Error("Bangkok coordinates should be valid")
	}
	if IsValidLatitude(90.01) || IsValidLatitude(-90.01) {
		t.Error("latitude outside [-90, 90] should be invalid")
	}
	if IsValidLongitude(180.01) || IsValidLongitude(-180.01) {
		t.Error("longitude outside [-180, 180] should be invalid")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"clock_in", "clock_out"}
	if !IsInSlice("clock_in", slice) {
		t.Error("IsInSlice should find existing value")
	}
	if IsInSlice("break_start", slice) {
		t.Error("IsInSlice should not find missing value")
	}
}
