package models

import "testing"

func TestParseCardSize(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want CardSize
		ok   bool
	}{
		{"3x5", Size3x5, true},
		{"4x6", Size4x6, true},
		{"5x7", Size5x7, true},
		{"6x8", Size3x5, false},
		{"", Size3x5, false},
	} {
		got, err := ParseCardSize(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("ParseCardSize(%q) err = %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCardSize(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAspectRatioSwapsWithOrientation(t *testing.T) {
	// A 3x5 card previews at 5:3 in portrait and 3:5 in landscape.
	if got := Portrait.AspectRatio(Size3x5); got != 5.0/3.0 {
		t.Fatalf("portrait 3x5 ratio = %v, want 5/3", got)
	}
	if got := Landscape.AspectRatio(Size3x5); got != 3.0/5.0 {
		t.Fatalf("landscape 3x5 ratio = %v, want 3/5", got)
	}
}

func TestPageSize(t *testing.T) {
	w, h := Portrait.PageSize(Size4x6)
	if w != 4 || h != 6 {
		t.Fatalf("portrait 4x6 page = %vx%v", w, h)
	}
	w, h = Landscape.PageSize(Size4x6)
	if w != 6 || h != 4 {
		t.Fatalf("landscape 4x6 page = %vx%v", w, h)
	}
}

func TestRoundTripStrings(t *testing.T) {
	for _, s := range []CardSize{Size3x5, Size4x6, Size5x7} {
		if got, err := ParseCardSize(s.String()); err != nil || got != s {
			t.Fatalf("size round-trip failed for %v", s)
		}
	}
	for _, o := range []Orientation{Portrait, Landscape} {
		if got, err := ParseOrientation(o.String()); err != nil || got != o {
			t.Fatalf("orientation round-trip failed for %v", o)
		}
	}
	for _, th := range []Theme{ThemeLight, ThemeDark} {
		if got, err := ParseTheme(th.String()); err != nil || got != th {
			t.Fatalf("theme round-trip failed for %v", th)
		}
	}
}

func TestSideHelpers(t *testing.T) {
	if SideFront.Other() != SideBack || SideBack.Other() != SideFront {
		t.Fatalf("Other is not an involution")
	}
	if SideFront.Indicator() != "F" || SideBack.Indicator() != "B" {
		t.Fatalf("unexpected side indicators")
	}
	if (Card{Back: " \n\t"}).HasBack() {
		t.Fatalf("whitespace-only back counted as content")
	}
	if !(Card{Back: "x"}).HasBack() {
		t.Fatalf("non-empty back not detected")
	}
}
