package models

import "fmt"

// CardSize is a closed enumeration of supported physical card formats.
type CardSize int

const (
	Size3x5 CardSize = iota
	Size4x6
	Size5x7
)

// ParseCardSize maps the settings-file spelling to a CardSize.
func ParseCardSize(s string) (CardSize, error) {
	switch s {
	case "3x5":
		return Size3x5, nil
	case "4x6":
		return Size4x6, nil
	case "5x7":
		return Size5x7, nil
	}
	return Size3x5, fmt.Errorf("unknown card size %q (want 3x5, 4x6 or 5x7)", s)
}

func (s CardSize) String() string {
	switch s {
	case Size4x6:
		return "4x6"
	case Size5x7:
		return "5x7"
	}
	return "3x5"
}

// Inches returns the physical short and long edge in inches.
func (s CardSize) Inches() (short, long float64) {
	switch s {
	case Size4x6:
		return 4, 6
	case Size5x7:
		return 5, 7
	}
	return 3, 5
}

// Orientation selects which physical edge runs vertically.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "portrait":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	}
	return Portrait, fmt.Errorf("unknown orientation %q (want portrait or landscape)", s)
}

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// PageSize returns width and height in inches for a card in this
// orientation. Portrait cards are taller than wide.
func (o Orientation) PageSize(s CardSize) (w, h float64) {
	short, long := s.Inches()
	if o == Landscape {
		return long, short
	}
	return short, long
}

// AspectRatio returns height divided by width for the preview
// rectangle: 5/3, 6/4 or 7/5 in portrait, inverted in landscape.
func (o Orientation) AspectRatio(s CardSize) float64 {
	w, h := o.PageSize(s)
	return h / w
}

// Toggled returns the other orientation.
func (o Orientation) Toggled() Orientation {
	if o == Portrait {
		return Landscape
	}
	return Portrait
}

// Theme is a closed enumeration of card color schemes. Each variant
// maps to a fixed palette in the renderers.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func ParseTheme(s string) (Theme, error) {
	switch s {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("unknown theme %q (want light or dark)", s)
}

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}
