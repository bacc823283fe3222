package models

// DefaultTitle is used when the front text has no "# " heading line.
const DefaultTitle = "Untitled Card"

// Side identifies which face of a card is being edited or rendered.
type Side int

const (
	SideFront Side = iota
	SideBack
)

func (s Side) String() string {
	if s == SideBack {
		return "back"
	}
	return "front"
}

// Indicator is the single-letter corner marker drawn when the
// side indicator is enabled.
func (s Side) Indicator() string {
	if s == SideBack {
		return "B"
	}
	return "F"
}

// Other returns the opposite face.
func (s Side) Other() Side {
	if s == SideFront {
		return SideBack
	}
	return SideFront
}

// Card is a front/back pair of markdown-subset text plus a title
// derived from the front's first "# " heading. The title is only
// recomputed when the front side is saved.
type Card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
	Title string `json:"title"`
}

// Text returns the raw text of the given side.
func (c Card) Text(s Side) string {
	if s == SideBack {
		return c.Back
	}
	return c.Front
}

// HasBack reports whether the back side carries any content.
func (c Card) HasBack() bool {
	for _, r := range c.Back {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
